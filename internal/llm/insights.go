package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const insightsPromptTemplate = `You are a career advisor reviewing a parsed resume.

Detected skills: %s
Recommended roles: %s
Technical domains: %s
Seniority: %s

Respond with a JSON object with exactly these fields:
{
  "missing_skills": ["up to 5 skills that would strengthen this profile"],
  "suggested_roles": ["up to 3 additional roles worth considering"],
  "summary": "two sentences summarizing the candidate"
}`

// Advisor generates optional resume insights through an LLM client.
type Advisor struct {
	client Client
}

// NewAdvisor wraps a client. A nil client is allowed; Insights then
// reports that the advisor is unavailable.
func NewAdvisor(client Client) *Advisor {
	return &Advisor{client: client}
}

// Available reports whether the advisor can generate insights.
func (a *Advisor) Available() bool {
	return a != nil && a.client != nil
}

// Insights asks the model for suggestions based on the parsed resume.
func (a *Advisor) Insights(ctx context.Context, parsed *types.ParsedResume) (*types.ResumeInsights, error) {
	if !a.Available() {
		return nil, fmt.Errorf("no LLM client configured")
	}
	if parsed == nil {
		return nil, fmt.Errorf("parsed resume is required")
	}

	prompt := fmt.Sprintf(insightsPromptTemplate,
		joinSkills(parsed.Skills),
		strings.Join(parsed.RecommendedRoles, ", "),
		strings.Join(parsed.TechnicalDomains, ", "),
		parsed.Seniority,
	)

	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	var insights types.ResumeInsights
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return nil, fmt.Errorf("failed to parse insights response: %w", err)
	}
	return &insights, nil
}

func joinSkills(skills []types.Skill) string {
	if len(skills) == 0 {
		return "none detected"
	}
	parts := make([]string, len(skills))
	for i, s := range skills {
		parts[i] = fmt.Sprintf("%s (mentioned %d times)", s.Name, s.Score)
	}
	return strings.Join(parts, ", ")
}
