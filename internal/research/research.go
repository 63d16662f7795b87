// Package research provides static company and role research data used for
// interview preparation. The tables are lookup data, not algorithms; unknown
// companies and roles fall back to generic defaults so a prep request always
// succeeds.
package research

import (
	"regexp"
	"strings"
)

// CompanyResearch describes a company's interview process and culture.
type CompanyResearch struct {
	Name             string   `json:"name"`
	Summary          string   `json:"summary"`
	InterviewProcess []string `json:"interview_process"`
	CommonQuestions  []string `json:"common_questions"`
	TechStack        []string `json:"tech_stack"`
	Culture          string   `json:"culture"`
	InterviewTips    []string `json:"interview_tips"`
}

// RoleResearch describes what a role's interviews focus on.
type RoleResearch struct {
	Title      string   `json:"title"`
	Difficulty string   `json:"difficulty"` // easy, medium, hard
	FocusAreas []string `json:"focus_areas"`
	CoreSkills []string `json:"core_skills"`
	PrepTopics []string `json:"prep_topics"`
}

// Company returns research for a company, falling back to a generic profile
// when the company is unknown. Lookup is case-insensitive.
func Company(name string) CompanyResearch {
	if r, ok := companies[strings.ToLower(strings.TrimSpace(name))]; ok {
		return r
	}
	generic := defaultCompany
	if name != "" {
		generic.Name = name
		generic.Summary = name + ": company-specific research unavailable, using general guidance."
	}
	return generic
}

// rolePatterns match role fragments on word boundaries so a short key like
// "ml" never matches inside an unrelated word ("html").
var rolePatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(roleKeys))
	for _, key := range roleKeys {
		patterns[key] = regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`)
	}
	return patterns
}()

// Role returns research for a role title. Matching is case-insensitive and
// tolerates partial titles ("Senior Backend Developer" matches "backend");
// compound titles resolve to the first fragment in roleKeys order.
func Role(title string) RoleResearch {
	lower := strings.ToLower(strings.TrimSpace(title))
	if r, ok := roles[lower]; ok {
		return r
	}
	normalized := strings.ReplaceAll(lower, "-", " ")
	for _, key := range roleKeys {
		if rolePatterns[key].MatchString(normalized) {
			return roles[key]
		}
	}
	generic := defaultRole
	if title != "" {
		generic.Title = title
	}
	return generic
}
