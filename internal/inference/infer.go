// Package inference derives technical domains, recommended roles, and a
// seniority label from extracted resume skills. Domain and role triggers are
// table-driven configuration; the algorithm never changes when a table grows.
package inference

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// DomainRole binds a technical domain to its recommended role and the
// trigger skills that activate both. Any one trigger present includes the
// domain; the role score is the sum of present trigger-skill scores.
type DomainRole struct {
	Domain   string
	Role     string
	Triggers []string
}

// DefaultTaxonomy is the fixed domain/role trigger table. Order matters: it
// is the tie-break order for roles with equal aggregate scores.
var DefaultTaxonomy = []DomainRole{
	{Domain: "Frontend", Role: "Frontend Developer", Triggers: []string{"React", "HTML", "CSS", "Redux"}},
	{Domain: "Backend", Role: "Backend Developer", Triggers: []string{"Node.js", "Express", "Java"}},
	{Domain: "Database", Role: "Database Engineer", Triggers: []string{"MongoDB", "SQL", "PostgreSQL"}},
	{Domain: "Cloud/DevOps", Role: "DevOps Engineer", Triggers: []string{"AWS", "Docker", "Kubernetes"}},
	{Domain: "AI/ML", Role: "ML Engineer", Triggers: []string{"TensorFlow"}},
}

// Seniority keyword patterns, checked in precedence order: the Senior match
// wins when both apply. Substring matching mirrors the legacy rules.
var (
	seniorPattern = regexp.MustCompile(`(?i)5\+|senior|lead|manager`)
	midPattern    = regexp.MustCompile(`(?i)3\+|mid-level|experienced`)
)

// Inferencer applies a taxonomy to extracted skills.
type Inferencer struct {
	taxonomy []DomainRole
}

// New creates an Inferencer over the given taxonomy.
func New(taxonomy []DomainRole) *Inferencer {
	return &Inferencer{taxonomy: taxonomy}
}

var defaultInferencer = New(DefaultTaxonomy)

// Infer runs the default-taxonomy inferencer.
func Infer(skills []types.Skill, text string) types.Profile {
	return defaultInferencer.Infer(skills, text)
}

// Infer computes domains, score-ranked recommended roles, and a seniority
// label. Pure function: identical input yields identical output.
func (inf *Inferencer) Infer(skills []types.Skill, text string) types.Profile {
	scores := make(map[string]int, len(skills))
	for _, s := range skills {
		scores[strings.ToLower(s.Name)] = s.Score
	}

	type scoredRole struct {
		role  string
		score int
	}

	profile := types.Profile{
		Domains:          []string{},
		RecommendedRoles: []string{},
		Seniority:        inferSeniority(text),
	}

	var roles []scoredRole
	for _, entry := range inf.taxonomy {
		total := 0
		present := false
		for _, trigger := range entry.Triggers {
			if score, ok := scores[strings.ToLower(trigger)]; ok {
				present = true
				total += score
			}
		}
		if present {
			profile.Domains = append(profile.Domains, entry.Domain)
			roles = append(roles, scoredRole{role: entry.Role, score: total})
		}
	}

	// Stable sort keeps domain-derivation order on ties.
	sort.SliceStable(roles, func(i, j int) bool {
		return roles[i].score > roles[j].score
	})
	for _, r := range roles {
		profile.RecommendedRoles = append(profile.RecommendedRoles, r.role)
	}

	return profile
}

func inferSeniority(text string) string {
	switch {
	case seniorPattern.MatchString(text):
		return types.SenioritySenior
	case midPattern.MatchString(text):
		return types.SeniorityMid
	default:
		return types.SeniorityJunior
	}
}

// TopSkills returns the n highest-scoring skills, score descending, without
// mutating the input order.
func TopSkills(skills []types.Skill, n int) []types.Skill {
	sorted := make([]types.Skill, len(skills))
	copy(sorted, skills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
