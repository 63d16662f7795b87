package inference

import (
	"testing"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestInfer_FrontendOnly(t *testing.T) {
	skills := []types.Skill{
		{Name: "React", Score: 3},
		{Name: "HTML", Score: 1},
	}

	profile := Infer(skills, "built user interfaces")

	assert.Equal(t, []string{"Frontend"}, profile.Domains)
	assert.Equal(t, []string{"Frontend Developer"}, profile.RecommendedRoles)
	assert.Equal(t, types.SeniorityJunior, profile.Seniority)
}

func TestInfer_DomainTriggerMembership(t *testing.T) {
	cases := []struct {
		skill  string
		domain string
	}{
		{"Redux", "Frontend"},
		{"Express", "Backend"},
		{"PostgreSQL", "Database"},
		{"Kubernetes", "Cloud/DevOps"},
		{"TensorFlow", "AI/ML"},
	}

	for _, tc := range cases {
		profile := Infer([]types.Skill{{Name: tc.skill, Score: 1}}, "")
		assert.Equal(t, []string{tc.domain}, profile.Domains, "skill %s", tc.skill)
	}
}

func TestInfer_NoTriggersNoDomains(t *testing.T) {
	profile := Infer([]types.Skill{{Name: "Python", Score: 4}}, "")

	assert.Empty(t, profile.Domains)
	assert.Empty(t, profile.RecommendedRoles)
}

func TestInfer_RolesRankedByAggregateScore(t *testing.T) {
	skills := []types.Skill{
		{Name: "React", Score: 1},
		{Name: "Node.js", Score: 4},
		{Name: "Express", Score: 2},
	}

	profile := Infer(skills, "")

	// Backend aggregate 6 beats Frontend aggregate 1.
	assert.Equal(t, []string{"Backend Developer", "Frontend Developer"}, profile.RecommendedRoles)
	assert.Equal(t, []string{"Frontend", "Backend"}, profile.Domains)
}

func TestInfer_RoleTieKeepsDomainOrder(t *testing.T) {
	skills := []types.Skill{
		{Name: "MongoDB", Score: 2},
		{Name: "AWS", Score: 2},
	}

	profile := Infer(skills, "")

	// Equal scores: Database precedes Cloud/DevOps in the taxonomy.
	assert.Equal(t, []string{"Database Engineer", "DevOps Engineer"}, profile.RecommendedRoles)
}

func TestInfer_SeniorityKeywords(t *testing.T) {
	cases := map[string]string{
		"Senior Engineer at Acme":        types.SenioritySenior,
		"led a team as lead developer":   types.SenioritySenior,
		"engineering manager":            types.SenioritySenior,
		"5+ years of experience":         types.SenioritySenior,
		"3+ years building services":     types.SeniorityMid,
		"mid-level engineer":             types.SeniorityMid,
		"experienced with deployments":   types.SeniorityMid,
		"recent graduate seeking a role": types.SeniorityJunior,
	}

	for text, want := range cases {
		profile := Infer(nil, text)
		assert.Equal(t, want, profile.Seniority, "text %q", text)
	}
}

func TestInfer_SeniorTakesPrecedenceOverMid(t *testing.T) {
	profile := Infer(nil, "Senior engineer with 3+ years in cloud")

	assert.Equal(t, types.SenioritySenior, profile.Seniority)
}

func TestInfer_CaseInsensitiveTriggerLookup(t *testing.T) {
	profile := Infer([]types.Skill{{Name: "react", Score: 1}}, "")

	assert.Equal(t, []string{"Frontend"}, profile.Domains)
}

func TestInfer_Idempotent(t *testing.T) {
	skills := []types.Skill{{Name: "React", Score: 2}, {Name: "AWS", Score: 1}}

	first := Infer(skills, "senior dev")
	second := Infer(skills, "senior dev")

	assert.Equal(t, first, second)
}

func TestTopSkills(t *testing.T) {
	skills := []types.Skill{
		{Name: "HTML", Score: 1},
		{Name: "React", Score: 5},
		{Name: "CSS", Score: 3},
	}

	top := TopSkills(skills, 2)

	assert.Equal(t, []types.Skill{{Name: "React", Score: 5}, {Name: "CSS", Score: 3}}, top)
	// Input order untouched.
	assert.Equal(t, "HTML", skills[0].Name)
}

func TestTopSkills_NLargerThanList(t *testing.T) {
	skills := []types.Skill{{Name: "React", Score: 1}}

	assert.Len(t, TopSkills(skills, 5), 1)
}
