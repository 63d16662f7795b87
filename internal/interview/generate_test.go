package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_HardRoleIncludesSystemDesign(t *testing.T) {
	kit := Generate(PrepRequest{Company: "Google", Role: "DevOps Engineer"})

	require.NotEmpty(t, kit.Technical)
	assert.Equal(t, "q1", kit.Technical[0].ID)
	assert.Contains(t, kit.Technical[0].Question, "Google")
	assert.Contains(t, kit.Technical[0].Topics, "System Design")
}

func TestGenerate_MediumRoleSkipsSystemDesign(t *testing.T) {
	kit := Generate(PrepRequest{Company: "Acme", Role: "Frontend Developer"})

	for _, q := range kit.Technical {
		assert.NotContains(t, q.Topics, "System Design")
	}
}

func TestGenerate_SeniorTitleIncludesSystemDesign(t *testing.T) {
	kit := Generate(PrepRequest{Company: "Acme", Role: "Senior Frontend Developer"})

	// Role table matches "frontend" (medium), but the senior title forces
	// a system design question.
	ids := make([]string, 0, len(kit.Technical))
	for _, q := range kit.Technical {
		ids = append(ids, q.ID)
	}
	assert.Contains(t, ids, "q1")
}

func TestGenerate_TechnologyQuestionsCappedAtTwo(t *testing.T) {
	kit := Generate(PrepRequest{
		Company:      "Acme",
		Role:         "Backend Developer",
		Technologies: []string{"Go", "Postgres", "Redis"},
	})

	techSpecific := 0
	for _, q := range kit.Technical {
		for _, topic := range q.Topics {
			if topic == "Go" || topic == "Postgres" || topic == "Redis" {
				techSpecific++
			}
		}
	}
	assert.Equal(t, 2, techSpecific)
}

func TestGenerate_DefaultsTechnologiesFromRole(t *testing.T) {
	kit := Generate(PrepRequest{Company: "Acme", Role: "Backend Developer"})

	found := false
	for _, q := range kit.Technical {
		for _, topic := range q.Topics {
			if topic == "Node.js" {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a question about the role's core skills")
}

func TestGenerate_StudyPlanCoversPrepTopics(t *testing.T) {
	kit := Generate(PrepRequest{Company: "Acme", Role: "Frontend Developer"})

	assert.Len(t, kit.StudyPlan, len(kit.Role.PrepTopics)+2)
	assert.Contains(t, kit.StudyPlan[0], "Day 1")
}

func TestGenerate_BehavioralAlwaysPresent(t *testing.T) {
	kit := Generate(PrepRequest{Company: "Nowhere", Role: "Nothing"})

	assert.Len(t, kit.Behavioral, 3)
}
