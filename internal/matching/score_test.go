package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillScore_EmptyJobSkills(t *testing.T) {
	assert.Equal(t, 0.0, SkillScore(nil, map[string]bool{"react": true}))
	assert.Equal(t, 0.0, SkillScore([]string{}, map[string]bool{"react": true}))
}

func TestSkillScore_PartialMatch(t *testing.T) {
	score := SkillScore([]string{"react", "node"}, map[string]bool{"react": true})

	assert.Equal(t, 0.5, score)
}

func TestSkillScore_CaseInsensitive(t *testing.T) {
	score := SkillScore([]string{"React"}, map[string]bool{"react": true})

	assert.Equal(t, 1.0, score)
}

func TestSkillScore_NotSymmetric(t *testing.T) {
	// Extra candidate skills the job does not require leave the score alone.
	candidate := map[string]bool{"react": true, "python": true, "aws": true}

	assert.Equal(t, 1.0, SkillScore([]string{"react"}, candidate))
}

func TestSkillScore_DuplicateJobSkills(t *testing.T) {
	// Duplicates are not deduplicated: they inflate the denominator.
	score := SkillScore([]string{"react", "react", "node"}, map[string]bool{"react": true})

	assert.InDelta(t, 2.0/3.0, score, 1e-9)
}

func TestSkillScore_NoOverlap(t *testing.T) {
	score := SkillScore([]string{"go", "rust"}, map[string]bool{"react": true})

	assert.Equal(t, 0.0, score)
}
