package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillUnmarshal_AcceptsBothShapes(t *testing.T) {
	var fromString Skill
	require.NoError(t, json.Unmarshal([]byte(`"react"`), &fromString))
	assert.Equal(t, Skill{Name: "react"}, fromString)

	var fromObject Skill
	require.NoError(t, json.Unmarshal([]byte(`{"name": "react", "score": 3}`), &fromObject))
	assert.Equal(t, Skill{Name: "react", Score: 3}, fromObject)
}

func TestSkillUnmarshal_RejectsOtherShapes(t *testing.T) {
	var s Skill
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestSkillNamesUnmarshal_MixedEncodings(t *testing.T) {
	var names SkillNames
	require.NoError(t, json.Unmarshal([]byte(`["react", {"name": "aws", "score": 2}]`), &names))
	assert.Equal(t, SkillNames{"react", "aws"}, names)
}

func TestSkillSet_LowercasesAndSkipsBlank(t *testing.T) {
	set := SkillSet([]Skill{{Name: "React"}, {Name: "  "}, {Name: "aws"}})
	assert.Equal(t, map[string]bool{"react": true, "aws": true}, set)
}

func TestNames_PreservesOrder(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, Names([]Skill{{Name: "b"}, {Name: "a"}}))
}
