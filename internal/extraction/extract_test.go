package extraction

import (
	"testing"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Smith
john.smith@example.com
+1 (555) 123-4567

Senior software engineer with React and Node.js experience.
Worked at Tech Solutions Inc and later at CloudWorks LLC.
Built React dashboards with Redux. Shipped React components weekly.
Deployed services with Docker on AWS.`

func TestExtract_FullResume(t *testing.T) {
	entities := Extract(sampleResume)

	assert.Equal(t, "John Smith", entities.Name)
	assert.Equal(t, "john.smith@example.com", entities.Email)
	assert.Equal(t, "+1 (555) 123-4567", entities.Phone)
	assert.Equal(t, []string{"Tech Solutions Inc", "CloudWorks LLC"}, entities.Companies)
}

func TestExtract_SkillScoresCountOccurrences(t *testing.T) {
	entities := Extract(sampleResume)

	scores := make(map[string]int)
	for _, s := range entities.Skills {
		scores[s.Name] = s.Score
	}

	assert.Equal(t, 3, scores["React"])
	assert.Equal(t, 1, scores["Node.js"])
	assert.Equal(t, 1, scores["Redux"])
	assert.Equal(t, 1, scores["Docker"])
	assert.Equal(t, 1, scores["AWS"])
}

func TestExtract_WholeWordBoundaries(t *testing.T) {
	// "Java" must not match inside "JavaScript".
	entities := Extract("Expert in JavaScript development.")

	names := types.Names(entities.Skills)
	assert.Contains(t, names, "JavaScript")
	assert.NotContains(t, names, "Java")
}

func TestExtract_CaseInsensitiveMatching(t *testing.T) {
	entities := Extract("worked with PYTHON, python and Python daily")

	assert.Equal(t, []types.Skill{{Name: "Python", Score: 3}}, entities.Skills)
}

func TestExtract_SkillsFollowVocabularyOrder(t *testing.T) {
	// Vocabulary scan order, not score order.
	entities := Extract("CSS CSS CSS and Python")

	assert.Equal(t, []types.Skill{
		{Name: "Python", Score: 1},
		{Name: "CSS", Score: 3},
	}, entities.Skills)
}

func TestExtract_EmptyText(t *testing.T) {
	entities := Extract("")

	assert.Equal(t, types.Entities{
		Name:      "",
		Email:     "",
		Phone:     "",
		Skills:    []types.Skill{},
		Companies: []string{},
	}, entities)
}

func TestExtract_NoMatches(t *testing.T) {
	entities := Extract("nothing interesting here at all")

	assert.Empty(t, entities.Name)
	assert.Empty(t, entities.Email)
	assert.Empty(t, entities.Phone)
	assert.Empty(t, entities.Skills)
	assert.Empty(t, entities.Companies)
}

func TestExtract_NameRequiresTwoCapitalizedTokens(t *testing.T) {
	entities := Extract("resume of\nAlice Wonder Chen\nengineer")

	assert.Equal(t, "Alice Wonder Chen", entities.Name)

	entities = Extract("Alice\nengineer")
	assert.Empty(t, entities.Name)
}

func TestExtract_PhoneVariants(t *testing.T) {
	cases := map[string]string{
		"call 555-123-4567 today": "555-123-4567",
		"tel: 555.123.4567":       "555.123.4567",
		"(555) 123-4567":          "(555) 123-4567",
		"reach me at 123-4567":    "123-4567",
	}
	for text, want := range cases {
		entities := Extract(text)
		assert.Equal(t, want, entities.Phone, "text %q", text)
	}
}

func TestExtract_CompanySuffixRequired(t *testing.T) {
	entities := Extract("Worked at CloudCorp and at Initech Ltd on tooling.")

	// "CloudCorp" has no separate legal-entity suffix token.
	assert.Equal(t, []string{"Initech Ltd"}, entities.Companies)
}

func TestExtract_CompanyDuplicatesPreserved(t *testing.T) {
	entities := Extract("Acme Inc said Acme Inc is hiring.")

	assert.Equal(t, []string{"Acme Inc", "Acme Inc"}, entities.Companies)
}

func TestExtract_Idempotent(t *testing.T) {
	first := Extract(sampleResume)
	second := Extract(sampleResume)

	assert.Equal(t, first, second)
}

func TestExtract_CustomVocabulary(t *testing.T) {
	e := New([]string{"Go", "Rust"})
	entities := e.Extract("Writing Go services and Rust tooling. Go everywhere.")

	assert.Equal(t, []types.Skill{
		{Name: "Go", Score: 2},
		{Name: "Rust", Score: 1},
	}, entities.Skills)
}
