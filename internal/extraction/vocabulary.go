package extraction

// DefaultVocabulary is the skill vocabulary scanned by the extractor.
// The vocabulary is configuration: extending it does not change the
// matching algorithm. Output order follows this scan order.
var DefaultVocabulary = []string{
	"JavaScript",
	"Python",
	"Java",
	"Node.js",
	"React",
	"MongoDB",
	"SQL",
	"AWS",
	"Docker",
	"TensorFlow",
	"Kubernetes",
	"HTML",
	"CSS",
	"Express",
	"Redux",
	"PostgreSQL",
}
