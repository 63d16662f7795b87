package llm

import "strings"

// CleanJSONBlock strips a markdown code fence from a model response. Models
// wrap JSON in ```json fences even when told not to, so every response goes
// through here before unmarshaling.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	body = strings.TrimPrefix(body, "json")
	// Other language tags ("JSON", "javascript") sit alone on the opening line.
	if nl := strings.Index(body, "\n"); nl >= 0 {
		tag := strings.TrimSpace(body[:nl])
		if tag == "" || (len(tag) < 20 && !strings.ContainsAny(tag, " {")) {
			body = body[nl+1:]
		}
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
