// Package ingestion prepares raw resume text for extraction. The core does
// not know how the text was obtained (file parse, third-party API, client
// upload); it receives a plain string and cleans it.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes resume text while preserving line structure: CRLF to
// LF, runs of spaces and tabs collapsed, trailing whitespace stripped, and
// runs of blank lines squeezed to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(spaceRuns.ReplaceAllString(line, " "), " ")
	}

	result := strings.Join(lines, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// IsBlank reports whether text is empty or whitespace-only. Blank uploads
// are rejected at the API boundary; the extractor itself tolerates them.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
