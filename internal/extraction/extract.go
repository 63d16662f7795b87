// Package extraction implements rule-based entity extraction over raw resume
// text: name, email, phone, vocabulary skills with occurrence scores, and
// company mentions. Extraction is deterministic and never fails; fields with
// no match come back empty.
package extraction

import (
	"regexp"

	"github.com/jonathan/career-compass/internal/types"
)

var (
	// Two or more adjacent capitalized tokens; the first match in document
	// order is taken as the candidate name.
	namePattern = regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)+`)

	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Loose phone shape: optional country code, optional parenthesized area
	// code, digit groups separated by '.', '-' or space.
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[-. ]?)?(?:\(\d{3}\)[-. ]?|\d{3}[-. ])?\d{3}[-. ]\d{4}`)

	// Capitalized word tokens followed by a legal-entity suffix.
	companyPattern = regexp.MustCompile(`[A-Z][A-Za-z]*(?: [A-Z][A-Za-z]*)* (?:Inc|LLC|Ltd|Corp)\b`)
)

// Extractor scans text against a fixed skill vocabulary. Term patterns are
// compiled once at construction.
type Extractor struct {
	vocabulary []string
	patterns   []*regexp.Regexp
}

// New creates an Extractor for the given vocabulary. Terms are matched
// case-insensitively on whole words, so "Java" never matches inside
// "JavaScript".
func New(vocabulary []string) *Extractor {
	patterns := make([]*regexp.Regexp, len(vocabulary))
	for i, term := range vocabulary {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return &Extractor{vocabulary: vocabulary, patterns: patterns}
}

var defaultExtractor = New(DefaultVocabulary)

// Extract runs the default-vocabulary extractor.
func Extract(text string) types.Entities {
	return defaultExtractor.Extract(text)
}

// Extract pulls structured entities out of raw resume text. Each field is
// extracted independently; a field with no match is returned empty.
func (e *Extractor) Extract(text string) types.Entities {
	entities := types.Entities{
		Skills:    []types.Skill{},
		Companies: []string{},
	}
	if text == "" {
		return entities
	}

	entities.Name = namePattern.FindString(text)
	entities.Email = emailPattern.FindString(text)
	entities.Phone = phonePattern.FindString(text)

	for i, pattern := range e.patterns {
		count := len(pattern.FindAllStringIndex(text, -1))
		if count > 0 {
			entities.Skills = append(entities.Skills, types.Skill{
				Name:  e.vocabulary[i],
				Score: count,
			})
		}
	}

	if companies := companyPattern.FindAllString(text, -1); companies != nil {
		entities.Companies = companies
	}

	return entities
}
