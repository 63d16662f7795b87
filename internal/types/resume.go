package types

import (
	"time"

	"github.com/google/uuid"
)

// Seniority labels assigned by the inferencer.
const (
	SeniorityJunior = "Junior"
	SeniorityMid    = "Mid-level"
	SenioritySenior = "Senior"
)

// Entities is the result of rule-based entity extraction over resume text.
// Every field is always present: absence of a match yields an empty string
// or empty list, never null.
type Entities struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Skills    []Skill  `json:"skills"`
	Companies []string `json:"companies"`
}

// Profile is the result of role/domain inference over extracted skills.
type Profile struct {
	Domains          []string `json:"domains"`
	RecommendedRoles []string `json:"recommended_roles"`
	Seniority        string   `json:"seniority"`
}

// ParsedResume is the enriched profile persisted against a candidate after
// extraction and inference.
type ParsedResume struct {
	Skills           []Skill  `json:"skills"`
	TopSkills        []Skill  `json:"top_skills"`
	RecommendedRoles []string `json:"recommended_roles"`
	TechnicalDomains []string `json:"technical_domains"`
	Seniority        string   `json:"seniority"`
}

// ResumeInsights holds optional LLM-generated suggestions. The rule-based
// ParsedResume is authoritative; insights are additive and may be absent.
type ResumeInsights struct {
	MissingSkills  []string `json:"missing_skills,omitempty"`
	SuggestedRoles []string `json:"suggested_roles,omitempty"`
	Summary        string   `json:"summary,omitempty"`
}

// Resume is the stored snapshot of one uploaded resume. Re-uploading
// overwrites the candidate's previous snapshot.
type Resume struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	ExtractedText string          `json:"extracted_text"`
	Entities      Entities        `json:"ner_entities"`
	Parsed        ParsedResume    `json:"parsed_data"`
	Insights      *ResumeInsights `json:"insights,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ResumeProfile is the name-only view of a parsed resume stored on the user
// record for quick profile reads.
type ResumeProfile struct {
	Skills           []string `json:"skills"`
	TopSkills        []string `json:"top_skills"`
	RecommendedRoles []string `json:"recommended_roles"`
	TechnicalDomains []string `json:"technical_domains"`
	Seniority        string   `json:"seniority"`
}

// UploadResumeRequest is the payload for uploading resume text.
type UploadResumeRequest struct {
	Text string `json:"text" validate:"required"`
}
