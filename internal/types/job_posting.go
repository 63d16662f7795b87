package types

import (
	"time"

	"github.com/google/uuid"
)

// JobPosting is a job listing from the corpus. Skills uses SkillNames so
// feeds that encode skills as objects still decode to plain names.
type JobPosting struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location,omitempty"`
	WorkMode       string     `json:"work_mode"`       // remote, onsite, hybrid
	EmploymentType string     `json:"employment_type"` // full-time, part-time, contract, internship
	Description    string     `json:"description,omitempty"`
	Requirements   []string   `json:"requirements"`
	Skills         SkillNames `json:"skills"`
	Source         string     `json:"source,omitempty"`
	URL            string     `json:"url,omitempty"`
	DatePosted     time.Time  `json:"date_posted"`
}

// MatchResult pairs an immutable job snapshot with a request-scoped
// relevance score. MatchNote is set only when the score is structurally
// meaningless (no profile, no skills).
type MatchResult struct {
	Job            JobPosting `json:"job"`
	RelevanceScore float64    `json:"relevance_score"`
	MatchNote      string     `json:"match_note,omitempty"`
}
