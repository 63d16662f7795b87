package sources

import (
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// RawJob carries the union of field spellings seen across board feeds.
// Normalize coalesces them; downstream code only ever sees JobPosting.
type RawJob struct {
	Title        string `json:"title"`
	JobTitle     string `json:"job_title"`
	Position     string `json:"position"`
	Role         string `json:"role"`
	Company      string `json:"company"`
	CompanyName  string `json:"company_name"`
	EmployerName string `json:"employer_name"`
	Location     string `json:"location"`
	JobCity      string `json:"job_city"`
	JobCountry   string `json:"job_country"`
	Remote       bool   `json:"remote"`

	Type              string `json:"type"`
	JobEmploymentType string `json:"job_employment_type"`

	Description    string `json:"description"`
	JobDescription string `json:"job_description"`

	Requirements []string         `json:"requirements"`
	Skills       types.SkillNames `json:"skills"`
	Tags         []string         `json:"tags"`

	URL          string `json:"url"`
	JobApplyLink string `json:"job_apply_link"`
	DatePosted   string `json:"date_posted"`
}

// Normalize maps a raw feed entry onto the canonical JobPosting, tagged with
// its source board. Missing dates default to now; employment type defaults
// to full-time; the remote flag picks the work mode.
func Normalize(raw RawJob, source string) types.JobPosting {
	workMode := "onsite"
	if raw.Remote {
		workMode = "remote"
	}

	// Feeds spell employment types inconsistently ("full_time", "Full Time").
	employmentType := coalesce(raw.Type, raw.JobEmploymentType, "full-time")
	employmentType = strings.ToLower(employmentType)
	employmentType = strings.NewReplacer("_", "-", " ", "-").Replace(employmentType)

	skills := raw.Skills
	if len(skills) == 0 && len(raw.Tags) > 0 {
		skills = types.SkillNames(raw.Tags)
	}
	if skills == nil {
		skills = types.SkillNames{}
	}

	requirements := raw.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	datePosted := time.Now()
	if raw.DatePosted != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, raw.DatePosted); err == nil {
				datePosted = t
				break
			}
		}
	}

	return types.JobPosting{
		Title:          coalesce(raw.Title, raw.JobTitle, raw.Position, raw.Role),
		Company:        coalesce(raw.Company, raw.CompanyName, raw.EmployerName),
		Location:       coalesce(raw.Location, raw.JobCity, raw.JobCountry),
		WorkMode:       workMode,
		EmploymentType: employmentType,
		Description:    coalesce(raw.Description, raw.JobDescription),
		Requirements:   requirements,
		Skills:         skills,
		Source:         source,
		URL:            coalesce(raw.URL, raw.JobApplyLink),
		DatePosted:     datePosted,
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
