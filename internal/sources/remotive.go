package sources

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-compass/internal/types"
)

const remotiveURL = "https://remotive.com/api/remote-jobs"

// Remotive fetches remote jobs from the Remotive public API.
type Remotive struct {
	client  *http.Client
	baseURL string
}

// NewRemotive creates a Remotive source. baseURL overrides the production
// endpoint; empty means the real API.
func NewRemotive(baseURL string) *Remotive {
	if baseURL == "" {
		baseURL = remotiveURL
	}
	return &Remotive{client: newClient(), baseURL: baseURL}
}

// Name implements Source.
func (r *Remotive) Name() string { return "Remotive" }

// Fetch implements Source.
func (r *Remotive) Fetch(ctx context.Context) ([]types.JobPosting, error) {
	req, err := boardRequest(ctx, r.baseURL)
	if err != nil {
		return nil, &Error{Source: r.Name(), Message: "building request", Cause: err}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &Error{Source: r.Name(), Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Source: r.Name(), Message: "unexpected status " + resp.Status}
	}

	var payload struct {
		Jobs []struct {
			Title                     string   `json:"title"`
			CompanyName               string   `json:"company_name"`
			CandidateRequiredLocation string   `json:"candidate_required_location"`
			JobType                   string   `json:"job_type"`
			Description               string   `json:"description"`
			Tags                      []string `json:"tags"`
			URL                       string   `json:"url"`
			PublicationDate           string   `json:"publication_date"`
		} `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{Source: r.Name(), Message: "decoding response", Cause: err}
	}

	postings := make([]types.JobPosting, 0, len(payload.Jobs))
	for _, job := range payload.Jobs {
		postings = append(postings, Normalize(RawJob{
			Title:       job.Title,
			CompanyName: job.CompanyName,
			Location:    job.CandidateRequiredLocation,
			Remote:      true, // Remotive lists remote jobs only
			Type:        job.JobType,
			Description: job.Description,
			Tags:        job.Tags,
			URL:         job.URL,
			DatePosted:  job.PublicationDate,
		}, r.Name()))
	}
	return postings, nil
}
