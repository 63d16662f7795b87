package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

const arbeitNowURL = "https://www.arbeitnow.com/api/job-board-api"

// ArbeitNow fetches jobs from the ArbeitNow job board API.
type ArbeitNow struct {
	client  *http.Client
	baseURL string
}

// NewArbeitNow creates an ArbeitNow source. Empty baseURL means the real API.
func NewArbeitNow(baseURL string) *ArbeitNow {
	if baseURL == "" {
		baseURL = arbeitNowURL
	}
	return &ArbeitNow{client: newClient(), baseURL: baseURL}
}

// Name implements Source.
func (a *ArbeitNow) Name() string { return "ArbeitNow" }

// Fetch implements Source.
func (a *ArbeitNow) Fetch(ctx context.Context) ([]types.JobPosting, error) {
	req, err := boardRequest(ctx, a.baseURL)
	if err != nil {
		return nil, &Error{Source: a.Name(), Message: "building request", Cause: err}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &Error{Source: a.Name(), Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Source: a.Name(), Message: "unexpected status " + resp.Status}
	}

	var payload struct {
		Data []struct {
			Title       string   `json:"title"`
			CompanyName string   `json:"company_name"`
			Location    string   `json:"location"`
			Remote      bool     `json:"remote"`
			JobTypes    []string `json:"job_types"`
			Tags        []string `json:"tags"`
			Description string   `json:"description"`
			URL         string   `json:"url"`
			CreatedAt   int64    `json:"created_at"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{Source: a.Name(), Message: "decoding response", Cause: err}
	}

	postings := make([]types.JobPosting, 0, len(payload.Data))
	for _, job := range payload.Data {
		raw := RawJob{
			Title:       job.Title,
			CompanyName: job.CompanyName,
			Location:    job.Location,
			Remote:      job.Remote,
			Type:        strings.Join(job.JobTypes, "/"),
			Tags:        job.Tags,
			Description: job.Description,
			URL:         job.URL,
		}
		posting := Normalize(raw, a.Name())
		if job.CreatedAt > 0 {
			posting.DatePosted = time.Unix(job.CreatedAt, 0)
		}
		postings = append(postings, posting)
	}
	return postings, nil
}
