package sources

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-compass/internal/types"
)

const findWorkURL = "https://findwork.dev/api/jobs/"

// FindWork fetches jobs from the FindWork API. Requests require an API
// token sent as an Authorization header.
type FindWork struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewFindWork creates a FindWork source. Empty baseURL means the real API.
func NewFindWork(baseURL, token string) *FindWork {
	if baseURL == "" {
		baseURL = findWorkURL
	}
	return &FindWork{client: newClient(), baseURL: baseURL, token: token}
}

// Name implements Source.
func (f *FindWork) Name() string { return "FindWork" }

// Fetch implements Source.
func (f *FindWork) Fetch(ctx context.Context) ([]types.JobPosting, error) {
	req, err := boardRequest(ctx, f.baseURL)
	if err != nil {
		return nil, &Error{Source: f.Name(), Message: "building request", Cause: err}
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Token "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{Source: f.Name(), Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Source: f.Name(), Message: "unexpected status " + resp.Status}
	}

	var payload struct {
		Results []struct {
			Role        string   `json:"role"`
			CompanyName string   `json:"company_name"`
			Location    string   `json:"location"`
			Remote      bool     `json:"remote"`
			Text        string   `json:"text"`
			Keywords    []string `json:"keywords"`
			URL         string   `json:"url"`
			DatePosted  string   `json:"date_posted"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{Source: f.Name(), Message: "decoding response", Cause: err}
	}

	postings := make([]types.JobPosting, 0, len(payload.Results))
	for _, job := range payload.Results {
		postings = append(postings, Normalize(RawJob{
			Role:        job.Role,
			CompanyName: job.CompanyName,
			Location:    job.Location,
			Remote:      job.Remote,
			Description: job.Text,
			Tags:        job.Keywords,
			URL:         job.URL,
			DatePosted:  job.DatePosted,
		}, f.Name()))
	}
	return postings, nil
}
