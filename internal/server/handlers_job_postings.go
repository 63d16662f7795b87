package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

// JobDB is the database surface job posting operations need.
type JobDB interface {
	ListJobPostings(ctx context.Context) ([]types.JobPosting, error)
	GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	UpsertJobPosting(ctx context.Context, job *types.JobPosting) (uuid.UUID, error)
}

// handleListJobPostings returns the full job corpus.
func (s *Server) handleListJobPostings(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobs.ListJobPostings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if jobs == nil {
		jobs = []types.JobPosting{}
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleGetJobPosting returns a single job posting by ID.
func (s *Server) handleGetJobPosting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return
	}

	job, err := s.jobs.GetJobPosting(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job == nil {
		err := &ErrJobPostingNotFound{JobID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// ImportResponse reports the outcome of a job posting import.
type ImportResponse struct {
	Imported int      `json:"imported"`
	Rejected int      `json:"rejected"`
	Errors   []string `json:"errors,omitempty"`
}

// handleImportJobPostings validates a batch of postings against the JSON
// schema and upserts the valid ones by URL. Invalid entries are reported,
// not fatal.
func (s *Server) handleImportJobPostings(w http.ResponseWriter, r *http.Request) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: expected a JSON array of job postings")
		return
	}

	resp := ImportResponse{}
	for _, doc := range raw {
		if err := schemas.ValidateJobPosting(doc); err != nil {
			resp.Rejected++
			var vErr *schemas.ValidationError
			if errors.As(err, &vErr) {
				resp.Errors = append(resp.Errors, vErr.Error())
			} else {
				resp.Errors = append(resp.Errors, err.Error())
			}
			continue
		}

		var job types.JobPosting
		if err := json.Unmarshal(doc, &job); err != nil {
			resp.Rejected++
			resp.Errors = append(resp.Errors, err.Error())
			continue
		}

		if _, err := s.jobs.UpsertJobPosting(r.Context(), &job); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Imported++
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
