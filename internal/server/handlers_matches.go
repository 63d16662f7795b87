package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/types"
)

// MatchesResponse is the payload for GET /users/{id}/matches. MatchCount is
// the size of the full scored corpus; Matches holds only the top slice.
type MatchesResponse struct {
	MatchCount int                 `json:"match_count"`
	Matches    []types.MatchResult `json:"matches"`
}

// handleGetMatches ranks the job corpus for one candidate and returns the
// top matches.
func (s *Server) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	limit := s.topMatches
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	all, err := s.engine.MatchJobs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	top := all
	if len(top) > limit {
		top = top[:limit]
	}
	if top == nil {
		top = []types.MatchResult{}
	}

	s.jsonResponse(w, http.StatusOK, MatchesResponse{
		MatchCount: len(all),
		Matches:    top,
	})
}
