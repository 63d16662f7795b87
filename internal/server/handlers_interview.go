package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-compass/internal/interview"
)

// handleInterviewPrep generates an interview preparation kit for a company
// and role.
func (s *Server) handleInterviewPrep(w http.ResponseWriter, r *http.Request) {
	var req interview.PrepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	kit := interview.Generate(req)
	s.jsonResponse(w, http.StatusOK, kit)
}
