// Package server provides the HTTP REST API for the career compass service.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Typed errors cross the service/handler boundary so handlers can map them to
// status codes without string matching.

// ErrEmailAlreadyExists is returned when registering an email that is taken.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials covers every login failure mode. Login never reveals
// whether the email or the password was wrong.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound is returned for lookups of unknown user IDs.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch is returned when the current password check fails
// during a password change.
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrResumeNotFound is returned when no resume snapshot exists for an ID.
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrJobPostingNotFound is returned for lookups of unknown job posting IDs.
type ErrJobPostingNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobPostingNotFound) Error() string {
	return fmt.Sprintf("job posting not found: %s", e.JobID)
}

// ErrValidation reports a request payload that failed validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps a service error to its HTTP status code. Unknown errors
// are treated as internal.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrResumeNotFound, *ErrJobPostingNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
