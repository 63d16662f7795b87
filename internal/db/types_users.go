package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/types"
)

// User is the persisted account row. The password hash never serializes
// to JSON.
type User struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone,omitempty"`
	PasswordHash  string               `json:"-" db:"password_hash"`
	PasswordSet   bool                 `json:"password_set" db:"password_set"`
	ResumeProfile *types.ResumeProfile `json:"resume_profile,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}
