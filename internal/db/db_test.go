package db

// Note: Unit tests for the repository methods are not included here because
// they require database access. CreateUser/GetUserByEmail/CheckEmailExists/
// UpdatePassword/UpdateResumeProfile, UpsertResume/GetResumeByUser and the
// job posting queries are exercised against a live database in integration
// environments; the query-free serialization helpers are covered below.

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTypeExcludesPasswordHashFromJSON(t *testing.T) {
	user := User{Name: "Ada", Email: "ada@example.com", PasswordHash: "secret"}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "ada@example.com")
}

func TestNonNilStrings(t *testing.T) {
	assert.Equal(t, []string{}, nonNilStrings(nil))
	assert.Equal(t, []string{"go"}, nonNilStrings([]string{"go"}))
}
