// Package sources fetches job postings from external job boards and
// normalizes their variant shapes onto the canonical JobPosting. Boards are
// data sources, not algorithms: adding one means writing a client plus a
// Normalize call.
package sources

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// DefaultTimeout is the default HTTP request timeout for board fetches.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for board requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CareerCompass/1.0)"

// Source is a job board client.
type Source interface {
	// Name identifies the board ("Remotive", "ArbeitNow", ...).
	Name() string
	// Fetch retrieves the board's current postings.
	Fetch(ctx context.Context) ([]types.JobPosting, error)
}

// Error represents a failure fetching from one board.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("source %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

func boardRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
