package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemotive_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"jobs": [
				{
					"title": "Backend Developer",
					"company_name": "Tech Solutions",
					"candidate_required_location": "Worldwide",
					"job_type": "full_time",
					"description": "Build services",
					"tags": ["node.js", "docker"],
					"url": "https://remotive.com/job/1",
					"publication_date": "2024-05-10T08:00:00Z"
				}
			]
		}`))
	}))
	defer server.Close()

	source := NewRemotive(server.URL)
	postings, err := source.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Equal(t, "Backend Developer", postings[0].Title)
	assert.Equal(t, "Tech Solutions", postings[0].Company)
	assert.Equal(t, "remote", postings[0].WorkMode)
	assert.Equal(t, []string{"node.js", "docker"}, []string(postings[0].Skills))
	assert.Equal(t, "Remotive", postings[0].Source)
}

func TestRemotive_FetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewRemotive(server.URL).Fetch(context.Background())

	require.Error(t, err)
	var srcErr *Error
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "Remotive", srcErr.Source)
}

func TestFetchAll_CollectsAcrossSources(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jobs": [{"title": "A", "company_name": "X", "url": "u"}]}`))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	postings, errs := FetchAll(context.Background(), []Source{
		NewRemotive(good.URL),
		NewRemotive(bad.URL),
	})

	assert.Len(t, postings, 1)
	assert.Len(t, errs, 1)
}
