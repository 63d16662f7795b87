package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

// fakeJobDB is an in-memory JobDB.
type fakeJobDB struct {
	jobs []types.JobPosting
}

func (f *fakeJobDB) ListJobPostings(context.Context) ([]types.JobPosting, error) {
	return f.jobs, nil
}

func (f *fakeJobDB) GetJobPosting(_ context.Context, id uuid.UUID) (*types.JobPosting, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeJobDB) UpsertJobPosting(_ context.Context, job *types.JobPosting) (uuid.UUID, error) {
	for i := range f.jobs {
		if f.jobs[i].URL != "" && f.jobs[i].URL == job.URL {
			job.ID = f.jobs[i].ID
			f.jobs[i] = *job
			return job.ID, nil
		}
	}
	job.ID = uuid.New()
	f.jobs = append(f.jobs, *job)
	return job.ID, nil
}

// newTestServer wires a Server over in-memory fakes.
func newTestServer(t *testing.T) (*Server, *fakeJobDB, *fakeResumeDB, *fakeUserDB) {
	t.Helper()

	jobs := &fakeJobDB{jobs: []types.JobPosting{
		{ID: uuid.New(), Title: "Backend Developer", Company: "Tech Solutions",
			Skills: types.SkillNames{"node.js", "mongodb", "aws"}, WorkMode: "remote", EmploymentType: "full-time"},
		{ID: uuid.New(), Title: "Frontend Developer", Company: "WebWorks",
			Skills: types.SkillNames{"react", "javascript", "css"}, WorkMode: "onsite", EmploymentType: "full-time"},
	}}
	resumes := newFakeResumeDB()
	users := newFakeUserDB()

	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	userService := NewUserService(users, passwordConfig)

	s := &Server{
		jobs:          jobs,
		jwtService:    jwtService,
		userService:   userService,
		authHandler:   NewAuthHandler(userService, jwtService),
		resumeService: NewResumeService(resumes, nil),
		engine:        matching.NewEngine(resumes, jobs),
		validator:     validator.New(),
		topMatches:    matching.DefaultTopN,
	}
	return s, jobs, resumes, users
}

func registerTestUser(t *testing.T, handler http.Handler) (uuid.UUID, string) {
	t.Helper()
	body := `{"name":"Jane","email":"jane@example.com","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.User.ID, resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.routes()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterLoginFlow(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.routes()

	userID, token := registerTestUser(t, handler)
	assert.NotEqual(t, uuid.Nil, userID)
	assert.NotEmpty(t, token)

	req := httptest.NewRequest("POST", "/auth/login",
		bytes.NewBufferString(`{"email":"jane@example.com","password":"password123"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Bad password
	req = httptest.NewRequest("POST", "/auth/login",
		bytes.NewBufferString(`{"email":"jane@example.com","password":"wrong-password"}`))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadResumeRequiresAuth(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.routes()

	req := httptest.NewRequest("POST", "/resumes", bytes.NewBufferString(`{"text":"hello"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadResumeAndMatches(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.routes()
	userID, token := registerTestUser(t, handler)

	t.Run("matches before upload fall back", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/"+userID.String()+"/matches", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MatchesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.MatchCount)
		for _, m := range resp.Matches {
			assert.Zero(t, m.RelevanceScore)
			assert.Equal(t, matching.NoteNoResume, m.MatchNote)
		}
	})

	body, _ := json.Marshal(types.UploadResumeRequest{Text: uploadText})
	req := httptest.NewRequest("POST", "/resumes", bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resume types.Resume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resume))
	assert.Equal(t, userID, resume.UserID)
	assert.Equal(t, "John Smith", resume.Entities.Name)

	t.Run("matches after upload are ranked", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/"+userID.String()+"/matches", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MatchesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.MatchCount)
		require.Len(t, resp.Matches, 2)
		// Resume has node.js, mongodb, aws, react: backend job scores 1.0
		assert.Equal(t, "Backend Developer", resp.Matches[0].Job.Title)
		assert.InDelta(t, 1.0, resp.Matches[0].RelevanceScore, 1e-9)
		assert.Empty(t, resp.Matches[0].MatchNote)
	})

	t.Run("limit query truncates matches", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/"+userID.String()+"/matches?limit=1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MatchesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.MatchCount)
		require.Len(t, resp.Matches, 1)
		assert.Equal(t, "Backend Developer", resp.Matches[0].Job.Title)
	})

	t.Run("bad limit query rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/"+userID.String()+"/matches?limit=many", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stored resume is retrievable", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/resumes/"+resume.ID.String(), nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetJobPostings(t *testing.T) {
	s, jobs, _, _ := newTestServer(t)
	handler := s.routes()

	req := httptest.NewRequest("GET", "/job-postings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []types.JobPosting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	t.Run("get by id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/job-postings/"+jobs.jobs[0].ID.String(), nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/job-postings/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestImportJobPostings(t *testing.T) {
	s, jobs, _, _ := newTestServer(t)
	handler := s.routes()
	_, token := registerTestUser(t, handler)

	payload := `[
		{"title": "Cloud Engineer", "company": "CloudCorp", "work_mode": "remote",
		 "skills": ["python", "aws", "docker"], "url": "https://example.com/jobs/1"},
		{"company": "MissingTitle Inc"}
	]`
	req := httptest.NewRequest("POST", "/job-postings/import", bytes.NewBufferString(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Imported)
	assert.Equal(t, 1, resp.Rejected)
	assert.Len(t, jobs.jobs, 3)
}

func TestInterviewPrepEndpoint(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.routes()

	req := httptest.NewRequest("POST", "/interview/prep",
		bytes.NewBufferString(`{"company":"Google","role":"Backend Developer"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var kit map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kit))
	assert.Contains(t, kit, "technical_questions")
	assert.Contains(t, kit, "behavioral_questions")
	assert.Contains(t, kit, "study_plan")

	t.Run("missing role is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/interview/prep",
			bytes.NewBufferString(`{"company":"Google"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing company is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/interview/prep",
			bytes.NewBufferString(`{"role":"Backend Developer"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.routes()
	_, token := registerTestUser(t, handler)

	req := httptest.NewRequest("PUT", "/auth/password",
		bytes.NewBufferString(`{"current_password":"password123","new_password":"evenbetter1"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestGetUserEndpoint(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.routes()
	userID, _ := registerTestUser(t, handler)

	req := httptest.NewRequest("GET", "/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var user types.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "jane@example.com", user.Email)
}
