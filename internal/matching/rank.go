package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jonathan/career-compass/internal/types"
)

// Fallback notes returned when ranking is structurally meaningless.
const (
	NoteNoResume = "Upload a resume to see job matches"
	NoteNoSkills = "No skills found in resume"
)

// DefaultTopN is the number of matches the presentation view returns.
const DefaultTopN = 20

// ResumeStore fetches the persisted resume snapshot for a candidate.
// A nil resume with a nil error means no snapshot exists.
type ResumeStore interface {
	GetResumeByUser(ctx context.Context, userID uuid.UUID) (*types.Resume, error)
}

// JobStore fetches the job corpus.
type JobStore interface {
	ListJobPostings(ctx context.Context) ([]types.JobPosting, error)
}

// Engine ranks the job corpus for one candidate per request. It holds no
// per-request state; concurrent calls for different candidates need no
// coordination.
type Engine struct {
	resumes ResumeStore
	jobs    JobStore
}

// NewEngine creates a ranking engine over the given collaborators.
func NewEngine(resumes ResumeStore, jobs JobStore) *Engine {
	return &Engine{resumes: resumes, jobs: jobs}
}

// MatchJobs returns every job in the corpus scored against the candidate's
// stored skill set, sorted by relevance score descending (stable: corpus
// order is preserved on ties). Candidates without a resume, or whose resume
// has no skills, get the full corpus at score 0 with an explanatory note.
// Store errors propagate unchanged.
func (e *Engine) MatchJobs(ctx context.Context, userID uuid.UUID) ([]types.MatchResult, error) {
	resume, err := e.resumes.GetResumeByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}

	if resume == nil {
		return e.unrankedCorpus(ctx, NoteNoResume)
	}

	candidateSkills := types.SkillSet(resume.Parsed.Skills)
	if len(candidateSkills) == 0 {
		return e.unrankedCorpus(ctx, NoteNoSkills)
	}

	jobs, err := e.jobs.ListJobPostings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job postings: %w", err)
	}

	results := make([]types.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, types.MatchResult{
			Job:            job,
			RelevanceScore: SkillScore(job.Skills, candidateSkills),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return results, nil
}

// TopMatches truncates the ranked list to its first n entries without
// re-sorting. n <= 0 means DefaultTopN; n past the end returns the full list.
func (e *Engine) TopMatches(ctx context.Context, userID uuid.UUID, n int) ([]types.MatchResult, error) {
	results, err := e.MatchJobs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopN
	}
	if n > len(results) {
		n = len(results)
	}
	return results[:n], nil
}

func (e *Engine) unrankedCorpus(ctx context.Context, note string) ([]types.MatchResult, error) {
	jobs, err := e.jobs.ListJobPostings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job postings: %w", err)
	}

	results := make([]types.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, types.MatchResult{
			Job:            job,
			RelevanceScore: 0,
			MatchNote:      note,
		})
	}
	return results, nil
}
