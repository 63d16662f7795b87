package server

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/extraction"
	"github.com/jonathan/career-compass/internal/inference"
	"github.com/jonathan/career-compass/internal/ingestion"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/types"
)

// topSkillCount is how many skills the persisted profile highlights.
const topSkillCount = 5

// ResumeDB is the database surface resume operations need.
type ResumeDB interface {
	UpsertResume(ctx context.Context, resume *types.Resume) (uuid.UUID, error)
	GetResumeByUser(ctx context.Context, userID uuid.UUID) (*types.Resume, error)
	GetResumeByID(ctx context.Context, resumeID uuid.UUID) (*types.Resume, error)
	UpdateResumeProfile(ctx context.Context, userID uuid.UUID, profile *types.ResumeProfile) error
}

// ResumeService runs the upload pipeline: clean text, extract entities,
// infer the profile, persist the snapshot and the user's profile view.
type ResumeService struct {
	db         ResumeDB
	extractor  *extraction.Extractor
	inferencer *inference.Inferencer
	advisor    *llm.Advisor
}

// NewResumeService creates a ResumeService. advisor may be nil; insights are
// then skipped entirely.
func NewResumeService(db ResumeDB, advisor *llm.Advisor) *ResumeService {
	return &ResumeService{
		db:         db,
		extractor:  extraction.New(extraction.DefaultVocabulary),
		inferencer: inference.New(inference.DefaultTaxonomy),
		advisor:    advisor,
	}
}

// Upload processes raw resume text for a user and stores the resulting
// snapshot, overwriting any previous one. The stored resume is returned.
func (s *ResumeService) Upload(ctx context.Context, userID uuid.UUID, text string) (*types.Resume, error) {
	cleaned := ingestion.CleanText(text)
	if ingestion.IsBlank(cleaned) {
		return nil, &ErrValidation{Field: "text", Message: "resume text is empty"}
	}

	entities := s.extractor.Extract(cleaned)
	profile := s.inferencer.Infer(entities.Skills, cleaned)

	parsed := types.ParsedResume{
		Skills:           entities.Skills,
		TopSkills:        inference.TopSkills(entities.Skills, topSkillCount),
		RecommendedRoles: profile.RecommendedRoles,
		TechnicalDomains: profile.Domains,
		Seniority:        profile.Seniority,
	}

	resume := &types.Resume{
		UserID:        userID,
		ExtractedText: cleaned,
		Entities:      entities,
		Parsed:        parsed,
	}

	// Insights are additive: a failure never blocks the upload.
	if s.advisor.Available() {
		insights, err := s.advisor.Insights(ctx, &parsed)
		if err != nil {
			log.Printf("[resumes] insights generation failed: %v", err)
		} else {
			resume.Insights = insights
		}
	}

	id, err := s.db.UpsertResume(ctx, resume)
	if err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}
	resume.ID = id

	if err := s.db.UpdateResumeProfile(ctx, userID, profileView(parsed)); err != nil {
		return nil, fmt.Errorf("failed to update resume profile: %w", err)
	}

	return resume, nil
}

// Get retrieves a stored resume snapshot by ID.
func (s *ResumeService) Get(ctx context.Context, resumeID uuid.UUID) (*types.Resume, error) {
	resume, err := s.db.GetResumeByID(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if resume == nil {
		return nil, &ErrResumeNotFound{ResumeID: resumeID}
	}
	return resume, nil
}

// profileView reduces a parsed resume to the name-only view stored on the
// user record.
func profileView(parsed types.ParsedResume) *types.ResumeProfile {
	return &types.ResumeProfile{
		Skills:           types.Names(parsed.Skills),
		TopSkills:        types.Names(parsed.TopSkills),
		RecommendedRoles: parsed.RecommendedRoles,
		TechnicalDomains: parsed.TechnicalDomains,
		Seniority:        parsed.Seniority,
	}
}
