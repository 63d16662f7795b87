package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-compass/internal/types"
)

// UpsertResume stores a resume snapshot for a user, replacing any previous
// snapshot (last write wins, no history).
func (db *DB) UpsertResume(ctx context.Context, resume *types.Resume) (uuid.UUID, error) {
	entitiesJSON, err := json.Marshal(resume.Entities)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal entities: %w", err)
	}
	parsedJSON, err := json.Marshal(resume.Parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed data: %w", err)
	}

	var insightsJSON []byte
	if resume.Insights != nil {
		insightsJSON, err = json.Marshal(resume.Insights)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal insights: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, extracted_text, ner_entities, parsed_data, insights)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		   extracted_text = $2, ner_entities = $3, parsed_data = $4, insights = $5, updated_at = NOW()
		 RETURNING id`,
		resume.UserID, resume.ExtractedText, entitiesJSON, parsedJSON, insightsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert resume: %w", err)
	}
	return id, nil
}

// GetResumeByUser retrieves the resume snapshot for a user. Returns nil, nil
// if the user has no snapshot.
func (db *DB) GetResumeByUser(ctx context.Context, userID uuid.UUID) (*types.Resume, error) {
	return db.getResume(ctx, `WHERE user_id = $1`, userID)
}

// GetResumeByID retrieves a resume snapshot by its ID. Returns nil, nil if
// not found.
func (db *DB) GetResumeByID(ctx context.Context, resumeID uuid.UUID) (*types.Resume, error) {
	return db.getResume(ctx, `WHERE id = $1`, resumeID)
}

func (db *DB) getResume(ctx context.Context, where string, arg any) (*types.Resume, error) {
	var resume types.Resume
	var entitiesJSON, parsedJSON, insightsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, extracted_text, ner_entities, parsed_data, insights, created_at, updated_at
		 FROM resumes `+where,
		arg,
	).Scan(&resume.ID, &resume.UserID, &resume.ExtractedText,
		&entitiesJSON, &parsedJSON, &insightsJSON, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(entitiesJSON, &resume.Entities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entities: %w", err)
	}
	if err := json.Unmarshal(parsedJSON, &resume.Parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parsed data: %w", err)
	}
	if len(insightsJSON) > 0 {
		var insights types.ResumeInsights
		if err := json.Unmarshal(insightsJSON, &insights); err != nil {
			return nil, fmt.Errorf("failed to unmarshal insights: %w", err)
		}
		resume.Insights = &insights
	}

	return &resume, nil
}
