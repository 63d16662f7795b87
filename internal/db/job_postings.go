package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-compass/internal/types"
)

const jobPostingColumns = `id, title, company, location, work_mode, employment_type,
	description, requirements, skills, source, COALESCE(url, ''), date_posted`

// ListJobPostings retrieves the full job corpus in insertion order.
func (db *DB) ListJobPostings(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job postings: %w", err)
	}
	return jobs, nil
}

// GetJobPosting retrieves a job posting by ID. Returns nil, nil if not found.
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`, id,
	)
	job, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

// GetJobPostingByURL retrieves a job posting by source URL. Returns nil, nil
// if not found.
func (db *DB) GetJobPostingByURL(ctx context.Context, url string) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE url = $1`, url,
	)
	job, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

// UpsertJobPosting inserts a job posting, updating the existing row when one
// with the same URL already exists. Postings without a URL always insert.
func (db *DB) UpsertJobPosting(ctx context.Context, job *types.JobPosting) (uuid.UUID, error) {
	requirementsJSON, err := json.Marshal(nonNilStrings(job.Requirements))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}
	skillsJSON, err := json.Marshal(nonNilStrings(job.Skills))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	var url *string
	if job.URL != "" {
		url = &job.URL
	}

	var id uuid.UUID
	if url == nil {
		err = db.pool.QueryRow(ctx,
			`INSERT INTO job_postings (title, company, location, work_mode, employment_type,
			   description, requirements, skills, source, url, date_posted)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL, $10)
			 RETURNING id`,
			job.Title, job.Company, job.Location, job.WorkMode, job.EmploymentType,
			job.Description, requirementsJSON, skillsJSON, job.Source, job.DatePosted,
		).Scan(&id)
	} else {
		err = db.pool.QueryRow(ctx,
			`INSERT INTO job_postings (title, company, location, work_mode, employment_type,
			   description, requirements, skills, source, url, date_posted)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (url) WHERE url IS NOT NULL AND url <> '' DO UPDATE SET
			   title = $1, company = $2, location = $3, work_mode = $4, employment_type = $5,
			   description = $6, requirements = $7, skills = $8, source = $9, date_posted = $11
			 RETURNING id`,
			job.Title, job.Company, job.Location, job.WorkMode, job.EmploymentType,
			job.Description, requirementsJSON, skillsJSON, job.Source, url, job.DatePosted,
		).Scan(&id)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert job posting: %w", err)
	}
	return id, nil
}

// CountJobPostings returns the size of the job corpus.
func (db *DB) CountJobPostings(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count job postings: %w", err)
	}
	return count, nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobPosting(row rowScanner) (*types.JobPosting, error) {
	var job types.JobPosting
	var requirementsJSON, skillsJSON []byte

	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.WorkMode,
		&job.EmploymentType, &job.Description, &requirementsJSON, &skillsJSON,
		&job.Source, &job.URL, &job.DatePosted)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan job posting: %w", err)
	}

	if err := json.Unmarshal(requirementsJSON, &job.Requirements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
	}
	if err := json.Unmarshal(skillsJSON, &job.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Skills == nil {
		job.Skills = types.SkillNames{}
	}

	return &job, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
