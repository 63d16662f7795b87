package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample job postings into the database",
	Long:  `Create the database schema if needed and upsert the built-in sample job postings, so matching works out of the box.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// sampleJobPostings is the built-in corpus used for local development and demos.
func sampleJobPostings() []types.JobPosting {
	now := time.Now()
	return []types.JobPosting{
		{
			Title:          "Backend Developer",
			Company:        "Tech Solutions",
			Location:       "New York, USA",
			WorkMode:       "onsite",
			EmploymentType: "full-time",
			Description:    "Looking for a Node.js developer to build scalable backend services",
			Requirements:   []string{"Node.js", "Express", "MongoDB", "Docker"},
			Skills:         types.SkillNames{"node.js", "express", "mongodb", "docker"},
			Source:         "Remotive",
			URL:            "https://remotive.com/job1",
			DatePosted:     now,
		},
		{
			Title:          "Full Stack Developer",
			Company:        "Innovate Labs",
			Location:       "Remote",
			WorkMode:       "remote",
			EmploymentType: "contract",
			Description:    "Looking for a React + Django developer for a remote project",
			Requirements:   []string{"React", "Django", "Docker", "AWS"},
			Skills:         types.SkillNames{"react", "django", "docker", "aws"},
			Source:         "ArbeitNow",
			URL:            "https://arbeitnow.com/job2",
			DatePosted:     now,
		},
		{
			Title:          "Cloud Engineer",
			Company:        "CloudCorp",
			Location:       "San Francisco, USA",
			WorkMode:       "hybrid",
			EmploymentType: "full-time",
			Description:    "Cloud Engineer with Python and AWS experience",
			Requirements:   []string{"Python", "AWS", "Docker"},
			Skills:         types.SkillNames{"python", "aws", "docker"},
			Source:         "GitHub",
			URL:            "https://github.com/jobs/job3",
			DatePosted:     now,
		},
		{
			Title:          "Frontend Developer",
			Company:        "WebWorks",
			Location:       "Remote",
			WorkMode:       "remote",
			EmploymentType: "internship",
			Description:    "React intern for frontend development",
			Requirements:   []string{"React", "HTML", "CSS", "JavaScript"},
			Skills:         types.SkillNames{"react", "javascript", "html", "css"},
			Source:         "Remotive",
			URL:            "https://remotive.com/job4",
			DatePosted:     now,
		},
	}
}

func runSeed(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	for _, job := range sampleJobPostings() {
		id, err := database.UpsertJobPosting(ctx, &job)
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", job.Title, err)
		}
		log.Printf("Seeded %q at %s (%s)", job.Title, job.Company, id)
	}

	count, err := database.CountJobPostings(ctx)
	if err != nil {
		return err
	}
	log.Printf("Job corpus now holds %d postings", count)
	return nil
}
