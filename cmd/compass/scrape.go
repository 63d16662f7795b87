package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/sources"
)

var (
	scrapeTimeout    int
	scrapeDryRun     bool
	scrapeBoardsPath string
	scrapeConfigPath string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch job postings from external boards and store them",
	Long: `Fetch job postings from the configured job boards, validate them, and upsert
them into the database keyed by posting URL.

The built-in boards are Remotive, ArbeitNow, and FindWork (when FINDWORK_TOKEN
is set). Additional selector-driven boards come from a --boards JSON file; each
entry names the board, its listing URL, the CSS selectors for posting fields,
and whether the page needs headless-browser rendering.`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().IntVar(&scrapeTimeout, "timeout", 120, "Overall fetch timeout in seconds")
	scrapeCmd.Flags().BoolVar(&scrapeDryRun, "dry-run", false, "Fetch and validate without writing to the database")
	scrapeCmd.Flags().StringVar(&scrapeBoardsPath, "boards", "", "Path to JSON file of selector-driven board definitions (optional)")
	scrapeCmd.Flags().StringVar(&scrapeConfigPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if scrapeConfigPath != "" {
		loaded, err := config.LoadConfig(scrapeConfigPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	findWorkToken := os.Getenv("FINDWORK_TOKEN")
	if findWorkToken == "" {
		findWorkToken = cfg.FindWorkToken
	}

	srcs := []sources.Source{
		sources.NewRemotive(""),
		sources.NewArbeitNow(""),
	}
	if findWorkToken != "" {
		srcs = append(srcs, sources.NewFindWork("", findWorkToken))
	} else {
		log.Println("FINDWORK_TOKEN not set, skipping FindWork")
	}

	if scrapeBoardsPath != "" {
		boards, err := sources.LoadBoards(scrapeBoardsPath)
		if err != nil {
			return err
		}
		for _, board := range boards {
			if cfg.UseBrowser {
				board.Browser = true
			}
			src, err := board.Source()
			if err != nil {
				return err
			}
			srcs = append(srcs, src)
		}
		log.Printf("Loaded %d board definitions from %s", len(boards), scrapeBoardsPath)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(scrapeTimeout)*time.Second)
	defer cancel()

	postings, errs := sources.FetchAll(ctx, srcs)
	for _, err := range errs {
		log.Printf("Source error: %v", err)
	}
	log.Printf("Fetched %d postings from %d sources", len(postings), len(srcs))

	var database *db.DB
	if !scrapeDryRun {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
		var err error
		database, err = db.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	stored, rejected := 0, 0
	for i := range postings {
		doc, err := json.Marshal(&postings[i])
		if err != nil {
			return fmt.Errorf("failed to encode posting: %w", err)
		}
		if err := schemas.ValidateJobPosting(doc); err != nil {
			rejected++
			log.Printf("Rejected %q from %s: %v", postings[i].Title, postings[i].Source, err)
			continue
		}
		if scrapeDryRun {
			stored++
			continue
		}
		if _, err := database.UpsertJobPosting(ctx, &postings[i]); err != nil {
			return fmt.Errorf("failed to store %q: %w", postings[i].Title, err)
		}
		stored++
	}

	if scrapeDryRun {
		log.Printf("Dry run: %d postings valid, %d rejected", stored, rejected)
		return nil
	}
	log.Printf("Stored %d postings, rejected %d", stored, rejected)
	return nil
}
