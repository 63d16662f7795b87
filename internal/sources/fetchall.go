package sources

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/types"
)

// FetchAll fetches every source concurrently and merges the results. A
// failing board does not abort the others: its error is collected and the
// remaining boards still contribute postings. The combined errors are
// returned alongside whatever was fetched.
func FetchAll(ctx context.Context, srcs []Source) ([]types.JobPosting, []error) {
	var (
		mu       sync.Mutex
		postings []types.JobPosting
		errs     []error
	)

	g, gCtx := errgroup.WithContext(ctx)
	for _, src := range srcs {
		g.Go(func() error {
			jobs, err := src.Fetch(gCtx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[sources] %s fetch failed: %v", src.Name(), err)
				errs = append(errs, err)
				return nil // collect, don't cancel siblings
			}
			log.Printf("[sources] %s returned %d postings", src.Name(), len(jobs))
			postings = append(postings, jobs...)
			return nil
		})
	}

	_ = g.Wait() // goroutines only ever return nil

	return postings, errs
}
