package scrape

import (
	"context"
	"sync"

	"github.com/fwojciec/isobib"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency is used when Scraper.Concurrency is not set.
const defaultConcurrency = 1

// Result holds the outcome of resolving a single hit.
// Item is nil when the hit was skipped or failed.
type Result struct {
	Hit  isobib.Hit
	Item *isobib.Item
	Err  error
}

// Skipped reports whether the hit was not a document page.
func (r Result) Skipped() bool {
	return r.Item == nil && r.Err == nil
}

// ProgressEvent reports progress while resolving hits.
type ProgressEvent struct {
	Completed int
	Total     int
	Hit       isobib.Hit
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// ParseAll resolves hits with up to Concurrency hits in flight. Each item is
// still built sequentially by ParsePage. Results keep the order of hits; a
// failed hit does not stop the others. Progress events are delivered one
// at a time. Returns an error only when ctx is
// canceled.
func (s *Scraper) ParseAll(ctx context.Context, hits []isobib.Hit, progress ProgressFunc) ([]Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]Result, len(hits))
	var mu sync.Mutex
	var completed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, hit := range hits {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			item, err := s.ParsePage(gctx, hit)
			results[i] = Result{Hit: hit, Item: item, Err: err}

			mu.Lock()
			defer mu.Unlock()
			completed++
			if progress != nil {
				progress(ProgressEvent{
					Completed: completed,
					Total:     len(hits),
					Hit:       hit,
					Error:     err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
