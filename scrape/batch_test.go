package scrape_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/isobib"
	"github.com/fwojciec/isobib/mock"
	"github.com/fwojciec/isobib/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_ParseAll(t *testing.T) {
	t.Parallel()

	t.Run("keeps hit order and reports progress", func(t *testing.T) {
		t.Parallel()

		fetcher, _ := sitePages(t, map[string]string{
			"/standard/1.html": `<html><body><strong id="itemReference">ISO 1:2002</strong></body></html>`,
			"/standard/2.html": `<html><body><strong id="itemReference">ISO 2:1973</strong></body></html>`,
			"/standard/3.html": `<html><body><strong id="itemReference">ISO 3:1973</strong></body></html>`,
		})
		s := &scrape.Scraper{Fetcher: fetcher, Now: fixedNow, Concurrency: 2}
		hits := []isobib.Hit{
			{Path: "1", Title: "ISO 1:2002"},
			{Path: "committee", Title: "ISO/TC 1"},
			{Path: "2", Title: "ISO 2:1973"},
			{Path: "404", Title: "ISO 404"},
			{Path: "3", Title: "ISO 3:1973"},
		}

		var events []scrape.ProgressEvent
		results, err := s.ParseAll(context.Background(), hits, func(e scrape.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, results, len(hits))
		for i, r := range results {
			assert.Equal(t, hits[i], r.Hit)
		}

		assert.Equal(t, "ISO 1:2002", results[0].Item.PrimaryID())
		assert.True(t, results[1].Skipped())
		assert.Equal(t, "ISO 2:1973", results[2].Item.PrimaryID())
		assert.Nil(t, results[3].Item)
		assert.Equal(t, isobib.ENOTFOUND, isobib.ErrorCode(results[3].Err))
		assert.False(t, results[3].Skipped())
		assert.Equal(t, "ISO 3:1973", results[4].Item.PrimaryID())

		require.Len(t, events, len(hits))
		for i, e := range events {
			assert.Equal(t, i+1, e.Completed)
			assert.Equal(t, len(hits), e.Total)
		}
	})

	t.Run("bounds hits in flight", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, path string) (*isobib.Page, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				return newPage(t, "https://www.iso.org"+path, `<html><body></body></html>`), nil
			},
		}
		s := &scrape.Scraper{Fetcher: fetcher, Concurrency: 2}

		hits := make([]isobib.Hit, 8)
		for i := range hits {
			hits[i] = isobib.Hit{Path: "100", Title: "ISO 100"}
		}

		results, err := s.ParseAll(context.Background(), hits, nil)

		require.NoError(t, err)
		assert.Len(t, results, len(hits))
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, _ string) (*isobib.Page, error) {
				return nil, ctx.Err()
			},
		}
		s := &scrape.Scraper{Fetcher: fetcher}

		_, err := s.ParseAll(ctx, []isobib.Hit{{Path: "1", Title: "ISO 1"}}, nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}
