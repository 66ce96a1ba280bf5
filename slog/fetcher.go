// Package slog decorates isobib services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/isobib"
)

// Ensure LoggingFetcher implements isobib.Fetcher.
var _ isobib.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   isobib.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next isobib.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the resolved URL.
func (f *LoggingFetcher) Fetch(ctx context.Context, path string) (page *isobib.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{"path", path, "duration", time.Since(begin)}
		if page != nil {
			attrs = append(attrs, "url", page.URL)
		}
		if err != nil {
			f.logger.Warn("fetch", append(attrs, "err", err)...)
			return
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, path)
}
