package mock

import (
	"context"

	"github.com/fwojciec/isobib"
)

var _ isobib.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of isobib.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, path string) (*isobib.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, path string) (*isobib.Page, error) {
	return f.FetchFn(ctx, path)
}
