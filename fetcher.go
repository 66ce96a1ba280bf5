package isobib

import "context"

// Fetcher retrieves standard pages by site path.
type Fetcher interface {
	// Fetch retrieves the page at path relative to the site root and
	// returns it parsed together with its resolved URL.
	// Returns ENOTFOUND when the page does not exist and EFETCH on any
	// transport failure.
	Fetch(ctx context.Context, path string) (*Page, error)
}
