// Package http provides an HTTP-based implementation of isobib.Fetcher
// for retrieving standard pages from www.iso.org.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/isobib"
	"golang.org/x/net/html"
)

// DefaultFetchTimeout is the default timeout for each HTTP request.
const DefaultFetchTimeout = 10 * time.Second

// MaxAttempts bounds the requests issued against one URL while the server
// keeps serving a page that has not finished rendering.
const MaxAttempts = 10

// renderedMarker is present in every fully rendered standard page.
const renderedMarker = "<strong"

// Ensure Fetcher implements isobib.Fetcher at compile time.
var _ isobib.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves standard pages using plain HTTP GET requests.
// It keeps no state between calls and is safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the site root paths are resolved against.
// Defaults to isobib.Domain.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: isobib.Domain,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return f
}

// Fetch retrieves the page at path relative to the base URL.
//
// A 301 response is followed exactly once. A 404 response fails with
// ENOTFOUND. A body without the rendered-page marker is requested again,
// up to MaxAttempts times, and the last body is accepted either way.
// Transport failures fail with EFETCH carrying the requested URL.
func (f *Fetcher) Fetch(ctx context.Context, path string) (*isobib.Page, error) {
	rawURL := f.baseURL + path
	failed := func() error {
		return isobib.Errorf(isobib.EFETCH, "could not access %s", rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, failed()
	}

	status, header, body, err := f.get(ctx, u)
	if err != nil {
		return nil, failed()
	}

	if status == http.StatusMovedPermanently {
		loc, err := u.Parse(header.Get("Location"))
		if err != nil {
			return nil, failed()
		}
		u = loc
		if status, _, body, err = f.get(ctx, u); err != nil {
			return nil, failed()
		}
	}

	if status == http.StatusNotFound {
		return nil, isobib.Errorf(isobib.ENOTFOUND, "%s not found.", u)
	}

	for attempt := 1; attempt < MaxAttempts && !bytes.Contains(body, []byte(renderedMarker)); attempt++ {
		if _, _, body, err = f.get(ctx, u); err != nil {
			return nil, failed()
		}
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, failed()
	}

	return &isobib.Page{URL: u.String(), HTML: doc}, nil
}

// get issues one GET request and reads the whole body.
func (f *Fetcher) get(ctx context.Context, u *url.URL) (int, http.Header, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	return resp.StatusCode, resp.Header, body, nil
}
