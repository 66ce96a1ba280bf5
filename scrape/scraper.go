// Package scrape builds bibliographic items from ISO search hits. It
// coordinates page fetching with the extraction rules of the goquery
// package.
package scrape

import (
	"context"
	"time"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/isobib"
	"github.com/fwojciec/isobib/goquery"
)

// Scraper turns hits into bibliographic items.
type Scraper struct {
	Fetcher isobib.Fetcher

	// Domain prefixes relative feed links. Defaults to isobib.Domain.
	Domain string

	// Now returns the time recorded as the fetch date. Defaults to time.Now.
	Now func() time.Time

	// Concurrency bounds the hits resolved at once by ParseAll. Defaults to 1,
	// resolving hits one after the other.
	Concurrency int
}

// ParsePage fetches the standard page of hit, along with its translations,
// and extracts a bibliographic item from them.
//
// Hits whose path does not end in a document number are not document pages:
// ParsePage returns a nil item and no error without fetching anything.
// Fetch failures of the primary page or of any translation abort the item.
func (s *Scraper) ParsePage(ctx context.Context, hit isobib.Hit) (*isobib.Item, error) {
	path, ok := hit.StandardPath()
	if !ok {
		return nil, nil
	}

	page, err := s.Fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	doc := goquery.NewDocument(page)

	langs := goquery.Languages(doc)
	titles, abstracts, err := s.titlesAndAbstracts(ctx, doc, langs)
	if err != nil {
		return nil, err
	}

	item := &isobib.Item{
		Fetched:              s.now().Format(time.DateOnly),
		DocID:                goquery.DocumentIdentifiers(doc),
		Edition:              goquery.Edition(doc),
		Language:             languageCodes(langs),
		Script:               scriptCodes(langs),
		Titles:               titles,
		Status:               goquery.Status(doc),
		ICS:                  goquery.ICS(doc),
		Dates:                goquery.Dates(doc),
		Contributors:         isobib.ContributorsFromTitle(hit.Title),
		EditorialGroup:       goquery.EditorialGroup(doc),
		Abstracts:            abstracts,
		Copyright:            isobib.CopyrightFromTitle(hit.Title, goquery.ReleaseDate(doc)),
		Links:                goquery.Links(doc, page.URL, s.domain()),
		Relations:            goquery.Relations(doc),
		StructuredIdentifier: goquery.StructuredIdentifier(doc),
	}
	if typ, ok := isobib.ClassifyType(hit.Title); ok {
		item.Type = typ
	}

	return item, nil
}

// titlesAndAbstracts reads the title and abstract of every language
// variant, fetching translated pages one after the other. Variants marked
// as unavailable contribute neither.
func (s *Scraper) titlesAndAbstracts(ctx context.Context, primary *gq.Document, langs []isobib.LanguageVariant) ([]isobib.Title, []isobib.Abstract, error) {
	var titles []isobib.Title
	var abstracts []isobib.Abstract

	for _, lang := range langs {
		doc := primary
		if lang.Path != "" {
			page, err := s.Fetcher.Fetch(ctx, lang.Path)
			if err != nil {
				return nil, nil, err
			}
			doc = goquery.NewDocument(page)
		}

		if goquery.Unavailable(doc) {
			continue
		}

		titles = append(titles, goquery.Title(doc, lang.Lang))
		if abstract, ok := goquery.Abstract(doc, lang.Lang); ok {
			abstracts = append(abstracts, abstract)
		}
	}

	return titles, abstracts, nil
}

func (s *Scraper) domain() string {
	if s.Domain != "" {
		return s.Domain
	}
	return isobib.Domain
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func languageCodes(langs []isobib.LanguageVariant) []string {
	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Lang)
	}
	return codes
}

// scriptCodes returns the distinct scripts of langs in first-seen order.
func scriptCodes(langs []isobib.LanguageVariant) []string {
	var scripts []string
	seen := make(map[string]bool)
	for _, l := range langs {
		script := isobib.ScriptFor(l.Lang)
		if script == "" || seen[script] {
			continue
		}
		seen[script] = true
		scripts = append(scripts, script)
	}
	return scripts
}
