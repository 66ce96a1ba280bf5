// Package goquery implements the extraction rules that read bibliographic
// fields out of a parsed standard page. Every rule degrades to an empty
// value when the markup it relies on is missing.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/isobib"
)

// NewDocument wraps a fetched page for querying.
func NewDocument(page *isobib.Page) *goquery.Document {
	return goquery.NewDocumentFromNode(page.HTML)
}

// text returns the trimmed text of the first element matching selector.
func text(doc *goquery.Document, selector string) (string, bool) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

// strongContaining returns the <strong> elements whose text contains s.
func strongContaining(doc *goquery.Document, s string) *goquery.Selection {
	return doc.Find("strong").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return strings.Contains(sel.Text(), s)
	})
}

var digitsRe = regexp.MustCompile(`\d+`)
