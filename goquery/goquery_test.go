package goquery_test

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// loadDocument parses a page from testdata.
func loadDocument(t *testing.T, name string) *goquery.Document {
	t.Helper()

	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

// parseDocument parses an inline HTML snippet.
func parseDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}
