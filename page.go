package isobib

import "golang.org/x/net/html"

// Page is a fetched and parsed standard page.
type Page struct {
	// URL is the absolute URL the page was finally served from.
	URL string

	// HTML is the root of the parsed document.
	HTML *html.Node
}

// LanguageVariant is one language rendition of a standard page.
// The default language has no path: the primary page already represents it.
type LanguageVariant struct {
	Lang string
	Path string
}

// DefaultLanguage is the language of the primary standard page.
const DefaultLanguage = "en"
