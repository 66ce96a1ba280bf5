package isobib

import "regexp"

// Hit is a search result pointing at one candidate standard.
type Hit struct {
	// Path is an opaque locator ending in the document's numeric identifier,
	// e.g. "/contents/data/standard/05/37/53798" or "53798".
	Path string `json:"path" yaml:"path"`

	// Title is the display reference of the hit, e.g. "ISO/TS 19139:2007".
	Title string `json:"title" yaml:"title"`
}

var trailingNumberRe = regexp.MustCompile(`\d+$`)

// DocumentNumber returns the numeric identifier that ends the hit's path.
// The second return value is false when the path is not a document page.
func (h Hit) DocumentNumber() (string, bool) {
	n := trailingNumberRe.FindString(h.Path)
	return n, n != ""
}

// StandardPath returns the site path of the hit's English standard page.
// The second return value is false when the path is not a document page.
func (h Hit) StandardPath() (string, bool) {
	n, ok := h.DocumentNumber()
	if !ok {
		return "", false
	}
	return "/standard/" + n + ".html", true
}
