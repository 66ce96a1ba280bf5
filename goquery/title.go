package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/isobib"
)

// Unavailable reports whether the page says the standard is not
// published in the page's language.
func Unavailable(doc *goquery.Document) bool {
	return doc.Find("h5.help-block").Length() > 0
}

// Title returns the localized title from the description heading.
func Title(doc *goquery.Document, lang string) isobib.Title {
	heading, _ := text(doc, "h3[itemprop='description'], h2[itemprop='description']")
	return isobib.SplitTitle(heading, lang)
}

// Abstract returns the localized abstract from the description block.
// The second return value is false when the block has no text.
func Abstract(doc *goquery.Document, lang string) (isobib.Abstract, bool) {
	var paragraphs []string
	doc.Find("div[itemprop='description'] p").Each(func(_ int, sel *goquery.Selection) {
		if p := strings.TrimSpace(sel.Text()); p != "" {
			paragraphs = append(paragraphs, p)
		}
	})
	if len(paragraphs) == 0 {
		return isobib.Abstract{}, false
	}
	return isobib.Abstract{
		Content:  strings.Join(paragraphs, "\n"),
		Language: lang,
		Script:   isobib.ScriptFor(lang),
		Format:   isobib.FormatPlainText,
	}, true
}
