package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/isobib"
)

// secondaryLangRe matches paths of translated standard pages.
var secondaryLangRe = regexp.MustCompile(`^/(fr)/`)

// Languages returns the language variants offered by the language switcher
// of the primary page. The default language always comes first; the others
// follow in document order.
func Languages(doc *goquery.Document) []isobib.LanguageVariant {
	langs := []isobib.LanguageVariant{{Lang: isobib.DefaultLanguage}}
	doc.Find("ul#lang-switcher ul li a").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if m := secondaryLangRe.FindStringSubmatch(href); m != nil {
			langs = append(langs, isobib.LanguageVariant{Lang: m[1], Path: href})
		}
	})
	return langs
}
