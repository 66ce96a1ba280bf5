package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/isobib"
)

const itemReference = "strong#itemReference"

// DocumentIdentifiers returns the item reference shown on the page, or
// nil when the page does not show one.
func DocumentIdentifiers(doc *goquery.Document) []isobib.DocumentIdentifier {
	ref, ok := text(doc, itemReference)
	if !ok {
		return nil
	}
	return []isobib.DocumentIdentifier{{ID: ref, Type: isobib.DocIDTypeISO}}
}

// StructuredIdentifier decomposes the item reference shown on the page.
// Pages without one yield an identifier whose id and project number are "?".
func StructuredIdentifier(doc *goquery.Document) *isobib.StructuredIdentifier {
	ref, ok := text(doc, itemReference)
	if !ok {
		return isobib.UnknownStructuredIdentifier()
	}
	if si, ok := isobib.ParseStructuredIdentifier(ref); ok {
		return si
	}
	si := isobib.UnknownStructuredIdentifier()
	si.ID = ref
	si.Type = isobib.DocIDTypeISO
	return si
}

// Edition returns the edition number printed after the "Edition" label.
func Edition(doc *goquery.Document) string {
	label := strongContaining(doc, "Edition").First()
	if label.Length() == 0 {
		return ""
	}
	return digitsRe.FindString(label.Parent().Contents().Last().Text())
}

// Status returns the stage code of the active life-cycle step, e.g. 60.60.
func Status(doc *goquery.Document) *isobib.DocumentStatus {
	code, _ := text(doc, "li.dropdown.active span.stage-code > strong")
	if code == "" {
		return nil
	}
	parts := strings.Split(code, ".")
	status := &isobib.DocumentStatus{Stage: parts[0]}
	if len(parts) > 1 {
		status.Substage = parts[1]
	}
	return status
}

// EditorialGroup returns ISO with the technical committee responsible for
// the standard, or nil when the page names no committee.
func EditorialGroup(doc *goquery.Document) *isobib.EditorialGroup {
	ref, ok := text(doc, "div.entry-name.entry-block a")
	if !ok {
		return nil
	}
	title, _ := text(doc, "div.entry-title")

	var number int
	if parts := strings.Split(ref, "/"); len(parts) > 1 {
		number, _ = strconv.Atoi(digitsRe.FindString(parts[1]))
	}

	return &isobib.EditorialGroup{
		Name:         isobib.OrganizationISO.Name,
		Abbreviation: isobib.OrganizationISO.Abbreviation,
		URL:          isobib.OrganizationISO.URL,
		TechnicalCommittees: []isobib.TechnicalCommittee{{
			Name:   strings.TrimSpace(ref + " " + title),
			Type:   "TC",
			Number: number,
		}},
	}
}

// ICS returns the classification codes listed after the "ICS" label.
func ICS(doc *goquery.Document) []isobib.ICS {
	var codes []isobib.ICS
	strongContaining(doc, "ICS").Parent().NextAllFiltered("dd").
		ChildrenFiltered("div").ChildrenFiltered("a").
		Each(func(_ int, sel *goquery.Selection) {
			codes = append(codes, isobib.ParseICSCode(sel.Text()))
		})
	return codes
}

// ReleaseDate returns the publication date as printed on the page.
func ReleaseDate(doc *goquery.Document) string {
	date, _ := text(doc, "span[itemprop='releaseDate']")
	return date
}

// Dates returns the publication date of the standard, if printed.
func Dates(doc *goquery.Document) []isobib.Date {
	date := ReleaseDate(doc)
	if date == "" {
		return nil
	}
	return []isobib.Date{{Type: "published", On: date}}
}

// Relations returns the relations listed in the life-cycle steps. Steps
// describing the standard's own state are skipped.
func Relations(doc *goquery.Document) []isobib.Relation {
	var relations []isobib.Relation
	doc.Find("ul.steps li").Each(func(_ int, step *goquery.Selection) {
		typ, ok := isobib.RelationType(strings.TrimSpace(step.Find("strong").Text()))
		if !ok {
			return
		}
		step.Find("a").Each(func(_ int, a *goquery.Selection) {
			relations = append(relations, isobib.NewRelation(typ, strings.TrimSpace(a.Text())))
		})
	})
	return relations
}

// Links returns the source link of the page and, when present, its online
// browsing platform and RSS feed links. Feed hrefs are resolved against domain.
func Links(doc *goquery.Document, pageURL, domain string) []isobib.Link {
	links := []isobib.Link{{Type: isobib.LinkSource, Content: pageURL}}
	if href, ok := doc.Find("a[href*='/obp/ui/']").First().Attr("href"); ok {
		links = append(links, isobib.Link{Type: isobib.LinkOBP, Content: href})
	}
	if href, ok := doc.Find("a[href*='rss']").First().Attr("href"); ok {
		links = append(links, isobib.Link{Type: isobib.LinkRSS, Content: resolve(domain, href)})
	}
	return links
}

func resolve(domain, href string) string {
	base, err := url.Parse(domain)
	if err != nil {
		return domain + href
	}
	u, err := base.Parse(href)
	if err != nil {
		return domain + href
	}
	return u.String()
}
