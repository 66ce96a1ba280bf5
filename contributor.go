package isobib

import (
	"regexp"
	"strings"
	"unicode"
)

// RolePublisher is the role of every organization named in a reference.
const RolePublisher = "publisher"

var (
	// OrganizationISO is the default publisher.
	OrganizationISO = Organization{
		Name:         "International Organization for Standardization",
		URL:          "www.iso.org",
		Abbreviation: "ISO",
	}

	// OrganizationIEC is the co-publisher of joint ISO/IEC deliverables.
	OrganizationIEC = Organization{
		Name:         "International Electrotechnical Commission",
		URL:          "www.iec.ch",
		Abbreviation: "IEC",
	}
)

// publishers maps publisher abbreviations to organizations.
// Unknown abbreviations are published by ISO.
var publishers = map[string]Organization{
	"IEC": OrganizationIEC,
}

// leadingToken returns the text before the first whitespace of s.
func leadingToken(s string) string {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i]
	}
	return s
}

// ContributorsFromTitle returns the publishers named by the leading token
// of a reference, e.g. "ISO/IEC 27001" yields ISO and IEC.
func ContributorsFromTitle(title string) []Contributor {
	var contributors []Contributor
	for _, abbrev := range strings.Split(leadingToken(title), "/") {
		org, ok := publishers[abbrev]
		if !ok {
			org = OrganizationISO
		}
		org.Abbreviation = abbrev
		contributors = append(contributors, Contributor{
			Entity: org,
			Roles:  []string{RolePublisher},
		})
	}
	return contributors
}

var (
	titleYearRe = regexp.MustCompile(`:(\d{4})`)
	yearRe      = regexp.MustCompile(`\d{4}`)
)

// CopyrightFromTitle derives the copyright from a reference such as
// "ISO 19115-1:2014". The owner is the leading token; the year is the one
// following the colon, or else the first year found in releaseDate.
func CopyrightFromTitle(title, releaseDate string) *Copyright {
	from := ""
	if m := titleYearRe.FindStringSubmatch(title); m != nil {
		from = m[1]
	} else {
		from = yearRe.FindString(releaseDate)
	}
	return &Copyright{
		Owner: Organization{Name: leadingToken(title)},
		From:  from,
	}
}
