package isobib

import "regexp"

// DocIDTypeISO tags identifiers issued by ISO.
const DocIDTypeISO = "ISO"

// referenceRe captures the first number of a reference as the project
// number and, only when a hyphen immediately precedes it, the number that
// follows as the part number.
var referenceRe = regexp.MustCompile(`^\D*(\d+)(?:-(\d+))?`)

// UnknownStructuredIdentifier is returned for pages that expose no item
// reference.
func UnknownStructuredIdentifier() *StructuredIdentifier {
	return &StructuredIdentifier{ProjectNumber: "?", ID: "?"}
}

// ParseStructuredIdentifier decomposes a reference such as "ISO 19115-1:2014".
// The second return value is false when the reference contains no number.
func ParseStructuredIdentifier(ref string) (*StructuredIdentifier, bool) {
	m := referenceRe.FindStringSubmatch(ref)
	if m == nil {
		return nil, false
	}
	return &StructuredIdentifier{
		ProjectNumber: m[1],
		PartNumber:    m[2],
		ID:            ref,
		Type:          DocIDTypeISO,
	}, true
}
