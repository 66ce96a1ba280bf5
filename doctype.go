package isobib

import "regexp"

// typeAbbreviations maps the abbreviation that follows the publisher in a
// reference to the document type it denotes.
var typeAbbreviations = map[string]DocType{
	"TS":    DocTypeTechnicalSpecification,
	"TR":    DocTypeTechnicalReport,
	"PAS":   DocTypePubliclyAvailableSpecification,
	"Guide": DocTypeGuide,
}

// typeRe matches "<family>[/co-publisher...] <abbrev|number>" and
// "<family>/<abbrev>". Group 1 is the family, group 2 the abbreviation,
// which is empty when the reference number follows directly.
var typeRe = regexp.MustCompile(`^(ISO|IWA|IEC)(?:(?:/IEC|/IEEE|/PRF|/NP)*\s|/)(?:(TS|TR|PAS|AWI|CD|FDIS|NP|DIS|WD|R|Guide)|\d)`)

// ClassifyType derives the document type from a hit title such as
// "ISO/TS 19139:2007". The second return value is false when the title
// does not look like a reference or names no classifiable family.
func ClassifyType(title string) (DocType, bool) {
	m := typeRe.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	if t, ok := typeAbbreviations[m[2]]; ok {
		return t, true
	}
	switch m[1] {
	case "ISO":
		return DocTypeInternationalStandard, true
	case "IWA":
		return DocTypeInternationalWorkshopAgreement, true
	}
	return "", false
}
