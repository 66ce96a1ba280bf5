package isobib

import (
	"regexp"
	"strings"
)

var icsCodeRe = regexp.MustCompile(`[\d.]+`)

// ParseICSCode splits the first dotted code in text, e.g. "35.240.70",
// into field, group and subgroup. Missing components are left empty.
func ParseICSCode(text string) ICS {
	code := strings.Split(icsCodeRe.FindString(text), ".")
	var ics ICS
	if len(code) > 0 {
		ics.Field = code[0]
	}
	if len(code) > 1 {
		ics.Group = code[1]
	}
	if len(code) > 2 {
		ics.Subgroup = code[2]
	}
	return ics
}
