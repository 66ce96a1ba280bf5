package isobib

// Relation types.
const (
	RelationObsoletes = "obsoletes"
	RelationUpdates   = "updates"
)

// relationTypes maps the headings of the life-cycle steps to relation types.
var relationTypes = map[string]string{
	"Previously":            RelationObsoletes,
	"Will be replaced by":   RelationObsoletes,
	"Corrigenda/Amendments": RelationUpdates,
	"Revised by":            RelationUpdates,
	"Now confirmed":         RelationUpdates,
}

// currentStates are headings describing the standard itself.
var currentStates = map[string]bool{
	"Now":              true,
	"Now under review": true,
}

// RelationType maps a life-cycle heading to a relation type. Unknown
// headings pass through unchanged. The second return value is false for
// headings that describe the standard's own state and yield no relation.
func RelationType(heading string) (string, bool) {
	typ, ok := relationTypes[heading]
	if !ok {
		typ = heading
	}
	if currentStates[typ] {
		return "", false
	}
	return typ, true
}

// NewRelation returns a relation to an item known only by its reference.
func NewRelation(typ, ref string) Relation {
	return Relation{
		Type: typ,
		Item: &Item{
			FormattedRef: &FormattedRef{Content: ref, Format: FormatPlainText},
		},
	}
}
