package isobib

// DocType is the kind of an ISO deliverable.
type DocType string

// Document types recognized from hit titles.
const (
	DocTypeInternationalStandard          DocType = "international-standard"
	DocTypeTechnicalSpecification         DocType = "technical-specification"
	DocTypeTechnicalReport                DocType = "technical-report"
	DocTypePubliclyAvailableSpecification DocType = "publicly-available-specification"
	DocTypeGuide                          DocType = "guide"
	DocTypeInternationalWorkshopAgreement DocType = "international-workshop-agreement"
)

// Item is a bibliographic item describing one standard.
// Every field except the identifiers is optional; a missing source element
// leaves its field empty.
type Item struct {
	Fetched              string                `json:"fetched,omitempty" yaml:"fetched,omitempty"`
	DocID                []DocumentIdentifier  `json:"docid,omitempty" yaml:"docid,omitempty"`
	Edition              string                `json:"edition,omitempty" yaml:"edition,omitempty"`
	Language             []string              `json:"language,omitempty" yaml:"language,omitempty"`
	Script               []string              `json:"script,omitempty" yaml:"script,omitempty"`
	Titles               []Title               `json:"title,omitempty" yaml:"title,omitempty"`
	Type                 DocType               `json:"type,omitempty" yaml:"type,omitempty"`
	Status               *DocumentStatus       `json:"docstatus,omitempty" yaml:"docstatus,omitempty"`
	ICS                  []ICS                 `json:"ics,omitempty" yaml:"ics,omitempty"`
	Dates                []Date                `json:"date,omitempty" yaml:"date,omitempty"`
	Contributors         []Contributor         `json:"contributor,omitempty" yaml:"contributor,omitempty"`
	EditorialGroup       *EditorialGroup       `json:"editorialgroup,omitempty" yaml:"editorialgroup,omitempty"`
	Abstracts            []Abstract            `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Copyright            *Copyright            `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Links                []Link                `json:"link,omitempty" yaml:"link,omitempty"`
	Relations            []Relation            `json:"relation,omitempty" yaml:"relation,omitempty"`
	StructuredIdentifier *StructuredIdentifier `json:"structuredidentifier,omitempty" yaml:"structuredidentifier,omitempty"`

	// FormattedRef is only set on the stub items referenced by relations.
	FormattedRef *FormattedRef `json:"formattedref,omitempty" yaml:"formattedref,omitempty"`
}

// Validate returns an error if the item cannot be identified.
func (i *Item) Validate() error {
	if len(i.DocID) == 0 || i.DocID[0].ID == "" {
		return Errorf(EINVALID, "item document identifier required")
	}
	return nil
}

// PrimaryID returns the reference the item is best known by.
func (i *Item) PrimaryID() string {
	if len(i.DocID) > 0 {
		return i.DocID[0].ID
	}
	if i.StructuredIdentifier != nil {
		return i.StructuredIdentifier.ID
	}
	return ""
}

// Link returns the content of the first link of the given type.
func (i *Item) Link(typ string) (string, bool) {
	for _, l := range i.Links {
		if l.Type == typ {
			return l.Content, true
		}
	}
	return "", false
}

// DocumentIdentifier is a reference string tagged with its issuer.
type DocumentIdentifier struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// Title is the title of a standard in one language.
type Title struct {
	Intro    string `json:"intro,omitempty" yaml:"intro,omitempty"`
	Main     string `json:"main" yaml:"main"`
	Part     string `json:"part,omitempty" yaml:"part,omitempty"`
	Language string `json:"language" yaml:"language"`
	Script   string `json:"script,omitempty" yaml:"script,omitempty"`
}

// DocumentStatus is the harmonized stage code of a standard, e.g. 60.60.
type DocumentStatus struct {
	Stage    string `json:"stage" yaml:"stage"`
	Substage string `json:"substage,omitempty" yaml:"substage,omitempty"`
}

// ICS is an International Classification for Standards code.
type ICS struct {
	Field    string `json:"field" yaml:"field"`
	Group    string `json:"group,omitempty" yaml:"group,omitempty"`
	Subgroup string `json:"subgroup,omitempty" yaml:"subgroup,omitempty"`
}

// Date is a typed event date kept as published by the source.
type Date struct {
	Type string `json:"type" yaml:"type"`
	On   string `json:"on" yaml:"on"`
}

// Organization identifies a publishing body.
type Organization struct {
	Name         string `json:"name" yaml:"name"`
	URL          string `json:"url,omitempty" yaml:"url,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
}

// Contributor is an organization with the roles it played.
type Contributor struct {
	Entity Organization `json:"entity" yaml:"entity"`
	Roles  []string     `json:"role" yaml:"role"`
}

// EditorialGroup describes the body responsible for a standard.
type EditorialGroup struct {
	Name                string               `json:"name" yaml:"name"`
	Abbreviation        string               `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	URL                 string               `json:"url,omitempty" yaml:"url,omitempty"`
	TechnicalCommittees []TechnicalCommittee `json:"technical_committee,omitempty" yaml:"technical_committee,omitempty"`
}

// TechnicalCommittee is a committee within an editorial group.
// Number is zero when the committee reference carries no digits.
type TechnicalCommittee struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Number int    `json:"number,omitempty" yaml:"number,omitempty"`
}

// Abstract is the abstract of a standard in one language.
type Abstract struct {
	Content  string `json:"content" yaml:"content"`
	Language string `json:"language" yaml:"language"`
	Script   string `json:"script,omitempty" yaml:"script,omitempty"`
	Format   string `json:"format" yaml:"format"`
}

// FormatPlainText is the format of abstracts and formatted references.
const FormatPlainText = "text/plain"

// Copyright records the copyright owner and the first year of protection.
type Copyright struct {
	Owner Organization `json:"owner" yaml:"owner"`
	From  string       `json:"from,omitempty" yaml:"from,omitempty"`
}

// Link types.
const (
	LinkSource = "src"
	LinkOBP    = "obp"
	LinkRSS    = "rss"
)

// Link is a typed URL associated with an item.
type Link struct {
	Type    string `json:"type" yaml:"type"`
	Content string `json:"content" yaml:"content"`
}

// Relation links an item to another, lightly described, item.
type Relation struct {
	Type string `json:"type" yaml:"type"`
	Item *Item  `json:"bibitem" yaml:"bibitem"`
}

// FormattedRef is a free-text reference to an item.
type FormattedRef struct {
	Content string `json:"content" yaml:"content"`
	Format  string `json:"format" yaml:"format"`
}

// StructuredIdentifier is the decomposed form of a document reference.
type StructuredIdentifier struct {
	ProjectNumber string `json:"project_number" yaml:"project_number"`
	PartNumber    string `json:"part_number,omitempty" yaml:"part_number,omitempty"`
	Prefix        string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	ID            string `json:"id" yaml:"id"`
	Type          string `json:"type,omitempty" yaml:"type,omitempty"`
}
