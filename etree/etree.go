// Package etree writes items as bibliographic XML.
package etree

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/isobib"
)

// Ensure Encoder implements isobib.ItemEncoder.
var _ isobib.ItemEncoder = (*Encoder)(nil)

// Encoder renders items as <bibdata> documents.
type Encoder struct {
	indent int
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithIndent sets the number of spaces per nesting level. Zero disables
// indentation.
func WithIndent(n int) Option {
	return func(e *Encoder) {
		e.indent = n
	}
}

// NewEncoder creates a new Encoder indenting by two spaces unless
// configured otherwise.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{indent: 2}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode renders item as an XML document.
func (e *Encoder) Encode(item *isobib.Item) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("bibdata")
	writeItem(root, item)
	if e.indent > 0 {
		doc.Indent(e.indent)
	}
	return doc.WriteToBytes()
}

// Extension returns "xml".
func (e *Encoder) Extension() string {
	return "xml"
}

// ElementID derives an XML id from a reference,
// e.g. "ISO 19115-1:2014" becomes "ISO19115-1-2014".
func ElementID(ref string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ':
			return -1
		case ':', '/':
			return '-'
		}
		return r
	}, ref)
}

func writeItem(el *etree.Element, item *isobib.Item) {
	if id := item.PrimaryID(); id != "" {
		el.CreateAttr("id", ElementID(id))
	}
	el.CreateAttr("type", "standard")

	if item.FormattedRef != nil {
		ref := el.CreateElement("formattedref")
		ref.CreateAttr("format", item.FormattedRef.Format)
		ref.SetText(item.FormattedRef.Content)
	}
	if item.Fetched != "" {
		el.CreateElement("fetched").SetText(item.Fetched)
	}
	for _, t := range item.Titles {
		writeTitle(el, "title-intro", t.Intro, t)
		writeTitle(el, "title-main", t.Main, t)
		writeTitle(el, "title-part", t.Part, t)
	}
	for _, l := range item.Links {
		uri := el.CreateElement("uri")
		uri.CreateAttr("type", l.Type)
		uri.SetText(l.Content)
	}
	for _, id := range item.DocID {
		docid := el.CreateElement("docidentifier")
		docid.CreateAttr("type", id.Type)
		docid.SetText(id.ID)
	}
	if si := item.StructuredIdentifier; si != nil && si.ProjectNumber != "" && si.ProjectNumber != "?" {
		el.CreateElement("docnumber").SetText(si.ProjectNumber)
	}
	for _, d := range item.Dates {
		date := el.CreateElement("date")
		date.CreateAttr("type", d.Type)
		date.CreateElement("on").SetText(d.On)
	}
	for _, c := range item.Contributors {
		contrib := el.CreateElement("contributor")
		for _, r := range c.Roles {
			contrib.CreateElement("role").CreateAttr("type", r)
		}
		writeOrganization(contrib, c.Entity)
	}
	if item.Edition != "" {
		el.CreateElement("edition").SetText(item.Edition)
	}
	for _, lang := range item.Language {
		el.CreateElement("language").SetText(lang)
	}
	for _, script := range item.Script {
		el.CreateElement("script").SetText(script)
	}
	for _, a := range item.Abstracts {
		abstract := el.CreateElement("abstract")
		abstract.CreateAttr("format", a.Format)
		abstract.CreateAttr("language", a.Language)
		if a.Script != "" {
			abstract.CreateAttr("script", a.Script)
		}
		abstract.SetText(a.Content)
	}
	if s := item.Status; s != nil {
		status := el.CreateElement("status")
		status.CreateElement("stage").SetText(s.Stage)
		if s.Substage != "" {
			status.CreateElement("substage").SetText(s.Substage)
		}
	}
	if c := item.Copyright; c != nil {
		copyright := el.CreateElement("copyright")
		if c.From != "" {
			copyright.CreateElement("from").SetText(c.From)
		}
		writeOrganization(copyright.CreateElement("owner"), c.Owner)
	}
	for _, r := range item.Relations {
		relation := el.CreateElement("relation")
		relation.CreateAttr("type", r.Type)
		if r.Item != nil {
			writeItem(relation.CreateElement("bibitem"), r.Item)
		}
	}
	writeExt(el, item)
}

func writeTitle(el *etree.Element, typ, text string, t isobib.Title) {
	if text == "" {
		return
	}
	title := el.CreateElement("title")
	title.CreateAttr("type", typ)
	title.CreateAttr("format", isobib.FormatPlainText)
	title.CreateAttr("language", t.Language)
	if t.Script != "" {
		title.CreateAttr("script", t.Script)
	}
	title.SetText(text)
}

func writeOrganization(el *etree.Element, org isobib.Organization) {
	o := el.CreateElement("organization")
	o.CreateElement("name").SetText(org.Name)
	if org.Abbreviation != "" {
		o.CreateElement("abbreviation").SetText(org.Abbreviation)
	}
	if org.URL != "" {
		o.CreateElement("uri").SetText(org.URL)
	}
}

// writeExt writes the fields that extend the base bibliographic model.
func writeExt(el *etree.Element, item *isobib.Item) {
	if item.Type == "" && item.EditorialGroup == nil && len(item.ICS) == 0 && item.StructuredIdentifier == nil {
		return
	}
	ext := el.CreateElement("ext")
	if item.Type != "" {
		ext.CreateElement("doctype").SetText(string(item.Type))
	}
	if g := item.EditorialGroup; g != nil {
		group := ext.CreateElement("editorialgroup")
		for _, tc := range g.TechnicalCommittees {
			committee := group.CreateElement("technical-committee")
			committee.CreateAttr("type", tc.Type)
			if tc.Number > 0 {
				committee.CreateAttr("number", strconv.Itoa(tc.Number))
			}
			committee.SetText(tc.Name)
		}
	}
	for _, c := range item.ICS {
		code := []string{c.Field}
		if c.Group != "" {
			code = append(code, c.Group)
		}
		if c.Subgroup != "" {
			code = append(code, c.Subgroup)
		}
		ext.CreateElement("ics").CreateElement("code").SetText(strings.Join(code, "."))
	}
	if si := item.StructuredIdentifier; si != nil {
		sid := ext.CreateElement("structuredidentifier")
		if si.Type != "" {
			sid.CreateAttr("type", si.Type)
		}
		pn := sid.CreateElement("project-number")
		if si.PartNumber != "" {
			pn.CreateAttr("part", si.PartNumber)
		}
		pn.SetText(si.ProjectNumber)
	}
}
