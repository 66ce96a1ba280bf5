package etree_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/isobib"
	isoetree "github.com/fwojciec/isobib/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItem() *isobib.Item {
	return &isobib.Item{
		Fetched:  "2026-10-16",
		DocID:    []isobib.DocumentIdentifier{{ID: "ISO 19115-1:2014", Type: "ISO"}},
		Edition:  "1",
		Language: []string{"en", "fr"},
		Script:   []string{"Latn"},
		Titles: []isobib.Title{
			{Intro: "Geographic information", Main: "Metadata", Part: "Part 1: Fundamentals", Language: "en", Script: "Latn"},
			{Main: "Métadonnées", Language: "fr", Script: "Latn"},
		},
		Type:   isobib.DocTypeInternationalStandard,
		Status: &isobib.DocumentStatus{Stage: "90", Substage: "93"},
		ICS:    []isobib.ICS{{Field: "35", Group: "240", Subgroup: "70"}},
		Dates:  []isobib.Date{{Type: "published", On: "2014-04-01"}},
		Contributors: []isobib.Contributor{
			{Entity: isobib.OrganizationISO, Roles: []string{isobib.RolePublisher}},
		},
		EditorialGroup: &isobib.EditorialGroup{
			Name:         isobib.OrganizationISO.Name,
			Abbreviation: "ISO",
			TechnicalCommittees: []isobib.TechnicalCommittee{
				{Name: "ISO/TC 211 Geographic information/Geomatics", Type: "TC", Number: 211},
			},
		},
		Abstracts: []isobib.Abstract{{Content: "Defines the schema.", Language: "en", Script: "Latn", Format: isobib.FormatPlainText}},
		Copyright: &isobib.Copyright{Owner: isobib.Organization{Name: "ISO"}, From: "2014"},
		Links:     []isobib.Link{{Type: isobib.LinkSource, Content: "https://www.iso.org/standard/53798.html"}},
		Relations: []isobib.Relation{isobib.NewRelation(isobib.RelationObsoletes, "ISO 19115:2003")},
		StructuredIdentifier: &isobib.StructuredIdentifier{
			ProjectNumber: "19115",
			PartNumber:    "1",
			ID:            "ISO 19115-1:2014",
			Type:          "ISO",
		},
	}
}

func encode(t *testing.T, item *isobib.Item) *etree.Element {
	t.Helper()

	data, err := isoetree.NewEncoder().Encode(item)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	root := doc.Root()
	require.NotNil(t, root)
	require.Equal(t, "bibdata", root.Tag)
	return root
}

func text(t *testing.T, el *etree.Element, path string) string {
	t.Helper()

	found := el.FindElement(path)
	require.NotNil(t, found, path)
	return found.Text()
}

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes bibliographic fields", func(t *testing.T) {
		t.Parallel()

		root := encode(t, sampleItem())

		assert.Equal(t, "ISO19115-1-2014", root.SelectAttrValue("id", ""))
		assert.Equal(t, "2026-10-16", text(t, root, "fetched"))
		assert.Equal(t, "Metadata", text(t, root, "title[@type='title-main'][@language='en']"))
		assert.Equal(t, "Part 1: Fundamentals", text(t, root, "title[@type='title-part']"))
		assert.Equal(t, "Métadonnées", text(t, root, "title[@language='fr']"))
		assert.Len(t, root.SelectElements("title"), 4)
		assert.Equal(t, "ISO 19115-1:2014", text(t, root, "docidentifier[@type='ISO']"))
		assert.Equal(t, "19115", text(t, root, "docnumber"))
		assert.Equal(t, "2014-04-01", text(t, root, "date[@type='published']/on"))
		assert.Equal(t, "ISO", text(t, root, "contributor/organization/abbreviation"))
		assert.Equal(t, isobib.RolePublisher, root.FindElement("contributor/role").SelectAttrValue("type", ""))
		assert.Equal(t, "1", text(t, root, "edition"))
		assert.Len(t, root.SelectElements("language"), 2)
		assert.Equal(t, "Defines the schema.", text(t, root, "abstract[@language='en']"))
		assert.Equal(t, "90", text(t, root, "status/stage"))
		assert.Equal(t, "93", text(t, root, "status/substage"))
		assert.Equal(t, "2014", text(t, root, "copyright/from"))
		assert.Equal(t, "ISO", text(t, root, "copyright/owner/organization/name"))
		assert.Equal(t, "https://www.iso.org/standard/53798.html", text(t, root, "uri[@type='src']"))
	})

	t.Run("writes relations as nested items", func(t *testing.T) {
		t.Parallel()

		root := encode(t, sampleItem())

		relation := root.FindElement("relation[@type='obsoletes']")
		require.NotNil(t, relation)
		assert.Equal(t, "ISO 19115:2003", text(t, relation, "bibitem/formattedref"))
		assert.Nil(t, relation.FindElement("bibitem/ext"))
	})

	t.Run("writes extension fields", func(t *testing.T) {
		t.Parallel()

		root := encode(t, sampleItem())

		assert.Equal(t, "international-standard", text(t, root, "ext/doctype"))
		committee := root.FindElement("ext/editorialgroup/technical-committee")
		require.NotNil(t, committee)
		assert.Equal(t, "211", committee.SelectAttrValue("number", ""))
		assert.Equal(t, "ISO/TC 211 Geographic information/Geomatics", committee.Text())
		assert.Equal(t, "35.240.70", text(t, root, "ext/ics/code"))
		pn := root.FindElement("ext/structuredidentifier/project-number")
		require.NotNil(t, pn)
		assert.Equal(t, "1", pn.SelectAttrValue("part", ""))
		assert.Equal(t, "19115", pn.Text())
	})

	t.Run("omits absent fields", func(t *testing.T) {
		t.Parallel()

		root := encode(t, &isobib.Item{
			DocID:                []isobib.DocumentIdentifier{{ID: "ISO 1", Type: "ISO"}},
			StructuredIdentifier: isobib.UnknownStructuredIdentifier(),
		})

		assert.Nil(t, root.FindElement("edition"))
		assert.Nil(t, root.FindElement("status"))
		assert.Nil(t, root.FindElement("docnumber"))
		assert.Nil(t, root.FindElement("ext/doctype"))
	})

	t.Run("honors indent option", func(t *testing.T) {
		t.Parallel()

		data, err := isoetree.NewEncoder(isoetree.WithIndent(0)).Encode(&isobib.Item{
			DocID: []isobib.DocumentIdentifier{{ID: "ISO 1", Type: "ISO"}},
		})
		require.NoError(t, err)
		assert.Contains(t, string(data), `<bibdata id="ISO1" type="standard"><docidentifier type="ISO">ISO 1</docidentifier></bibdata>`)
	})
}

func TestElementID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ISO-TS19139-2007", isoetree.ElementID("ISO/TS 19139:2007"))
	assert.Equal(t, "ISO19115-1-2014", isoetree.ElementID("ISO 19115-1:2014"))
}
