package slidetree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

const nsDecls = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

// helper: a:xfrm with offset and extent in EMU
func xfrm(x, y, cx, cy int64) string {
	return fmt.Sprintf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, cx, cy)
}

// helper: placeholder p:sp; phAttrs is the raw attribute list of p:ph and
// spPr the raw content of p:spPr
func phSp(id int, name, phAttrs, spPr string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/>`+
		`<p:nvPr><p:ph %s/></p:nvPr></p:nvSpPr><p:spPr>%s</p:spPr></p:sp>`, id, name, phAttrs, spPr)
}

// helper: plain auto shape
func autoSp(id int, name, spPr string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr>%s</p:spPr></p:sp>`, id, name, spPr)
}

// helper: picture shape
func pic(id int, name string) string {
	return fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="%s"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`+
		`<p:blipFill><a:blip r:embed="rId2"/></p:blipFill><p:spPr>%s</p:spPr></p:pic>`,
		id, name, xfrm(100, 100, 200, 200))
}

func spTree(shapes ...string) string {
	return `<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr/>` + strings.Join(shapes, "") + `</p:spTree></p:cSld>`
}

func masterXML(shapes ...string) string {
	return `<p:sldMaster ` + nsDecls + `>` + spTree(shapes...) + `<p:clrMap bg1="lt1"/></p:sldMaster>`
}

func layoutXML(shapes ...string) string {
	return `<p:sldLayout ` + nsDecls + `>` + spTree(shapes...) + `<p:clrMapOvr/></p:sldLayout>`
}

func slideXML(shapes ...string) string {
	return `<p:sld ` + nsDecls + `>` + spTree(shapes...) + `<p:clrMapOvr/></p:sld>`
}

// Geometry of the standard master used across tests.
var (
	masterTitleXfrm = xfrm(457200, 274638, 8229600, 1143000)
	masterBodyXfrm  = xfrm(457200, 1600200, 8229600, 4525963)
	masterDateXfrm  = xfrm(457200, 6356350, 2133600, 365125)
)

func standardMasterXML() string {
	return masterXML(
		phSp(2, "Title Placeholder 1", `type="title"`, masterTitleXfrm),
		phSp(3, "Text Placeholder 2", `type="body" idx="1"`, masterBodyXfrm),
		phSp(4, "Date Placeholder 3", `type="dt" sz="half" idx="2"`, masterDateXfrm),
		phSp(5, "Footer Placeholder 4", `type="ftr" sz="quarter" idx="3"`, ""),
		phSp(6, "Slide Number Placeholder 5", `type="sldNum" sz="quarter" idx="4"`, ""),
	)
}

// layout with two placeholders (idx 0 title, idx 10 body) and one picture
func lytShapesXML() string {
	return layoutXML(
		phSp(2, "Title 1", `type="title"`, ""),
		phSp(3, "Content Placeholder 2", `idx="10"`, xfrm(1000, 2000, 3000, 4000)),
		pic(4, "Picture 3"),
	)
}

func mustMaster(t *testing.T, xml string, opts ...Option) *SlideMaster {
	t.Helper()
	m, err := ReadSlideMaster(strings.NewReader(xml), opts...)
	require.NoError(t, err)
	return m
}

func mustLayout(t *testing.T, xml string, master *SlideMaster, opts ...Option) *SlideLayout {
	t.Helper()
	l, err := ReadSlideLayout(strings.NewReader(xml), master, opts...)
	require.NoError(t, err)
	return l
}

func mustSlide(t *testing.T, xml string, layout *SlideLayout, opts ...Option) *Slide {
	t.Helper()
	s, err := ReadSlide(strings.NewReader(xml), layout, opts...)
	require.NoError(t, err)
	return s
}

// helper: parse a standalone element, dropping whitespace-only text
func parseElement(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	root := doc.Root()
	require.NotNil(t, root)
	stripWhitespace(root)
	return root
}

func stripWhitespace(el *etree.Element) {
	for _, tok := range append([]etree.Token(nil), el.Child...) {
		switch tok := tok.(type) {
		case *etree.CharData:
			if strings.TrimSpace(tok.Data) == "" {
				el.RemoveChild(tok)
			}
		case *etree.Element:
			stripWhitespace(tok)
		}
	}
}

// helper: serialize an element on its own
func xmlOf(t *testing.T, el *etree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.AddChild(el.Copy())
	s, err := doc.WriteToString()
	require.NoError(t, err)
	return s
}

// helper: the names of the concrete wrapper types, in order
func typeNames[T any](items []T) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = fmt.Sprintf("%T", item)
	}
	return names
}
