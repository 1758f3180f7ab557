package slidetree

import (
	"strings"

	"github.com/beevik/etree"
)

// Shape is the interface that all shapes implement.
type Shape interface {
	GetShapeID() int
	GetName() string
	GetType() ShapeType
	GetLeft() (Length, bool)
	GetTop() (Length, bool)
	GetWidth() (Length, bool)
	GetHeight() (Length, bool)
	GetFill() *FillFormat
	LocalFill() *FillFormat
	IsPlaceholder() bool
	Element() *etree.Element
	// base returns the underlying BaseShape (unexported, internal use only).
	base() *BaseShape
}

// ShapeType represents the kind of a shape.
type ShapeType int

const (
	ShapeTypeUnknown ShapeType = iota
	ShapeTypeAutoShape
	ShapeTypeTextBox
	ShapeTypeFreeform
	ShapeTypePicture
	ShapeTypeGroup
	ShapeTypeConnector
	ShapeTypeTable
	ShapeTypeChart
	ShapeTypeGraphicFrame
	ShapeTypePlaceholder
)

func (t ShapeType) String() string {
	switch t {
	case ShapeTypeAutoShape:
		return "autoShape"
	case ShapeTypeTextBox:
		return "textBox"
	case ShapeTypeFreeform:
		return "freeform"
	case ShapeTypePicture:
		return "picture"
	case ShapeTypeGroup:
		return "group"
	case ShapeTypeConnector:
		return "connector"
	case ShapeTypeTable:
		return "table"
	case ShapeTypeChart:
		return "chart"
	case ShapeTypeGraphicFrame:
		return "graphicFrame"
	case ShapeTypePlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

const (
	uriTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
	uriChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
)

// Child sequences of the shape-properties elements, used to place a new
// a:xfrm or fill in schema order.
var (
	shapePropsSequence = concat(
		[]string{"a:xfrm", "a:custGeom", "a:prstGeom"}, fillChoiceTags, shapePropsFillSuccessors)
	groupPropsSequence = concat(
		[]string{"a:xfrm"}, fillChoiceTags, groupPropsFillSuccessors)
	xfrmSequence = []string{"a:off", "a:ext", "a:chOff", "a:chExt"}
)

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// propsTags maps a shape element to the tag of its shape-properties child.
// Graphic frames carry p:xfrm directly and have no entry.
var propsTags = map[qname]string{
	qn("p:sp"):    "p:spPr",
	qn("p:pic"):   "p:spPr",
	qn("p:cxnSp"): "p:spPr",
	qn("p:grpSp"): "p:grpSpPr",
}

// BaseShape is the generic wrapper around one shape element of a shape tree.
// It is also used as-is for shape elements of an unrecognized kind.
type BaseShape struct {
	element *etree.Element
}

// Element returns the backing shape element.
func (b *BaseShape) Element() *etree.Element { return b.element }
func (b *BaseShape) base() *BaseShape        { return b }

// GetType returns ShapeTypeUnknown; recognized kinds override it.
func (b *BaseShape) GetType() ShapeType { return ShapeTypeUnknown }

// nvPropsOf returns the non-visual properties child of a shape element
// (p:nvSpPr, p:nvPicPr, p:nvGrpSpPr, ...).
func nvPropsOf(el *etree.Element) *etree.Element {
	if el == nil {
		return nil
	}
	for _, child := range el.ChildElements() {
		if strings.HasPrefix(child.Tag, "nv") && strings.HasSuffix(child.Tag, "Pr") &&
			qnameOf(child).space == nsPresentationML {
			return child
		}
	}
	return nil
}

// phOf returns the p:ph element marking el as a placeholder, or nil.
func phOf(el *etree.Element) *etree.Element {
	return findPath(nvPropsOf(el), "p:nvPr", "p:ph")
}

func (b *BaseShape) cNvPr() *etree.Element {
	return firstChild(nvPropsOf(b.element), "p:cNvPr")
}

// GetShapeID returns the shape id, unique within its part.
func (b *BaseShape) GetShapeID() int { return attrInt(b.cNvPr(), "id", 0) }

// GetName returns the shape name.
func (b *BaseShape) GetName() string { return attrString(b.cNvPr(), "name", "") }

// SetName sets the shape name.
func (b *BaseShape) SetName(name string) error {
	c := b.cNvPr()
	if c == nil {
		return ErrUnsupportedShape
	}
	c.CreateAttr("name", name)
	return nil
}

// IsPlaceholder reports whether the shape element carries a p:ph marker.
func (b *BaseShape) IsPlaceholder() bool { return phOf(b.element) != nil }

// properties returns the shape-properties child, creating it when create is
// set. It is nil for kinds without one.
func (b *BaseShape) properties(create bool) *etree.Element {
	tag, ok := propsTags[qnameOf(b.element)]
	if !ok {
		return nil
	}
	if props := firstChild(b.element, tag); props != nil || !create {
		return props
	}
	anchor := firstChild(b.element, "p:blipFill")
	if anchor == nil {
		anchor = nvPropsOf(b.element)
	}
	props := newElement(b.element, tag)
	if anchor == nil {
		b.element.InsertChildAt(0, props)
	} else {
		b.element.InsertChildAt(anchor.Index()+1, props)
	}
	return props
}

func (b *BaseShape) xfrm(create bool) *etree.Element {
	if isTag(b.element, "p:graphicFrame") {
		if create {
			return getOrAdd(b.element, "p:xfrm", "a:graphic", "p:extLst")
		}
		return firstChild(b.element, "p:xfrm")
	}
	props := b.properties(create)
	if props == nil {
		return nil
	}
	sequence := shapePropsSequence
	if isTag(props, "p:grpSpPr") {
		sequence = groupPropsSequence
	}
	if create {
		return getOrAdd(props, "a:xfrm", successorsOf(sequence, "a:xfrm")...)
	}
	return firstChild(props, "a:xfrm")
}

func (b *BaseShape) xfrmValue(child, key string) (Length, bool) {
	v, ok := attrInt64(firstChild(b.xfrm(false), child), key)
	return Length(v), ok
}

// GetLeft returns the x offset of the shape. ok is false when the shape
// element does not specify one.
func (b *BaseShape) GetLeft() (Length, bool) { return b.xfrmValue("a:off", "x") }

// GetTop returns the y offset of the shape.
func (b *BaseShape) GetTop() (Length, bool) { return b.xfrmValue("a:off", "y") }

// GetWidth returns the shape width.
func (b *BaseShape) GetWidth() (Length, bool) { return b.xfrmValue("a:ext", "cx") }

// GetHeight returns the shape height.
func (b *BaseShape) GetHeight() (Length, bool) { return b.xfrmValue("a:ext", "cy") }

// SetPosition sets both offsets, adding a transform to the shape if needed.
func (b *BaseShape) SetPosition(left, top Length) error {
	xfrm := b.xfrm(true)
	if xfrm == nil {
		return ErrUnsupportedShape
	}
	off := getOrAdd(xfrm, "a:off", successorsOf(xfrmSequence, "a:off")...)
	setAttrInt64(off, "x", left.EMU())
	setAttrInt64(off, "y", top.EMU())
	return nil
}

// SetSize sets both extents, adding a transform to the shape if needed.
func (b *BaseShape) SetSize(width, height Length) error {
	xfrm := b.xfrm(true)
	if xfrm == nil {
		return ErrUnsupportedShape
	}
	ext := getOrAdd(xfrm, "a:ext", successorsOf(xfrmSequence, "a:ext")...)
	setAttrInt64(ext, "cx", width.EMU())
	setAttrInt64(ext, "cy", height.EMU())
	return nil
}

// GetFill returns the fill of the shape's properties element, adding an empty
// one when the shape has none. It is nil for graphic frames and unrecognized
// kinds, which have no fill.
func (b *BaseShape) GetFill() *FillFormat {
	props := b.properties(true)
	if props == nil {
		return nil
	}
	return NewFillFormat(props)
}

// LocalFill returns the fill of the existing properties element, or nil when
// the shape has none. Unlike GetFill it never adds markup.
func (b *BaseShape) LocalFill() *FillFormat {
	props := b.properties(false)
	if props == nil {
		return nil
	}
	return NewFillFormat(props)
}

// GetText returns the text of the shape's text body, one line per paragraph.
func (b *BaseShape) GetText() string {
	body := firstChild(b.element, "p:txBody")
	if body == nil {
		return ""
	}
	var lines []string
	for _, p := range body.ChildElements() {
		if !isTag(p, "a:p") {
			continue
		}
		var sb strings.Builder
		for _, run := range p.ChildElements() {
			switch {
			case isTag(run, "a:r", "a:fld"):
				if t := firstChild(run, "a:t"); t != nil {
					sb.WriteString(t.Text())
				}
			case isTag(run, "a:br"):
				sb.WriteString("\v")
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// AutoShape represents a p:sp shape: a preset or custom geometry, possibly a
// text box.
type AutoShape struct {
	BaseShape
}

func (s *AutoShape) GetType() ShapeType {
	switch {
	case attrBool(firstChild(nvPropsOf(s.element), "p:cNvSpPr"), "txBox"):
		return ShapeTypeTextBox
	case findPath(s.element, "p:spPr", "a:custGeom") != nil:
		return ShapeTypeFreeform
	}
	return ShapeTypeAutoShape
}

// GetAutoShapeType returns the preset geometry name (e.g. "rect", "ellipse"),
// or "" for custom geometry.
func (s *AutoShape) GetAutoShapeType() string {
	return attrString(findPath(s.element, "p:spPr", "a:prstGeom"), "prst", "")
}

// Picture represents a p:pic shape.
type Picture struct {
	BaseShape
}

func (p *Picture) GetType() ShapeType { return ShapeTypePicture }

// GetImageRelID returns the relationship id of the embedded image.
func (p *Picture) GetImageRelID() string {
	return attrString(findPath(p.element, "p:blipFill", "a:blip"), "r:embed", "")
}

// Connector represents a p:cxnSp shape.
type Connector struct {
	BaseShape
}

func (c *Connector) GetType() ShapeType { return ShapeTypeConnector }

// GraphicFrame represents a p:graphicFrame holding a table, chart or other
// graphic object.
type GraphicFrame struct {
	BaseShape
}

func (g *GraphicFrame) GetType() ShapeType {
	switch g.GetGraphicDataURI() {
	case uriTable:
		return ShapeTypeTable
	case uriChart:
		return ShapeTypeChart
	}
	return ShapeTypeGraphicFrame
}

// GetGraphicDataURI returns the URI identifying the kind of graphic object.
func (g *GraphicFrame) GetGraphicDataURI() string {
	return attrString(findPath(g.element, "a:graphic", "a:graphicData"), "uri", "")
}
