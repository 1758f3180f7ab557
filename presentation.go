// Package slidetree provides an object facade over the markup of
// PresentationML slide, slide layout and slide master parts (.pptx).
//
// Each part wraps its parsed element tree in place. Shapes and placeholders
// are thin views built on demand over that tree; they hold no state of their
// own, so changes made through one view are seen by every other.
//
// Placeholder properties follow the override chain of the format: a slide
// placeholder that omits its geometry or fill takes it from the layout
// placeholder with the same idx, which in turn takes it from the master
// placeholder with the same idx or, failing that, of the corresponding type.
//
// Wrappers must not outlive the tree they were created from, and a part must
// not be modified while another goroutine reads it.
package slidetree

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/beevik/etree"
)

// Part is implemented by *Slide, *SlideLayout and *SlideMaster.
type Part interface {
	Element() *etree.Element
	GetName() string
	AllShapes() iter.Seq[Shape]
	GetShapeByID(id int) (Shape, bool)
	GetBackgroundFill() *FillFormat
	Validate() error
	io.WriterTo
}

// part holds what the three part kinds share: the root element and logger.
type part struct {
	root   *etree.Element
	logger *slog.Logger
}

func newPart(root *etree.Element, rootTag string, inherited *slog.Logger, opts []Option) (part, error) {
	if !isTag(root, rootTag) {
		got := "<nil>"
		if root != nil {
			got = root.FullTag()
		}
		return part{}, fmt.Errorf("%w: want %s, got %s", ErrUnexpectedRoot, qn(rootTag), got)
	}
	o := buildOptions(inherited, opts)
	return part{root: root, logger: o.logger}, nil
}

// Element returns the root element of the part.
func (p *part) Element() *etree.Element { return p.root }

// GetName returns the part's p:cSld/@name, often empty on slides.
func (p *part) GetName() string {
	return attrString(firstChild(p.root, "p:cSld"), "name", "")
}

func (p *part) spTree() *etree.Element {
	return findPath(p.root, "p:cSld", "p:spTree")
}

// GetBackgroundFill returns the fill of the part's own background, replacing
// a theme background reference (p:bgRef) with explicit background properties
// when needed. A new background starts with no fill.
func (p *part) GetBackgroundFill() *FillFormat {
	cSld := getOrAdd(p.root, "p:cSld", "p:clrMap", "p:clrMapOvr", "p:sldLayoutIdLst",
		"p:transition", "p:timing", "p:hf", "p:txStyles", "p:extLst")
	bg := firstChild(cSld, "p:bg")
	if bg == nil {
		bg = newElement(cSld, "p:bg")
		cSld.InsertChildAt(0, bg)
	}
	removeAll(bg, "p:bgRef")
	bgPr := firstChild(bg, "p:bgPr")
	if bgPr == nil {
		bgPr = newElement(bg, "p:bgPr")
		bg.InsertChildAt(0, bgPr)
		bgPr.AddChild(newElement(bgPr, "a:noFill"))
		bgPr.AddChild(newElement(bgPr, "a:effectLst"))
	}
	return NewFillFormat(bgPr)
}

// WriteTo serializes the part as a standalone XML document.
func (p *part) WriteTo(w io.Writer) (int64, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	doc.AddChild(p.root.Copy())
	return doc.WriteTo(w)
}

func shapeByID(shapes iter.Seq[Shape], id int) (Shape, bool) {
	for s := range shapes {
		if s.GetShapeID() == id {
			return s, true
		}
		if g, ok := s.(*GroupShape); ok {
			if found, ok := shapeByID(g.Shapes().All(), id); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// SlideMaster wraps a p:sldMaster part, the root of the inheritance chain.
type SlideMaster struct {
	part
}

// NewSlideMaster wraps root, which must be a p:sldMaster element.
func NewSlideMaster(root *etree.Element, opts ...Option) (*SlideMaster, error) {
	p, err := newPart(root, "p:sldMaster", nil, opts)
	if err != nil {
		return nil, err
	}
	return &SlideMaster{part: p}, nil
}

func (m *SlideMaster) wrapShape(el *etree.Element) Shape {
	return newPartShape(el, m.wrapShape, m.newPlaceholder)
}

func (m *SlideMaster) newPlaceholder(el *etree.Element) *MasterPlaceholder {
	return &MasterPlaceholder{placeholderShape: placeholderShape{BaseShape{element: el}}, master: m}
}

// Shapes returns the shapes of the master's shape tree.
func (m *SlideMaster) Shapes() *MasterShapes {
	return &MasterShapes{shapeList[Shape]{parent: m.spTree(), accept: isShapeElement, wrap: m.wrapShape}}
}

// Placeholders returns the placeholders of the master.
func (m *SlideMaster) Placeholders() *MasterPlaceholders {
	return &MasterPlaceholders{placeholderList[*MasterPlaceholder]{shapeList[*MasterPlaceholder]{
		parent: m.spTree(), accept: isPlaceholderElement, wrap: m.newPlaceholder,
	}}}
}

// AllShapes returns an iterator over the master's shapes.
func (m *SlideMaster) AllShapes() iter.Seq[Shape] { return m.Shapes().All() }

// GetShapeByID finds a shape by id, searching into groups.
func (m *SlideMaster) GetShapeByID(id int) (Shape, bool) { return shapeByID(m.AllShapes(), id) }

// SlideLayout wraps a p:sldLayout part.
type SlideLayout struct {
	part
	master *SlideMaster
}

// NewSlideLayout wraps root, which must be a p:sldLayout element, and links
// it to master. A nil master leaves layout placeholders without inheritance.
func NewSlideLayout(root *etree.Element, master *SlideMaster, opts ...Option) (*SlideLayout, error) {
	var inherited *slog.Logger
	if master != nil {
		inherited = master.logger
	}
	p, err := newPart(root, "p:sldLayout", inherited, opts)
	if err != nil {
		return nil, err
	}
	return &SlideLayout{part: p, master: master}, nil
}

// GetSlideMaster returns the master the layout inherits from, or nil.
func (l *SlideLayout) GetSlideMaster() *SlideMaster { return l.master }

func (l *SlideLayout) wrapShape(el *etree.Element) Shape {
	return newPartShape(el, l.wrapShape, l.newPlaceholder)
}

func (l *SlideLayout) newPlaceholder(el *etree.Element) *LayoutPlaceholder {
	return &LayoutPlaceholder{placeholderShape: placeholderShape{BaseShape{element: el}}, layout: l}
}

// Shapes returns the shapes of the layout's shape tree.
func (l *SlideLayout) Shapes() *LayoutShapes {
	return &LayoutShapes{shapeList[Shape]{parent: l.spTree(), accept: isShapeElement, wrap: l.wrapShape}}
}

// Placeholders returns the placeholders of the layout.
func (l *SlideLayout) Placeholders() *LayoutPlaceholders {
	return &LayoutPlaceholders{placeholderList[*LayoutPlaceholder]{shapeList[*LayoutPlaceholder]{
		parent: l.spTree(), accept: isPlaceholderElement, wrap: l.newPlaceholder,
	}}}
}

// AllShapes returns an iterator over the layout's shapes.
func (l *SlideLayout) AllShapes() iter.Seq[Shape] { return l.Shapes().All() }

// GetShapeByID finds a shape by id, searching into groups.
func (l *SlideLayout) GetShapeByID(id int) (Shape, bool) { return shapeByID(l.AllShapes(), id) }

// Slide wraps a p:sld part.
type Slide struct {
	part
	layout *SlideLayout
}

// NewSlide wraps root, which must be a p:sld element, and links it to
// layout. A nil layout leaves slide placeholders without inheritance.
func NewSlide(root *etree.Element, layout *SlideLayout, opts ...Option) (*Slide, error) {
	var inherited *slog.Logger
	if layout != nil {
		inherited = layout.logger
	}
	p, err := newPart(root, "p:sld", inherited, opts)
	if err != nil {
		return nil, err
	}
	return &Slide{part: p, layout: layout}, nil
}

// GetSlideLayout returns the layout the slide inherits from, or nil.
func (s *Slide) GetSlideLayout() *SlideLayout { return s.layout }

func (s *Slide) wrapShape(el *etree.Element) Shape {
	return newPartShape(el, s.wrapShape, s.newPlaceholder)
}

func (s *Slide) newPlaceholder(el *etree.Element) *SlidePlaceholder {
	return &SlidePlaceholder{placeholderShape: placeholderShape{BaseShape{element: el}}, slide: s}
}

// Shapes returns the shapes of the slide's shape tree.
func (s *Slide) Shapes() *SlideShapes {
	return &SlideShapes{shapeList[Shape]{parent: s.spTree(), accept: isShapeElement, wrap: s.wrapShape}}
}

// Placeholders returns the placeholders of the slide.
func (s *Slide) Placeholders() *SlidePlaceholders {
	return &SlidePlaceholders{placeholderList[*SlidePlaceholder]{shapeList[*SlidePlaceholder]{
		parent: s.spTree(), accept: isPlaceholderElement, wrap: s.newPlaceholder,
	}}}
}

// AllShapes returns an iterator over the slide's shapes.
func (s *Slide) AllShapes() iter.Seq[Shape] { return s.Shapes().All() }

// GetShapeByID finds a shape by id, searching into groups.
func (s *Slide) GetShapeByID(id int) (Shape, bool) { return shapeByID(s.AllShapes(), id) }
