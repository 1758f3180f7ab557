package slidetree

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/beevik/etree"
)

// Children of a shape tree (p:spTree or p:grpSp) that are not shapes.
var nonShapeTags = []string{"p:nvGrpSpPr", "p:grpSpPr", "p:extLst"}

// isShapeElement reports whether a shape-tree child is a shape. Every child
// other than the group's own properties counts, so an unrecognized kind is
// still listed (as a BaseShape) rather than dropped.
func isShapeElement(el *etree.Element) bool {
	return !isTag(el, nonShapeTags...)
}

func isPlaceholderElement(el *etree.Element) bool {
	return isShapeElement(el) && phOf(el) != nil
}

// shapeFactories maps a shape element to its wrapper. Tags without an entry
// are wrapped in a plain BaseShape.
var shapeFactories = map[qname]func(BaseShape) Shape{
	qn("p:sp"):           func(b BaseShape) Shape { return &AutoShape{BaseShape: b} },
	qn("p:pic"):          func(b BaseShape) Shape { return &Picture{BaseShape: b} },
	qn("p:grpSp"):        func(b BaseShape) Shape { return &GroupShape{BaseShape: b} },
	qn("p:graphicFrame"): func(b BaseShape) Shape { return &GraphicFrame{BaseShape: b} },
	qn("p:cxnSp"):        func(b BaseShape) Shape { return &Connector{BaseShape: b} },
}

// newShape wraps a non-placeholder shape element by its tag.
func newShape(el *etree.Element) Shape {
	b := BaseShape{element: el}
	if build, ok := shapeFactories[qnameOf(el)]; ok {
		return build(b)
	}
	return &b
}

// newPartShape wraps a shape element of a part. Placeholders are built by
// newPlaceholder, and groups keep self so their members are wrapped the same
// way.
func newPartShape[P Shape](el *etree.Element, self func(*etree.Element) Shape, newPlaceholder func(*etree.Element) P) Shape {
	if isPlaceholderElement(el) {
		return newPlaceholder(el)
	}
	s := newShape(el)
	if g, ok := s.(*GroupShape); ok {
		g.wrap = self
	}
	return s
}

// shapeList is a read-only, document-ordered view over the children of parent
// accepted by accept. Nothing is cached: every call walks the current
// children, so changes to the tree are visible on the next call.
type shapeList[T any] struct {
	parent *etree.Element
	accept func(*etree.Element) bool
	wrap   func(*etree.Element) T
}

func (l shapeList[T]) elements(yield func(*etree.Element) bool) {
	if l.parent == nil {
		return
	}
	for _, el := range l.parent.ChildElements() {
		if l.accept(el) && !yield(el) {
			return
		}
	}
}

// Len returns the number of items in the collection.
func (l shapeList[T]) Len() int {
	n := 0
	for range l.elements {
		n++
	}
	return n
}

// Get returns the item at position i in document order. The error wraps
// ErrOutOfRange when i is outside [0, Len()).
func (l shapeList[T]) Get(i int) (T, error) {
	if i >= 0 {
		n := 0
		for el := range l.elements {
			if n == i {
				return l.wrap(el), nil
			}
			n++
		}
	}
	var zero T
	return zero, fmt.Errorf("shape index %d out of range [0,%d): %w", i, l.Len(), ErrOutOfRange)
}

// All returns an iterator over the collection in document order. Each range
// over it starts a fresh pass over the current children.
func (l shapeList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := range l.elements {
			if !yield(l.wrap(el)) {
				return
			}
		}
	}
}

// placeholderList adds idx-keyed access to a placeholder collection.
type placeholderList[T Placeholder] struct {
	shapeList[T]
}

// GetByIdx returns the first placeholder whose idx is idx. ok is false when
// none has it.
func (l placeholderList[T]) GetByIdx(idx int) (T, bool) {
	for ph := range l.All() {
		if ph.GetIdx() == idx {
			return ph, true
		}
	}
	var zero T
	return zero, false
}

// SortedByIdx returns the placeholders ordered by idx. Placeholders sharing
// an idx keep their document order.
func (l placeholderList[T]) SortedByIdx() []T {
	phs := slices.Collect(l.All())
	slices.SortStableFunc(phs, func(a, b T) int {
		return cmp.Compare(a.GetIdx(), b.GetIdx())
	})
	return phs
}

// SlideShapes is the shape collection of a slide. Placeholders are wrapped
// as *SlidePlaceholder.
type SlideShapes struct {
	shapeList[Shape]
}

// SlidePlaceholders is the placeholder collection of a slide.
type SlidePlaceholders struct {
	placeholderList[*SlidePlaceholder]
}

// LayoutShapes is the shape collection of a slide layout. Placeholders are
// wrapped as *LayoutPlaceholder.
type LayoutShapes struct {
	shapeList[Shape]
}

// LayoutPlaceholders is the placeholder collection of a slide layout.
type LayoutPlaceholders struct {
	placeholderList[*LayoutPlaceholder]
}

// MasterShapes is the shape collection of a slide master. Placeholders are
// wrapped as *MasterPlaceholder.
type MasterShapes struct {
	shapeList[Shape]
}

// MasterPlaceholders is the placeholder collection of a slide master.
type MasterPlaceholders struct {
	placeholderList[*MasterPlaceholder]
}

// GetByType returns the first master placeholder of type t in document
// order. ok is false when there is none.
func (m *MasterPlaceholders) GetByType(t PlaceholderType) (*MasterPlaceholder, bool) {
	for ph := range m.All() {
		if ph.GetPlaceholderType() == t {
			return ph, true
		}
	}
	return nil, false
}

// GroupShapes is the member collection of a group shape. Members of a group
// reached through a part are wrapped like the part's own shapes.
type GroupShapes struct {
	shapeList[Shape]
}
