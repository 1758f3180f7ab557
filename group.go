package slidetree

import "github.com/beevik/etree"

// GroupShape represents a p:grpSp shape. Its fill is the one that members
// using a:grpFill take on.
type GroupShape struct {
	BaseShape
	// wrap is the owning part's wrapper, so that p:ph members become
	// placeholders of that part. Nil for a group built outside a part.
	wrap func(*etree.Element) Shape
}

func (g *GroupShape) GetType() ShapeType { return ShapeTypeGroup }

// Shapes returns the member shapes of the group.
func (g *GroupShape) Shapes() *GroupShapes {
	wrap := g.wrap
	if wrap == nil {
		wrap = newShape
	}
	return &GroupShapes{shapeList[Shape]{
		parent: g.element,
		accept: isShapeElement,
		wrap:   wrap,
	}}
}

// GetShapeCount returns the number of shapes in the group.
func (g *GroupShape) GetShapeCount() int {
	return g.Shapes().Len()
}
