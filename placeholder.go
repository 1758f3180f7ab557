package slidetree

import "github.com/beevik/etree"

// PlaceholderType represents the type of placeholder (p:ph/@type).
type PlaceholderType string

const (
	PlaceholderTitle      PlaceholderType = "title"
	PlaceholderBody       PlaceholderType = "body"
	PlaceholderCtrTitle   PlaceholderType = "ctrTitle"
	PlaceholderSubTitle   PlaceholderType = "subTitle"
	PlaceholderDate       PlaceholderType = "dt"
	PlaceholderFooter     PlaceholderType = "ftr"
	PlaceholderSlideNum   PlaceholderType = "sldNum"
	PlaceholderObject     PlaceholderType = "obj"
	PlaceholderChart      PlaceholderType = "chart"
	PlaceholderTable      PlaceholderType = "tbl"
	PlaceholderClipArt    PlaceholderType = "clipArt"
	PlaceholderDiagram    PlaceholderType = "dgm"
	PlaceholderMedia      PlaceholderType = "media"
	PlaceholderSlideImage PlaceholderType = "sldImg"
	PlaceholderPicture    PlaceholderType = "pic"
	PlaceholderHeader     PlaceholderType = "hdr"
)

// PlaceholderOrient is the text orientation of a placeholder.
type PlaceholderOrient string

const (
	PlaceholderOrientHorizontal PlaceholderOrient = "horz"
	PlaceholderOrientVertical   PlaceholderOrient = "vert"
)

// PlaceholderSize is the relative size of a placeholder.
type PlaceholderSize string

const (
	PlaceholderSizeFull    PlaceholderSize = "full"
	PlaceholderSizeHalf    PlaceholderSize = "half"
	PlaceholderSizeQuarter PlaceholderSize = "quarter"
)

// masterPlaceholderTypes maps a layout placeholder type to the type of the
// master placeholder it inherits from when no master placeholder shares its
// idx. Masters define one placeholder per type, and only these five.
var masterPlaceholderTypes = map[PlaceholderType]PlaceholderType{
	PlaceholderBody:     PlaceholderBody,
	PlaceholderChart:    PlaceholderBody,
	PlaceholderClipArt:  PlaceholderBody,
	PlaceholderCtrTitle: PlaceholderTitle,
	PlaceholderDiagram:  PlaceholderBody,
	PlaceholderDate:     PlaceholderDate,
	PlaceholderFooter:   PlaceholderFooter,
	PlaceholderMedia:    PlaceholderBody,
	PlaceholderObject:   PlaceholderBody,
	PlaceholderPicture:  PlaceholderBody,
	PlaceholderSlideNum: PlaceholderSlideNum,
	PlaceholderSubTitle: PlaceholderBody,
	PlaceholderTable:    PlaceholderBody,
	PlaceholderTitle:    PlaceholderTitle,
}

func masterPlaceholderType(t PlaceholderType) PlaceholderType {
	if mt, ok := masterPlaceholderTypes[t]; ok {
		return mt
	}
	return t
}

// Placeholder is a shape that takes unset properties from its counterpart
// on the layout or master.
type Placeholder interface {
	Shape
	GetIdx() int
	GetPlaceholderType() PlaceholderType
	GetOrient() PlaceholderOrient
	GetSize() PlaceholderSize
}

// placeholderShape holds what all three placeholder tiers share: the p:ph
// attributes, with their schema defaults.
type placeholderShape struct {
	BaseShape
}

func (p *placeholderShape) GetType() ShapeType { return ShapeTypePlaceholder }

func (p *placeholderShape) ph() *etree.Element { return phOf(p.element) }

// GetIdx returns the placeholder index (default 0).
func (p *placeholderShape) GetIdx() int { return attrInt(p.ph(), "idx", 0) }

// GetPlaceholderType returns the placeholder type (default obj).
func (p *placeholderShape) GetPlaceholderType() PlaceholderType {
	return PlaceholderType(attrString(p.ph(), "type", string(PlaceholderObject)))
}

// GetOrient returns the placeholder orientation (default horz).
func (p *placeholderShape) GetOrient() PlaceholderOrient {
	return PlaceholderOrient(attrString(p.ph(), "orient", string(PlaceholderOrientHorizontal)))
}

// GetSize returns the placeholder size (default full).
func (p *placeholderShape) GetSize() PlaceholderSize {
	return PlaceholderSize(attrString(p.ph(), "sz", string(PlaceholderSizeFull)))
}

type lengthGetter func() (Length, bool)

// orElse returns the first value one of getters has, in order.
func orElse(getters ...lengthGetter) (Length, bool) {
	for _, get := range getters {
		if v, ok := get(); ok {
			return v, true
		}
	}
	return 0, false
}

// effectiveFill returns the first specified fill along chain.
func effectiveFill(chain []Placeholder) (*FillFormat, Placeholder, bool) {
	for _, ph := range chain {
		if f := ph.LocalFill(); f != nil && f.GetType() != FillUnspecified {
			return f, ph, true
		}
	}
	return nil, nil, false
}

// SlidePlaceholder is a placeholder on a slide. Geometry it does not set is
// taken from the layout placeholder with the same idx.
type SlidePlaceholder struct {
	placeholderShape
	slide *Slide
}

// LayoutPlaceholder returns the placeholder of the slide's layout with the
// same idx. ok is false when the slide has no layout or the layout has no
// such placeholder; the slide placeholder then inherits nothing.
func (s *SlidePlaceholder) LayoutPlaceholder() (*LayoutPlaceholder, bool) {
	layout := s.slide.GetSlideLayout()
	if layout == nil {
		return nil, false
	}
	idx := s.GetIdx()
	lp, ok := layout.Placeholders().GetByIdx(idx)
	if !ok {
		s.slide.logger.Debug("no layout placeholder for slide placeholder",
			"tier", "layout", "idx", idx, "shape_id", s.GetShapeID())
	}
	return lp, ok
}

// MasterPlaceholder returns the master placeholder the slide placeholder
// inherits from through its layout placeholder.
func (s *SlidePlaceholder) MasterPlaceholder() (*MasterPlaceholder, bool) {
	lp, ok := s.LayoutPlaceholder()
	if !ok {
		return nil, false
	}
	return lp.MasterPlaceholder()
}

func (s *SlidePlaceholder) fromLayout(get func(*LayoutPlaceholder) (Length, bool)) lengthGetter {
	return func() (Length, bool) {
		lp, ok := s.LayoutPlaceholder()
		if !ok {
			return 0, false
		}
		return get(lp)
	}
}

// GetLeft returns the x offset, inherited when the slide omits it.
func (s *SlidePlaceholder) GetLeft() (Length, bool) {
	return orElse(s.BaseShape.GetLeft, s.fromLayout((*LayoutPlaceholder).GetLeft))
}

// GetTop returns the y offset, inherited when the slide omits it.
func (s *SlidePlaceholder) GetTop() (Length, bool) {
	return orElse(s.BaseShape.GetTop, s.fromLayout((*LayoutPlaceholder).GetTop))
}

// GetWidth returns the width, inherited when the slide omits it.
func (s *SlidePlaceholder) GetWidth() (Length, bool) {
	return orElse(s.BaseShape.GetWidth, s.fromLayout((*LayoutPlaceholder).GetWidth))
}

// GetHeight returns the height, inherited when the slide omits it.
func (s *SlidePlaceholder) GetHeight() (Length, bool) {
	return orElse(s.BaseShape.GetHeight, s.fromLayout((*LayoutPlaceholder).GetHeight))
}

// Chain returns the placeholder followed by the layout and master
// placeholders it resolves to, stopping at the first tier without a match.
func (s *SlidePlaceholder) Chain() []Placeholder {
	chain := []Placeholder{s}
	lp, ok := s.LayoutPlaceholder()
	if !ok {
		return chain
	}
	return append(chain, lp.Chain()...)
}

// EffectiveFill returns the fill of the nearest placeholder in Chain that
// specifies one, together with that placeholder.
func (s *SlidePlaceholder) EffectiveFill() (*FillFormat, Placeholder, bool) {
	return effectiveFill(s.Chain())
}

// LayoutPlaceholder is a placeholder on a slide layout. Geometry it does not
// set is taken from the matching master placeholder.
type LayoutPlaceholder struct {
	placeholderShape
	layout *SlideLayout
}

// MasterPlaceholder returns the master placeholder this layout placeholder
// inherits from: the one with the same idx, otherwise the first one whose
// type corresponds to this placeholder's type.
func (l *LayoutPlaceholder) MasterPlaceholder() (*MasterPlaceholder, bool) {
	master := l.layout.GetSlideMaster()
	if master == nil {
		return nil, false
	}
	phs := master.Placeholders()
	idx := l.GetIdx()
	if mp, ok := phs.GetByIdx(idx); ok {
		return mp, true
	}
	t := masterPlaceholderType(l.GetPlaceholderType())
	mp, ok := phs.GetByType(t)
	if ok {
		l.layout.logger.Debug("master placeholder matched by type",
			"tier", "master", "idx", idx, "type", string(t), "master_shape_id", mp.GetShapeID())
	} else {
		l.layout.logger.Debug("no master placeholder for layout placeholder",
			"tier", "master", "idx", idx, "type", string(t))
	}
	return mp, ok
}

func (l *LayoutPlaceholder) fromMaster(get func(*MasterPlaceholder) (Length, bool)) lengthGetter {
	return func() (Length, bool) {
		mp, ok := l.MasterPlaceholder()
		if !ok {
			return 0, false
		}
		return get(mp)
	}
}

// GetLeft returns the x offset, inherited when the layout omits it.
func (l *LayoutPlaceholder) GetLeft() (Length, bool) {
	return orElse(l.BaseShape.GetLeft, l.fromMaster((*MasterPlaceholder).GetLeft))
}

// GetTop returns the y offset, inherited when the layout omits it.
func (l *LayoutPlaceholder) GetTop() (Length, bool) {
	return orElse(l.BaseShape.GetTop, l.fromMaster((*MasterPlaceholder).GetTop))
}

// GetWidth returns the width, inherited when the layout omits it.
func (l *LayoutPlaceholder) GetWidth() (Length, bool) {
	return orElse(l.BaseShape.GetWidth, l.fromMaster((*MasterPlaceholder).GetWidth))
}

// GetHeight returns the height, inherited when the layout omits it.
func (l *LayoutPlaceholder) GetHeight() (Length, bool) {
	return orElse(l.BaseShape.GetHeight, l.fromMaster((*MasterPlaceholder).GetHeight))
}

// Chain returns the placeholder followed by its master placeholder, if any.
func (l *LayoutPlaceholder) Chain() []Placeholder {
	chain := []Placeholder{l}
	if mp, ok := l.MasterPlaceholder(); ok {
		chain = append(chain, mp)
	}
	return chain
}

// EffectiveFill returns the fill of the nearest placeholder in Chain that
// specifies one, together with that placeholder.
func (l *LayoutPlaceholder) EffectiveFill() (*FillFormat, Placeholder, bool) {
	return effectiveFill(l.Chain())
}

// MasterPlaceholder is a placeholder on a slide master, the last tier of the
// inheritance chain.
type MasterPlaceholder struct {
	placeholderShape
	master *SlideMaster
}

// GetSlideMaster returns the master the placeholder belongs to.
func (m *MasterPlaceholder) GetSlideMaster() *SlideMaster { return m.master }

// Chain returns the placeholder alone; nothing lies above the master.
func (m *MasterPlaceholder) Chain() []Placeholder {
	return []Placeholder{m}
}

// EffectiveFill returns the placeholder's own fill when it specifies one.
func (m *MasterPlaceholder) EffectiveFill() (*FillFormat, Placeholder, bool) {
	return effectiveFill(m.Chain())
}
