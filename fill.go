package slidetree

import "github.com/beevik/etree"

// FillType classifies the fill held by a property element.
type FillType int

const (
	// FillUnspecified means the holder has no fill element; the effective
	// fill comes from elsewhere (an inheritance source or the theme).
	FillUnspecified FillType = iota
	FillBackground
	FillSolid
	FillGradient
	FillGroup
	FillPatterned
	FillPicture
)

func (t FillType) String() string {
	switch t {
	case FillBackground:
		return "background"
	case FillSolid:
		return "solid"
	case FillGradient:
		return "gradient"
	case FillGroup:
		return "group"
	case FillPatterned:
		return "patterned"
	case FillPicture:
		return "picture"
	default:
		return "unspecified"
	}
}

var fillChoiceTags = []string{
	"a:noFill", "a:solidFill", "a:gradFill", "a:blipFill", "a:pattFill", "a:grpFill",
}

var fillTypeByTag = map[string]FillType{
	"a:noFill":    FillBackground,
	"a:solidFill": FillSolid,
	"a:gradFill":  FillGradient,
	"a:blipFill":  FillPicture,
	"a:pattFill":  FillPatterned,
	"a:grpFill":   FillGroup,
}

// Elements that must follow the fill choice, per holder element.
var (
	shapePropsFillSuccessors = []string{
		"a:ln", "a:effectLst", "a:effectDag", "a:scene3d", "a:sp3d", "a:extLst",
	}
	groupPropsFillSuccessors = []string{
		"a:effectLst", "a:effectDag", "a:scene3d", "a:extLst",
	}
	textRunPropsFillSuccessors = []string{
		"a:effectLst", "a:effectDag", "a:highlight", "a:uLnTx", "a:uLn", "a:uFillTx",
		"a:uFill", "a:latin", "a:ea", "a:cs", "a:sym", "a:hlinkClick",
		"a:hlinkMouseOver", "a:rtl", "a:extLst",
	}
	backgroundPropsFillSuccessors = []string{
		"a:effectLst", "a:effectDag", "a:extLst",
	}
	tableCellPropsFillSuccessors = []string{
		"a:headers", "a:extLst",
	}
)

var fillSuccessors = map[qname][]string{
	qn("p:spPr"):       shapePropsFillSuccessors,
	qn("a:spPr"):       shapePropsFillSuccessors,
	qn("p:grpSpPr"):    groupPropsFillSuccessors,
	qn("a:grpSpPr"):    groupPropsFillSuccessors,
	qn("a:rPr"):        textRunPropsFillSuccessors,
	qn("a:defRPr"):     textRunPropsFillSuccessors,
	qn("a:endParaRPr"): textRunPropsFillSuccessors,
	qn("p:bgPr"):       backgroundPropsFillSuccessors,
	qn("a:tcPr"):       tableCellPropsFillSuccessors,
}

// FillFormat provides access to the fill of a fill-property holder such as
// p:spPr, p:grpSpPr, a:rPr or p:bgPr.
type FillFormat struct {
	parent *etree.Element
}

// NewFillFormat wraps the fill-property holder parent. The holder is
// referenced, not copied; changes are made in place.
func NewFillFormat(parent *etree.Element) *FillFormat {
	return &FillFormat{parent: parent}
}

// Element returns the fill-property holder.
func (f *FillFormat) Element() *etree.Element {
	return f.parent
}

func (f *FillFormat) fillElement() *etree.Element {
	return firstChild(f.parent, fillChoiceTags...)
}

// GetType returns the kind of fill, FillUnspecified when there is none.
func (f *FillFormat) GetType() FillType {
	el := f.fillElement()
	for _, tag := range fillChoiceTags {
		if isTag(el, tag) {
			return fillTypeByTag[tag]
		}
	}
	return FillUnspecified
}

// Background sets the fill to no-fill, letting the background show through.
// Any existing fill is removed.
func (f *FillFormat) Background() {
	f.changeFillTo("a:noFill")
}

// Solid sets the fill to a solid color. An existing solid fill is kept
// unchanged, otherwise any existing fill is replaced by an empty a:solidFill.
// Use ForeColor to set the color afterwards.
func (f *FillFormat) Solid() {
	f.changeFillTo("a:solidFill")
}

// ForeColor returns the color of a solid fill. For gradient and patterned
// fills the error wraps ErrNotImplemented; for every other type it wraps
// ErrNoForeColor.
func (f *FillFormat) ForeColor() (*ColorFormat, error) {
	switch t := f.GetType(); t {
	case FillSolid:
		return newColorFormat(f.fillElement()), nil
	case FillGradient, FillPatterned:
		return nil, &FillError{Type: t, Err: ErrNotImplemented}
	default:
		return nil, &FillError{Type: t, Err: ErrNoForeColor}
	}
}

func (f *FillFormat) changeFillTo(tag string) *etree.Element {
	if el := f.fillElement(); isTag(el, tag) {
		return el
	}
	removeAll(f.parent, fillChoiceTags...)
	return insertBefore(f.parent, newElement(f.parent, tag), fillSuccessors[qnameOf(f.parent)]...)
}
