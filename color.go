package slidetree

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// RGBColor is a 24-bit color as stored in a:srgbClr/@val.
type RGBColor struct {
	R, G, B uint8
}

// ParseRGBColor parses a 6-char hex string such as "3C2F80".
// A leading "#" is stripped automatically.
func ParseRGBColor(s string) (RGBColor, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGBColor{R: b[0], G: b[1], B: b[2]}, nil
}

// String returns the upper-case RRGGBB form used in markup.
func (c RGBColor) String() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ColorType identifies which color model a ColorFormat currently uses.
type ColorType int

const (
	ColorTypeNone ColorType = iota
	ColorTypeRGB
	ColorTypeScheme
	ColorTypeSystem
	ColorTypePreset
	ColorTypeHSL
	ColorTypeSCRGB
)

func (t ColorType) String() string {
	switch t {
	case ColorTypeRGB:
		return "rgb"
	case ColorTypeScheme:
		return "scheme"
	case ColorTypeSystem:
		return "system"
	case ColorTypePreset:
		return "preset"
	case ColorTypeHSL:
		return "hsl"
	case ColorTypeSCRGB:
		return "scrgb"
	default:
		return "none"
	}
}

// ThemeColor names a color slot of the theme, as stored in a:schemeClr/@val.
type ThemeColor string

const (
	ThemeColorAccent1           ThemeColor = "accent1"
	ThemeColorAccent2           ThemeColor = "accent2"
	ThemeColorAccent3           ThemeColor = "accent3"
	ThemeColorAccent4           ThemeColor = "accent4"
	ThemeColorAccent5           ThemeColor = "accent5"
	ThemeColorAccent6           ThemeColor = "accent6"
	ThemeColorBackground1       ThemeColor = "bg1"
	ThemeColorBackground2       ThemeColor = "bg2"
	ThemeColorDark1             ThemeColor = "dk1"
	ThemeColorDark2             ThemeColor = "dk2"
	ThemeColorFollowedHyperlink ThemeColor = "folHlink"
	ThemeColorHyperlink         ThemeColor = "hlink"
	ThemeColorLight1            ThemeColor = "lt1"
	ThemeColorLight2            ThemeColor = "lt2"
	ThemeColorText1             ThemeColor = "tx1"
	ThemeColorText2             ThemeColor = "tx2"
)

var colorChoiceTags = []string{
	"a:scrgbClr", "a:srgbClr", "a:hslClr", "a:sysClr", "a:schemeClr", "a:prstClr",
}

var colorTypeByTag = map[string]ColorType{
	"a:scrgbClr":  ColorTypeSCRGB,
	"a:srgbClr":   ColorTypeRGB,
	"a:hslClr":    ColorTypeHSL,
	"a:sysClr":    ColorTypeSystem,
	"a:schemeClr": ColorTypeScheme,
	"a:prstClr":   ColorTypePreset,
}

// ColorFormat gives access to the color choice held by a fill element such as
// a:solidFill.
type ColorFormat struct {
	parent *etree.Element
}

func newColorFormat(parent *etree.Element) *ColorFormat {
	return &ColorFormat{parent: parent}
}

func (c *ColorFormat) colorElement() *etree.Element {
	return firstChild(c.parent, colorChoiceTags...)
}

// GetType returns the color model in use, ColorTypeNone when no color is set.
func (c *ColorFormat) GetType() ColorType {
	el := c.colorElement()
	for _, tag := range colorChoiceTags {
		if isTag(el, tag) {
			return colorTypeByTag[tag]
		}
	}
	return ColorTypeNone
}

// GetRGB returns the RGB value of an RGB color, or the last computed value of
// a system color. ok is false for every other color type.
func (c *ColorFormat) GetRGB() (rgb RGBColor, ok bool) {
	el := c.colorElement()
	var v string
	switch {
	case isTag(el, "a:srgbClr"):
		v, ok = attrValue(el, "val")
	case isTag(el, "a:sysClr"):
		v, ok = attrValue(el, "lastClr")
	}
	if !ok {
		return RGBColor{}, false
	}
	rgb, err := ParseRGBColor(v)
	return rgb, err == nil
}

// SetRGB makes this an RGB color. An existing a:srgbClr is kept so its color
// transforms survive.
func (c *ColorFormat) SetRGB(rgb RGBColor) {
	el := c.changeColorTo("a:srgbClr")
	el.CreateAttr("val", rgb.String())
}

// GetThemeColor returns the theme slot of a scheme color.
func (c *ColorFormat) GetThemeColor() (ThemeColor, bool) {
	el := c.colorElement()
	if !isTag(el, "a:schemeClr") {
		return "", false
	}
	v, ok := attrValue(el, "val")
	return ThemeColor(v), ok
}

// SetThemeColor makes this a scheme color referencing the theme slot t.
func (c *ColorFormat) SetThemeColor(t ThemeColor) {
	el := c.changeColorTo("a:schemeClr")
	el.CreateAttr("val", string(t))
}

// GetBrightness returns the lightening (positive) or darkening (negative)
// applied to the color through its lumMod/lumOff transforms, in [-1.0, 1.0].
func (c *ColorFormat) GetBrightness() float64 {
	el := c.colorElement()
	if el == nil {
		return 0
	}
	if off := firstChild(el, "a:lumOff"); off != nil {
		return float64(attrInt(off, "val", 0)) / 100000
	}
	if mod := firstChild(el, "a:lumMod"); mod != nil {
		return float64(attrInt(mod, "val", 100000))/100000 - 1
	}
	return 0
}

// SetBrightness lightens (0 < v <= 1) or darkens (-1 <= v < 0) the color.
// Zero removes any adjustment.
func (c *ColorFormat) SetBrightness(v float64) error {
	if v < -1 || v > 1 || math.IsNaN(v) {
		return fmt.Errorf("%w: %v", ErrBrightnessRange, v)
	}
	el := c.colorElement()
	if el == nil {
		return ErrNoColor
	}
	removeAll(el, "a:lumMod", "a:lumOff")
	switch {
	case v > 0:
		el.AddChild(newLumElement(el, "a:lumMod", (1-v)*100000))
		el.AddChild(newLumElement(el, "a:lumOff", v*100000))
	case v < 0:
		el.AddChild(newLumElement(el, "a:lumMod", (1+v)*100000))
	}
	return nil
}

func newLumElement(parent *etree.Element, tag string, val float64) *etree.Element {
	el := newElement(parent, tag)
	el.CreateAttr("val", strconv.Itoa(int(math.Round(val))))
	return el
}

// changeColorTo replaces the current color choice with an empty tag element,
// keeping an existing element of the same kind.
func (c *ColorFormat) changeColorTo(tag string) *etree.Element {
	if el := c.colorElement(); isTag(el, tag) {
		return el
	}
	removeAll(c.parent, colorChoiceTags...)
	el := newElement(c.parent, tag)
	c.parent.InsertChildAt(0, el)
	return el
}
