package slidetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidFillXML(inner string) string {
	return `<a:solidFill ` + nsDecls + `>` + inner + `</a:solidFill>`
}

func TestParseRGBColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBColor
		wantErr bool
	}{
		{"3C2F80", RGBColor{0x3C, 0x2F, 0x80}, false},
		{"#ff0000", RGBColor{0xFF, 0, 0}, false},
		{"000000", RGBColor{}, false},
		{"#aBcDeF", RGBColor{0xAB, 0xCD, 0xEF}, false},
		{"FFF", RGBColor{}, true},
		{"GG0000", RGBColor{}, true},
		{"12345G", RGBColor{}, true},
		{"12 456", RGBColor{}, true},
		{"#12345", RGBColor{}, true},
		{"", RGBColor{}, true},
	}
	for _, tt := range tests {
		got, err := ParseRGBColor(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidColor, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "3C2F80", RGBColor{0x3C, 0x2F, 0x80}.String())
}

func TestColorFormatGetType(t *testing.T) {
	tests := []struct {
		color string
		want  ColorType
	}{
		{"", ColorTypeNone},
		{`<a:srgbClr val="FF0000"/>`, ColorTypeRGB},
		{`<a:schemeClr val="accent2"/>`, ColorTypeScheme},
		{`<a:sysClr val="windowText" lastClr="000000"/>`, ColorTypeSystem},
		{`<a:prstClr val="black"/>`, ColorTypePreset},
		{`<a:hslClr hue="0" sat="0" lum="0"/>`, ColorTypeHSL},
		{`<a:scrgbClr r="0" g="0" b="0"/>`, ColorTypeSCRGB},
	}
	for _, tt := range tests {
		c := newColorFormat(parseElement(t, solidFillXML(tt.color)))
		assert.Equal(t, tt.want, c.GetType(), tt.want.String())
	}
}

func TestColorFormatGetRGB(t *testing.T) {
	rgb, ok := newColorFormat(parseElement(t, solidFillXML(`<a:srgbClr val="1F2E3D"/>`))).GetRGB()
	require.True(t, ok)
	assert.Equal(t, RGBColor{0x1F, 0x2E, 0x3D}, rgb)

	rgb, ok = newColorFormat(parseElement(t, solidFillXML(`<a:sysClr val="window" lastClr="FFFFFF"/>`))).GetRGB()
	require.True(t, ok)
	assert.Equal(t, RGBColor{0xFF, 0xFF, 0xFF}, rgb)

	_, ok = newColorFormat(parseElement(t, solidFillXML(`<a:schemeClr val="tx1"/>`))).GetRGB()
	assert.False(t, ok)
	_, ok = newColorFormat(parseElement(t, solidFillXML(`<a:srgbClr val="nope"/>`))).GetRGB()
	assert.False(t, ok)
}

func TestColorFormatSetRGB(t *testing.T) {
	el := parseElement(t, solidFillXML(`<a:srgbClr val="000000"><a:lumMod val="75000"/></a:srgbClr>`))
	c := newColorFormat(el)
	c.SetRGB(RGBColor{0xAB, 0xCD, 0xEF})
	assertXML(t, solidFillXML(`<a:srgbClr val="ABCDEF"><a:lumMod val="75000"/></a:srgbClr>`), el)

	el = parseElement(t, solidFillXML(`<a:schemeClr val="accent1"><a:lumMod val="75000"/></a:schemeClr>`))
	newColorFormat(el).SetRGB(RGBColor{0x01, 0x02, 0x03})
	assertXML(t, solidFillXML(`<a:srgbClr val="010203"/>`), el)
}

func TestColorFormatThemeColor(t *testing.T) {
	el := parseElement(t, solidFillXML(`<a:srgbClr val="FF0000"/>`))
	c := newColorFormat(el)

	_, ok := c.GetThemeColor()
	assert.False(t, ok)

	c.SetThemeColor(ThemeColorAccent6)
	assertXML(t, solidFillXML(`<a:schemeClr val="accent6"/>`), el)
	theme, ok := c.GetThemeColor()
	require.True(t, ok)
	assert.Equal(t, ThemeColorAccent6, theme)
	assert.Equal(t, ColorTypeScheme, c.GetType())

	c.SetThemeColor(ThemeColorText1)
	assertXML(t, solidFillXML(`<a:schemeClr val="tx1"/>`), el)
}

func TestColorFormatBrightness(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  float64
	}{
		{"none", `<a:srgbClr val="000000"/>`, 0},
		{"lighter", `<a:schemeClr val="accent1"><a:lumMod val="60000"/><a:lumOff val="40000"/></a:schemeClr>`, 0.4},
		{"darker", `<a:schemeClr val="accent1"><a:lumMod val="75000"/></a:schemeClr>`, -0.25},
	}
	for _, tt := range tests {
		c := newColorFormat(parseElement(t, solidFillXML(tt.color)))
		assert.InDelta(t, tt.want, c.GetBrightness(), 1e-9, tt.name)
	}
	assert.Zero(t, newColorFormat(parseElement(t, solidFillXML(""))).GetBrightness())
}

func TestColorFormatSetBrightness(t *testing.T) {
	el := parseElement(t, solidFillXML(`<a:schemeClr val="accent1"/>`))
	c := newColorFormat(el)

	require.NoError(t, c.SetBrightness(0.4))
	assertXML(t, solidFillXML(`<a:schemeClr val="accent1"><a:lumMod val="60000"/><a:lumOff val="40000"/></a:schemeClr>`), el)
	assert.InDelta(t, 0.4, c.GetBrightness(), 1e-9)

	require.NoError(t, c.SetBrightness(-0.25))
	assertXML(t, solidFillXML(`<a:schemeClr val="accent1"><a:lumMod val="75000"/></a:schemeClr>`), el)
	assert.InDelta(t, -0.25, c.GetBrightness(), 1e-9)

	require.NoError(t, c.SetBrightness(0))
	assertXML(t, solidFillXML(`<a:schemeClr val="accent1"/>`), el)

	assert.ErrorIs(t, c.SetBrightness(1.5), ErrBrightnessRange)
	assert.ErrorIs(t, c.SetBrightness(-1.01), ErrBrightnessRange)
	assert.ErrorIs(t, newColorFormat(parseElement(t, solidFillXML(""))).SetBrightness(0.5), ErrNoColor)
}
