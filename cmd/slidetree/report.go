package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/VantageDataChat/slidetree"
	"gopkg.in/yaml.v3"
)

// PartReport describes one part and its shapes.
type PartReport struct {
	Kind   string        `yaml:"kind" json:"kind"`
	Name   string        `yaml:"name,omitempty" json:"name,omitempty"`
	Shapes []ShapeReport `yaml:"shapes" json:"shapes"`
}

// ShapeReport describes one shape. Geometry and fill of placeholders are the
// effective values after inheritance.
type ShapeReport struct {
	ID          int                `yaml:"id" json:"id"`
	Name        string             `yaml:"name" json:"name"`
	Kind        string             `yaml:"kind" json:"kind"`
	Geometry    Geometry           `yaml:"geometry" json:"geometry"`
	Fill        string             `yaml:"fill,omitempty" json:"fill,omitempty"`
	FillSource  string             `yaml:"fill_source,omitempty" json:"fill_source,omitempty"`
	Placeholder *PlaceholderReport `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Members     []ShapeReport      `yaml:"members,omitempty" json:"members,omitempty"`
}

// Geometry holds the EMU position and extent of a shape. A nil field is not
// specified anywhere along the inheritance chain.
type Geometry struct {
	Left   *int64 `yaml:"left" json:"left"`
	Top    *int64 `yaml:"top" json:"top"`
	Width  *int64 `yaml:"width" json:"width"`
	Height *int64 `yaml:"height" json:"height"`
}

// PlaceholderReport holds the placeholder attributes and the ids of the
// shapes it inherits from.
type PlaceholderReport struct {
	Idx           int    `yaml:"idx" json:"idx"`
	Type          string `yaml:"type" json:"type"`
	Orient        string `yaml:"orient" json:"orient"`
	Size          string `yaml:"size" json:"size"`
	LayoutShapeID *int   `yaml:"layout_shape_id,omitempty" json:"layout_shape_id,omitempty"`
	MasterShapeID *int   `yaml:"master_shape_id,omitempty" json:"master_shape_id,omitempty"`
}

func partKind(p slidetree.Part) string {
	switch p.(type) {
	case *slidetree.SlideMaster:
		return "slideMaster"
	case *slidetree.SlideLayout:
		return "slideLayout"
	case *slidetree.Slide:
		return "slide"
	}
	return "unknown"
}

// tierOf names the part kind a placeholder belongs to.
func tierOf(ph slidetree.Placeholder) string {
	switch ph.(type) {
	case *slidetree.SlidePlaceholder:
		return "slide"
	case *slidetree.LayoutPlaceholder:
		return "layout"
	case *slidetree.MasterPlaceholder:
		return "master"
	}
	return ""
}

// BuildReport walks the shapes of p.
func BuildReport(p slidetree.Part) PartReport {
	return PartReport{
		Kind:   partKind(p),
		Name:   p.GetName(),
		Shapes: shapeReports(p.AllShapes()),
	}
}

func shapeReports(shapes iter.Seq[slidetree.Shape]) []ShapeReport {
	reports := []ShapeReport{}
	for s := range shapes {
		reports = append(reports, shapeReport(s))
	}
	return reports
}

func shapeReport(s slidetree.Shape) ShapeReport {
	r := ShapeReport{
		ID:       s.GetShapeID(),
		Name:     s.GetName(),
		Kind:     s.GetType().String(),
		Geometry: geometryOf(s),
	}

	switch s := s.(type) {
	case *slidetree.SlidePlaceholder:
		r.Placeholder = placeholderReport(s)
		if lp, ok := s.LayoutPlaceholder(); ok {
			r.Placeholder.LayoutShapeID = idOf(lp)
		}
		if mp, ok := s.MasterPlaceholder(); ok {
			r.Placeholder.MasterShapeID = idOf(mp)
		}
		r.Fill, r.FillSource = effectiveFill(s.EffectiveFill())
	case *slidetree.LayoutPlaceholder:
		r.Placeholder = placeholderReport(s)
		if mp, ok := s.MasterPlaceholder(); ok {
			r.Placeholder.MasterShapeID = idOf(mp)
		}
		r.Fill, r.FillSource = effectiveFill(s.EffectiveFill())
	case *slidetree.MasterPlaceholder:
		r.Placeholder = placeholderReport(s)
		r.Fill, r.FillSource = effectiveFill(s.EffectiveFill())
	case *slidetree.GroupShape:
		r.Fill = fillOf(s)
		r.Members = shapeReports(s.Shapes().All())
	default:
		r.Fill = fillOf(s)
	}
	return r
}

// effectiveFill has the signature of the placeholders' EffectiveFill results.
func effectiveFill(f *slidetree.FillFormat, source slidetree.Placeholder, ok bool) (string, string) {
	if !ok {
		return slidetree.FillUnspecified.String(), ""
	}
	return f.GetType().String(), tierOf(source)
}

func fillOf(s slidetree.Shape) string {
	f := s.LocalFill()
	if f == nil {
		return ""
	}
	return f.GetType().String()
}

func placeholderReport(ph slidetree.Placeholder) *PlaceholderReport {
	return &PlaceholderReport{
		Idx:    ph.GetIdx(),
		Type:   string(ph.GetPlaceholderType()),
		Orient: string(ph.GetOrient()),
		Size:   string(ph.GetSize()),
	}
}

func idOf(s slidetree.Shape) *int {
	id := s.GetShapeID()
	return &id
}

func geometryOf(s slidetree.Shape) Geometry {
	emu := func(l slidetree.Length, ok bool) *int64 {
		if !ok {
			return nil
		}
		v := l.EMU()
		return &v
	}
	return Geometry{
		Left:   emu(s.GetLeft()),
		Top:    emu(s.GetTop()),
		Width:  emu(s.GetWidth()),
		Height: emu(s.GetHeight()),
	}
}

// encodeReport writes v to w as YAML or JSON.
func encodeReport(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
