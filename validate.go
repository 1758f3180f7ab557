package slidetree

import (
	"fmt"
	"iter"
	"strings"
)

// Validate checks the master for structural issues and returns an error
// describing all problems found, or nil if it is valid.
func (m *SlideMaster) Validate() error {
	return validatePart("slide master", m.spTree() != nil, m.AllShapes(), placeholderIdxs(m.Placeholders().All()))
}

// Validate checks the layout for structural issues.
func (l *SlideLayout) Validate() error {
	return validatePart("slide layout", l.spTree() != nil, l.AllShapes(), placeholderIdxs(l.Placeholders().All()))
}

// Validate checks the slide for structural issues.
func (s *Slide) Validate() error {
	return validatePart("slide", s.spTree() != nil, s.AllShapes(), placeholderIdxs(s.Placeholders().All()))
}

func placeholderIdxs[T Placeholder](phs iter.Seq[T]) []int {
	var idxs []int
	for ph := range phs {
		idxs = append(idxs, ph.GetIdx())
	}
	return idxs
}

func validatePart(kind string, hasTree bool, shapes iter.Seq[Shape], idxs []int) error {
	var errs []string

	if !hasTree {
		errs = append(errs, "missing p:cSld/p:spTree")
	}

	seenIDs := make(map[int]bool)
	validateShapes(shapes, seenIDs, &errs)

	seenIdx := make(map[int]bool)
	for _, idx := range idxs {
		if seenIdx[idx] {
			errs = append(errs, fmt.Sprintf("placeholder idx %d is used more than once", idx))
		}
		seenIdx[idx] = true
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s validation failed:\n  %s", kind, strings.Join(errs, "\n  "))
}

func validateShapes(shapes iter.Seq[Shape], seenIDs map[int]bool, errs *[]string) {
	for shape := range shapes {
		// Wrappers such as mc:AlternateContent carry no id of their own.
		if shape.GetType() == ShapeTypeUnknown && shape.base().cNvPr() == nil {
			continue
		}
		id := shape.GetShapeID()
		prefix := fmt.Sprintf("shape %d (%s)", id, shape.GetType())
		if id <= 0 {
			*errs = append(*errs, prefix+": missing or invalid id")
		} else if seenIDs[id] {
			*errs = append(*errs, prefix+": duplicate shape id")
		}
		seenIDs[id] = true
		if w, ok := shape.base().GetWidth(); ok && w < 0 {
			*errs = append(*errs, prefix+": width is negative")
		}
		if h, ok := shape.base().GetHeight(); ok && h < 0 {
			*errs = append(*errs, prefix+": height is negative")
		}
		if g, ok := shape.(*GroupShape); ok {
			validateShapes(g.Shapes().All(), seenIDs, errs)
		}
	}
}
