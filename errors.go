package slidetree

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for positional access outside a collection.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNoForeColor is returned when the foreground color of a fill is
	// requested but the fill type never has one (unspecified, background,
	// group and picture fills).
	ErrNoForeColor = errors.New("fill type has no foreground color")

	// ErrNotImplemented is returned when the foreground color of a gradient
	// or patterned fill is requested. Those fills do carry colors but
	// resolving a single foreground from them is not supported.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedShape is returned by an operation the shape kind cannot
	// carry, such as positioning a shape without a transform.
	ErrUnsupportedShape = errors.New("operation not supported by shape kind")

	// ErrUnexpectedRoot indicates a part whose root element is not the one
	// expected for the requested part kind.
	ErrUnexpectedRoot = errors.New("unexpected root element")

	// ErrPartTooLarge indicates a part larger than maxPartSize.
	ErrPartTooLarge = errors.New("part exceeds maximum allowed size")

	// ErrInvalidColor indicates a malformed RRGGBB color string.
	ErrInvalidColor = errors.New("invalid RGB color")

	// ErrNoColor is returned when adjusting a color that has no value.
	ErrNoColor = errors.New("color has no value")

	// ErrBrightnessRange is returned for a brightness outside [-1.0, 1.0].
	ErrBrightnessRange = errors.New("brightness must be in range -1.0 to 1.0")
)

// FillError reports an operation that the current fill type cannot serve.
type FillError struct {
	Type FillType
	Err  error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("fill type %s: %v", e.Type, e.Err)
}

func (e *FillError) Unwrap() error {
	return e.Err
}
