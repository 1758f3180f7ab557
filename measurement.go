package slidetree

import "math"

// EMU (English Metric Units) conversion helpers.
// 1 inch = 914400 EMU, 1 point = 12700 EMU, 1 cm = 360000 EMU.

const (
	emuPerInch       = 914400
	emuPerPoint      = 12700
	emuPerCentimeter = 360000
	emuPerMillimeter = 36000
	// maxEMU is the maximum safe EMU value to prevent overflow.
	maxEMU = math.MaxInt64 / 2
)

// Length is a distance in EMU, the unit of every coordinate and extent in a
// shape's transform.
type Length int64

// Inch converts inches to a Length. Clamps to safe range.
func Inch(n float64) Length {
	return clampEMU(n * emuPerInch)
}

// Point converts points to a Length.
func Point(n float64) Length {
	return clampEMU(n * emuPerPoint)
}

// Centimeter converts centimeters to a Length.
func Centimeter(n float64) Length {
	return clampEMU(n * emuPerCentimeter)
}

// Millimeter converts millimeters to a Length.
func Millimeter(n float64) Length {
	return clampEMU(n * emuPerMillimeter)
}

// EMU returns the raw EMU value.
func (l Length) EMU() int64 { return int64(l) }

// Inches returns l in inches.
func (l Length) Inches() float64 { return float64(l) / emuPerInch }

// Pt returns l in points.
func (l Length) Pt() float64 { return float64(l) / emuPerPoint }

// Centimeters returns l in centimeters.
func (l Length) Centimeters() float64 { return float64(l) / emuPerCentimeter }

// Millimeters returns l in millimeters.
func (l Length) Millimeters() float64 { return float64(l) / emuPerMillimeter }

// clampEMU converts a float64 to a Length, clamping to prevent overflow.
func clampEMU(v float64) Length {
	if v > float64(maxEMU) {
		return maxEMU
	}
	if v < -float64(maxEMU) {
		return -maxEMU
	}
	return Length(v)
}
