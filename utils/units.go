package utils

import "math"

// Conversion factors between the units used in camera and flight configurations. Every
// field that carries a length names its unit (e.g. FocalLengthMM, HeightM, GSDCM); these are the
// only places a mm, cm or percent scale factor appears.
const (
	MillimetersPerMeter = 1000.
	CentimetersPerMeter = 100.
	PercentPerUnit      = 100.
)

// MMToMeters converts millimeters to meters.
func MMToMeters(mm float64) float64 {
	return mm / MillimetersPerMeter
}

// MetersToMM converts meters to millimeters.
func MetersToMM(m float64) float64 {
	return m * MillimetersPerMeter
}

// CMToMeters converts centimeters to meters.
func CMToMeters(cm float64) float64 {
	return cm / CentimetersPerMeter
}

// MetersToCM converts meters to centimeters.
func MetersToCM(m float64) float64 {
	return m * CentimetersPerMeter
}

// PercentToFraction converts a percentage (0-100) to a fraction (0-1).
func PercentToFraction(pct float64) float64 {
	return pct / PercentPerUnit
}

// FractionToPercent converts a fraction (0-1) to a percentage (0-100).
func FractionToPercent(frac float64) float64 {
	return frac * PercentPerUnit
}

// IsFinitePositive returns true if v is a real number greater than zero.
func IsFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
