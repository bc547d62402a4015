package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleOfView returns the full angle, in degrees, subtended by an extent of `size` seen from a
// principal distance of `distance`. Both must be in the same unit.
func AngleOfView(size, distance float64) float64 {
	return RadToDeg(2 * math.Atan(size/(2*distance)))
}

// DistanceForAngle is the inverse of AngleOfView: the principal distance at which an extent of
// `size` subtends angleDeg degrees.
func DistanceForAngle(size, angleDeg float64) float64 {
	return size / (2 * math.Tan(DegToRad(angleDeg)/2))
}
