package flightplan

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// ParameterConflictWarning is reported, not returned, when both a flying height and a ground
// sample distance are given and the swaths they imply disagree beyond the relative tolerance.
// The height-derived swath is the one kept.
type ParameterConflictWarning struct {
	HeightM      float64
	GSDCM        float64
	HeightSwathM r2.Point
	GSDSwathM    r2.Point
	Tolerance    float64
}

func (w *ParameterConflictWarning) Error() string {
	return fmt.Sprintf(
		"height %gm and gsd %gcm disagree: swath from height (%.4f, %.4f)m, swath from gsd (%.4f, %.4f)m, tolerance %g",
		w.HeightM, w.GSDCM, w.HeightSwathM.X, w.HeightSwathM.Y, w.GSDSwathM.X, w.GSDSwathM.Y, w.Tolerance)
}

// InvalidInputError is returned when a flight input is outside its physical range, such as a
// negative height or an overlap above 100%.
type InvalidInputError struct {
	Parameter string
	Value     float64
	Reason    string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid flight parameter %s = %g: %s", e.Parameter, e.Value, e.Reason)
}

func newInvalidInputError(parameter string, value float64, reason string) error {
	return &InvalidInputError{Parameter: parameter, Value: value, Reason: reason}
}
