package camera

import (
	"fmt"
)

// MissingParameterError is returned when a value required for a derivation is absent.
type MissingParameterError struct {
	Parameter string
	// Needed names the derivation that required the parameter, if any.
	Needed string
}

func (e *MissingParameterError) Error() string {
	if e.Needed == "" {
		return fmt.Sprintf("missing parameter %q", e.Parameter)
	}
	return fmt.Sprintf("missing parameter %q, needed to compute %s", e.Parameter, e.Needed)
}

// NewMissingParameterError is used when a parameter needed for the derivation of `needed` is
// not set.
func NewMissingParameterError(parameter, needed string) error {
	return &MissingParameterError{Parameter: parameter, Needed: needed}
}

// InvalidCameraParameterError is returned when a geometric parameter is zero, negative or
// otherwise physically invalid, so that a derivation would divide by zero or produce NaN/Inf.
type InvalidCameraParameterError struct {
	Parameter string
	Value     interface{}
	Reason    string
}

func (e *InvalidCameraParameterError) Error() string {
	return fmt.Sprintf("invalid camera parameter %s = %v: %s", e.Parameter, e.Value, e.Reason)
}

// NewInvalidCameraParameterError is used when a camera parameter has an unusable value.
func NewInvalidCameraParameterError(parameter string, value interface{}, reason string) error {
	return &InvalidCameraParameterError{Parameter: parameter, Value: value, Reason: reason}
}

// InvalidExposureError is returned when an exposure time does not fit in the frame period
// (exposure must be shorter than 1/max_fps), or when exposure or frame rate are not positive.
type InvalidExposureError struct {
	ExposureS float64
	MaxFPS    float64
	Reason    string
}

func (e *InvalidExposureError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid exposure %gs (max_fps %g): %s", e.ExposureS, e.MaxFPS, e.Reason)
	}
	return fmt.Sprintf("exposure %gs exceeds the frame period %gs of max_fps %g",
		e.ExposureS, 1/e.MaxFPS, e.MaxFPS)
}
