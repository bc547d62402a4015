package flightplan

import (
	"math"

	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/flightplanner/utils"
)

// Defaults applied by Compute for inputs that were not given.
const (
	DefaultForwardOverlapPct = 60.
	DefaultSideOverlapPct    = 40.
	// DefaultHeightM is the flying height ceiling for light unmanned aircraft.
	DefaultHeightM           = 120.
	DefaultConflictTolerance = 0.01
)

// Config holds the flight inputs. Height and gsd are alternatives; when both are given the height
// drives the plan and the gsd is only checked against it.
type Config struct {
	HeightM           *float64 `json:"height_m,omitempty"`
	GSDCM             *float64 `json:"gsd_cm,omitempty"`
	ForwardOverlapPct *float64 `json:"forward_overlap_pct,omitempty"`
	SideOverlapPct    *float64 `json:"side_overlap_pct,omitempty"`
	// ConflictTolerance is the relative tolerance used to compare the swaths implied by height and
	// gsd.
	ConflictTolerance *float64 `json:"conflict_tolerance,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (conf *Config) Validate(path string) error {
	if conf == nil {
		return nil
	}
	var errs error
	add := func(err error) {
		if err != nil {
			errs = multierr.Append(errs, goutils.NewConfigValidationError(path, err))
		}
	}
	if conf.HeightM != nil {
		add(validatePositive("height_m", *conf.HeightM))
	}
	if conf.GSDCM != nil {
		add(validatePositive("gsd_cm", *conf.GSDCM))
	}
	if conf.ForwardOverlapPct != nil {
		add(validateOverlap("forward_overlap_pct", *conf.ForwardOverlapPct))
	}
	if conf.SideOverlapPct != nil {
		add(validateOverlap("side_overlap_pct", *conf.SideOverlapPct))
	}
	if conf.ConflictTolerance != nil {
		add(validatePositive("conflict_tolerance", *conf.ConflictTolerance))
	}
	return errs
}

func validatePositive(name string, v float64) error {
	if !utils.IsFinitePositive(v) {
		return newInvalidInputError(name, v, "must be positive")
	}
	return nil
}

func validateOverlap(name string, pct float64) error {
	if math.IsNaN(pct) || pct < 0 || pct > utils.PercentPerUnit {
		return newInvalidInputError(name, pct, "must be between 0 and 100")
	}
	return nil
}
