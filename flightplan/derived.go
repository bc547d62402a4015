package flightplan

import (
	"github.com/pkg/errors"

	"go.viam.com/flightplanner/camera"
	"go.viam.com/flightplanner/utils"
)

// errNotComputed is returned by the helpers below when Compute has not succeeded yet.
var errNotComputed = errors.New("flight plan has not been computed")

func (p *Planner) requireSwath() error {
	if !p.computed || p.params.SwathM == nil {
		return errNotComputed
	}
	return nil
}

// ForwardOverlapFor returns the forward overlap in percent that a base length of baseM meters
// gives for the computed swath.
func (p *Planner) ForwardOverlapFor(baseM float64) (float64, error) {
	if err := p.requireSwath(); err != nil {
		return 0, err
	}
	if baseM < 0 || baseM > p.params.SwathM.Y {
		return 0, newInvalidInputError(KeyBaseLengthM, baseM, "must be between 0 and the along-track swath")
	}
	return utils.FractionToPercent(1 - baseM/p.params.SwathM.Y), nil
}

// SideOverlapFor returns the side overlap in percent that a strip offset of stripM meters gives
// for the computed swath.
func (p *Planner) SideOverlapFor(stripM float64) (float64, error) {
	if err := p.requireSwath(); err != nil {
		return 0, err
	}
	if stripM < 0 || stripM > p.params.SwathM.X {
		return 0, newInvalidInputError(KeyStripOffsetM, stripM, "must be between 0 and the across-track swath")
	}
	return utils.FractionToPercent(1 - stripM/p.params.SwathM.X), nil
}

// AbsoluteHeight returns the flying height above the datum for ground at groundM meters.
func (p *Planner) AbsoluteHeight(groundM float64) (float64, error) {
	if !p.computed {
		return 0, errNotComputed
	}
	return *p.params.HeightM + groundM, nil
}

// ExposureInterval returns the time in seconds between exposures at a ground speed of speedMPS.
func (p *Planner) ExposureInterval(speedMPS float64) (float64, error) {
	if !p.computed {
		return 0, errNotComputed
	}
	if !utils.IsFinitePositive(speedMPS) {
		return 0, newInvalidInputError("speed_mps", speedMPS, "must be positive")
	}
	return *p.params.BaseLengthM / speedMPS, nil
}

// MotionBlurPx returns the image motion in pixels during one exposure at a ground speed of
// speedMPS. The camera must have an exposure time.
func (p *Planner) MotionBlurPx(speedMPS float64) (float64, error) {
	if !p.computed {
		return 0, errNotComputed
	}
	if speedMPS < 0 {
		return 0, newInvalidInputError("speed_mps", speedMPS, "must not be negative")
	}
	exposure, ok := p.cam.ExposureS()
	if !ok {
		return 0, camera.NewMissingParameterError("exposure_s", "motion blur")
	}
	return speedMPS * exposure / utils.CMToMeters(*p.params.GSDCM), nil
}

// MaxGroundSpeed returns the fastest ground speed in m/s at which the camera frame rate can still
// keep the base length.
func (p *Planner) MaxGroundSpeed() (float64, error) {
	if !p.computed {
		return 0, errNotComputed
	}
	fps, ok := p.cam.MaxFPS()
	if !ok {
		return 0, camera.NewMissingParameterError("max_fps", "maximum ground speed")
	}
	return *p.params.BaseLengthM * fps, nil
}
