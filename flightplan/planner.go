// Package flightplan computes photogrammetric flight parameters (photo scale, ground swath, base
// length, strip offset, ground sample distance and ground area) for a camera and a set of flight
// inputs.
package flightplan

import (
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"

	"go.viam.com/flightplanner/camera"
	"go.viam.com/flightplanner/logging"
	"go.viam.com/flightplanner/utils"
)

// Planner solves a flight plan for one camera. It references the camera without owning it.
//
// The inputs (height, gsd, overlaps) are kept apart from the computed parameters. Compute
// resolves a fresh parameter set from the inputs and only replaces the current one on success.
// A Planner is not safe for concurrent use.
type Planner struct {
	cam       *camera.Model
	logger    logging.Logger
	tolerance float64

	heightM           *float64
	gsdCM             *float64
	forwardOverlapPct *float64
	sideOverlapPct    *float64

	params   Parameters
	warnings []error
	computed bool
}

// NewPlanner returns a planner for cam seeded with the inputs of conf. Nothing is computed until
// Compute or one of the setters is called.
func NewPlanner(cam *camera.Model, conf *Config, logger logging.Logger) (*Planner, error) {
	if cam == nil {
		return nil, camera.NewMissingParameterError("camera", "flight plan")
	}
	if conf == nil {
		conf = &Config{}
	}
	if err := conf.Validate("flight"); err != nil {
		return nil, err
	}
	p := &Planner{
		cam:               cam,
		logger:            logging.OrGlobal(logger),
		tolerance:         DefaultConflictTolerance,
		heightM:           copyFloat(conf.HeightM),
		gsdCM:             copyFloat(conf.GSDCM),
		forwardOverlapPct: copyFloat(conf.ForwardOverlapPct),
		sideOverlapPct:    copyFloat(conf.SideOverlapPct),
	}
	if conf.ConflictTolerance != nil {
		p.tolerance = *conf.ConflictTolerance
	}
	p.params = p.inputs()
	return p, nil
}

// inputs returns a parameter set holding only the given inputs.
func (p *Planner) inputs() Parameters {
	return Parameters{
		HeightM:           copyFloat(p.heightM),
		GSDCM:             copyFloat(p.gsdCM),
		ForwardOverlapPct: copyFloat(p.forwardOverlapPct),
		SideOverlapPct:    copyFloat(p.sideOverlapPct),
	}
}

// Camera returns the camera the plan is computed for.
func (p *Planner) Camera() *camera.Model {
	return p.cam
}

// Parameters returns a copy of the current parameter set.
func (p *Planner) Parameters() Parameters {
	return p.params.clone()
}

// Computed returns true once Compute has succeeded.
func (p *Planner) Computed() bool {
	return p.computed
}

// Warnings returns the non-fatal problems found by the last successful Compute.
func (p *Planner) Warnings() []error {
	return append([]error(nil), p.warnings...)
}

// Height returns the flying height above ground in meters, given or computed.
func (p *Planner) Height() (float64, bool) {
	return value(p.params.HeightM)
}

// GSD returns the ground sample distance in cm/px, given or computed.
func (p *Planner) GSD() (float64, bool) {
	return value(p.params.GSDCM)
}

// ForwardOverlap returns the forward overlap in percent.
func (p *Planner) ForwardOverlap() (float64, bool) {
	return value(p.params.ForwardOverlapPct)
}

// SideOverlap returns the side overlap in percent.
func (p *Planner) SideOverlap() (float64, bool) {
	return value(p.params.SideOverlapPct)
}

func value(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// SetHeight makes h the driving input, dropping a given gsd, and recomputes the plan. If the
// recompute fails the previous inputs and parameters are kept.
func (p *Planner) SetHeight(h float64) error {
	if err := validatePositive(KeyHeightM, h); err != nil {
		return err
	}
	return p.update(func() {
		p.heightM = &h
		p.gsdCM = nil
	})
}

// SetGSD makes gsd the driving input, dropping a given height, and recomputes the plan.
func (p *Planner) SetGSD(gsd float64) error {
	if err := validatePositive(KeyGSDCM, gsd); err != nil {
		return err
	}
	return p.update(func() {
		p.gsdCM = &gsd
		p.heightM = nil
	})
}

// SetForwardOverlap sets the forward overlap in percent and recomputes the plan.
func (p *Planner) SetForwardOverlap(pct float64) error {
	if err := validateOverlap(KeyForwardOverlapPct, pct); err != nil {
		return err
	}
	return p.update(func() { p.forwardOverlapPct = &pct })
}

// SetSideOverlap sets the side overlap in percent and recomputes the plan.
func (p *Planner) SetSideOverlap(pct float64) error {
	if err := validateOverlap(KeySideOverlapPct, pct); err != nil {
		return err
	}
	return p.update(func() { p.sideOverlapPct = &pct })
}

// update applies a change to the inputs and recomputes, restoring the inputs on failure.
func (p *Planner) update(change func()) error {
	height, gsd, forward, side := p.heightM, p.gsdCM, p.forwardOverlapPct, p.sideOverlapPct
	change()
	if err := p.Compute(); err != nil {
		p.heightM, p.gsdCM, p.forwardOverlapPct, p.sideOverlapPct = height, gsd, forward, side
		return err
	}
	return nil
}

// Compute resolves every flight parameter from the inputs:
//
//  1. missing overlaps default to 60% forward and 40% side;
//  2. with neither height nor gsd the height defaults to 120m; a gsd alone yields the scale and
//     height, a height alone yields the scale and gsd; with both, the height drives the plan and
//     a disagreeing gsd is reported as a ParameterConflictWarning;
//  3. base length, strip offset and ground area follow from the swath.
//
// On error the current parameters are left untouched.
func (p *Planner) Compute() error {
	params := p.inputs()
	var warnings []error

	if params.ForwardOverlapPct == nil {
		params.ForwardOverlapPct = floatPtr(DefaultForwardOverlapPct)
	}
	if params.SideOverlapPct == nil {
		params.SideOverlapPct = floatPtr(DefaultSideOverlapPct)
	}

	switch {
	case params.HeightM == nil && params.GSDCM == nil:
		params.HeightM = floatPtr(DefaultHeightM)
		p.logger.Debugw("no height or gsd given, using default height", "height_m", DefaultHeightM)
		if err := params.scaleFromHeight(p.cam, *params.HeightM); err != nil {
			return err
		}
		if err := params.calculateGSD(p.cam); err != nil {
			return err
		}
	case params.HeightM == nil:
		if err := params.scaleFromGSD(p.cam, *params.GSDCM); err != nil {
			return err
		}
		if err := params.calculateHeight(p.cam); err != nil {
			return err
		}
	case params.GSDCM == nil:
		if err := params.scaleFromHeight(p.cam, *params.HeightM); err != nil {
			return err
		}
		if err := params.calculateGSD(p.cam); err != nil {
			return err
		}
	default:
		if err := params.scaleFromHeight(p.cam, *params.HeightM); err != nil {
			return err
		}
		warning, err := p.checkConflict(&params)
		if err != nil {
			return err
		}
		if warning != nil {
			p.logger.Warnw("height and gsd disagree, keeping the height", "error", warning.Error())
			warnings = append(warnings, warning)
		}
	}

	if err := params.calculateBase(); err != nil {
		return err
	}
	if err := params.calculateStripOffset(); err != nil {
		return err
	}
	if err := params.calculatePhotoArea(); err != nil {
		return err
	}

	p.params = params
	p.warnings = warnings
	p.computed = true
	p.logger.Debugw("flight plan computed", "camera", p.cam.Name(), "parameters", params.AsMap())
	return nil
}

// checkConflict compares the swath already derived from the height with the one implied by the
// gsd.
func (p *Planner) checkConflict(params *Parameters) (*ParameterConflictWarning, error) {
	var fromGSD Parameters
	if err := fromGSD.scaleFromGSD(p.cam, *params.GSDCM); err != nil {
		return nil, err
	}
	heightSwath, gsdSwath := *params.SwathM, *fromGSD.SwathM
	if scalar.EqualWithinRel(heightSwath.X, gsdSwath.X, p.tolerance) &&
		scalar.EqualWithinRel(heightSwath.Y, gsdSwath.Y, p.tolerance) {
		return nil, nil
	}
	return &ParameterConflictWarning{
		HeightM:      *params.HeightM,
		GSDCM:        *params.GSDCM,
		HeightSwathM: heightSwath,
		GSDSwathM:    gsdSwath,
		Tolerance:    p.tolerance,
	}, nil
}

// ScaleFromHeight sets the photo scale number and swath for a flying height h in meters.
//
// The single steps below write into the current parameters without recomputing the rest, so
// each one marks the plan as not computed until Compute runs again.
func (p *Planner) ScaleFromHeight(h float64) error {
	return p.step(func() error { return p.params.scaleFromHeight(p.cam, h) })
}

// ScaleFromGSD sets the photo scale number and swath for a ground sample distance in cm/px.
func (p *Planner) ScaleFromGSD(gsd float64) error {
	return p.step(func() error { return p.params.scaleFromGSD(p.cam, gsd) })
}

// CalculateGSD sets the gsd from the photo scale number.
func (p *Planner) CalculateGSD() error {
	return p.step(func() error { return p.params.calculateGSD(p.cam) })
}

// CalculateHeight sets the flying height from the photo scale number.
func (p *Planner) CalculateHeight() error {
	return p.step(func() error { return p.params.calculateHeight(p.cam) })
}

// CalculateBase sets the distance between consecutive exposures.
func (p *Planner) CalculateBase() error {
	return p.step(p.params.calculateBase)
}

// CalculateStripOffset sets the distance between adjacent strips.
func (p *Planner) CalculateStripOffset() error {
	return p.step(p.params.calculateStripOffset)
}

// CalculatePhotoArea sets the ground area covered by one image.
func (p *Planner) CalculatePhotoArea() error {
	return p.step(p.params.calculatePhotoArea)
}

// step runs one solver step on the current parameters. A successful step leaves the other
// derived values stale, so the plan is no longer computed.
func (p *Planner) step(run func() error) error {
	if err := run(); err != nil {
		return err
	}
	p.computed = false
	p.warnings = nil
	return nil
}

// The steps below compute every value before writing any, so a failed step leaves params as it
// was.

func (params *Parameters) scaleFromHeight(cam *camera.Model, h float64) error {
	if err := validatePositive(KeyHeightM, h); err != nil {
		return err
	}
	f, err := cam.FocalLengthMeters()
	if err != nil {
		return err
	}
	sensor, err := cam.SensorSizeMeters()
	if err != nil {
		return err
	}
	m := h / f
	swath := sensor.Mul(m)
	params.PhotoScale = &m
	params.SwathM = &swath
	return nil
}

func (params *Parameters) scaleFromGSD(cam *camera.Model, gsd float64) error {
	if err := validatePositive(KeyGSDCM, gsd); err != nil {
		return err
	}
	img, err := cam.ImageSizePx()
	if err != nil {
		return err
	}
	sensor, err := cam.SensorSizeMeters()
	if err != nil {
		return err
	}
	swath := r2.Point{X: float64(img.X), Y: float64(img.Y)}.Mul(utils.CMToMeters(gsd))
	m := swath.X / sensor.X
	params.PhotoScale = &m
	params.SwathM = &swath
	return nil
}

func (params *Parameters) calculateGSD(cam *camera.Model) error {
	if params.PhotoScale == nil {
		return camera.NewMissingParameterError(KeyPhotoScale, "ground sample distance")
	}
	sensor, err := cam.SensorSizeMeters()
	if err != nil {
		return err
	}
	img, err := cam.ImageSizePx()
	if err != nil {
		return err
	}
	swathX := *params.PhotoScale * sensor.X
	gsd := utils.MetersToCM(swathX) / float64(img.X)
	params.GSDCM = &gsd
	return nil
}

func (params *Parameters) calculateHeight(cam *camera.Model) error {
	if params.PhotoScale == nil {
		return camera.NewMissingParameterError(KeyPhotoScale, "flying height")
	}
	f, err := cam.FocalLengthMeters()
	if err != nil {
		return err
	}
	h := *params.PhotoScale * f
	params.HeightM = &h
	return nil
}

func (params *Parameters) calculateBase() error {
	if params.SwathM == nil {
		return camera.NewMissingParameterError(KeySwathM, "base length")
	}
	if params.ForwardOverlapPct == nil {
		return camera.NewMissingParameterError(KeyForwardOverlapPct, "base length")
	}
	base := params.SwathM.Y * (1 - utils.PercentToFraction(*params.ForwardOverlapPct))
	params.BaseLengthM = &base
	return nil
}

func (params *Parameters) calculateStripOffset() error {
	if params.SwathM == nil {
		return camera.NewMissingParameterError(KeySwathM, "strip offset")
	}
	if params.SideOverlapPct == nil {
		return camera.NewMissingParameterError(KeySideOverlapPct, "strip offset")
	}
	offset := params.SwathM.X * (1 - utils.PercentToFraction(*params.SideOverlapPct))
	params.StripOffsetM = &offset
	return nil
}

func (params *Parameters) calculatePhotoArea() error {
	if params.SwathM == nil {
		return camera.NewMissingParameterError(KeySwathM, "ground area")
	}
	area := params.SwathM.X * params.SwathM.Y
	params.GroundAreaM2 = &area
	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}
