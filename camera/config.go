package camera

import (
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/flightplanner/utils"
)

// DefaultName is used when a camera config does not carry a name.
const DefaultName = "camera"

// Config holds the recognized camera options. Every length carries its unit in the name. Optional
// scalars are pointers so that an explicit zero is distinguishable from an absent value.
type Config struct {
	Name          string    `json:"name,omitempty"`
	FocalLengthMM *float64  `json:"focal_length_mm,omitempty"`
	PixelSizeM    *float64  `json:"pixel_size_m,omitempty"`
	ImageSizePx   []int     `json:"image_size_px,omitempty"`
	SensorSizeMM  []float64 `json:"sensor_size_mm,omitempty"`
	FOVDeg        []float64 `json:"fov_deg,omitempty"`
	DFOVDeg       *float64  `json:"dfov_deg,omitempty"`
	MaxFPS        *float64  `json:"max_fps,omitempty"`
	ExposureS     *float64  `json:"exposure_s,omitempty"`
}

// Validate checks that every supplied value is physically meaningful and that the sensor size can
// be derived when it is not given. All problems found are returned together.
func (conf *Config) Validate(path string) error {
	if conf == nil {
		return goutils.NewConfigValidationError(path, NewMissingParameterError("camera", ""))
	}
	var errs error
	add := func(err error) {
		if err == nil {
			return
		}
		errs = multierr.Append(errs, goutils.NewConfigValidationError(path, err))
	}

	if conf.FocalLengthMM != nil && !utils.IsFinitePositive(*conf.FocalLengthMM) {
		add(NewInvalidCameraParameterError("focal_length_mm", *conf.FocalLengthMM, "must be positive"))
	}
	if conf.PixelSizeM != nil && !utils.IsFinitePositive(*conf.PixelSizeM) {
		add(NewInvalidCameraParameterError("pixel_size_m", *conf.PixelSizeM, "must be positive"))
	}
	if conf.ImageSizePx != nil {
		if len(conf.ImageSizePx) != 2 {
			add(NewInvalidCameraParameterError("image_size_px", conf.ImageSizePx, "must have exactly 2 elements"))
		} else if conf.ImageSizePx[0] <= 0 || conf.ImageSizePx[1] <= 0 {
			add(NewInvalidCameraParameterError("image_size_px", conf.ImageSizePx, "dimensions must be positive"))
		}
	}
	if conf.SensorSizeMM != nil {
		add(checkPositivePair("sensor_size_mm", conf.SensorSizeMM))
	}
	if conf.FOVDeg != nil {
		if err := checkPositivePair("fov_deg", conf.FOVDeg); err != nil {
			add(err)
		} else if conf.FOVDeg[0] >= maxFOVDeg || conf.FOVDeg[1] >= maxFOVDeg {
			add(NewInvalidCameraParameterError("fov_deg", conf.FOVDeg, "angles must be below 180 degrees"))
		}
	}
	if conf.DFOVDeg != nil && (!utils.IsFinitePositive(*conf.DFOVDeg) || *conf.DFOVDeg >= maxFOVDeg) {
		add(NewInvalidCameraParameterError("dfov_deg", *conf.DFOVDeg, "must be between 0 and 180 degrees"))
	}
	if conf.SensorSizeMM == nil {
		if conf.PixelSizeM == nil {
			add(NewMissingParameterError("pixel_size_m", "sensor_size_mm"))
		}
		if conf.ImageSizePx == nil {
			add(NewMissingParameterError("image_size_px", "sensor_size_mm"))
		}
	}
	if conf.MaxFPS != nil && !utils.IsFinitePositive(*conf.MaxFPS) {
		add(&InvalidExposureError{MaxFPS: *conf.MaxFPS, Reason: "max_fps must be positive"})
	}
	if conf.ExposureS != nil && !utils.IsFinitePositive(*conf.ExposureS) {
		add(&InvalidExposureError{ExposureS: *conf.ExposureS, Reason: "exposure must be positive"})
	}
	return errs
}

// maxFOVDeg is the exclusive upper bound of a pinhole field of view.
const maxFOVDeg = 180.0

// checkPositivePair returns nil only for a 2-vector of finite positive values.
func checkPositivePair(name string, pair []float64) error {
	if len(pair) != 2 {
		return NewInvalidCameraParameterError(name, pair, "must have exactly 2 elements")
	}
	for _, v := range pair {
		if !utils.IsFinitePositive(v) {
			return NewInvalidCameraParameterError(name, pair, "dimensions must be positive")
		}
	}
	return nil
}
