// Package camera implements the pinhole camera model used for flight planning.
package camera

import (
	"fmt"
	"image"

	"github.com/golang/geo/r2"

	"go.viam.com/flightplanner/logging"
	"go.viam.com/flightplanner/utils"
)

// Model holds the intrinsics of a pinhole camera. The geometry (focal length, pixel size, image
// size, sensor size) is fixed at construction; a different geometry needs a new Model. Only the
// name and the exposure timing can change afterwards.
//
// A Model may be shared read-only by many flight plans. Changing its name or timing while a plan
// is computing is the caller's responsibility.
type Model struct {
	name string

	focalLengthMM *float64
	pixelSizeM    *float64
	imageSize     *image.Point
	// sensorSize is in meters and is always set after NewModel.
	sensorSize r2.Point

	fovDeg  *r2.Point
	dfovDeg *float64

	maxFPS    *float64
	exposureS *float64

	logger logging.Logger
}

// NewModel validates conf and builds a camera. When the sensor size is not supplied it is derived
// as pixel_size * image_size. The focal length and the field of view are derived from each other
// when only one of them is supplied.
func NewModel(conf *Config, logger logging.Logger) (*Model, error) {
	if err := conf.Validate("camera"); err != nil {
		return nil, err
	}
	logger = logging.OrGlobal(logger)

	m := &Model{
		name:          conf.Name,
		focalLengthMM: copyFloat(conf.FocalLengthMM),
		pixelSizeM:    copyFloat(conf.PixelSizeM),
		dfovDeg:       copyFloat(conf.DFOVDeg),
		logger:        logger,
	}
	if m.name == "" {
		m.name = DefaultName
	}
	if conf.ImageSizePx != nil {
		m.imageSize = &image.Point{X: conf.ImageSizePx[0], Y: conf.ImageSizePx[1]}
	}

	if conf.SensorSizeMM != nil {
		m.sensorSize = r2.Point{
			X: utils.MMToMeters(conf.SensorSizeMM[0]),
			Y: utils.MMToMeters(conf.SensorSizeMM[1]),
		}
	} else {
		m.sensorSize = r2.Point{X: float64(m.imageSize.X), Y: float64(m.imageSize.Y)}.Mul(*m.pixelSizeM)
		logger.Debugw("derived sensor size from pixel size and image size",
			"camera", m.name, "sensor_size_m", []float64{m.sensorSize.X, m.sensorSize.Y})
	}

	if conf.FOVDeg != nil {
		m.fovDeg = &r2.Point{X: conf.FOVDeg[0], Y: conf.FOVDeg[1]}
		if m.focalLengthMM == nil {
			f := utils.MetersToMM(utils.DistanceForAngle(m.sensorSize.X, m.fovDeg.X))
			m.focalLengthMM = &f
			logger.Debugw("derived focal length from horizontal field of view", "camera", m.name, "focal_length_mm", f)
		}
	} else if m.focalLengthMM != nil {
		f := utils.MMToMeters(*m.focalLengthMM)
		m.fovDeg = &r2.Point{X: utils.AngleOfView(m.sensorSize.X, f), Y: utils.AngleOfView(m.sensorSize.Y, f)}
	}
	if m.dfovDeg == nil && m.focalLengthMM != nil {
		dfov := utils.AngleOfView(m.sensorSize.Norm(), utils.MMToMeters(*m.focalLengthMM))
		m.dfovDeg = &dfov
	}

	if conf.MaxFPS != nil {
		if err := m.SetMaxFPS(*conf.MaxFPS); err != nil {
			return nil, err
		}
	}
	if conf.ExposureS != nil {
		if err := m.SetExposure(*conf.ExposureS); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Name returns the camera name, used to name output artifacts.
func (m *Model) Name() string {
	return m.name
}

// SetName changes the camera name.
func (m *Model) SetName(name string) {
	m.name = name
}

// FocalLengthMM returns the principal distance in millimeters, if known.
func (m *Model) FocalLengthMM() (float64, bool) {
	if m.focalLengthMM == nil {
		return 0, false
	}
	return *m.focalLengthMM, true
}

// PixelSizeM returns the physical pixel size in meters, if known.
func (m *Model) PixelSizeM() (float64, bool) {
	if m.pixelSizeM == nil {
		return 0, false
	}
	return *m.pixelSizeM, true
}

// ImageSize returns the resolution in pixels, if known.
func (m *Model) ImageSize() (image.Point, bool) {
	if m.imageSize == nil {
		return image.Point{}, false
	}
	return *m.imageSize, true
}

// SensorSizeM returns the physical sensor dimensions in meters.
func (m *Model) SensorSizeM() r2.Point {
	return m.sensorSize
}

// FOVDeg returns the horizontal and vertical field of view in degrees, if known.
func (m *Model) FOVDeg() (r2.Point, bool) {
	if m.fovDeg == nil {
		return r2.Point{}, false
	}
	return *m.fovDeg, true
}

// DFOVDeg returns the diagonal field of view in degrees, if known.
func (m *Model) DFOVDeg() (float64, bool) {
	if m.dfovDeg == nil {
		return 0, false
	}
	return *m.dfovDeg, true
}

// MaxFPS returns the maximum frame rate, if known.
func (m *Model) MaxFPS() (float64, bool) {
	if m.maxFPS == nil {
		return 0, false
	}
	return *m.maxFPS, true
}

// ExposureS returns the exposure time in seconds, if known.
func (m *Model) ExposureS() (float64, bool) {
	if m.exposureS == nil {
		return 0, false
	}
	return *m.exposureS, true
}

// SetExposure stores a new exposure time. If no frame rate is known, the frame rate is set to
// 1/exposure. Otherwise the exposure must be shorter than the frame period 1/max_fps. A rejected
// exposure leaves the camera unchanged.
func (m *Model) SetExposure(exposureS float64) error {
	if !utils.IsFinitePositive(exposureS) {
		return &InvalidExposureError{ExposureS: exposureS, Reason: "exposure must be positive"}
	}
	if m.maxFPS == nil {
		fps := 1 / exposureS
		m.maxFPS = &fps
		m.exposureS = &exposureS
		m.logger.Debugw("max_fps bootstrapped from exposure", "camera", m.name, "exposure_s", exposureS, "max_fps", fps)
		return nil
	}
	if exposureS < 1 / *m.maxFPS {
		m.exposureS = &exposureS
		return nil
	}
	return &InvalidExposureError{ExposureS: exposureS, MaxFPS: *m.maxFPS}
}

// SetMaxFPS stores a new maximum frame rate. A stored exposure must still fit in the new frame
// period; otherwise the frame rate is rejected and the camera is unchanged.
func (m *Model) SetMaxFPS(fps float64) error {
	if !utils.IsFinitePositive(fps) {
		return &InvalidExposureError{MaxFPS: fps, Reason: "max_fps must be positive"}
	}
	if m.exposureS != nil && *m.exposureS >= 1/fps {
		return &InvalidExposureError{ExposureS: *m.exposureS, MaxFPS: fps}
	}
	m.maxFPS = &fps
	return nil
}

// FocalLengthMeters returns the focal length in meters for use as a divisor or factor.
func (m *Model) FocalLengthMeters() (float64, error) {
	if m.focalLengthMM == nil {
		return 0, NewMissingParameterError("focal_length_mm", "photo scale")
	}
	if !utils.IsFinitePositive(*m.focalLengthMM) {
		return 0, NewInvalidCameraParameterError("focal_length_mm", *m.focalLengthMM, "must be positive")
	}
	return utils.MMToMeters(*m.focalLengthMM), nil
}

// SensorSizeMeters returns the sensor size, checked for use as a divisor.
func (m *Model) SensorSizeMeters() (r2.Point, error) {
	if !utils.IsFinitePositive(m.sensorSize.X) || !utils.IsFinitePositive(m.sensorSize.Y) {
		return r2.Point{}, NewInvalidCameraParameterError("sensor_size",
			[]float64{m.sensorSize.X, m.sensorSize.Y}, "dimensions must be positive")
	}
	return m.sensorSize, nil
}

// ImageSizePx returns the image size, checked for use as a divisor.
func (m *Model) ImageSizePx() (image.Point, error) {
	if m.imageSize == nil {
		return image.Point{}, NewMissingParameterError("image_size_px", "ground sample distance")
	}
	if m.imageSize.X <= 0 || m.imageSize.Y <= 0 {
		return image.Point{}, NewInvalidCameraParameterError("image_size_px",
			[]int{m.imageSize.X, m.imageSize.Y}, "dimensions must be positive")
	}
	return *m.imageSize, nil
}

// Attributes returns the camera as plain key/value pairs using the config keys. Unset values
// are omitted and 2-vectors are slices.
func (m *Model) Attributes() map[string]interface{} {
	attrs := map[string]interface{}{
		"name":           m.name,
		"sensor_size_mm": []float64{utils.MetersToMM(m.sensorSize.X), utils.MetersToMM(m.sensorSize.Y)},
	}
	if f, ok := m.FocalLengthMM(); ok {
		attrs["focal_length_mm"] = f
	}
	if p, ok := m.PixelSizeM(); ok {
		attrs["pixel_size_m"] = p
	}
	if size, ok := m.ImageSize(); ok {
		attrs["image_size_px"] = []int{size.X, size.Y}
	}
	if fov, ok := m.FOVDeg(); ok {
		attrs["fov_deg"] = []float64{fov.X, fov.Y}
	}
	if dfov, ok := m.DFOVDeg(); ok {
		attrs["dfov_deg"] = dfov
	}
	if fps, ok := m.MaxFPS(); ok {
		attrs["max_fps"] = fps
	}
	if exposure, ok := m.ExposureS(); ok {
		attrs["exposure_s"] = exposure
	}
	return attrs
}

// String returns a short description of the camera.
func (m *Model) String() string {
	f, _ := m.FocalLengthMM()
	return fmt.Sprintf("%s (f=%gmm, sensor=%.4gx%.4gm)", m.name, f, m.sensorSize.X, m.sensorSize.Y)
}
