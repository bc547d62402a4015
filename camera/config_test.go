package camera

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"
)

func TestConfigValidate(t *testing.T) {
	f := 3.98
	pixel := 3.75e-6
	zero := 0.0
	negative := -1.0
	nan := math.NaN()
	wide := 200.0

	for _, tc := range []struct {
		name      string
		conf      Config
		parameter string
		missing   bool
		exposure  bool
	}{
		{"zero focal length", Config{FocalLengthMM: &zero, PixelSizeM: &pixel, ImageSizePx: []int{2, 2}}, "focal_length_mm", false, false},
		{"nan pixel size", Config{FocalLengthMM: &f, PixelSizeM: &nan, ImageSizePx: []int{2, 2}}, "pixel_size_m", false, false},
		{"short image size", Config{FocalLengthMM: &f, PixelSizeM: &pixel, ImageSizePx: []int{2}}, "image_size_px", false, false},
		{"negative image size", Config{FocalLengthMM: &f, PixelSizeM: &pixel, ImageSizePx: []int{-2, 2}}, "image_size_px", false, false},
		{"zero sensor size", Config{FocalLengthMM: &f, SensorSizeMM: []float64{0, 1}}, "sensor_size_mm", false, false},
		{"bad fov", Config{FocalLengthMM: &f, SensorSizeMM: []float64{1, 1}, FOVDeg: []float64{1, 2, 3}}, "fov_deg", false, false},
		{"flat fov", Config{SensorSizeMM: []float64{1, 1}, FOVDeg: []float64{180, 60}}, "fov_deg", false, false},
		{"wide dfov", Config{FocalLengthMM: &f, SensorSizeMM: []float64{1, 1}, DFOVDeg: &wide}, "dfov_deg", false, false},
		{"no pixel size", Config{FocalLengthMM: &f, ImageSizePx: []int{2, 2}}, "pixel_size_m", true, false},
		{"no image size", Config{FocalLengthMM: &f, PixelSizeM: &pixel}, "image_size_px", true, false},
		{"negative fps", Config{SensorSizeMM: []float64{1, 1}, MaxFPS: &negative}, "", false, true},
		{"zero exposure", Config{SensorSizeMM: []float64{1, 1}, ExposureS: &zero}, "", false, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.conf.Validate("camera")
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, `"camera"`)

			switch {
			case tc.exposure:
				var invalid *InvalidExposureError
				test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)
			case tc.missing:
				var missing *MissingParameterError
				test.That(t, errors.As(err, &missing), test.ShouldBeTrue)
				test.That(t, missing.Parameter, test.ShouldEqual, tc.parameter)
			default:
				var invalid *InvalidCameraParameterError
				test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)
				test.That(t, invalid.Parameter, test.ShouldEqual, tc.parameter)
			}

			_, err = NewModel(&tc.conf, nil)
			test.That(t, err, test.ShouldNotBeNil)
		})
	}
}

func TestConfigValidateCollectsAll(t *testing.T) {
	zero := 0.0
	conf := Config{FocalLengthMM: &zero}
	err := conf.Validate("cameras.0")
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 3)
	test.That(t, err.Error(), test.ShouldContainSubstring, "focal_length_mm")
	test.That(t, err.Error(), test.ShouldContainSubstring, "pixel_size_m")
	test.That(t, err.Error(), test.ShouldContainSubstring, "image_size_px")

	var nilConf *Config
	test.That(t, nilConf.Validate("camera"), test.ShouldNotBeNil)

	for _, name := range PresetNames() {
		preset := Presets[name]
		test.That(t, preset.Validate(name), test.ShouldBeNil)
	}
}
