package camera

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/flightplanner/logging"
)

func sequoiaConfig(t *testing.T) *Config {
	t.Helper()
	conf, err := PresetConfig("sequoia")
	test.That(t, err, test.ShouldBeNil)
	return conf
}

func TestSensorSizeDerivation(t *testing.T) {
	logger := logging.NewTestLogger(t)
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			conf, err := PresetConfig(name)
			test.That(t, err, test.ShouldBeNil)
			cam, err := NewModel(conf, logger)
			test.That(t, err, test.ShouldBeNil)

			sensor := cam.SensorSizeM()
			test.That(t, sensor.X, test.ShouldAlmostEqual, *conf.PixelSizeM*float64(conf.ImageSizePx[0]), 1e-15)
			test.That(t, sensor.Y, test.ShouldAlmostEqual, *conf.PixelSizeM*float64(conf.ImageSizePx[1]), 1e-15)
		})
	}

	cam, err := NewModel(sequoiaConfig(t), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cam.SensorSizeM().X, test.ShouldAlmostEqual, 0.0048, 1e-12)
	test.That(t, cam.SensorSizeM().Y, test.ShouldAlmostEqual, 0.0036, 1e-12)
	test.That(t, cam.Name(), test.ShouldEqual, "sequoia")
}

func TestSuppliedSensorSize(t *testing.T) {
	f := 8.8
	conf := &Config{FocalLengthMM: &f, SensorSizeMM: []float64{13.2, 8.8}}
	cam, err := NewModel(conf, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cam.SensorSizeM().X, test.ShouldAlmostEqual, 0.0132, 1e-15)
	test.That(t, cam.SensorSizeM().Y, test.ShouldAlmostEqual, 0.0088, 1e-15)
	test.That(t, cam.Name(), test.ShouldEqual, DefaultName)

	// No pixel grid, so a gsd cannot be derived.
	_, err = cam.ImageSizePx()
	var missing *MissingParameterError
	test.That(t, errors.As(err, &missing), test.ShouldBeTrue)
	test.That(t, missing.Parameter, test.ShouldEqual, "image_size_px")

	// Supplied sensor size wins over pixel size * image size.
	pixel := 1e-6
	conf = &Config{FocalLengthMM: &f, PixelSizeM: &pixel, ImageSizePx: []int{10, 10}, SensorSizeMM: []float64{2, 1}}
	cam, err = NewModel(conf, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cam.SensorSizeM(), test.ShouldResemble, r2.Point{X: 0.002, Y: 0.001})
}

func TestFieldOfView(t *testing.T) {
	cam, err := NewModel(sequoiaConfig(t), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	f := 0.00398
	fov, ok := cam.FOVDeg()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, fov.X, test.ShouldAlmostEqual, 2*math.Atan(0.0048/(2*f))*180/math.Pi, 1e-9)
	test.That(t, fov.Y, test.ShouldAlmostEqual, 2*math.Atan(0.0036/(2*f))*180/math.Pi, 1e-9)

	dfov, ok := cam.DFOVDeg()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, dfov, test.ShouldAlmostEqual, 2*math.Atan(0.006/(2*f))*180/math.Pi, 1e-9)
	test.That(t, dfov, test.ShouldBeGreaterThan, fov.X)

	// Supplied values are kept as is.
	conf := sequoiaConfig(t)
	conf.FOVDeg = []float64{62, 49}
	given := 73.5
	conf.DFOVDeg = &given
	cam, err = NewModel(conf, nil)
	test.That(t, err, test.ShouldBeNil)
	fov, _ = cam.FOVDeg()
	test.That(t, fov, test.ShouldResemble, r2.Point{X: 62, Y: 49})
	dfov, _ = cam.DFOVDeg()
	test.That(t, dfov, test.ShouldEqual, given)

	// A field of view stands in for a missing focal length.
	conf = sequoiaConfig(t)
	conf.FocalLengthMM = nil
	conf.FOVDeg = []float64{2 * math.Atan(0.0048/(2*f)) * 180 / math.Pi, 48}
	cam, err = NewModel(conf, nil)
	test.That(t, err, test.ShouldBeNil)
	derived, ok := cam.FocalLengthMM()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, derived, test.ShouldAlmostEqual, 3.98, 1e-9)

	// Without a focal length or field of view nothing can be derived.
	conf = sequoiaConfig(t)
	conf.FocalLengthMM = nil
	cam, err = NewModel(conf, nil)
	test.That(t, err, test.ShouldBeNil)
	_, ok = cam.FOVDeg()
	test.That(t, ok, test.ShouldBeFalse)
	_, err = cam.FocalLengthMeters()
	var missing *MissingParameterError
	test.That(t, errors.As(err, &missing), test.ShouldBeTrue)
	test.That(t, missing.Parameter, test.ShouldEqual, "focal_length_mm")
}

func TestExposurePolicy(t *testing.T) {
	logger := logging.NewTestLogger(t)

	t.Run("bootstraps max fps", func(t *testing.T) {
		cam, err := NewModel(sequoiaConfig(t), logger)
		test.That(t, err, test.ShouldBeNil)
		_, ok := cam.MaxFPS()
		test.That(t, ok, test.ShouldBeFalse)

		test.That(t, cam.SetExposure(0.01), test.ShouldBeNil)
		fps, ok := cam.MaxFPS()
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, fps, test.ShouldAlmostEqual, 100)
		exposure, ok := cam.ExposureS()
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, exposure, test.ShouldEqual, 0.01)
	})

	t.Run("accepts exposure within the frame period", func(t *testing.T) {
		conf := sequoiaConfig(t)
		fps := 2.0
		conf.MaxFPS = &fps
		cam, err := NewModel(conf, logger)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cam.SetExposure(0.001), test.ShouldBeNil)
		exposure, _ := cam.ExposureS()
		test.That(t, exposure, test.ShouldEqual, 0.001)
	})

	t.Run("rejects exposure beyond the frame period", func(t *testing.T) {
		conf := sequoiaConfig(t)
		fps := 2.0
		conf.MaxFPS = &fps
		cam, err := NewModel(conf, logger)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cam.SetExposure(0.001), test.ShouldBeNil)

		for _, exposure := range []float64{0.5, 0.75} {
			err = cam.SetExposure(exposure)
			var invalid *InvalidExposureError
			test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)
			test.That(t, invalid.ExposureS, test.ShouldEqual, exposure)
			test.That(t, invalid.MaxFPS, test.ShouldEqual, 2.0)
			test.That(t, err.Error(), test.ShouldContainSubstring, "frame period")
		}
		stored, _ := cam.ExposureS()
		test.That(t, stored, test.ShouldEqual, 0.001)
	})

	t.Run("rejects non positive exposure", func(t *testing.T) {
		cam, err := NewModel(sequoiaConfig(t), logger)
		test.That(t, err, test.ShouldBeNil)
		for _, exposure := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			var invalid *InvalidExposureError
			test.That(t, errors.As(cam.SetExposure(exposure), &invalid), test.ShouldBeTrue)
		}
		_, ok := cam.ExposureS()
		test.That(t, ok, test.ShouldBeFalse)
		_, ok = cam.MaxFPS()
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("max fps must keep the stored exposure", func(t *testing.T) {
		cam, err := NewModel(sequoiaConfig(t), logger)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cam.SetMaxFPS(10), test.ShouldBeNil)
		test.That(t, cam.SetExposure(0.05), test.ShouldBeNil)

		var invalid *InvalidExposureError
		test.That(t, errors.As(cam.SetMaxFPS(20), &invalid), test.ShouldBeTrue)
		fps, _ := cam.MaxFPS()
		test.That(t, fps, test.ShouldEqual, 10.0)

		test.That(t, cam.SetMaxFPS(15), test.ShouldBeNil)
		test.That(t, errors.As(cam.SetMaxFPS(-3), &invalid), test.ShouldBeTrue)
	})

	t.Run("config applies fps before exposure", func(t *testing.T) {
		conf := sequoiaConfig(t)
		fps, exposure := 30.0, 0.1
		conf.MaxFPS = &fps
		conf.ExposureS = &exposure
		_, err := NewModel(conf, logger)
		var invalid *InvalidExposureError
		test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)

		exposure = 0.01
		cam, err := NewModel(conf, logger)
		test.That(t, err, test.ShouldBeNil)
		stored, _ := cam.ExposureS()
		test.That(t, stored, test.ShouldEqual, 0.01)
	})
}

func TestAttributes(t *testing.T) {
	cam, err := NewModel(sequoiaConfig(t), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	cam.SetName("sequoia-nir")

	attrs := cam.Attributes()
	test.That(t, attrs["name"], test.ShouldEqual, "sequoia-nir")
	test.That(t, attrs["focal_length_mm"], test.ShouldEqual, 3.98)
	test.That(t, attrs["image_size_px"], test.ShouldResemble, []int{1280, 960})
	sensor, ok := attrs["sensor_size_mm"].([]float64)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, sensor, test.ShouldHaveLength, 2)
	test.That(t, sensor[0], test.ShouldAlmostEqual, 4.8, 1e-9)
	test.That(t, sensor[1], test.ShouldAlmostEqual, 3.6, 1e-9)
	_, ok = attrs["exposure_s"]
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, cam.String(), test.ShouldContainSubstring, "sequoia-nir")
}

func TestPresets(t *testing.T) {
	test.That(t, PresetNames(), test.ShouldResemble, []string{"flir", "senop", "sequoia"})

	conf, err := PresetConfig("flir")
	test.That(t, err, test.ShouldBeNil)
	*conf.FocalLengthMM = 1
	conf.ImageSizePx[0] = 1
	test.That(t, *Presets["flir"].FocalLengthMM, test.ShouldEqual, 3.98)
	test.That(t, Presets["flir"].ImageSizePx[0], test.ShouldEqual, 800)

	_, err = PresetConfig("hasselblad")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "hasselblad")
}
