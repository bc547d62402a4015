package flightplan

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/flightplanner/camera"
)

func TestDerivedBeforeCompute(t *testing.T) {
	p := newPlanner(t, newCamera(t, "sequoia"), nil)
	_, err := p.ForwardOverlapFor(10)
	test.That(t, err, test.ShouldBeError, errNotComputed)
	_, err = p.SideOverlapFor(10)
	test.That(t, err, test.ShouldBeError, errNotComputed)
	_, err = p.ExposureInterval(10)
	test.That(t, err, test.ShouldBeError, errNotComputed)
	_, err = p.MotionBlurPx(10)
	test.That(t, err, test.ShouldBeError, errNotComputed)
	_, err = p.MaxGroundSpeed()
	test.That(t, err, test.ShouldBeError, errNotComputed)
	_, err = p.AbsoluteHeight(300)
	test.That(t, err, test.ShouldBeError, errNotComputed)
}

func TestOverlapInverse(t *testing.T) {
	p := newPlanner(t, newCamera(t, "sequoia"), &Config{HeightM: ptr(90), ForwardOverlapPct: ptr(75), SideOverlapPct: ptr(65)})
	test.That(t, p.Compute(), test.ShouldBeNil)
	params := p.Parameters()

	forward, err := p.ForwardOverlapFor(*params.BaseLengthM)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, forward, test.ShouldAlmostEqual, 75, 1e-9)
	side, err := p.SideOverlapFor(*params.StripOffsetM)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, side, test.ShouldAlmostEqual, 65, 1e-9)

	full, err := p.ForwardOverlapFor(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, full, test.ShouldEqual, 100.0)

	var invalid *InvalidInputError
	_, err = p.ForwardOverlapFor(params.SwathM.Y + 1)
	test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)
	_, err = p.SideOverlapFor(-1)
	test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)
}

func TestTiming(t *testing.T) {
	cam := newCamera(t, "sequoia")
	p := newPlanner(t, cam, &Config{HeightM: ptr(120), ForwardOverlapPct: ptr(85), SideOverlapPct: ptr(85)})
	test.That(t, p.Compute(), test.ShouldBeNil)
	params := p.Parameters()

	interval, err := p.ExposureInterval(10)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, interval, test.ShouldAlmostEqual, *params.BaseLengthM/10, 1e-12)
	_, err = p.ExposureInterval(0)
	var invalid *InvalidInputError
	test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)

	var missing *camera.MissingParameterError
	_, err = p.MotionBlurPx(10)
	test.That(t, errors.As(err, &missing), test.ShouldBeTrue)
	test.That(t, missing.Parameter, test.ShouldEqual, "exposure_s")
	_, err = p.MaxGroundSpeed()
	test.That(t, errors.As(err, &missing), test.ShouldBeTrue)
	test.That(t, missing.Parameter, test.ShouldEqual, "max_fps")

	test.That(t, cam.SetMaxFPS(2), test.ShouldBeNil)
	test.That(t, cam.SetExposure(0.001), test.ShouldBeNil)

	blur, err := p.MotionBlurPx(10)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, blur, test.ShouldAlmostEqual, 10*0.001/(*params.GSDCM/100), 1e-12)
	test.That(t, blur, test.ShouldBeLessThan, 1)

	speed, err := p.MaxGroundSpeed()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, speed, test.ShouldAlmostEqual, *params.BaseLengthM*2, 1e-12)

	abs, err := p.AbsoluteHeight(250)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, abs, test.ShouldEqual, 370.0)
}
