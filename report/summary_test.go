package report

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/flightplanner/camera"
	"go.viam.com/flightplanner/flightplan"
	"go.viam.com/flightplanner/logging"
)

func TestSummarizeSweep(t *testing.T) {
	logger := logging.NewTestLogger(t)
	camConf, err := camera.PresetConfig("sequoia")
	test.That(t, err, test.ShouldBeNil)
	cam, err := camera.NewModel(camConf, logger)
	test.That(t, err, test.ShouldBeNil)

	planners, err := flightplan.Sweep(cam, nil, []float64{60, 90, 120}, logger)
	test.That(t, err, test.ShouldBeNil)

	summary, err := SummarizeSweep(planners)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, summary.Plans, test.ShouldEqual, 3)
	low, _ := planners[0].GSD()
	mid, _ := planners[1].GSD()
	high, _ := planners[2].GSD()
	test.That(t, summary.MinGSDCM, test.ShouldEqual, low)
	test.That(t, summary.MaxGSDCM, test.ShouldEqual, high)
	// gsd is linear in height, so the mean of an evenly spaced sweep is its middle plan.
	test.That(t, summary.MeanGSDCM, test.ShouldAlmostEqual, mid, 1e-9)
	test.That(t, summary.StdDevAreaM2, test.ShouldBeGreaterThan, 0)

	_, err = SummarizeSweep(nil)
	test.That(t, err, test.ShouldNotBeNil)

	notComputed, err := flightplan.NewPlanner(cam, nil, logger)
	test.That(t, err, test.ShouldBeNil)
	_, err = SummarizeSweep([]*flightplan.Planner{notComputed})
	test.That(t, err, test.ShouldNotBeNil)
}
