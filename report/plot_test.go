package report

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/flightplanner/camera"
	"go.viam.com/flightplanner/flightplan"
	"go.viam.com/flightplanner/logging"
)

func TestPlotSweep(t *testing.T) {
	logger := logging.NewTestLogger(t)
	camConf, err := camera.PresetConfig("sequoia")
	test.That(t, err, test.ShouldBeNil)
	cam, err := camera.NewModel(camConf, logger)
	test.That(t, err, test.ShouldBeNil)

	planners, err := flightplan.Sweep(cam, nil, []float64{60, 90, 120}, logger)
	test.That(t, err, test.ShouldBeNil)

	path := filepath.Join(t.TempDir(), "sweep.png")
	test.That(t, PlotSweep(path, "sequoia", planners), test.ShouldBeNil)
	info, err := os.Stat(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)

	err = PlotSweep(filepath.Join(t.TempDir(), "sweep.bmp"), "sequoia", planners)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "bmp")

	notComputed, err := flightplan.NewPlanner(cam, nil, logger)
	test.That(t, err, test.ShouldBeNil)
	err = PlotSweep(filepath.Join(t.TempDir(), "bad.png"), "bad", []*flightplan.Planner{notComputed})
	test.That(t, err, test.ShouldNotBeNil)
}
