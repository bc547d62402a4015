package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/flightplanner/camera"
	"go.viam.com/flightplanner/config"
	"go.viam.com/flightplanner/flightplan"
	"go.viam.com/flightplanner/logging"
	"go.viam.com/flightplanner/report"
)

// PlanAction computes a single flight plan and prints or writes its report.
func PlanAction(c *cli.Context) error {
	logger, restore, err := newLogger(c)
	if err != nil {
		return err
	}
	defer restore()
	format, err := report.ParseFormat(c.String(flagFormat))
	if err != nil {
		return err
	}
	cam, flight, err := loadInputs(c, logger)
	if err != nil {
		return err
	}
	if c.IsSet(flagHeight) {
		flight.HeightM = floatPtr(c.Float64(flagHeight))
	}
	if c.IsSet(flagGSD) {
		flight.GSDCM = floatPtr(c.Float64(flagGSD))
	}

	planner, err := flightplan.NewPlanner(cam, flight, logger)
	if err != nil {
		return err
	}
	if err := planner.Compute(); err != nil {
		return errors.Wrapf(err, "cannot plan for camera %q", cam.Name())
	}
	return emit(c, planner, format, "")
}

// SweepAction computes one flight plan per height, as for a survey flown at several heights.
func SweepAction(c *cli.Context) error {
	logger, restore, err := newLogger(c)
	if err != nil {
		return err
	}
	defer restore()
	format, err := report.ParseFormat(c.String(flagFormat))
	if err != nil {
		return err
	}
	heights, err := parseHeights(c.String(flagHeights))
	if err != nil {
		return err
	}
	cam, flight, err := loadInputs(c, logger)
	if err != nil {
		return err
	}

	planners, err := flightplan.Sweep(cam, flight, heights, logger)
	if err != nil {
		return errors.Wrapf(err, "cannot sweep camera %q", cam.Name())
	}
	for i, planner := range planners {
		if err := emit(c, planner, format, fmt.Sprintf("_%gm", heights[i])); err != nil {
			return err
		}
	}
	summary, err := report.SummarizeSweep(planners)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "GSD %.3f to %.3f cm/px over %d heights, mean footprint %.1f m^2",
		summary.MinGSDCM, summary.MaxGSDCM, summary.Plans, summary.MeanAreaM2)
	if path := c.String(flagPlot); path != "" {
		if err := report.PlotSweep(path, cam.Name(), planners); err != nil {
			return err
		}
		printf(c.App.Writer, "Wrote plot %s", path)
	}
	return nil
}

// CamerasAction lists the built-in camera presets.
func CamerasAction(c *cli.Context) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Preset", "Name", "Focal length (mm)", "Pixel size (m)", "Image size (px)"})
	for _, key := range camera.PresetNames() {
		preset := camera.Presets[key]
		t.AppendRow(table.Row{
			key,
			preset.Name,
			*preset.FocalLengthMM,
			*preset.PixelSizeM,
			fmt.Sprintf("%d x %d", preset.ImageSizePx[0], preset.ImageSizePx[1]),
		})
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

// SchemaAction prints the JSON schema of a report.
func SchemaAction(c *cli.Context) error {
	data, err := json.MarshalIndent(report.Schema(), "", "  ")
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", data)
	return nil
}

// ExampleAction writes an example mission file.
func ExampleAction(c *cli.Context) error {
	path := c.String(flagOutput)
	if err := config.WriteExample(path); err != nil {
		return err
	}
	printf(c.App.Writer, "Wrote example mission %s", path)
	return nil
}

// loadInputs builds the camera and flight inputs from --config, --camera or --preset, with the
// overlap and tolerance flags applied on top.
func loadInputs(c *cli.Context, logger logging.Logger) (*camera.Model, *flightplan.Config, error) {
	var (
		camConf *camera.Config
		flight  = &flightplan.Config{}
		err     error
	)
	sources := 0
	for _, name := range []string{flagConfig, flagCamera, flagPreset} {
		if c.String(name) != "" {
			sources++
		}
	}
	if sources != 1 {
		return nil, nil, errors.Errorf("exactly one of --%s, --%s or --%s is required", flagConfig, flagCamera, flagPreset)
	}

	switch {
	case c.String(flagConfig) != "":
		mission, err := config.ReadMissionConfig(c.String(flagConfig))
		if err != nil {
			return nil, nil, err
		}
		if camConf, err = mission.CameraConfig(); err != nil {
			return nil, nil, err
		}
		flight = mission.FlightConfig()
	case c.String(flagCamera) != "":
		if camConf, err = config.ReadCameraConfig(c.String(flagCamera)); err != nil {
			return nil, nil, err
		}
	default:
		if camConf, err = camera.PresetConfig(c.String(flagPreset)); err != nil {
			return nil, nil, err
		}
	}

	if c.IsSet(flagForwardOverlap) {
		flight.ForwardOverlapPct = floatPtr(c.Float64(flagForwardOverlap))
	}
	if c.IsSet(flagSideOverlap) {
		flight.SideOverlapPct = floatPtr(c.Float64(flagSideOverlap))
	}
	if c.IsSet(flagTolerance) {
		flight.ConflictTolerance = floatPtr(c.Float64(flagTolerance))
	}

	cam, err := camera.NewModel(camConf, logger.Sublogger("camera"))
	if err != nil {
		return nil, nil, err
	}
	return cam, flight, nil
}

// emit prints the planner warnings, then prints the report or writes it to --output.
func emit(c *cli.Context, planner *flightplan.Planner, format report.Format, suffix string) error {
	for _, w := range planner.Warnings() {
		warningf(c.App.ErrWriter, "%s", w)
	}
	rec, err := report.NewRecord(planner)
	if err != nil {
		return err
	}
	dir := c.String(flagOutput)
	if dir == "" {
		return report.Encode(c.App.Writer, rec, format)
	}
	path, err := report.Write(dir, rec, format, suffix)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "Wrote %s", path)
	return nil
}

func parseHeights(s string) ([]float64, error) {
	var heights []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		h, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid height %q", part)
		}
		heights = append(heights, h)
	}
	if len(heights) == 0 {
		return nil, errors.Errorf("--%s must list at least one height", flagHeights)
	}
	return heights, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
