package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

// CLI flags.
const (
	debugFlag    = "debug"
	logLevelFlag = "log-level"

	flagConfig         = "config"
	flagCamera         = "camera"
	flagPreset         = "preset"
	flagHeight         = "height"
	flagGSD            = "gsd"
	flagForwardOverlap = "forward-overlap"
	flagSideOverlap    = "side-overlap"
	flagTolerance      = "tolerance"
	flagFormat         = "format"
	flagOutput         = "output"
	flagHeights        = "heights"
	flagPlot           = "plot"
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Usage:   "load a mission (camera and flight) from `FILE`",
	},
	&cli.StringFlag{
		Name:  flagCamera,
		Usage: "load the camera from `FILE`",
	},
	&cli.StringFlag{
		Name:  flagPreset,
		Usage: "use the built-in camera `NAME` (see cameras)",
	},
	&cli.Float64Flag{
		Name:  flagForwardOverlap,
		Usage: "forward overlap between consecutive images in percent",
	},
	&cli.Float64Flag{
		Name:  flagSideOverlap,
		Usage: "side overlap between adjacent strips in percent",
	},
	&cli.Float64Flag{
		Name:  flagTolerance,
		Usage: "relative tolerance when checking a given height against a given gsd",
	},
	&cli.StringFlag{
		Name:  flagFormat,
		Value: "json",
		Usage: "output format: json, yaml or table",
	},
	&cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "write the report into `DIR`, named after the camera, instead of printing it",
	},
}

var app = &cli.App{
	Name:            "flightplanner",
	Usage:           "compute photogrammetric flight plans",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    debugFlag,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.StringFlag{
			Name:  logLevelFlag,
			Usage: "log `LEVEL`: debug, info, warn or error (default error)",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "plan",
			Usage:     "compute a flight plan for one camera",
			UsageText: "flightplanner plan [--config FILE | --camera FILE | --preset NAME] [--height M | --gsd CM] [other options]",
			Flags: append([]cli.Flag{
				&cli.Float64Flag{
					Name:  flagHeight,
					Usage: "flying height above ground in meters",
				},
				&cli.Float64Flag{
					Name:  flagGSD,
					Usage: "ground sample distance in cm per pixel",
				},
			}, inputFlags...),
			Action: PlanAction,
		},
		{
			Name:  "sweep",
			Usage: "compute one flight plan per flying height",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:  flagHeights,
					Value: "60,90,120",
					Usage: "comma separated flying heights in meters",
				},
				&cli.StringFlag{
					Name:  flagPlot,
					Usage: "plot gsd against height into `FILE` (png, svg or pdf)",
				},
			}, inputFlags...),
			Action: SweepAction,
		},
		{
			Name:   "cameras",
			Usage:  "list the built-in camera presets",
			Action: CamerasAction,
		},
		{
			Name:   "schema",
			Usage:  "print the JSON schema of a report",
			Action: SchemaAction,
		},
		{
			Name:  "example",
			Usage: "write an example mission file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagOutput,
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "write the mission to `FILE`",
				},
			},
			Action: ExampleAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
