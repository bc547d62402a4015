package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/flightplanner/logging"
)

// printf prints a message with a newline.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// warningf prints a yellow warning message with a newline.
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	color.New(color.FgYellow).Fprintf(w, "Warning: "+format+"\n", a...)
}

// newLogger returns a logger writing to the app error writer and installs it as the global
// logger until restore is called. Warnings are printed by the commands themselves, so only errors
// are logged unless --log-level or --debug say otherwise.
func newLogger(c *cli.Context) (logger logging.Logger, restore func(), err error) {
	level := logging.ERROR
	if name := c.String(logLevelFlag); name != "" {
		if level, err = logging.LevelFromString(name); err != nil {
			return nil, nil, errors.Wrapf(err, "invalid --%s", logLevelFlag)
		}
	}
	if c.Bool(debugFlag) {
		level = logging.DEBUG
	}
	logger = logging.NewBlankLogger("flightplanner")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logger.SetLevel(level)

	previous := logging.Global()
	logging.ReplaceGlobal(logger)
	return logger, func() { logging.ReplaceGlobal(previous) }, nil
}
