// Package main is the flightplanner command itself.
package main

import (
	"os"

	"go.viam.com/flightplanner/cli"
	"go.viam.com/flightplanner/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.NewLogger("flightplanner").Fatal(err)
	}
}
