package report

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"go.viam.com/flightplanner/flightplan"
	"go.viam.com/flightplanner/utils"
)

// PlotSweep draws the ground sample distance against flying height for a height sweep and saves
// it to path. The image format follows the extension of path (png, svg, pdf, ...).
func PlotSweep(path, title string, planners []*flightplan.Planner) error {
	switch ext := utils.FileExtension(path); ext {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
	default:
		return errors.Errorf("cannot plot to %q: unsupported image format %q", path, ext)
	}
	pts := make(plotter.XYs, 0, len(planners))
	for _, planner := range planners {
		h, okH := planner.Height()
		gsd, okGSD := planner.GSD()
		if !planner.Computed() || !okH || !okGSD {
			return errors.New("cannot plot a flight plan that has not been computed")
		}
		pts = append(pts, plotter.XY{X: h, Y: gsd})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "height (m)"
	p.Y.Label.Text = "gsd (cm/px)"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errors.Wrap(err, "cannot plot sweep")
	}
	p.Add(line, points)
	p.Legend.Add("gsd", line, points)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
