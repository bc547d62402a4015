package flightplan

import (
	"github.com/pkg/errors"

	"go.viam.com/flightplanner/camera"
	"go.viam.com/flightplanner/logging"
)

// Sweep computes one plan per flying height, sharing cam and the remaining inputs of conf. A gsd
// in conf is ignored since every plan is driven by its height.
func Sweep(cam *camera.Model, conf *Config, heightsM []float64, logger logging.Logger) ([]*Planner, error) {
	if len(heightsM) == 0 {
		return nil, errors.New("no heights to sweep")
	}
	base := Config{}
	if conf != nil {
		base = *conf
	}
	base.GSDCM = nil

	planners := make([]*Planner, 0, len(heightsM))
	for _, h := range heightsM {
		step := base
		step.HeightM = floatPtr(h)
		p, err := NewPlanner(cam, &step, logger)
		if err != nil {
			return nil, errors.Wrapf(err, "height %gm", h)
		}
		if err := p.Compute(); err != nil {
			return nil, errors.Wrapf(err, "height %gm", h)
		}
		planners = append(planners, p)
	}
	return planners, nil
}
