package report

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"go.viam.com/flightplanner/flightplan"
)

// SweepSummary describes how the ground sample distance and footprint vary over a height sweep.
type SweepSummary struct {
	Plans        int     `json:"plans"`
	MinGSDCM     float64 `json:"min_gsd_cm"`
	MaxGSDCM     float64 `json:"max_gsd_cm"`
	MeanGSDCM    float64 `json:"mean_gsd_cm"`
	MeanAreaM2   float64 `json:"mean_ground_area_m2"`
	StdDevAreaM2 float64 `json:"stddev_ground_area_m2"`
}

// SummarizeSweep returns the gsd range and footprint statistics of computed flight plans.
func SummarizeSweep(planners []*flightplan.Planner) (*SweepSummary, error) {
	gsds := make([]float64, 0, len(planners))
	areas := make([]float64, 0, len(planners))
	for _, planner := range planners {
		params := planner.Parameters()
		if !planner.Computed() || params.GSDCM == nil || params.GroundAreaM2 == nil {
			return nil, errors.New("cannot summarize a flight plan that has not been computed")
		}
		gsds = append(gsds, *params.GSDCM)
		areas = append(areas, *params.GroundAreaM2)
	}

	minGSD, err := stats.Min(gsds)
	if err != nil {
		return nil, errors.Wrap(err, "cannot summarize sweep")
	}
	maxGSD, err := stats.Max(gsds)
	if err != nil {
		return nil, errors.Wrap(err, "cannot summarize sweep")
	}
	meanGSD, err := stats.Mean(gsds)
	if err != nil {
		return nil, errors.Wrap(err, "cannot summarize sweep")
	}
	meanArea, err := stats.Mean(areas)
	if err != nil {
		return nil, errors.Wrap(err, "cannot summarize sweep")
	}
	sdArea, err := stats.StandardDeviation(areas)
	if err != nil {
		return nil, errors.Wrap(err, "cannot summarize sweep")
	}
	return &SweepSummary{
		Plans:        len(planners),
		MinGSDCM:     minGSD,
		MaxGSDCM:     maxGSD,
		MeanGSDCM:    meanGSD,
		MeanAreaM2:   meanArea,
		StdDevAreaM2: sdArea,
	}, nil
}
