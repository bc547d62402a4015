package config

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/flightplanner/camera"
	"go.viam.com/flightplanner/flightplan"
)

// Mission pairs a camera with the flight inputs to plan for it. The camera is either given
// inline or named by one of the built-in presets.
type Mission struct {
	CameraPreset string             `json:"camera_preset,omitempty"`
	Camera       *camera.Config     `json:"camera,omitempty"`
	Flight       *flightplan.Config `json:"flight,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (m *Mission) Validate(path string) error {
	switch {
	case m.Camera == nil && m.CameraPreset == "":
		return goutils.NewConfigValidationFieldRequiredError(path, "camera")
	case m.Camera != nil && m.CameraPreset != "":
		return goutils.NewConfigValidationError(path,
			errors.New(`only one of "camera" and "camera_preset" may be set`))
	case m.CameraPreset != "":
		if _, ok := camera.Presets[m.CameraPreset]; !ok {
			return goutils.NewConfigValidationError(path,
				errors.Errorf("unknown camera_preset %q, available presets: %v", m.CameraPreset, camera.PresetNames()))
		}
	}
	var errs error
	if m.Camera != nil {
		errs = multierr.Append(errs, m.Camera.Validate(path+".camera"))
	}
	return multierr.Append(errs, m.Flight.Validate(path+".flight"))
}

// CameraConfig returns the inline camera, or a copy of the named preset.
func (m *Mission) CameraConfig() (*camera.Config, error) {
	if m.Camera != nil {
		return m.Camera, nil
	}
	return camera.PresetConfig(m.CameraPreset)
}

// FlightConfig returns the flight inputs; an absent flight section means all defaults.
func (m *Mission) FlightConfig() *flightplan.Config {
	if m.Flight == nil {
		return &flightplan.Config{}
	}
	return m.Flight
}
