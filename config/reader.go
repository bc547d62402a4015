// Package config reads camera, flight and mission configuration files.
//
// Files are JSON5 (comments and trailing commas allowed) and may reference environment variables
// as ${VAR}, which are substituted before parsing. Unknown keys are rejected.
package config

import (
	"io"
	"math"
	"os"
	"reflect"

	"github.com/a8m/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"go.viam.com/flightplanner/camera"
	"go.viam.com/flightplanner/flightplan"
)

// ReadCameraConfig reads and validates a camera config file.
func ReadCameraConfig(filePath string) (*camera.Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read camera config %q", filePath)
	}
	return cameraConfigFromBytes(buf)
}

// CameraConfigFromReader reads and validates a camera config from r.
func CameraConfigFromReader(r io.Reader) (*camera.Config, error) {
	buf, err := substituteReader(r)
	if err != nil {
		return nil, err
	}
	return cameraConfigFromBytes(buf)
}

func cameraConfigFromBytes(buf []byte) (*camera.Config, error) {
	var conf camera.Config
	if err := decode(buf, &conf); err != nil {
		return nil, errors.Wrap(err, "cannot decode camera config")
	}
	if err := conf.Validate("camera"); err != nil {
		return nil, err
	}
	return &conf, nil
}

// ReadFlightConfig reads and validates a flight config file.
func ReadFlightConfig(filePath string) (*flightplan.Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read flight config %q", filePath)
	}
	return flightConfigFromBytes(buf)
}

// FlightConfigFromReader reads and validates a flight config from r.
func FlightConfigFromReader(r io.Reader) (*flightplan.Config, error) {
	buf, err := substituteReader(r)
	if err != nil {
		return nil, err
	}
	return flightConfigFromBytes(buf)
}

func flightConfigFromBytes(buf []byte) (*flightplan.Config, error) {
	var conf flightplan.Config
	if err := decode(buf, &conf); err != nil {
		return nil, errors.Wrap(err, "cannot decode flight config")
	}
	if err := conf.Validate("flight"); err != nil {
		return nil, err
	}
	return &conf, nil
}

// ReadMissionConfig reads and validates a mission file holding both a camera and a flight.
func ReadMissionConfig(filePath string) (*Mission, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read mission config %q", filePath)
	}
	return missionFromBytes(buf)
}

// MissionConfigFromReader reads and validates a mission config from r.
func MissionConfigFromReader(r io.Reader) (*Mission, error) {
	buf, err := substituteReader(r)
	if err != nil {
		return nil, err
	}
	return missionFromBytes(buf)
}

func missionFromBytes(buf []byte) (*Mission, error) {
	var mission Mission
	if err := decode(buf, &mission); err != nil {
		return nil, errors.Wrap(err, "cannot decode mission config")
	}
	if err := mission.Validate("mission"); err != nil {
		return nil, err
	}
	return &mission, nil
}

func substituteReader(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read config")
	}
	buf, err := envsubst.Bytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "cannot substitute environment variables")
	}
	return buf, nil
}

// decode parses JSON5 into a generic map and decodes it onto result by json tag.
func decode(buf []byte, result interface{}) error {
	var attributes map[string]interface{}
	if err := json5.Unmarshal(buf, &attributes); err != nil {
		return err
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      result,
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncType(integralNumberHook),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(attributes)
}

// integralNumberHook rejects a fractional number decoded into an integer field. JSON numbers
// arrive as float64 and mapstructure would otherwise truncate them.
func integralNumberHook(_, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f, ok := data.(float64); ok && f != math.Trunc(f) {
			return nil, errors.Errorf("%v is not an integer", f)
		}
	default:
	}
	return data, nil
}

// WriteExample writes an example mission file to filePath.
func WriteExample(filePath string) error {
	//nolint:gosec
	return os.WriteFile(filePath, []byte(exampleMission), 0o644)
}

const exampleMission = `// Flight mission for a Parrot Sequoia.
{
  camera: {
    name: "sequoia",
    focal_length_mm: 3.98,
    pixel_size_m: 3.75e-6,
    image_size_px: [1280, 960],
  },
  flight: {
    height_m: 120,
    forward_overlap_pct: 85,
    side_overlap_pct: 85,
  },
}
`
