package report

import (
	"github.com/invopop/jsonschema"
)

// The types below only describe the shape of a Record for the JSON schema.

type cameraSchema struct {
	Name          string    `json:"name" jsonschema:"required,description=camera name"`
	FocalLengthMM float64   `json:"focal_length_mm,omitempty" jsonschema:"description=principal distance in millimeters"`
	PixelSizeM    float64   `json:"pixel_size_m,omitempty" jsonschema:"description=pixel pitch in meters"`
	ImageSizePx   []int     `json:"image_size_px,omitempty" jsonschema:"minItems=2,maxItems=2,description=image width and height in pixels"`
	SensorSizeMM  []float64 `json:"sensor_size_mm" jsonschema:"required,minItems=2,maxItems=2,description=sensor width and height in millimeters"`
	FOVDeg        []float64 `json:"fov_deg,omitempty" jsonschema:"minItems=2,maxItems=2,description=horizontal and vertical field of view in degrees"`
	DFOVDeg       float64   `json:"dfov_deg,omitempty" jsonschema:"description=diagonal field of view in degrees"`
	MaxFPS        float64   `json:"max_fps,omitempty" jsonschema:"description=maximum frame rate"`
	ExposureS     float64   `json:"exposure_s,omitempty" jsonschema:"description=exposure time in seconds"`
}

type flightPlanSchema struct {
	HeightM           float64   `json:"height_m" jsonschema:"required,description=flying height above ground in meters"`
	GSDCM             float64   `json:"gsd_cm" jsonschema:"required,description=ground sample distance in centimeters per pixel"`
	ForwardOverlapPct float64   `json:"forward_overlap_pct" jsonschema:"required,minimum=0,maximum=100,description=forward overlap in percent"`
	SideOverlapPct    float64   `json:"side_overlap_pct" jsonschema:"required,minimum=0,maximum=100,description=side overlap in percent"`
	PhotoScale        float64   `json:"photo_scale" jsonschema:"required,description=photo scale number"`
	SwathM            []float64 `json:"swath_m" jsonschema:"required,minItems=2,maxItems=2,description=ground extent of one image in meters"`
	BaseLengthM       float64   `json:"base_length_m" jsonschema:"required,description=distance between consecutive exposures in meters"`
	StripOffsetM      float64   `json:"strip_offset_m" jsonschema:"required,description=distance between adjacent strips in meters"`
	GroundAreaM2      float64   `json:"ground_area_m2" jsonschema:"required,description=ground area of one image in square meters"`
}

type recordSchema struct {
	Camera     cameraSchema     `json:"camera" jsonschema:"required"`
	FlightPlan flightPlanSchema `json:"flight_plan" jsonschema:"required"`
	Warnings   []string         `json:"warnings,omitempty" jsonschema:"description=non-fatal problems found while planning"`
}

// Schema returns the JSON schema of a Record.
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&recordSchema{})
}
