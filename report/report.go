// Package report serializes a computed flight plan together with its camera.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/flightplanner/flightplan"
	"go.viam.com/flightplanner/utils"
)

// Format is an output encoding.
type Format string

// The supported formats.
const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat returns the format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("unknown format %q, expected one of json, yaml, table", s)
	}
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

// Record is the serialized form of a plan: the camera attributes and the flight parameters, keyed
// by their config names.
type Record struct {
	Camera     map[string]interface{} `json:"camera" yaml:"camera"`
	FlightPlan map[string]interface{} `json:"flight_plan" yaml:"flight_plan"`
	Warnings   []string               `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewRecord builds a record from a computed planner.
func NewRecord(planner *flightplan.Planner) (*Record, error) {
	if !planner.Computed() {
		return nil, errors.New("cannot build a report before the flight plan is computed")
	}
	params := planner.Parameters()
	rec := &Record{
		Camera:     planner.Camera().Attributes(),
		FlightPlan: params.AsMap(),
	}
	for _, w := range planner.Warnings() {
		rec.Warnings = append(rec.Warnings, w.Error())
	}
	return rec, nil
}

// Name returns the camera name, used as the output file name.
func (rec *Record) Name() string {
	if name, err := utils.AssertType[string](rec.Camera["name"]); err == nil && name != "" {
		return name
	}
	return "flightplan"
}

// Encode writes rec to w in the given format.
func Encode(w io.Writer, rec *Record, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rec, "", "    ")
		if err != nil {
			return errors.Wrap(err, "cannot marshal record")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return errors.Wrap(err, "cannot marshal record")
		}
		return enc.Close()
	case FormatTable:
		_, err := fmt.Fprintln(w, Table(rec))
		return err
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

// Write encodes rec into dir/<camera name><suffix>.<ext> and returns the path written. A partly
// written file is removed on error.
func Write(dir string, rec *Record, format Format, suffix string) (string, error) {
	path, err := utils.SafeJoinDir(dir, rec.Name()+suffix+"."+format.Extension())
	if err != nil {
		return "", err
	}
	//nolint:gosec
	outfile, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Encode(outfile, rec, format); err != nil {
		_ = outfile.Close()
		utils.RemoveFileNoError(path)
		return "", err
	}
	if err := outfile.Close(); err != nil {
		utils.RemoveFileNoError(path)
		return "", err
	}
	return path, nil
}

// Table renders rec as a two column table of parameter and value.
func Table(rec *Record) string {
	t := table.NewWriter()
	t.SetTitle(rec.Name())
	t.AppendHeader(table.Row{"Section", "Parameter", "Value"})
	appendSection(t, "camera", rec.Camera)
	t.AppendSeparator()
	appendSection(t, "flight_plan", rec.FlightPlan)
	for _, w := range rec.Warnings {
		t.AppendFooter(table.Row{"warning", "", w})
	}
	return t.Render()
}

func appendSection(t table.Writer, section string, values map[string]interface{}) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.AppendRow(table.Row{section, k, formatValue(values[k])})
	}
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case float64:
		return fmt.Sprintf("%.6g", v)
	case []float64:
		parts := make([]string, 0, len(v))
		for _, f := range v {
			parts = append(parts, fmt.Sprintf("%.6g", f))
		}
		return strings.Join(parts, " x ")
	case []int:
		parts := make([]string, 0, len(v))
		for _, i := range v {
			parts = append(parts, fmt.Sprint(i))
		}
		return strings.Join(parts, " x ")
	default:
		return fmt.Sprint(v)
	}
}
