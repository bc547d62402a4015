package camera

import (
	"sort"

	"github.com/pkg/errors"
)

func ptr(v float64) *float64 {
	return &v
}

// Presets are camera configs for cameras commonly flown for surveys, keyed by lower-case name.
var Presets = map[string]Config{
	"flir": {
		Name:          "Flir",
		FocalLengthMM: ptr(3.98),
		PixelSizeM:    ptr(3.75e-6),
		ImageSizePx:   []int{800, 600},
	},
	"senop": {
		Name:          "Senop",
		FocalLengthMM: ptr(3.28),
		PixelSizeM:    ptr(5.5e-6),
		ImageSizePx:   []int{1024, 1024},
	},
	"sequoia": {
		Name:          "sequoia",
		FocalLengthMM: ptr(3.98),
		PixelSizeM:    ptr(3.75e-6),
		ImageSizePx:   []int{1280, 960},
	},
}

// PresetNames returns the sorted preset keys.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetConfig returns a copy of the named preset so callers may modify it freely.
func PresetConfig(name string) (*Config, error) {
	preset, ok := Presets[name]
	if !ok {
		return nil, errors.Errorf("unknown camera preset %q, available presets: %v", name, PresetNames())
	}
	conf := preset
	conf.FocalLengthMM = copyFloat(preset.FocalLengthMM)
	conf.PixelSizeM = copyFloat(preset.PixelSizeM)
	conf.ImageSizePx = append([]int(nil), preset.ImageSizePx...)
	return &conf, nil
}
