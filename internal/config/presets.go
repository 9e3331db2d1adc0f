package config

import "slices"

// Presets are named parameter sets. Each is a full Parameters value.
var Presets = map[string]Parameters{
	"default": {
		Candidates: []float64{0.0, 0.3, 0.5, 1.0}, System: "plurality",
		Variance0: 0.2, Variance1: 0.2, Weight1: 1.0,
	},
	"spoiler": {
		Candidates: []float64{0.2, 0.45, 0.55, 0.9}, System: "plurality",
		Variance0: 0.15, Variance1: 0.15, Weight1: 1.0,
	},
	"runoff": {
		Candidates: []float64{0.2, 0.45, 0.55, 0.9}, System: "hare",
		Variance0: 0.15, Variance1: 0.15, Weight1: 1.0,
	},
	"polarized": {
		Candidates: []float64{0.0, 0.5, 1.0}, System: "borda",
		Variance0: 0.08, Variance1: 0.08, Weight1: 1.0,
	},
	"lopsided": {
		Candidates: []float64{0.0, 0.3, 0.5, 1.0}, System: "approval",
		Variance0: 0.2, Variance1: 0.3, Weight1: 0.4,
	},
	"crowded": {
		Candidates: []float64{0.0, 0.15, 0.35, 0.5, 0.65, 0.8, 1.0}, System: "hare",
		Variance0: 0.2, Variance1: 0.2, Weight1: 1.0,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Parameters {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	p.Candidates = slices.Clone(p.Candidates)
	return &p
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
