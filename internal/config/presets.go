package config

import "sort"

func intPtr(v int) *int { return &v }

var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"deep": {
		Grid:    GridConfig{NX: 120, NZ: 200, DX: 10, DZ: 10},
		Physics: PhysicsConfig{VP: 3500, DT: 1e-4, NT: 2000, Scheme: "inplace"},
		Source:  SourceConfig{Z: intPtr(150), Amplitude: 1.0},
		Output:  OutputConfig{Dir: DefaultOutputDir, Format: DefaultFormat},
	},
	"shallow": {
		Grid:    GridConfig{NX: 200, NZ: 60, DX: 10, DZ: 10},
		Physics: PhysicsConfig{VP: 1500, DT: 2e-4, NT: 1500, Scheme: "inplace"},
		Source:  SourceConfig{Z: intPtr(5), Amplitude: 1.0},
		Receivers: []ReceiverConfig{
			{Name: "near", Z: 1, X: 110},
			{Name: "far", Z: 1, X: 160},
		},
		Output: OutputConfig{Dir: DefaultOutputDir, Format: DefaultFormat, Trace: true},
	},
	"leapfrog": {
		Grid:    GridConfig{NX: 100, NZ: 100, DX: 10, DZ: 10},
		Physics: PhysicsConfig{VP: 3500, DT: 1e-3, NT: 200, Scheme: "leapfrog"},
		Source:  SourceConfig{Amplitude: 1.0},
		Receivers: []ReceiverConfig{
			{Name: "surface", Z: 1, X: 50},
			{Name: "offset", Z: 25, X: 80},
		},
		Output: OutputConfig{Dir: DefaultOutputDir, Format: DefaultFormat, Trace: true},
	},
	"quiet": {
		Grid:    GridConfig{NX: 100, NZ: 100, DX: 10, DZ: 10},
		Physics: PhysicsConfig{VP: 3500, DT: 1e-4, NT: 1000, Scheme: "inplace"},
		Source:  SourceConfig{Amplitude: 0},
		Output:  OutputConfig{Dir: DefaultOutputDir, Format: DefaultFormat},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
