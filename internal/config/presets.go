package config

var Presets = map[string]map[string]*Config{
	"langford": {
		"torus": {
			Attractor: "langford", Output: "image", Time: 120,
		},
		"quick": {
			Attractor: "langford", Output: "animation", Time: 30,
		},
	},
	"lorenz": {
		"butterfly": {
			Attractor: "lorenz", Output: "image", Time: 60,
		},
		"quick": {
			Attractor: "lorenz", Output: "animation", Time: 20,
		},
		"periodic": {
			// rho below the chaotic threshold settles onto a fixed point
			Attractor: "lorenz", Output: "image", Time: 60,
			Params: map[string]float64{"rho": 15},
		},
	},
	"rossler": {
		"band": {
			Attractor: "rossler", Output: "image", Time: 300,
		},
		"funnel": {
			Attractor: "rossler", Output: "image", Time: 300,
			Params: map[string]float64{"a": 0.3, "b": 0.1, "c": 8.5},
		},
	},
	"sprott": {
		"case-s": {
			Attractor: "sprott", Output: "image", Time: 200,
		},
	},
}

func GetPreset(attractor, preset string) *Config {
	attractorPresets, ok := Presets[attractor]
	if !ok {
		return nil
	}
	cfg, ok := attractorPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(attractor string) []string {
	attractorPresets, ok := Presets[attractor]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(attractorPresets))
	for name := range attractorPresets {
		names = append(names, name)
	}
	return names
}
