package config

var Presets = map[string]map[string]*Config{
	"deco2018": {
		"resting": {
			Model: "deco2018", Integrator: "euler_maruyama",
			Dt: 0.1, Duration: 240000.0, Warmup: 10000.0, TR: 2.0,
			G: 2.0, Sigma: 0.01, Regions: 68, Subjects: 1,
			ModelParams: ModelConfig{AutoFIC: true},
			Band:        BandConfig{Low: 0.04, High: 0.07},
		},
		"serotonin": {
			Model: "deco2018", Integrator: "euler_maruyama",
			Dt: 0.1, Duration: 240000.0, Warmup: 10000.0, TR: 2.0,
			G: 2.0, Sigma: 0.01, Regions: 68, Subjects: 1,
			ModelParams: ModelConfig{AutoFIC: true, WGainE: 0.2, WGainI: 0.2},
			Band:        BandConfig{Low: 0.04, High: 0.07},
		},
		"deterministic": {
			Model: "deco2018", Integrator: "heun",
			Dt: 0.1, Duration: 60000.0, Warmup: 5000.0, TR: 2.0,
			G: 2.0, Regions: 68, Subjects: 1,
			Band: BandConfig{Low: 0.04, High: 0.07},
		},
	},
	"naskar2021": {
		"homeostatic": {
			Model: "naskar2021", Integrator: "euler_maruyama",
			Dt: 0.1, Duration: 240000.0, Warmup: 20000.0, TR: 2.0,
			G: 0.69, Sigma: 0.01, Regions: 68, Subjects: 1,
			ModelParams: ModelConfig{Gamma: 1.0, Rho: 3.0},
			Band:        BandConfig{Low: 0.04, High: 0.07},
		},
		"frozen": {
			Model: "naskar2021", Integrator: "euler_maruyama",
			Dt: 0.1, Duration: 120000.0, Warmup: 10000.0, TR: 2.0,
			G: 0.69, Sigma: 0.01, Regions: 68, Subjects: 1,
			ModelParams: ModelConfig{Gamma: 0.0, Rho: 3.0},
			Band:        BandConfig{Low: 0.04, High: 0.07},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
