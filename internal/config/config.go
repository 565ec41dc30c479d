package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.1      // ms
	DefaultDuration = 120000.0 // ms
	DefaultWarmup   = 10000.0  // ms
	DefaultTR       = 2.0      // s
	DefaultG        = 2.0
	DefaultSigma    = 0.01
	DefaultRegions  = 68
	DefaultBandLow  = 0.04 // Hz
	DefaultBandHigh = 0.07 // Hz
)

type Config struct {
	Model      string  `yaml:"model"`
	Integrator string  `yaml:"integrator"`
	Regions    int     `yaml:"regions"`
	G          float64 `yaml:"g"`
	Dt         float64 `yaml:"dt"`
	Duration   float64 `yaml:"duration"`
	Warmup     float64 `yaml:"warmup"`
	TR         float64 `yaml:"tr"`
	Seed       int64   `yaml:"seed"`
	Subjects   int     `yaml:"subjects"`
	Sigma      float64 `yaml:"sigma"`

	ModelParams ModelConfig `yaml:"model_params"`
	Band        BandConfig  `yaml:"band"`
}

type ModelConfig struct {
	AutoFIC  bool      `yaml:"auto_fic"`
	J        []float64 `yaml:"j"`
	Receptor []float64 `yaml:"receptor"`
	WGainE   float64   `yaml:"w_gain_e"`
	WGainI   float64   `yaml:"w_gain_i"`
	Gamma    float64   `yaml:"gamma"`
	Rho      float64   `yaml:"rho"`
}

type BandConfig struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "deco2018",
		Integrator: "euler_maruyama",
		Regions:    DefaultRegions,
		G:          DefaultG,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Warmup:     DefaultWarmup,
		TR:         DefaultTR,
		Subjects:   1,
		Sigma:      DefaultSigma,
		ModelParams: ModelConfig{
			Gamma: 1.0,
			Rho:   3.0,
		},
		Band: BandConfig{
			Low:  DefaultBandLow,
			High: DefaultBandHigh,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
