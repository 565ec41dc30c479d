package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != "deco2018" {
		t.Errorf("default model %q, want deco2018", cfg.Model)
	}
	if cfg.Dt != DefaultDt || cfg.TR != DefaultTR {
		t.Errorf("default timing dt=%v tr=%v", cfg.Dt, cfg.TR)
	}
	if cfg.Band.Low != 0.04 || cfg.Band.High != 0.07 {
		t.Errorf("default band [%v, %v], want [0.04, 0.07]", cfg.Band.Low, cfg.Band.High)
	}
	if cfg.ModelParams.Rho != 3.0 {
		t.Errorf("default rho %v, want 3", cfg.ModelParams.Rho)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	cfg := DefaultConfig()
	cfg.Model = "naskar2021"
	cfg.G = 0.69
	cfg.Seed = 42
	cfg.ModelParams.Gamma = 0.5
	cfg.ModelParams.J = []float64{1.0, 1.5}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Model != "naskar2021" || loaded.G != 0.69 || loaded.Seed != 42 {
		t.Errorf("loaded %+v", loaded)
	}
	if loaded.ModelParams.Gamma != 0.5 {
		t.Errorf("gamma %v, want 0.5", loaded.ModelParams.Gamma)
	}
	if len(loaded.ModelParams.J) != 2 || loaded.ModelParams.J[1] != 1.5 {
		t.Errorf("j %v, want [1 1.5]", loaded.ModelParams.J)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("model: naskar2021\ng: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "naskar2021" || cfg.G != 0.5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Dt != DefaultDt || cfg.Regions != DefaultRegions {
		t.Errorf("defaults not kept: dt=%v regions=%d", cfg.Dt, cfg.Regions)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresets(t *testing.T) {
	cfg := GetPreset("deco2018", "serotonin")
	if cfg == nil {
		t.Fatal("serotonin preset missing")
	}
	if cfg.ModelParams.WGainE != 0.2 || cfg.ModelParams.WGainI != 0.2 {
		t.Errorf("serotonin gains %v/%v, want 0.2/0.2", cfg.ModelParams.WGainE, cfg.ModelParams.WGainI)
	}

	if GetPreset("deco2018", "bogus") != nil {
		t.Error("unknown preset should return nil")
	}
	if GetPreset("bogus", "resting") != nil {
		t.Error("unknown model should return nil")
	}

	if names := ListPresets("naskar2021"); len(names) != 2 {
		t.Errorf("naskar2021 presets %v, want 2 entries", names)
	}
	if ListPresets("bogus") != nil {
		t.Error("unknown model should list nil")
	}
}

func TestPresetModelFieldsConsistent(t *testing.T) {
	for model, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Model != model {
				t.Errorf("preset %s/%s declares model %q", model, name, cfg.Model)
			}
			if cfg.Band.Low >= cfg.Band.High {
				t.Errorf("preset %s/%s band [%v, %v] inverted", model, name, cfg.Band.Low, cfg.Band.High)
			}
		}
	}
}
