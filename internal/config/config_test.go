package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Parameters.System != "plurality" {
		t.Errorf("expected system plurality, got %s", cfg.Parameters.System)
	}
	if !slices.Equal(cfg.Parameters.Candidates, []float64{0.0, 0.3, 0.5, 1.0}) {
		t.Errorf("unexpected default candidates %v", cfg.Parameters.Candidates)
	}
	if cfg.Render.Size < 2 {
		t.Error("size should be at least 2")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultParametersIndependent(t *testing.T) {
	p := DefaultParameters()
	p.Candidates[0] = 9
	if DefaultCandidates[0] != 0 {
		t.Error("default parameters share the default candidate slice")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
		valid  bool
	}{
		{"defaults", func(p *Parameters) {}, true},
		{"single candidate", func(p *Parameters) { p.Candidates = []float64{0.5} }, true},
		{"no candidates", func(p *Parameters) { p.Candidates = nil }, false},
		{"too many candidates", func(p *Parameters) { p.Candidates = make([]float64, 13) }, false},
		{"unknown system", func(p *Parameters) { p.System = "condorcet" }, false},
		{"hare", func(p *Parameters) { p.System = "hare" }, true},
		{"zero variance", func(p *Parameters) { p.Variance0 = 0 }, false},
		{"negative variance", func(p *Parameters) { p.Variance1 = -0.1 }, false},
		{"zero weight", func(p *Parameters) { p.Weight1 = 0 }, true},
		{"negative weight", func(p *Parameters) { p.Weight1 = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := p.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("expected ErrInvalidParameters, got %v", err)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := DefaultParameters()
	system := "borda"
	weight := 0.25

	merged := base.Merge(Update{System: &system, Weight1: &weight})

	if merged.System != "borda" || merged.Weight1 != 0.25 {
		t.Errorf("update not applied: %+v", merged)
	}
	if merged.Variance0 != base.Variance0 || !slices.Equal(merged.Candidates, base.Candidates) {
		t.Errorf("unset fields changed: %+v", merged)
	}
	if base.System != "plurality" {
		t.Error("merge modified the receiver")
	}

	merged.Candidates[0] = 42
	if base.Candidates[0] == 42 {
		t.Error("merged parameters share candidates with the receiver")
	}
}

func TestMerge_Empty(t *testing.T) {
	base := DefaultParameters()
	merged := base.Merge(Update{})
	if !slices.Equal(merged.Candidates, base.Candidates) || merged.System != base.System {
		t.Errorf("empty update changed parameters: %+v", merged)
	}
}

func TestUpdateFrom(t *testing.T) {
	p := Presets["crowded"]
	got := DefaultParameters().Merge(UpdateFrom(p))
	if !slices.Equal(got.Candidates, p.Candidates) || got.System != p.System || got.Weight1 != p.Weight1 {
		t.Errorf("UpdateFrom did not carry every field: %+v", got)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votesim.yaml")

	cfg := DefaultConfig()
	cfg.Parameters.System = "hare"
	cfg.Parameters.Candidates = []float64{-0.5, 0.5}
	cfg.Render.Size = 64

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Parameters.System != "hare" || loaded.Render.Size != 64 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if !slices.Equal(loaded.Parameters.Candidates, []float64{-0.5, 0.5}) {
		t.Errorf("expected candidates [-0.5 0.5], got %v", loaded.Parameters.Candidates)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("parameters:\n  system: approval\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Parameters.System != "approval" {
		t.Errorf("expected approval, got %s", cfg.Parameters.System)
	}
	if cfg.Parameters.Variance0 != DefaultVariance || cfg.Render.Palette != DefaultPalette {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadOver_KeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("parameters:\n  weight_1: 0.5\nrender:\n  size: 64\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := DefaultConfig()
	base.Parameters = *GetPreset("runoff")

	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Parameters.System != "hare" {
		t.Errorf("expected preset system hare, got %s", cfg.Parameters.System)
	}
	if cfg.Parameters.Weight1 != 0.5 || cfg.Render.Size != 64 {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("parameters:\n  variance_0: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters, got %v", err)
	}
}

func TestLoadUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "update.yaml")
	if err := os.WriteFile(path, []byte("system: hare\nweight_1: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	u, err := LoadUpdate(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if u.System == nil || *u.System != "hare" {
		t.Errorf("expected system hare, got %v", u.System)
	}
	if u.Weight1 == nil || *u.Weight1 != 0.5 {
		t.Errorf("expected weight 0.5, got %v", u.Weight1)
	}
	if u.Variance0 != nil || u.Candidates != nil {
		t.Error("unset fields should stay nil")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("runoff")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.System != "hare" {
		t.Errorf("expected system hare, got %s", p.System)
	}

	p.Candidates[0] = 7
	if Presets["runoff"].Candidates[0] == 7 {
		t.Error("GetPreset returned shared candidates")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("preset names should be sorted")
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
