package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, hardcoded = %+v", cfg, Default())
	}
}

func TestParamsBridge(t *testing.T) {
	cfg := Default()
	p := cfg.Params(80, 24)

	if p.ViewportW != 80 || p.ViewportH != 24 {
		t.Errorf("viewport = %vx%v, expected 80x24", p.ViewportW, p.ViewportH)
	}
	if p.Gravity != cfg.Physics.Gravity {
		t.Errorf("gravity = %v, config has %v", p.Gravity, cfg.Physics.Gravity)
	}
	if p.Lives != cfg.Rules.Lives {
		t.Errorf("lives = %d, config has %d", p.Lives, cfg.Rules.Lives)
	}
	if p.PipeSpacing != cfg.Pipes.Spacing {
		t.Errorf("spacing = %v, config has %v", p.PipeSpacing, cfg.Pipes.Spacing)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := "rules:\n  lives: 7\n  win_score: 3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.Rules.Lives != 7 || cfg.Rules.WinScore != 3 {
		t.Errorf("loaded rules = %+v", cfg.Rules)
	}
}

func TestLoadExplicitPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed explicit config")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantLives int
	}{
		{DifficultyEasy, 5},
		{DifficultyNormal, 3},
		{DifficultyHard, 1},
	}

	for _, tt := range tests {
		cfg := Default()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Rules.Lives != tt.wantLives {
			t.Errorf("preset %q lives = %d, expected %d", tt.preset, cfg.Rules.Lives, tt.wantLives)
		}
	}

	if !ValidPreset(DifficultyHard) || ValidPreset("brutal") {
		t.Error("ValidPreset misclassifies presets")
	}
}
