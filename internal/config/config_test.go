package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigSane(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Track.Step <= 0 {
		t.Error("Track step must be positive")
	}
	if cfg.Track.HalfWidth <= cfg.Physics.EdgeMargin {
		t.Error("Half width must exceed the edge margin")
	}
	if cfg.Track.MinPoints < 2 {
		t.Error("MinPoints below the sampling minimum")
	}
	if cfg.Physics.StepsPerSecond <= 0 {
		t.Error("StepsPerSecond must be positive")
	}
	if cfg.Physics.MinForwardSpeed > cfg.Physics.MaxForwardSpeed {
		t.Error("Speed floor above the speed cap")
	}
	if cfg.Gates.MinSpacing <= cfg.Gates.PassTolerance {
		t.Error("Gate spacing floor must exceed the pass tolerance")
	}
	if cfg.Gates.MinSpacing > cfg.Gates.BaseSpacing {
		t.Error("Gate spacing floor above the base spacing")
	}
	if cfg.Track.Lookahead <= cfg.Gates.BaseSpacing {
		t.Error("Lookahead too short to cover gate spawns")
	}
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var fromYAML SlipwayConfig
	if err := yaml.Unmarshal(defaultSlipwayYAML, &fromYAML); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultConfig() {
		t.Errorf("Embedded YAML diverges from DefaultConfig():\nyaml: %+v\ncode: %+v",
			fromYAML, DefaultConfig())
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and no user config in the test environment's cwd
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Physics.StepsPerSecond <= 0 {
		t.Error("Loaded config missing physics section")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := []byte("track:\n  step: 2.5\n  half_width: 9.0\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Track.Step != 2.5 || cfg.Track.HalfWidth != 9.0 {
		t.Errorf("Custom values not loaded: %+v", cfg.Track)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/slipway.yaml"); err == nil {
		t.Error("Load of a missing custom path did not fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, c.preset)
		if cfg.Difficulty.Enabled != c.enabled {
			t.Errorf("%s: enabled = %v", c.preset, cfg.Difficulty.Enabled)
		}
		if cfg.Difficulty.InitialLevel != c.initial {
			t.Errorf("%s: initial level = %v, want %v", c.preset, cfg.Difficulty.InitialLevel, c.initial)
		}
	}

	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset left progression enabled")
	}
}

func TestFixedStep(t *testing.T) {
	p := PhysicsConfig{StepsPerSecond: 120}
	if p.FixedStep() != 1.0/120.0 {
		t.Errorf("FixedStep = %v", p.FixedStep())
	}

	p.StepsPerSecond = 0
	if p.FixedStep() != 1.0/120.0 {
		t.Errorf("Degenerate FixedStep = %v", p.FixedStep())
	}
}
