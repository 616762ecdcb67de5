package config

import "testing"

func testDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 40},
		Scaling:      ScalingConfig{SpacingReduction: 30.0},
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if d.Level(0) != 0 {
		t.Errorf("Level(0) = %v, want 0", d.Level(0))
	}
	if d.Level(20) != 0.5 {
		t.Errorf("Level(20) = %v, want 0.5", d.Level(20))
	}
	if d.Level(40) != 1.0 {
		t.Errorf("Level(40) = %v, want 1", d.Level(40))
	}
	// Saturates past the ramp
	if d.Level(500) != 1.0 {
		t.Errorf("Level(500) = %v, want 1", d.Level(500))
	}
}

func TestDifficultyLevelMonotonic(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	prev := -1.0
	for score := 0; score <= 60; score++ {
		lvl := d.Level(score)
		if lvl < prev {
			t.Fatalf("Level decreased at score %d: %v -> %v", score, prev, lvl)
		}
		prev = lvl
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if d.Level(0) != 0.5 {
		t.Errorf("Level(0) with initial 0.5 = %v", d.Level(0))
	}
	if d.Level(40) != 1.0 {
		t.Errorf("Level(40) = %v, want 1", d.Level(40))
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Enabled = false
	cfg.InitialLevel = 0.4
	d := NewDifficultyManager(cfg)

	for _, score := range []int{0, 10, 1000} {
		if d.Level(score) != 0.4 {
			t.Errorf("Disabled Level(%d) = %v, want 0.4", score, d.Level(score))
		}
	}
}

func TestGateSpacingShrinksWithScore(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	s0 := d.GateSpacing(55, 18, 0)
	s20 := d.GateSpacing(55, 18, 20)
	s40 := d.GateSpacing(55, 18, 40)

	if s0 != 55 {
		t.Errorf("Spacing at score 0 = %v, want 55", s0)
	}
	if s20 >= s0 || s40 >= s20 {
		t.Errorf("Spacing not shrinking: %v, %v, %v", s0, s20, s40)
	}
}

func TestGateSpacingFloored(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Scaling.SpacingReduction = 1000 // Far past the floor
	d := NewDifficultyManager(cfg)

	if got := d.GateSpacing(55, 18, 40); got != 18 {
		t.Errorf("Spacing = %v, want floor 18", got)
	}
}
