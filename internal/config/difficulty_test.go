package config

import (
	"math"
	"testing"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling: ScalingConfig{
			SpeedMultiplier:   1.0,
			IntervalReduction: 600,
			SmallSaucerChance: 0.5,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficulty()
	cfg.InitialLevel = 0
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 100}
	d := NewDifficultyManager(cfg)

	if got := d.Level(99999, 50); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("time progression ignored ticks: Level = %v", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())
	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("SetEnabled(false) should disable progression")
	}
	if got := d.Level(1000, 1000); got != 0.2 {
		t.Errorf("disabled manager should stay at the initial level, got %v", got)
	}

	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := testDifficulty()
	cfg.InitialLevel = 0
	d := NewDifficultyManager(cfg)

	if got := d.Speed(1.5, 0, 0); got != 1.5 {
		t.Errorf("Speed at level 0 = %v, expected 1.5", got)
	}
	if got := d.Speed(1.5, 1000, 0); got != 3.0 {
		t.Errorf("Speed at level 1 = %v, expected 3.0", got)
	}

	if got := d.SaucerInterval(900, 0, 0); got != 900 {
		t.Errorf("SaucerInterval at level 0 = %d, expected 900", got)
	}
	if got := d.SaucerInterval(900, 500, 0); got != 600 {
		t.Errorf("SaucerInterval at level 0.5 = %d, expected 600", got)
	}
	if got := d.SaucerInterval(400, 1000, 0); got != minSaucerInterval {
		t.Errorf("SaucerInterval should floor at %d, got %d", minSaucerInterval, got)
	}

	if got := d.SmallSaucerChance(1000, 0); got != 0.5 {
		t.Errorf("SmallSaucerChance at level 1 = %v, expected 0.5", got)
	}
}
