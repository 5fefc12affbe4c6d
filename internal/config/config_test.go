package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded AsteroidsConfig
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultAsteroidsConfig()) {
		t.Errorf("embedded defaults drifted from DefaultAsteroidsConfig:\n%+v\n%+v", embedded, DefaultAsteroidsConfig())
	}
}

func TestLoadAsteroidsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nship:\n  max_bullets: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Ship.MaxBullets != 2 {
		t.Errorf("overrides not applied: lives=%d bullets=%d", cfg.Gameplay.Lives, cfg.Ship.MaxBullets)
	}
	// Keys missing from the file keep their defaults
	if cfg.Ship.BulletTTL != 35 || cfg.Rocks.Large.Scale != 2.5 {
		t.Errorf("defaults lost: ttl=%d scale=%v", cfg.Ship.BulletTTL, cfg.Rocks.Large.Scale)
	}
}

func TestLoadAsteroidsErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "ship: [unterminated", "failed to parse"},
		{"zero scale", "rocks:\n  small:\n    scale: 0\n", "rocks.small.scale"},
		{"no lives", "gameplay:\n  lives: 0\n", "gameplay.lives"},
		{"zero cell", "world:\n  cell_width: 0\n", "cell size"},
		{"infinite scale", "rocks:\n  large:\n    scale: .inf\n", "rocks.large.scale"},
		{"nan scale", "rocks:\n  medium:\n    scale: .nan\n", "rocks.medium.scale"},
		{"infinite saucer", "saucer:\n  small:\n    scale: .inf\n", "saucer scales"},
		{"nan cell", "world:\n  cell_height: .nan\n", "cell size"},
		{"negative debris", "ship:\n  debris_ttl: -1\n", "ship.debris_ttl"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadAsteroids(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}

	if _, err := LoadAsteroids(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadAsteroidsDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultAsteroidsConfig()) {
		t.Error("without config files the embedded defaults should be used")
	}
}

func TestLoadAsteroidsLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), []byte("gameplay:\n  lives: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("./configs override not used, lives=%d", cfg.Gameplay.Lives)
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		lives        int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			ApplyAsteroidsPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		ok       bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
}
