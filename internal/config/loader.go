package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "asteroids.yaml"

// LoadAsteroids loads the asteroids configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml ->
// ./configs/asteroids.yaml -> embedded default -> DefaultAsteroidsConfig.
// Only a broken customPath is an error; the other locations are skipped
// when missing or unparsable.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAsteroids(data)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseAsteroids(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseAsteroids(defaultAsteroidsYAML)
	if err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseAsteroids decodes YAML on top of the built-in defaults, so a partial
// file only overrides the keys it names.
func parseAsteroids(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AsteroidsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AsteroidsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// positiveFinite reports whether v is a usable scale or size. YAML accepts
// .inf and .nan, and NaN fails every comparison.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Validate reports values the game cannot run with.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	if !positiveFinite(c.World.CellWidth) || !positiveFinite(c.World.CellHeight) {
		errs = append(errs, fmt.Errorf("world cell size must be positive, got %vx%v", c.World.CellWidth, c.World.CellHeight))
	}
	for name, class := range map[string]RockClass{"large": c.Rocks.Large, "medium": c.Rocks.Medium, "small": c.Rocks.Small} {
		if !positiveFinite(class.Scale) {
			errs = append(errs, fmt.Errorf("rocks.%s.scale must be positive, got %v", name, class.Scale))
		}
	}
	if !positiveFinite(c.Saucer.Large.Scale) || !positiveFinite(c.Saucer.Small.Scale) {
		errs = append(errs, errors.New("saucer scales must be positive"))
	}
	if c.Ship.DebrisTTL < 0 {
		errs = append(errs, fmt.Errorf("ship.debris_ttl cannot be negative, got %d", c.Ship.DebrisTTL))
	}
	if c.Ship.MaxBullets < 0 || c.Saucer.MaxBullets < 0 {
		errs = append(errs, errors.New("max_bullets cannot be negative"))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	return errors.Join(errs...)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.InitialRocks = 2
		cfg.Saucer.SpawnInterval = cfg.Saucer.SpawnInterval * 3 / 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.InitialRocks = 5
		cfg.Saucer.SpawnInterval = cfg.Saucer.SpawnInterval * 2 / 3
		cfg.Saucer.SmallAfterScore = 0
	}
}
