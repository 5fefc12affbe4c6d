// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

// AsteroidsConfig contains all tuning for the asteroids game.
type AsteroidsConfig struct {
	World      AsteroidsWorld    `yaml:"world"`
	Ship       AsteroidsShip     `yaml:"ship"`
	Rocks      AsteroidsRocks    `yaml:"rocks"`
	Saucer     AsteroidsSaucer   `yaml:"saucer"`
	Gameplay   AsteroidsGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// AsteroidsWorld maps world units onto terminal cells.
// The play field is ScreenW*CellWidth by ScreenH*CellHeight world units.
type AsteroidsWorld struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AsteroidsShip defines the player's ship handling.
type AsteroidsShip struct {
	Acceleration    float64 `yaml:"acceleration"`
	Deceleration    float64 `yaml:"deceleration"` // velocity factor applied every tick, negative
	MaxSpeed        float64 `yaml:"max_speed"`
	TurnDegrees     float64 `yaml:"turn_degrees"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
	MaxBullets      int     `yaml:"max_bullets"`
	BulletTTL       int     `yaml:"bullet_ttl"`
	HyperspaceTicks int     `yaml:"hyperspace_ticks"`
	RespawnTicks    int     `yaml:"respawn_ticks"`
	DebrisTTL       int     `yaml:"debris_ttl"`  // lifetime of the exploded ship's edges
	SafeRadius      float64 `yaml:"safe_radius"` // no rock may be this close to the respawn point
}

// RockClass describes one rock size.
type RockClass struct {
	Speed float64 `yaml:"speed"`
	Scale float64 `yaml:"scale"`
	Score int     `yaml:"score"`
}

// AsteroidsRocks defines rock sizes and the debris they leave behind.
type AsteroidsRocks struct {
	Large       RockClass `yaml:"large"`
	Medium      RockClass `yaml:"medium"`
	Small       RockClass `yaml:"small"`
	Spin        float64   `yaml:"spin"` // degrees per tick
	DebrisCount int       `yaml:"debris_count"`
	DebrisTTL   int       `yaml:"debris_ttl"`
	DebrisSpeed float64   `yaml:"debris_speed"`
}

// SaucerClass describes one saucer size.
type SaucerClass struct {
	Speed     float64 `yaml:"speed"`
	Scale     float64 `yaml:"scale"`
	Score     int     `yaml:"score"`
	BulletTTL int     `yaml:"bullet_ttl"`
}

// AsteroidsSaucer defines the flying saucer.
type AsteroidsSaucer struct {
	Enabled         bool        `yaml:"enabled"`
	SpawnInterval   int         `yaml:"spawn_interval"` // ticks between saucers
	Large           SaucerClass `yaml:"large"`
	Small           SaucerClass `yaml:"small"`
	BulletSpeed     float64     `yaml:"bullet_speed"`
	MaxBullets      int         `yaml:"max_bullets"`
	Laps            int         `yaml:"laps"`
	SmallAfterScore int         `yaml:"small_after_score"`
}

// AsteroidsGameplay defines lives, scoring and waves.
type AsteroidsGameplay struct {
	Lives          int `yaml:"lives"`
	ExtraLifeEvery int `yaml:"extra_life_every"`
	InitialRocks   int `yaml:"initial_rocks"`
	RocksPerWave   int `yaml:"rocks_per_wave"`
	MaxRocks       int `yaml:"max_rocks"`
	WaveDelay      int `yaml:"wave_delay"` // ticks between a cleared wave and the next
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to rock speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // saucer interval reduction at max difficulty
	SmallSaucerChance float64 `yaml:"small_saucer_chance"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
