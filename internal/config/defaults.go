package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in asteroids configuration. It
// matches defaults/asteroids.yaml and is used when that cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: AsteroidsWorld{
			CellWidth:  5,
			CellHeight: 10,
		},
		Ship: AsteroidsShip{
			Acceleration:    0.2,
			Deceleration:    -0.005,
			MaxSpeed:        10,
			TurnDegrees:     6,
			BulletSpeed:     13,
			MaxBullets:      4,
			BulletTTL:       35,
			HyperspaceTicks: 100,
			RespawnTicks:    60,
			DebrisTTL:       45,
			SafeRadius:      60,
		},
		Rocks: AsteroidsRocks{
			Large:       RockClass{Speed: 1.5, Scale: 2.5, Score: 20},
			Medium:      RockClass{Speed: 3.0, Scale: 1.5, Score: 50},
			Small:       RockClass{Speed: 4.5, Scale: 0.6, Score: 100},
			Spin:        1,
			DebrisCount: 8,
			DebrisTTL:   50,
			DebrisSpeed: 1.5,
		},
		Saucer: AsteroidsSaucer{
			Enabled:         true,
			SpawnInterval:   900,
			Large:           SaucerClass{Speed: 1.5, Scale: 1.5, Score: 500, BulletTTL: 60},
			Small:           SaucerClass{Speed: 2.5, Scale: 1.0, Score: 1000, BulletTTL: 90},
			BulletSpeed:     5,
			MaxBullets:      1,
			Laps:            2,
			SmallAfterScore: 10000,
		},
		Gameplay: AsteroidsGameplay{
			Lives:          3,
			ExtraLifeEvery: 10000,
			InitialRocks:   3,
			RocksPerWave:   1,
			MaxRocks:       11,
			WaveDelay:      60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 450,
				SmallSaucerChance: 0.8,
			},
		},
	}
}
