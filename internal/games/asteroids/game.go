// Package asteroids implements a vector-outline Asteroids game on top of the
// polygon transform and segment intersection engine in internal/vector.
package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/vector"
)

// Variant selects the rule set.
type Variant int

const (
	VariantSpinning Variant = iota // rocks rotate as they drift
	VariantClassic                 // rocks keep a fixed orientation, as in the 1979 arcade game
)

// Minimum terminal size the game will run in.
const (
	minScreenW = 40
	minScreenH = 12
	hudRows    = 1
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

func init() {
	registry.Register("asteroids", func() registry.Game { return New() })
	registry.Register("asteroids_classic", func() registry.Game { return NewClassic() })
}

// Game implements the asteroids game logic.
type Game struct {
	variant Variant

	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	arena  *Arena
	shapes ShapeSelector
	world  vector.Vec2 // play field size in world units

	ship      EntityID // zero while the ship is dead
	thrusting bool
	hyperTTL  int // ticks left in hyperspace, zero when not jumping
	respawn   int // ticks until the ship may reappear

	score         int
	lives         int
	wave          int
	nextExtraLife int
	waveDelay     int
	saucerTimer   int

	tick     int
	paused   bool
	gameOver bool
	tooSmall bool
	events   []core.Event
}

// New creates a game with spinning rocks.
func New() *Game {
	return &Game{variant: VariantSpinning}
}

// NewClassic creates a game whose rocks do not spin.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "asteroids_classic"
	}
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Asteroids (Classic)"
	}
	return "Asteroids"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "Arcade rules: rocks drift without spinning"
	}
	return "Shoot the rocks, dodge the saucer, survive the waves"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig restarts the game with an explicit configuration instead
// of loading one from disk.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.AsteroidsConfig) {
	if g.variant == VariantClassic {
		cfg.Rocks.Spin = 0
	}

	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.arena = NewArena()
	g.shapes = ShapeSelector{}

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.world = vector.V(
		float64(runtime.ScreenW)*cfg.World.CellWidth,
		float64(runtime.ScreenH-hudRows)*cfg.World.CellHeight,
	)

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.wave = 0
	g.nextExtraLife = cfg.Gameplay.ExtraLifeEvery
	g.waveDelay = 0
	g.saucerTimer = cfg.Saucer.SpawnInterval
	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.events = nil

	g.ship = 0
	g.spawnShip()
	g.startWave()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		g.ResetWithConfig(g.runtime, g.cfg)
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return g.result()
	}

	g.tick++

	g.handleInput(in)
	g.moveEntities()
	g.updateShip()
	g.updateSaucer()
	g.checkCollisions()
	g.arena.Compact()
	g.updateWave()

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Wave:     g.wave,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// World returns the play field size in world units.
func (g *Game) World() vector.Vec2 {
	return g.world
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// addScore adds points and grants an extra life at every threshold crossed.
func (g *Game) addScore(points int) {
	g.score += points
	every := g.cfg.Gameplay.ExtraLifeEvery
	if every <= 0 {
		return
	}
	for g.score >= g.nextExtraLife {
		g.lives++
		g.nextExtraLife += every
		g.emit(core.EventExtraLife)
	}
}

// randomHeading returns a velocity with each component drawn from
// [-speed, speed). Zero components are nudged so nothing sits still or
// moves along an axis.
func (g *Game) randomHeading(speed float64) vector.Vec2 {
	v := vector.V(
		(g.rng.Float64()*2-1)*speed,
		(g.rng.Float64()*2-1)*speed,
	)
	if v.X == 0 {
		v.X = 0.1
	}
	if v.Y == 0 {
		v.Y = 0.1
	}
	return v
}

// moveEntities advances every entity except the ship by one tick, wraps
// them around the play field and expires the mortal ones.
func (g *Game) moveEntities() {
	for _, e := range g.arena.Each() {
		if e.Kind == KindShip {
			continue
		}
		if e.Mortal {
			e.TTL--
			if e.TTL <= 0 {
				g.arena.Remove(e.ID)
				continue
			}
		}
		e.Move()
		if e.Kind == KindDebris {
			e.Fade = fadeDebris(e.Fade)
		}
		if e.Kind == KindSaucer {
			g.steerSaucer(e)
		}
		e.Wrap(g.world.X, g.world.Y)
	}
}
