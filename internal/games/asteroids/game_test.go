package asteroids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/vector"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 42}

// newTestGame starts a game on an 80x24 screen (a 400x230 world) with the
// saucer disabled unless an option turns it back on.
func newTestGame(t *testing.T, opts ...func(*config.AsteroidsConfig)) *Game {
	t.Helper()
	cfg := config.DefaultAsteroidsConfig()
	cfg.Saucer.Enabled = false
	for _, opt := range opts {
		opt(&cfg)
	}
	g := New()
	g.ResetWithConfig(testRuntime, cfg)
	return g
}

func clearKinds(g *Game, kinds ...Kind) {
	for _, e := range g.arena.Each(kinds...) {
		g.arena.Remove(e.ID)
	}
	g.arena.Compact()
}

// placeRock puts a motionless rock using the first base shape at pos.
func placeRock(g *Game, size RockSize, pos vector.Vec2) *Entity {
	g.shapes = ShapeSelector{}
	e, _ := g.arena.Get(g.spawnRock(size, pos))
	e.Velocity = vector.Vec2{}
	e.Spin = 0
	return e
}

func placeBullet(g *Game, kind Kind, pos vector.Vec2) *Entity {
	e := &Entity{
		Kind:   kind,
		Body:   vector.Body{Transform: vector.Transform{Position: pos}},
		Shape:  pointShape,
		TTL:    30,
		Mortal: true,
	}
	g.arena.Spawn(e)
	return e
}

func steps(g *Game, n int, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(core.FrameOf(actions...))
	}
	return res
}

func TestRegistryVariants(t *testing.T) {
	g, err := registry.Create("asteroids")
	require.NoError(t, err)
	assert.Equal(t, "asteroids", g.ID())

	g, err = registry.Create("asteroids_classic")
	require.NoError(t, err)
	assert.Equal(t, "Asteroids (Classic)", g.Title())
}

func TestReset(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, vector.V(400, 230), g.World())
	state := g.State()
	assert.Equal(t, core.GameState{Lives: 3, Wave: 1}, state)

	ship, ok := g.shipEntity()
	require.True(t, ok)
	assert.Equal(t, vector.V(200, 115), ship.Position)
	assert.Equal(t, 3, g.arena.Count(KindRock))

	for _, rock := range g.arena.Each(KindRock) {
		assert.Equal(t, RockLarge, rock.Rock)
		assert.Equal(t, 1.0, rock.Spin)
		assert.NotZero(t, rock.Velocity.X)
		assert.NotZero(t, rock.Velocity.Y)
	}
}

func TestClassicRocksDoNotSpin(t *testing.T) {
	g := NewClassic()
	g.ResetWithConfig(testRuntime, config.DefaultAsteroidsConfig())

	for _, rock := range g.arena.Each(KindRock) {
		assert.Zero(t, rock.Spin)
	}
}

func TestShipRotation(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	g.Step(core.FrameOf(core.ActionRotateLeft))
	ship, _ := g.shipEntity()
	assert.InDelta(t, 6.0, ship.Angle, 1e-9)

	steps(g, 2, core.ActionRotateRight)
	assert.InDelta(t, 354.0, ship.Angle, 1e-9)
}

func TestShipThrustAndDrag(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	g.Step(core.FrameOf(core.ActionThrust))
	ship, _ := g.shipEntity()

	// Accelerated 0.2 towards the nose, moved, then lost 0.5% to drag
	assert.InDelta(t, 114.8, ship.Position.Y, 1e-9)
	assert.InDelta(t, 0.0, ship.Velocity.X, 1e-9)
	assert.InDelta(t, -0.199, ship.Velocity.Y, 1e-9)
	assert.True(t, g.thrusting)

	g.Step(core.NewInputFrame())
	assert.False(t, g.thrusting)
	assert.InDelta(t, -0.199*0.995, ship.Velocity.Y, 1e-9)
}

func TestShipThrustRespectsMaxSpeed(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	ship, _ := g.shipEntity()
	ship.Velocity = vector.V(0, -11)
	g.Step(core.FrameOf(core.ActionThrust))
	assert.InDelta(t, -11*0.995, ship.Velocity.Y, 1e-9, "no acceleration above max speed")
}

func TestShipBulletLimit(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	steps(g, 6, core.ActionFire)
	assert.Equal(t, 4, g.arena.Count(KindShipBullet))

	bullet := g.arena.Each(KindShipBullet)[0]
	assert.InDelta(t, 13.0, bullet.Velocity.Len(), 1e-9)
}

func TestShipBulletExpires(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	g.Step(core.FrameOf(core.ActionFire))
	steps(g, 33)
	assert.Equal(t, 1, g.arena.Count(KindShipBullet), "alive after 34 ticks")

	g.Step(core.NewInputFrame())
	assert.Equal(t, 0, g.arena.Count(KindShipBullet), "gone after 35 ticks")
}

func TestBulletDestroysRock(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	// The first rock shape's top edge runs along y = pos.y - 30
	placeRock(g, RockLarge, vector.V(100, 60))
	placeBullet(g, KindShipBullet, vector.V(100, 30)).Velocity = vector.Vec2{}

	res := g.Step(core.NewInputFrame())

	assert.Equal(t, 20, res.State.Score)
	assert.Contains(t, res.Events, core.EventRockDestroyed)
	assert.Equal(t, 0, g.arena.Count(KindShipBullet))
	require.Equal(t, 2, g.arena.Count(KindRock))
	for _, rock := range g.arena.Each(KindRock) {
		assert.Equal(t, RockMedium, rock.Rock)
		assert.Equal(t, vector.V(100, 60), rock.Position, "fragments start where the rock was")
	}
	assert.Equal(t, 8, g.arena.Count(KindDebris))
}

func TestSmallRockDoesNotSplit(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	// Scaled by 0.6 the first shape's top edge is at y = pos.y - 7
	placeRock(g, RockSmall, vector.V(100, 60))
	placeBullet(g, KindShipBullet, vector.V(100, 53)).Velocity = vector.Vec2{}

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, 100, res.State.Score)
	assert.Equal(t, 0, g.arena.Count(KindRock))
}

func TestMissedBulletKeepsFlying(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	placeRock(g, RockLarge, vector.V(100, 60))
	placeBullet(g, KindShipBullet, vector.V(300, 30)).Velocity = vector.Vec2{}

	res := g.Step(core.NewInputFrame())
	assert.Zero(t, res.State.Score)
	assert.Equal(t, 1, g.arena.Count(KindRock))
	assert.Equal(t, 1, g.arena.Count(KindShipBullet))
}

// Crashes a rock into the ship: the rock's top edge at y=110 cuts the
// ship's nose, which sits at (200, 105).
func crashShip(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	clearKinds(g, KindRock)
	placeRock(g, RockLarge, vector.V(200, 140))
	return g.Step(core.NewInputFrame())
}

func TestShipCollidesWithRock(t *testing.T) {
	g := newTestGame(t)

	res := crashShip(t, g)

	assert.Contains(t, res.Events, core.EventShipDestroyed)
	assert.Equal(t, 2, res.State.Lives)
	assert.Equal(t, 20, res.State.Score)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, EntityID(0), g.ship)
	assert.Equal(t, 5, g.arena.Count(KindShipDebris))
	assert.Equal(t, 0, g.arena.Count(KindShip))
}

func TestShipRespawns(t *testing.T) {
	g := newTestGame(t)
	crashShip(t, g)
	clearKinds(g, KindRock)

	for i := 0; i < g.cfg.Ship.RespawnTicks+5 && g.ship == 0; i++ {
		g.Step(core.NewInputFrame())
	}
	ship, ok := g.shipEntity()
	require.True(t, ok, "ship should respawn after the delay")
	assert.Equal(t, vector.V(200, 115), ship.Position)
	assert.Equal(t, 2, g.lives)
}

func TestShipDebrisLifetime(t *testing.T) {
	g := newTestGame(t, func(c *config.AsteroidsConfig) {
		c.Ship.DebrisTTL = 10
		c.Ship.RespawnTicks = 40
	})
	crashShip(t, g)
	clearKinds(g, KindRock)
	require.Equal(t, 5, g.arena.Count(KindShipDebris))

	steps(g, 10)
	assert.Equal(t, 0, g.arena.Count(KindShipDebris), "ship debris follows debris_ttl")
	assert.Equal(t, EntityID(0), g.ship, "respawn delay is separate")
}

func TestRespawnWaitsForClearCentre(t *testing.T) {
	g := newTestGame(t)
	crashShip(t, g)
	clearKinds(g, KindRock)
	placeRock(g, RockSmall, vector.V(210, 120))

	steps(g, g.cfg.Ship.RespawnTicks+10)
	assert.Equal(t, EntityID(0), g.ship, "a rock in the centre blocks respawning")
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t)
	g.lives = 1

	res := crashShip(t, g)
	assert.True(t, res.State.GameOver)
	assert.Contains(t, res.Events, core.EventGameOver)

	tick := g.tick
	g.Step(core.FrameOf(core.ActionFire))
	assert.Equal(t, tick, g.tick, "simulation stops after game over")

	res = g.Step(core.FrameOf(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 3, res.State.Lives)
	assert.Equal(t, 0, res.State.Score)
}

func TestShipHitBySaucerBullet(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	// Right on the ship's nose
	placeBullet(g, KindSaucerBullet, vector.V(200, 105)).Velocity = vector.Vec2{}

	res := g.Step(core.NewInputFrame())
	assert.Contains(t, res.Events, core.EventShipDestroyed)
	assert.Zero(t, res.State.Score)
	assert.Equal(t, 0, g.arena.Count(KindSaucerBullet))
}

func TestHyperspace(t *testing.T) {
	// Keep the next wave away so nothing waits at the arrival point
	g := newTestGame(t, func(cfg *config.AsteroidsConfig) { cfg.Gameplay.WaveDelay = 1000 })
	clearKinds(g, KindRock)

	g.Step(core.FrameOf(core.ActionHyperspace))
	assert.False(t, g.shipActive(), "ship is gone while in hyperspace")

	// Nothing hits a ship in hyperspace
	placeBullet(g, KindSaucerBullet, vector.V(200, 105)).Velocity = vector.Vec2{}
	g.Step(core.FrameOf(core.ActionFire))
	assert.Equal(t, 3, g.lives)
	assert.Equal(t, 0, g.arena.Count(KindShipBullet), "cannot fire from hyperspace")

	steps(g, g.cfg.Ship.HyperspaceTicks)
	require.True(t, g.shipActive())
	ship, _ := g.shipEntity()
	assert.GreaterOrEqual(t, ship.Position.X, 0.0)
	assert.LessOrEqual(t, ship.Position.X, g.world.X)
	assert.GreaterOrEqual(t, ship.Position.Y, 0.0)
	assert.LessOrEqual(t, ship.Position.Y, g.world.Y)
}

func TestExtraLife(t *testing.T) {
	g := newTestGame(t)

	g.addScore(9990)
	assert.Equal(t, 3, g.lives)

	g.addScore(20)
	assert.Equal(t, 4, g.lives)
	assert.Contains(t, g.events, core.EventExtraLife)

	// Crossing two thresholds at once grants two lives
	g.addScore(20000)
	assert.Equal(t, 6, g.lives)
	assert.Equal(t, 40000, g.nextExtraLife)
}

func TestWaveProgression(t *testing.T) {
	g := newTestGame(t)
	clearKinds(g, KindRock)

	res := g.Step(core.NewInputFrame())
	assert.Contains(t, res.Events, core.EventWaveCleared)
	assert.Equal(t, 1, res.State.Wave)

	steps(g, g.cfg.Gameplay.WaveDelay)
	assert.Equal(t, 2, g.wave)
	assert.Equal(t, 4, g.arena.Count(KindRock))
}

func TestRocksForWaveIsCapped(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, 3, g.rocksForWave(1))
	assert.Equal(t, 5, g.rocksForWave(3))
	assert.Equal(t, 11, g.rocksForWave(50))
}

func TestRandomHeadingBounds(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 1000; i++ {
		v := g.randomHeading(1.5)
		assert.LessOrEqual(t, v.X, 1.5)
		assert.GreaterOrEqual(t, v.X, -1.5)
		assert.NotZero(t, v.X)
		assert.NotZero(t, v.Y)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.FrameOf(core.ActionPause))
	assert.True(t, res.State.Paused)
	tick := g.tick

	steps(g, 5, core.ActionThrust)
	assert.Equal(t, tick, g.tick)

	res = g.Step(core.FrameOf(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, tick+1, g.tick)
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1}, config.DefaultAsteroidsConfig())

	g.Step(core.FrameOf(core.ActionThrust))
	assert.Zero(t, g.tick)

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")
}

func TestGameDeterminism(t *testing.T) {
	withSaucer := func(cfg *config.AsteroidsConfig) {
		cfg.Saucer.Enabled = true
		cfg.Saucer.SpawnInterval = 100
	}

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i == 300:
			inputs[i] = core.FrameOf(core.ActionHyperspace)
		case i%7 == 0:
			inputs[i] = core.FrameOf(core.ActionFire)
		case i%5 < 2:
			inputs[i] = core.FrameOf(core.ActionRotateLeft, core.ActionThrust)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func(seed int64) Snapshot {
		g := newTestGame(t, withSaucer)
		rt := testRuntime
		rt.Seed = seed
		g.ResetWithConfig(rt, g.cfg)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(7), run(7)
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1, snap2)

	other := run(8)
	assert.NotEqual(t, snap1.Hash(), other.Hash())
}
