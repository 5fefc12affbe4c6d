package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/vector"
)

// Debris brightness lost per tick.
const debrisFadeStep = 5.0 / 255

// spawnRock adds a rock of the given size at pos, heading in a random
// direction at a speed scaled by the current difficulty.
func (g *Game) spawnRock(size RockSize, pos vector.Vec2) EntityID {
	spec := size.Spec(g.cfg.Rocks)
	speed := g.difficulty.Speed(spec.Speed, g.score, g.tick)

	return g.arena.Spawn(&Entity{
		Kind: KindRock,
		Body: vector.Body{
			Transform: vector.Transform{Position: pos},
			Velocity:  g.randomHeading(speed),
			Spin:      g.cfg.Rocks.Spin,
		},
		// Scales are checked when the config is loaded
		Shape: vector.MustScale(g.shapes.Next(), spec.Scale),
		Rock:  size,
	})
}

// destroyRock removes a rock, leaves debris and splits it into two smaller
// rocks. The player scores only when scored is set.
func (g *Game) destroyRock(rock *Entity, scored bool) {
	g.arena.Remove(rock.ID)
	g.spawnDebris(rock.Position)

	if next, ok := rock.Rock.Smaller(); ok {
		g.spawnRock(next, rock.Position)
		g.spawnRock(next, rock.Position)
	}
	if scored {
		g.addScore(rock.Rock.Spec(g.cfg.Rocks).Score)
	}
	g.emit(core.EventRockDestroyed)
}

// spawnDebris scatters fading points around pos.
func (g *Game) spawnDebris(pos vector.Vec2) {
	rc := g.cfg.Rocks
	for i := 0; i < rc.DebrisCount; i++ {
		g.arena.Spawn(&Entity{
			Kind: KindDebris,
			Body: vector.Body{
				Transform: vector.Transform{Position: pos},
				Velocity:  g.randomHeading(rc.DebrisSpeed),
			},
			Shape:  pointShape,
			TTL:    rc.DebrisTTL,
			Mortal: true,
			Fade:   1,
		})
	}
}

func fadeDebris(f float64) float64 {
	f -= debrisFadeStep
	if f < 0 {
		return 0
	}
	return f
}

// rocksForWave returns how many large rocks wave n (starting at 1) begins with.
func (g *Game) rocksForWave(n int) int {
	gp := g.cfg.Gameplay
	count := gp.InitialRocks + gp.RocksPerWave*(n-1)
	if gp.MaxRocks > 0 && count > gp.MaxRocks {
		count = gp.MaxRocks
	}
	return count
}

// startWave spawns the next wave of large rocks along the play field edges,
// away from the ship in the centre.
func (g *Game) startWave() {
	g.wave++
	for i := 0; i < g.rocksForWave(g.wave); i++ {
		var pos vector.Vec2
		if i%2 == 0 {
			pos = vector.V(g.rng.Float64()*g.world.X, 0)
		} else {
			pos = vector.V(0, g.rng.Float64()*g.world.Y)
		}
		g.spawnRock(RockLarge, pos)
	}
}

// updateWave starts the next wave a short while after the last rock and
// saucer are gone.
func (g *Game) updateWave() {
	if g.gameOver || g.arena.Count(KindRock) > 0 || g.arena.Count(KindSaucer) > 0 {
		return
	}
	if g.waveDelay == 0 {
		g.waveDelay = g.cfg.Gameplay.WaveDelay
		g.emit(core.EventWaveCleared)
		if g.waveDelay > 0 {
			return
		}
	}
	g.waveDelay--
	if g.waveDelay <= 0 {
		g.waveDelay = 0
		g.startWave()
	}
}
