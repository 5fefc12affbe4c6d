package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/vector"
)

// updateSaucer counts down to the next saucer while none is flying.
func (g *Game) updateSaucer() {
	if !g.cfg.Saucer.Enabled || g.arena.Count(KindSaucer) > 0 {
		return
	}
	g.saucerTimer--
	if g.saucerTimer > 0 {
		return
	}
	g.spawnSaucer(g.pickSaucerSize())
}

func (g *Game) resetSaucerTimer() {
	g.saucerTimer = g.difficulty.SaucerInterval(g.cfg.Saucer.SpawnInterval, g.score, g.tick)
}

// pickSaucerSize chooses the small saucer once the score is high enough,
// with a chance that grows with difficulty.
func (g *Game) pickSaucerSize() SaucerSize {
	if g.score < g.cfg.Saucer.SmallAfterScore {
		return SaucerLarge
	}
	if g.rng.Float64() < g.difficulty.SmallSaucerChance(g.score, g.tick) {
		return SaucerSmall
	}
	return SaucerLarge
}

// spawnSaucer launches a saucer from the left edge at a random height.
func (g *Game) spawnSaucer(size SaucerSize) EntityID {
	spec := size.Spec(g.cfg.Saucer)
	g.resetSaucerTimer()

	return g.arena.Spawn(&Entity{
		Kind: KindSaucer,
		Body: vector.Body{
			Transform: vector.Transform{Position: vector.V(0, g.rng.Float64()*g.world.Y)},
			Velocity:  vector.V(spec.Speed, 0),
		},
		Shape:  vector.MustScale(saucerShape, spec.Scale),
		Saucer: size,
	})
}

// steerSaucer runs after the saucer moved: it zig-zags through the middle
// third of the field, shoots at the ship and leaves after enough laps.
func (g *Game) steerSaucer(s *Entity) {
	x := s.Position.X
	if x > g.world.X*0.33 && x < g.world.X*0.66 {
		s.Velocity.Y = s.Velocity.X
	} else {
		s.Velocity.Y = 0
	}

	g.fireSaucerBullet(s)

	if s.LastX > x {
		s.LastX = 0
		s.Laps++
	} else {
		s.LastX = x
	}
	if g.cfg.Saucer.Laps > 0 && s.Laps >= g.cfg.Saucer.Laps {
		g.arena.Remove(s.ID)
	}
}

// fireSaucerBullet aims a bullet at the ship's current position.
func (g *Game) fireSaucerBullet(s *Entity) {
	sc := g.cfg.Saucer
	if !g.shipActive() || g.arena.Count(KindSaucerBullet) >= sc.MaxBullets {
		return
	}
	ship, _ := g.shipEntity()

	d := ship.Position.Sub(s.Position)
	dist := d.Len()
	if dist == 0 {
		return
	}

	g.arena.Spawn(&Entity{
		Kind: KindSaucerBullet,
		Body: vector.Body{
			Transform: vector.Transform{Position: s.Position},
			Velocity:  d.Scale(sc.BulletSpeed / dist),
		},
		Shape:  pointShape,
		TTL:    s.Saucer.Spec(sc).BulletTTL,
		Mortal: true,
	})
}

// destroySaucer removes the saucer and leaves debris. The player scores only
// when scored is set.
func (g *Game) destroySaucer(s *Entity, scored bool) {
	g.arena.Remove(s.ID)
	g.spawnDebris(s.Position)
	g.resetSaucerTimer()
	if scored {
		g.addScore(s.Saucer.Spec(g.cfg.Saucer).Score)
	}
	g.emit(core.EventSaucerDestroyed)
}
