package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/vector"
)

// shipEntity returns the ship while it is alive.
func (g *Game) shipEntity() (*Entity, bool) {
	if g.ship == 0 {
		return nil, false
	}
	return g.arena.Get(g.ship)
}

// shipActive reports whether the ship can act and be hit: alive and not in
// hyperspace.
func (g *Game) shipActive() bool {
	_, ok := g.shipEntity()
	return ok && g.hyperTTL == 0
}

// spawnShip places a stationary ship in the centre of the play field.
func (g *Game) spawnShip() {
	g.ship = g.arena.Spawn(&Entity{
		Kind:  KindShip,
		Body:  vector.Body{Transform: vector.Transform{Position: g.center()}},
		Shape: shipShape,
	})
	g.hyperTTL = 0
	g.thrusting = false
}

func (g *Game) center() vector.Vec2 {
	return g.world.Scale(0.5)
}

// nose returns the unit vector the ship points along at the given angle.
func nose(angle float64) vector.Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return vector.V(-sin, -cos)
}

// handleInput applies the player's actions to the ship.
func (g *Game) handleInput(in core.InputFrame) {
	g.thrusting = false

	ship, ok := g.shipEntity()
	if !ok || g.hyperTTL > 0 {
		return
	}
	sc := g.cfg.Ship

	if in.Has(core.ActionRotateLeft) {
		ship.Angle = vector.NormalizeAngle(ship.Angle + sc.TurnDegrees)
	}
	if in.Has(core.ActionRotateRight) {
		ship.Angle = vector.NormalizeAngle(ship.Angle - sc.TurnDegrees)
	}
	if in.Has(core.ActionThrust) {
		g.thrusting = true
		if ship.Velocity.Len() <= sc.MaxSpeed {
			ship.Velocity = ship.Velocity.Add(nose(ship.Angle).Scale(sc.Acceleration))
		}
	}
	if in.Has(core.ActionFire) {
		g.fireShipBullet(ship)
	}
	if in.Has(core.ActionHyperspace) {
		g.hyperTTL = sc.HyperspaceTicks
		g.thrusting = false
	}
}

// fireShipBullet shoots from the ship's centre along its nose, unless the
// bullet limit is reached.
func (g *Game) fireShipBullet(ship *Entity) {
	sc := g.cfg.Ship
	if g.arena.Count(KindShipBullet) >= sc.MaxBullets {
		return
	}
	g.arena.Spawn(&Entity{
		Kind: KindShipBullet,
		Body: vector.Body{
			Transform: vector.Transform{Position: ship.Position},
			Velocity:  nose(ship.Angle).Scale(sc.BulletSpeed),
		},
		Shape:  pointShape,
		TTL:    sc.BulletTTL,
		Mortal: true,
	})
}

// updateShip moves the ship, counts down hyperspace and handles respawning.
func (g *Game) updateShip() {
	ship, ok := g.shipEntity()
	if !ok {
		g.tryRespawn()
		return
	}

	ship.Move()
	if ship.Velocity != (vector.Vec2{}) {
		ship.Velocity = ship.Velocity.Add(ship.Velocity.Scale(g.cfg.Ship.Deceleration))
	}
	ship.Wrap(g.world.X, g.world.Y)

	if g.hyperTTL > 0 {
		g.hyperTTL--
		if g.hyperTTL == 0 {
			ship.Position = vector.V(
				math.Trunc(g.rng.Float64()*g.world.X),
				math.Trunc(g.rng.Float64()*g.world.Y),
			)
		}
	}
}

// tryRespawn brings the ship back once the respawn delay has passed and no
// rock or saucer is near the centre.
func (g *Game) tryRespawn() {
	if g.gameOver || g.lives <= 0 {
		return
	}
	if g.respawn > 0 {
		g.respawn--
		return
	}
	if !g.spawnAreaClear() {
		return
	}
	g.spawnShip()
}

func (g *Game) spawnAreaClear() bool {
	c := g.center()
	radius := g.cfg.Ship.SafeRadius
	for _, e := range g.arena.Each(KindRock, KindSaucer, KindSaucerBullet) {
		if e.Position.Sub(c).Len() < radius {
			return false
		}
	}
	return true
}

// destroyShip explodes the ship into its edges and takes a life.
func (g *Game) destroyShip() {
	ship, ok := g.shipEntity()
	if !ok {
		return
	}

	for _, edge := range shipEdges() {
		piece := &Entity{
			Kind:   KindShipDebris,
			Body:   vector.Body{Transform: ship.Transform},
			Shape:  edge,
			TTL:    g.cfg.Ship.DebrisTTL,
			Mortal: true,
		}
		// Drift away from the ship's centre at a random rate
		mid := vector.BoundingBoxOf(piece.Outline()).Center()
		away := mid.Sub(ship.Position).Add(vector.V(0.1, 0.1))
		piece.Velocity = vector.V(
			away.X/(20+g.rng.Float64()*20),
			away.Y/(20+g.rng.Float64()*20),
		)
		g.arena.Spawn(piece)
	}

	g.arena.Remove(ship.ID)
	g.ship = 0
	g.hyperTTL = 0
	g.thrusting = false
	g.respawn = g.cfg.Ship.RespawnTicks
	g.lives--
	g.emit(core.EventShipDestroyed)

	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		g.emit(core.EventGameOver)
	}
}
