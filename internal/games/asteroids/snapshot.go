package asteroids

import "math"

// EntitySnapshot is the observable state of one entity.
type EntitySnapshot struct {
	ID       EntityID
	Kind     Kind
	X, Y     float64
	VX, VY   float64
	Angle    float64
	TTL      int
	RockSize RockSize
}

// Snapshot captures the game state for determinism checks and debugging.
type Snapshot struct {
	Tick      int
	Score     int
	Lives     int
	Wave      int
	GameOver  bool
	Ship      EntityID
	Hyper     int
	Respawn   int
	SaucerIn  int
	Entities  []EntitySnapshot
	NextShape int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Lives:     g.lives,
		Wave:      g.wave,
		GameOver:  g.gameOver,
		Ship:      g.ship,
		Hyper:     g.hyperTTL,
		Respawn:   g.respawn,
		SaucerIn:  g.saucerTimer,
		NextShape: g.shapes.next,
	}
	for _, e := range g.arena.Each() {
		snap.Entities = append(snap.Entities, EntitySnapshot{
			ID:       e.ID,
			Kind:     e.Kind,
			X:        e.Position.X,
			Y:        e.Position.Y,
			VX:       e.Velocity.X,
			VY:       e.Velocity.Y,
			Angle:    e.Angle,
			TTL:      e.TTL,
			RockSize: e.Rock,
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ship)
	h = h*31 + uint64(snap.Hyper)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Respawn)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SaucerIn)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextShape) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, e := range snap.Entities {
		h = h*31 + uint64(e.ID)
		h = h*31 + uint64(e.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.VX)
		h = h*31 + math.Float64bits(e.VY)
		h = h*31 + math.Float64bits(e.Angle)
		h = h*31 + uint64(e.TTL)      //#nosec G115 -- hash computation
		h = h*31 + uint64(e.RockSize) //#nosec G115 -- hash computation
	}
	return h
}
