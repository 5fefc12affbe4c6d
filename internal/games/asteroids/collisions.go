package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/vector"

// collider caches an entity's outline and bounding box for one collision pass.
type collider struct {
	e       *Entity
	outline vector.Outline
	box     vector.Box
}

func (g *Game) colliders(kinds ...Kind) []collider {
	entities := g.arena.Each(kinds...)
	out := make([]collider, 0, len(entities))
	for _, e := range entities {
		outline := e.Outline()
		out = append(out, collider{e: e, outline: outline, box: vector.BoundingBoxOf(outline)})
	}
	return out
}

// hits runs the cheap box test before the edge intersection test.
func hits(a, b collider) bool {
	if !vector.BroadPhase(a.box, b.box) {
		return false
	}
	_, ok := vector.NarrowPhase(a.outline, b.outline)
	return ok
}

// firstHit returns the first live target that a collides with.
func (g *Game) firstHit(a collider, targets []collider) (*Entity, bool) {
	for _, t := range targets {
		if !g.arena.Alive(t.e.ID) {
			continue
		}
		if hits(a, t) {
			return t.e, true
		}
	}
	return nil, false
}

// checkCollisions resolves every collision for this tick. Outlines are taken
// after movement; entities destroyed earlier in the pass are skipped and
// entities spawned during it wait for the next tick.
func (g *Game) checkCollisions() {
	rocks := g.colliders(KindRock)
	saucers := g.colliders(KindSaucer)
	shipBullets := g.colliders(KindShipBullet)
	saucerBullets := g.colliders(KindSaucerBullet)

	// Ship bullets against rocks and the saucer
	for _, b := range shipBullets {
		if rock, ok := g.firstHit(b, rocks); ok {
			g.arena.Remove(b.e.ID)
			g.destroyRock(rock, true)
			continue
		}
		if saucer, ok := g.firstHit(b, saucers); ok {
			g.arena.Remove(b.e.ID)
			g.destroySaucer(saucer, true)
		}
	}

	// Ship against rocks, the saucer and saucer bullets
	if g.shipActive() {
		ship := g.colliders(KindShip)[0]
		if rock, ok := g.firstHit(ship, rocks); ok {
			g.destroyRock(rock, true)
			g.destroyShip()
		} else if saucer, ok := g.firstHit(ship, saucers); ok {
			g.destroySaucer(saucer, true)
			g.destroyShip()
		} else if bullet, ok := g.firstHit(ship, saucerBullets); ok {
			g.arena.Remove(bullet.ID)
			g.destroyShip()
		}
	}

	// Saucer against rocks
	for _, s := range saucers {
		if !g.arena.Alive(s.e.ID) {
			continue
		}
		if rock, ok := g.firstHit(s, rocks); ok {
			g.destroyRock(rock, false)
			g.destroySaucer(s.e, false)
		}
	}

	// Saucer bullets against rocks
	for _, b := range saucerBullets {
		if !g.arena.Alive(b.e.ID) {
			continue
		}
		if rock, ok := g.firstHit(b, rocks); ok {
			g.arena.Remove(b.e.ID)
			g.destroyRock(rock, false)
		}
	}
}
