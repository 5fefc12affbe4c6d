package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/vector"

// EntityID identifies an entity for its whole lifetime. IDs are never reused
// within a game.
type EntityID uint64

// Entity is anything that moves on the play field.
type Entity struct {
	ID   EntityID
	Kind Kind
	vector.Body
	Shape vector.Polygon

	// TTL counts down once per tick when Mortal is set; the entity is
	// removed when it reaches zero.
	TTL    int
	Mortal bool

	Rock   RockSize
	Saucer SaucerSize

	// Fade is the brightness of debris, from 1 (white) down to 0.
	Fade float64

	// Saucer lap tracking.
	Laps  int
	LastX float64
}

// Outline returns the entity's world-space outline for this tick.
func (e *Entity) Outline() vector.Outline {
	return e.Body.Outline(e.Shape)
}

// Arena owns every live entity. Removals requested during a tick are
// deferred until Compact so iteration never sees a shrinking slice.
type Arena struct {
	nextID   EntityID
	entities []*Entity
	index    map[EntityID]*Entity
	doomed   map[EntityID]struct{}
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		index:  make(map[EntityID]*Entity),
		doomed: make(map[EntityID]struct{}),
	}
}

// Spawn adds an entity, assigns it a fresh ID and returns that ID.
func (a *Arena) Spawn(e *Entity) EntityID {
	a.nextID++
	e.ID = a.nextID
	a.entities = append(a.entities, e)
	a.index[e.ID] = e
	return e.ID
}

// Get looks up a live entity. Entities marked for removal are not returned.
func (a *Arena) Get(id EntityID) (*Entity, bool) {
	e, ok := a.index[id]
	if !ok || a.isDoomed(id) {
		return nil, false
	}
	return e, true
}

// Alive reports whether id names an entity that is not marked for removal.
func (a *Arena) Alive(id EntityID) bool {
	_, ok := a.Get(id)
	return ok
}

// Remove marks an entity for removal at the next Compact. Removing an
// unknown or already removed ID is a no-op.
func (a *Arena) Remove(id EntityID) {
	if _, ok := a.index[id]; ok {
		a.doomed[id] = struct{}{}
	}
}

func (a *Arena) isDoomed(id EntityID) bool {
	_, ok := a.doomed[id]
	return ok
}

// Compact drops every entity marked for removal, keeping spawn order, and
// returns how many were dropped.
func (a *Arena) Compact() int {
	if len(a.doomed) == 0 {
		return 0
	}

	kept := a.entities[:0]
	for _, e := range a.entities {
		if a.isDoomed(e.ID) {
			delete(a.index, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(a.entities); i++ {
		a.entities[i] = nil
	}
	removed := len(a.entities) - len(kept)
	a.entities = kept
	clear(a.doomed)
	return removed
}

// Each returns the live entities of the given kinds in spawn order, or all
// live entities when no kind is given. The result is a copy, so spawning
// while ranging over it is safe.
func (a *Arena) Each(kinds ...Kind) []*Entity {
	out := make([]*Entity, 0, len(a.entities))
	for _, e := range a.entities {
		if a.isDoomed(e.ID) || !matchKind(e.Kind, kinds) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns the number of live entities of the given kind.
func (a *Arena) Count(kind Kind) int {
	n := 0
	for _, e := range a.entities {
		if e.Kind == kind && !a.isDoomed(e.ID) {
			n++
		}
	}
	return n
}

// Len returns the number of stored entities, including ones awaiting removal.
func (a *Arena) Len() int {
	return len(a.entities)
}

func matchKind(k Kind, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
