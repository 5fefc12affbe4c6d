package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/vector"

// Model-space outlines. The y axis points down and the ship's nose is at
// (0, -10) when its angle is zero.
var (
	shipShape      = vector.P(0, -10, 6, 10, 3, 7, -3, 7, -6, 10)
	thrustJetShape = vector.P(-3, 7, 0, 13, 3, 7)
	pointShape     = vector.P(0, 0, 1, 1, 1, 0, 0, 1)
	saucerShape    = vector.P(-9, 0, -3, -3, -2, -6, -2, -6, 2, -6, 3, -3, 9, 0, -9, 0, -3, 4, 3, 4, 9, 0)
)

// rockShapes are the base rock outlines before scaling.
var rockShapes = [...]vector.Polygon{
	vector.P(-4, -12, 6, -12, 13, -4, 13, 5, 6, 13, 0, 13, 0, 4, -8, 13, -15, 4, -7, 1, -15, -3),
	vector.P(-6, -12, 1, -5, 8, -12, 15, -5, 12, 0, 15, 6, 5, 13, -7, 13, -14, 7, -14, -5),
	vector.P(-7, -12, 1, -9, 8, -12, 15, -5, 8, -3, 15, 4, 8, 12, -3, 10, -6, 12, -14, 7, -10, 0, -14, -5),
	vector.P(-7, -11, 3, -11, 13, -5, 13, -2, 2, 2, 13, 8, 6, 14, 2, 10, -7, 14, -15, 5, -15, -5, -5, -5, -7, -11),
}

// ShapeSelector hands out rock shapes round-robin. Each game owns its own
// selector so two games never share the rotation.
type ShapeSelector struct {
	next int
}

// Next returns the next base rock shape.
func (s *ShapeSelector) Next() vector.Polygon {
	shape := rockShapes[s.next]
	s.next = (s.next + 1) % len(rockShapes)
	return shape
}

// shipEdges splits the ship outline into its individual edges, used as
// wreckage when the ship explodes.
func shipEdges() []vector.Polygon {
	edges := make([]vector.Polygon, len(shipShape))
	for i := range shipShape {
		next := shipShape[(i+1)%len(shipShape)]
		edges[i] = vector.Polygon{shipShape[i], next}
	}
	return edges
}
