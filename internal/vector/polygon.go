package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScale is returned by ScalePolygon for a factor that is not a
// positive finite number.
var ErrInvalidScale = errors.New("vector: scale factor must be positive")

// Polygon is a shape's outline in local space, centred on its own origin.
// The last point connects back to the first. Polygons are built once per
// shape and never modified.
type Polygon []Vec2

// Outline is a polygon placed in world space for the current tick.
type Outline []Vec2

// Transform places a polygon in the world. Angle is in degrees.
type Transform struct {
	Position Vec2
	Angle    float64
}

// P builds a Polygon from integer x,y pairs:
//
//	P(0, -10, 6, 10, -6, 10)
//
// It panics on an odd number of coordinates.
func P(coords ...int) Polygon {
	if len(coords)%2 != 0 {
		panic(fmt.Sprintf("vector: odd coordinate count %d", len(coords)))
	}
	poly := make(Polygon, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		poly = append(poly, Vec2{X: float64(coords[i]), Y: float64(coords[i+1])})
	}
	return poly
}

// ScalePolygon multiplies every point by factor and truncates the result back
// onto the integer grid. Used to derive size variants from one base shape.
func ScalePolygon(base []Vec2, factor float64) (Polygon, error) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidScale, factor)
	}
	scaled := make(Polygon, len(base))
	for i, p := range base {
		scaled[i] = p.Scale(factor).Trunc()
	}
	return scaled, nil
}

// MustScale is ScalePolygon for static shape tables. It panics on error.
func MustScale(base []Vec2, factor float64) Polygon {
	p, err := ScalePolygon(base, factor)
	if err != nil {
		panic(err)
	}
	return p
}

// ToWorldOutline rotates each local point by t.Angle, truncates it to the
// integer grid, then translates it by t.Position.
//
// Outlines depend on position and angle, which change every tick, so callers
// recompute them each tick rather than caching.
func ToWorldOutline(p Polygon, t Transform) Outline {
	if len(p) == 0 {
		return Outline{}
	}

	rad := t.Angle * math.Pi / 180
	sin, cos := math.Sincos(rad)

	out := make(Outline, len(p))
	for i, pt := range p {
		r := Vec2{
			X: pt.X*cos + pt.Y*sin,
			Y: pt.Y*cos - pt.X*sin,
		}.Trunc()
		out[i] = r.Add(t.Position)
	}
	return out
}

// NormalizeAngle wraps degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
