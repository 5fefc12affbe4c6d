package vector

import "math"

// Tolerance is the minimum width and height of a Box. Without it a vertical
// or horizontal segment would have a zero-area box and could never contain
// the point where another edge crosses it.
const Tolerance = 1.0

// containEpsilon absorbs float rounding for points computed exactly on an
// edge. The rounding grows with the coordinates, so box edges get
// containEpsilon plus relativeEpsilon times their largest magnitude.
const (
	containEpsilon  = 1e-9
	relativeEpsilon = 1e-12
)

// Box is an axis-aligned rectangle. W and H are never below Tolerance.
type Box struct {
	X, Y float64 // top-left corner (minimum x and y)
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// slack is the rounding allowance for points tested against b's edges.
func (b Box) slack() float64 {
	m := math.Max(math.Max(math.Abs(b.X), math.Abs(b.Right())), math.Max(math.Abs(b.Y), math.Abs(b.Bottom())))
	return containEpsilon + relativeEpsilon*m
}

// Contains reports whether p lies inside the box. All four edges are inclusive.
func (b Box) Contains(p Vec2) bool {
	e := b.slack()
	return p.X >= b.X-e && p.X <= b.Right()+e &&
		p.Y >= b.Y-e && p.Y <= b.Bottom()+e
}

// BoundingBoxOf returns the box spanning every point of the outline.
// An empty outline yields a Tolerance-sized box at the origin.
func BoundingBoxOf(o Outline) Box {
	return boxAround(o...)
}

func boxAround(points ...Vec2) Box {
	if len(points) == 0 {
		return Box{W: Tolerance, H: Tolerance}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return Box{
		X: minX,
		Y: minY,
		W: math.Max(maxX-minX, Tolerance),
		H: math.Max(maxY-minY, Tolerance),
	}
}

// BroadPhase is the cheap reject run before NarrowPhase. It reports whether
// two outline boxes overlap, touching edges included.
//
// Each box's right and bottom edges are extended by Tolerance. A segment box
// inside an outline can reach up to Tolerance past the outline's own box, and
// NarrowPhase accepts points anywhere in segment boxes, so without the slack a
// true hit could be rejected here.
func BroadPhase(a, b Box) bool {
	reach := Tolerance + math.Max(a.slack(), b.slack())
	if a.X > b.Right()+reach || b.X > a.Right()+reach {
		return false
	}
	if a.Y > b.Bottom()+reach || b.Y > a.Bottom()+reach {
		return false
	}
	return true
}

// NarrowPhase tests every edge of a against every edge of b and returns the
// first intersection found.
//
// Edge i runs from point i-1 to point i, so index 0 pairs the last point with
// the first. a is the outer loop. Outlines with fewer than two points have no
// edges and never collide.
func NarrowPhase(a, b Outline) (Vec2, bool) {
	if len(a) < 2 || len(b) < 2 {
		return Vec2{}, false
	}

	for i := range a {
		p1 := a[prev(i, len(a))]
		p2 := a[i]
		for j := range b {
			p3 := b[prev(j, len(b))]
			p4 := b[j]
			if p, ok := SegmentIntersect(p1, p2, p3, p4); ok {
				return p, true
			}
		}
	}
	return Vec2{}, false
}

// Collide runs BroadPhase and, only if the boxes overlap, NarrowPhase.
func Collide(a, b Outline) (Vec2, bool) {
	if len(a) < 2 || len(b) < 2 {
		return Vec2{}, false
	}
	if !BroadPhase(BoundingBoxOf(a), BoundingBoxOf(b)) {
		return Vec2{}, false
	}
	return NarrowPhase(a, b)
}

// prev returns the index before i in a closed loop of n points.
func prev(i, n int) int {
	if i == 0 {
		return n - 1
	}
	return i - 1
}
