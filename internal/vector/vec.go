// Package vector implements the outline geometry behind every collision in the
// game: rotating and translating polygon shapes into world space, and deciding
// whether two outlines' edges cross.
//
// Everything here is pure and single-threaded. Nothing mutates its inputs, so a
// tick can compute all outlines first and run collision checks afterwards.
package vector

import "math"

// Vec2 is a 2D point or velocity in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Add(v, o)
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Trunc drops the fractional part of both components (toward zero).
func (v Vec2) Trunc() Vec2 {
	return Vec2{X: math.Trunc(v.X), Y: math.Trunc(v.Y)}
}
