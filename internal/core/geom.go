// Package core provides the terminal-side primitives shared by the game and
// the platform: the cell screen, input frames and runtime configuration.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

// Point is an integer cell coordinate on the screen.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle of cells, used for HUD panels and
// message boxes.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w×h rectangle centred in a screen of the given size.
func CenteredRect(screenW, screenH, w, h int) Rect {
	return Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	w := Max(r.W-2*n, 0)
	h := Max(r.H-2*n, 0)
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
