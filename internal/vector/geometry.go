package vector

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// The line maths below uses the slope/intercept form y = m*x + b, where m is
// the gradient and b is where the line crosses the y axis.

// maxCoordinate bounds candidate points accepted by SegmentIntersect. Nearly
// parallel lines can produce crossings far outside any screen; anything beyond
// this is treated as invalid rather than tested for containment.
const maxCoordinate = math.MaxInt32

var logger = log.New(io.Discard)

// SetLogger sets the logger used to report skipped intersection candidates.
// Passing nil silences it. Call it before any game starts ticking.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Gradient is the slope of a line. Vertical lines have no numeric slope, so
// they are flagged instead of carrying an infinite M.
type Gradient struct {
	M        float64
	Vertical bool
}

// GradientOf returns the slope of the line through p and q.
func GradientOf(p, q Vec2) Gradient {
	if p.X == q.X {
		return Gradient{Vertical: true}
	}
	return Gradient{M: (q.Y - p.Y) / (q.X - p.X)}
}

// Equal reports whether two gradients describe parallel lines.
func (g Gradient) Equal(o Gradient) bool {
	if g.Vertical || o.Vertical {
		return g.Vertical == o.Vertical
	}
	return g.M == o.M
}

// YIntercept returns b for the line through p with gradient m.
// m must not come from a vertical Gradient.
func YIntercept(p Vec2, m float64) float64 {
	return p.Y - m*p.X
}

// IntersectKind classifies the result of intersecting two infinite lines.
type IntersectKind int

const (
	NoIntersection IntersectKind = iota
	SinglePoint
	Coincident // both lines are the same line
)

// String returns a readable name for the kind.
func (k IntersectKind) String() string {
	switch k {
	case NoIntersection:
		return "none"
	case SinglePoint:
		return "point"
	case Coincident:
		return "coincident"
	default:
		return "unknown"
	}
}

// Intersection is the result of InfiniteLineIntersect.
// For SinglePoint, Points holds the crossing. For Coincident, Points holds the
// four input points in argument order; the segment stage decides which of them
// lies on both segments.
type Intersection struct {
	Kind   IntersectKind
	Points []Vec2
}

// InfiniteLineIntersect intersects the infinite line through p1,p2 with the
// infinite line through p3,p4.
func InfiniteLineIntersect(p1, p2, p3, p4 Vec2) Intersection {
	m1 := GradientOf(p1, p2)
	m2 := GradientOf(p3, p4)

	if !m1.Equal(m2) {
		var x, y float64
		switch {
		case m1.Vertical:
			// Line 1 fixes x, line 2 gives y there
			x = p1.X
			y = m2.M*x + YIntercept(p3, m2.M)
		case m2.Vertical:
			x = p3.X
			y = m1.M*x + YIntercept(p1, m1.M)
		default:
			b1 := YIntercept(p1, m1.M)
			b2 := YIntercept(p3, m2.M)
			x = (b2 - b1) / (m1.M - m2.M)
			y = m1.M*x + b1
		}
		return Intersection{Kind: SinglePoint, Points: []Vec2{{X: x, Y: y}}}
	}

	// Parallel. Vertical lines have no intercept, so compare their x instead.
	var same bool
	if m1.Vertical {
		same = p1.X == p3.X
	} else {
		same = YIntercept(p1, m1.M) == YIntercept(p3, m2.M)
	}
	if !same {
		return Intersection{Kind: NoIntersection}
	}
	return Intersection{Kind: Coincident, Points: []Vec2{p1, p2, p3, p4}}
}

// SegmentIntersect reports where segment p1-p2 crosses segment p3-p4.
//
// Candidates from InfiniteLineIntersect are clipped against both segments'
// bounding boxes (tolerance floor applied, edges inclusive). The first
// candidate inside both is returned with its coordinates truncated to
// integers. Zero-length segments never intersect.
func SegmentIntersect(p1, p2, p3, p4 Vec2) (Vec2, bool) {
	if p1 == p2 || p3 == p4 {
		return Vec2{}, false
	}

	hit := InfiniteLineIntersect(p1, p2, p3, p4)
	if hit.Kind == NoIntersection {
		return Vec2{}, false
	}

	boxA := boxAround(p1, p2)
	boxB := boxAround(p3, p4)

	for _, c := range hit.Points {
		if !validCoordinate(c) {
			logger.Debug("skipping invalid intersection candidate",
				"x", c.X, "y", c.Y, "kind", hit.Kind)
			continue
		}
		if boxA.Contains(c) && boxB.Contains(c) {
			return c.Trunc(), true
		}
	}

	// The infinite lines crossed, but outside at least one segment
	return Vec2{}, false
}

// validCoordinate reports whether p can be safely tested for containment.
func validCoordinate(p Vec2) bool {
	for _, c := range [2]float64{p.X, p.Y} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
		if math.Abs(c) > maxCoordinate {
			return false
		}
	}
	return true
}
