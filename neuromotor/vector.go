package neuromotor

import "math"

// Point is a pair of screen coordinates. It doubles as a 2-D vector for the
// arithmetic the kinematics components need (addition, scaling, distance).
type Point struct {
	X float64
	Y float64
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Mag returns the Euclidean length of p treated as a vector from the origin.
func (p Point) Mag() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and other.
func (p Point) Dist(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Normalize returns a unit vector in the direction of p, or the zero vector
// if p is too small to have a stable direction.
func (p Point) Normalize() Point {
	mag := p.Mag()
	if mag < 1e-9 {
		return Point{}
	}
	return p.Mul(1.0 / mag)
}

// Perp returns the unit vector perpendicular to p (rotated +90 degrees), or
// the zero vector if p is degenerate. Used to offset a path sideways from
// its chord.
func (p Point) Perp() Point {
	n := p.Normalize()
	return Point{X: -n.Y, Y: n.X}
}

// Lerp linearly interpolates between p and other at fraction t.
func (p Point) Lerp(other Point, t float64) Point {
	return p.Add(other.Sub(p).Mul(t))
}

// Finite reports whether both coordinates are finite (not NaN/Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Target is a clickable/hoverable region: a center point and a bounding box.
type Target struct {
	Center Point
	Width  float64
	Height float64
}

// EffectiveWidth returns the width Fitts' Law uses: the tighter of the two
// box dimensions. Fixed per the resolved open question in SPEC_FULL.md §0 —
// always min(Width, Height), never a raw axis projection.
func (t Target) EffectiveWidth() float64 {
	return math.Min(t.Width, t.Height)
}

// Contains reports whether p lies within the target's bounding box.
func (t Target) Contains(p Point) bool {
	halfW, halfH := t.Width/2, t.Height/2
	return p.X >= t.Center.X-halfW && p.X <= t.Center.X+halfW &&
		p.Y >= t.Center.Y-halfH && p.Y <= t.Center.Y+halfH
}
