// Package gamemath holds the pure geometry shared by the combat core and the
// host systems. It must not depend on ebiten so the core stays headless.
package gamemath

import "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle. X/Y is the minimum corner.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate offsets the rectangle by v.
func (r Rect) Translate(v math.Vec2) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// Contains reports whether other lies entirely inside r (edges inclusive).
func (r Rect) Contains(other Rect) bool {
	return other.MinX() >= r.MinX() && other.MaxX() <= r.MaxX() &&
		other.MinY() >= r.MinY() && other.MaxY() <= r.MaxY()
}

// Mirror reflects the horizontal extent [x, x+w] about the local origin when
// sign is negative. The vertical extent is never touched.
func Mirror(r Rect, sign int) Rect {
	if sign >= 0 {
		return r
	}
	return Rect{X: -(r.X + r.W), Y: r.Y, W: r.W, H: r.H}
}

// WorldRect converts a hitbox rectangle local to an attacker into world space.
// facingSign is +1 when facing right and -1 when facing left.
func WorldRect(local Rect, origin math.Vec2, facingSign int) Rect {
	return Mirror(local, facingSign).Translate(origin)
}

// Overlaps is a strict separating-axis test: rectangles that only share an
// edge or a corner do not overlap, and empty rectangles never overlap.
func Overlaps(a, b Rect) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.MinX() < b.MaxX() && a.MaxX() > b.MinX() &&
		a.MinY() < b.MaxY() && a.MaxY() > b.MinY()
}
