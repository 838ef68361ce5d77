// Package core holds the types shared by the simulation and the terminal
// frontend: arena boxes, held-action input frames, cell colors and the
// character screen buffer. It has no Bubble Tea dependency.
package core

// RectF is an axis-aligned box in arena units. Every simulation entity
// exposes its hitbox as a RectF.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a box from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap with positive area.
// Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Center returns the center point of the box.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
