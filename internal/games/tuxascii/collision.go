package tuxascii

import "github.com/vovakirdan/tuxascii/internal/core"

// Overlaps is the single collision test of the simulation: a strict
// axis-aligned box overlap. It is symmetric in its arguments.
func Overlaps(a, b core.RectF) bool {
	return a.Intersects(b)
}
