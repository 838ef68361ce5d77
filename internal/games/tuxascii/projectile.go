package tuxascii

import (
	"math"

	"github.com/vovakirdan/tuxascii/internal/core"
)

// Projectile is a bullet fired by the player or an enemy.
// Which side fired it is determined by the slice that holds it.
type Projectile struct {
	X, Y      float64
	Direction float64 // DirectionUp or DirectionDown
	Angle     float64 // Degrees off the travel axis, 0 is straight
	Speed     float64
	Glyph     rune       // Visual tag
	Color     core.Color // Visual tag
}

// NewProjectile creates a projectile at (x, y).
func NewProjectile(x, y, direction, angle, speed float64, glyph rune, color core.Color) *Projectile {
	return &Projectile{
		X:         x,
		Y:         y,
		Direction: direction,
		Angle:     angle,
		Speed:     speed,
		Glyph:     glyph,
		Color:     color,
	}
}

// Update moves the projectile one frame along its angle.
func (p *Projectile) Update() {
	rad := p.Angle * math.Pi / 180
	p.X += math.Sin(rad) * p.Speed
	p.Y += p.Direction * math.Cos(rad) * p.Speed
}

// Bounds returns the projectile hitbox.
func (p *Projectile) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, ProjectileSize, ProjectileSize)
}

// Offscreen reports whether the projectile has left the arena on any side.
func (p *Projectile) Offscreen() bool {
	return p.Y < 0 || p.Y > ArenaHeight || p.X < 0 || p.X > ArenaWidth
}

// advanceProjectiles moves every projectile and drops the ones that left the
// arena. The backing array is reused.
func advanceProjectiles(list []*Projectile) []*Projectile {
	kept := list[:0]
	for _, p := range list {
		p.Update()
		if p.Offscreen() {
			continue
		}
		kept = append(kept, p)
	}
	clear(list[len(kept):])
	return kept
}
