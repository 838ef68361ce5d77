package tuxascii

import "github.com/vovakirdan/tuxascii/internal/core"

// PowerKind identifies a power-up and the player's active power.
type PowerKind int

const (
	PowerNone   PowerKind = iota // No active power
	PowerDouble                  // Two parallel shots, faster fire
	PowerTriple                  // Center shot plus two angled shots, faster fire
	PowerSpeed                   // Faster movement
	PowerBomb                    // One extra bomb
)

// dropKinds are the kinds a falling power-up can carry.
var dropKinds = [...]PowerKind{PowerDouble, PowerTriple, PowerSpeed, PowerBomb}

// String returns the HUD label of the power kind.
func (k PowerKind) String() string {
	switch k {
	case PowerNone:
		return "Normal"
	case PowerDouble:
		return "Double"
	case PowerTriple:
		return "Triple"
	case PowerSpeed:
		return "Speed"
	case PowerBomb:
		return "Bomb"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up pickup.
func (k PowerKind) Glyph() rune {
	switch k {
	case PowerDouble:
		return 'D'
	case PowerTriple:
		return 'T'
	case PowerSpeed:
		return 'S'
	case PowerBomb:
		return 'B'
	default:
		return '?'
	}
}

// Color returns the color associated with the power kind.
func (k PowerKind) Color() core.Color {
	switch k {
	case PowerDouble:
		return core.ColorYellow
	case PowerTriple:
		return core.ColorCyan
	case PowerSpeed:
		return core.ColorGreen
	case PowerBomb:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// PowerUp is a falling pickup dropped by a destroyed enemy.
type PowerUp struct {
	X, Y  float64
	Speed float64
	Kind  PowerKind
}

// NewPowerUp creates a pickup at (x, y) with a uniformly random kind.
func NewPowerUp(x, y float64, rng Rand) *PowerUp {
	return &PowerUp{
		X:     x,
		Y:     y,
		Speed: PowerUpFallSpeed,
		Kind:  dropKinds[rng.Intn(len(dropKinds))],
	}
}

// Update moves the pickup down one frame.
func (p *PowerUp) Update() {
	p.Y += p.Speed
}

// Bounds returns the pickup hitbox.
func (p *PowerUp) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, PowerUpSize, PowerUpSize)
}

// Offscreen reports whether the pickup fell past the bottom edge.
func (p *PowerUp) Offscreen() bool {
	return p.Y > ArenaHeight
}
