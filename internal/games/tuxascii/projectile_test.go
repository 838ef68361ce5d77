package tuxascii

import (
	"math"
	"testing"

	"github.com/vovakirdan/tuxascii/internal/core"
)

func TestProjectileUpdate(t *testing.T) {
	tests := []struct {
		name       string
		direction  float64
		angle      float64
		speed      float64
		expectedDX float64
		expectedDY float64
	}{
		{"player straight", DirectionUp, 0, 10, 0, -10},
		{"enemy straight", DirectionDown, 0, 10, 0, 10},
		{"enemy sideways", DirectionDown, 90, 10, 10, 0},
		{"enemy backwards", DirectionDown, 180, 10, 0, -10},
		{"slow aimed", DirectionDown, 0, 5, 0, 5},
		{"triple left", DirectionUp, -15, 10, -10 * math.Sin(15*math.Pi/180), -10 * math.Cos(15*math.Pi/180)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProjectile(100, 100, tc.direction, tc.angle, tc.speed, '*', core.ColorWhite)
			p.Update()

			if math.Abs(p.X-(100+tc.expectedDX)) > 1e-9 {
				t.Errorf("X = %v, expected %v", p.X, 100+tc.expectedDX)
			}
			if math.Abs(p.Y-(100+tc.expectedDY)) > 1e-9 {
				t.Errorf("Y = %v, expected %v", p.Y, 100+tc.expectedDY)
			}
		})
	}
}

func TestProjectileOffscreen(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"center", 400, 300, false},
		{"top edge", 400, 0, false},
		{"bottom edge", 400, 600, false},
		{"above", 400, -0.5, true},
		{"below", 400, 600.5, true},
		{"left", -1, 300, true},
		{"right", 801, 300, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Projectile{X: tc.x, Y: tc.y}
			if got := p.Offscreen(); got != tc.expected {
				t.Errorf("Offscreen() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAdvanceProjectilesDropsOffscreen(t *testing.T) {
	list := []*Projectile{
		NewProjectile(100, 5, DirectionUp, 0, 10, '*', core.ColorWhite),   // Leaves through the top
		NewProjectile(100, 300, DirectionUp, 0, 10, '*', core.ColorWhite), // Stays
		NewProjectile(100, 595, DirectionDown, 0, 10, 'v', core.ColorYellow),
		NewProjectile(200, 300, DirectionDown, 0, 10, 'v', core.ColorYellow),
	}
	stay1, stay2 := list[1], list[3]

	list = advanceProjectiles(list)

	if len(list) != 2 {
		t.Fatalf("%d projectiles left, expected 2", len(list))
	}
	if list[0] != stay1 || list[1] != stay2 {
		t.Error("surviving projectiles should keep their order")
	}
}

func TestPowerUpFallAndOffscreen(t *testing.T) {
	pu := &PowerUp{X: 10, Y: 597, Speed: PowerUpFallSpeed, Kind: PowerSpeed}

	pu.Update()
	if pu.Y != 599 || pu.Offscreen() {
		t.Fatalf("Y = %v offscreen = %v", pu.Y, pu.Offscreen())
	}
	pu.Update()
	if !pu.Offscreen() {
		t.Error("power-up below the arena should be off screen")
	}
}

func TestStarWrapsToTop(t *testing.T) {
	rng := NewSimpleRNG(7)
	s := &Star{X: 10, Y: 599, Speed: 2, Glyph: '.'}

	s.Update(rng)

	if s.Y != 0 {
		t.Errorf("Y = %v after wrap, expected 0", s.Y)
	}
	if s.X < 0 || s.X > ArenaWidth {
		t.Errorf("X = %v after wrap, outside the arena", s.X)
	}
}

func TestPowerKindLabels(t *testing.T) {
	tests := []struct {
		kind  PowerKind
		label string
		glyph rune
		color core.Color
	}{
		{PowerNone, "Normal", '?', core.ColorWhite},
		{PowerDouble, "Double", 'D', core.ColorYellow},
		{PowerTriple, "Triple", 'T', core.ColorCyan},
		{PowerSpeed, "Speed", 'S', core.ColorGreen},
		{PowerBomb, "Bomb", 'B', core.ColorRed},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			if tc.kind.String() != tc.label || tc.kind.Glyph() != tc.glyph || tc.kind.Color() != tc.color {
				t.Errorf("%v: got %q %q %v", tc.kind, tc.kind.String(), tc.kind.Glyph(), tc.kind.Color())
			}
		})
	}
}
