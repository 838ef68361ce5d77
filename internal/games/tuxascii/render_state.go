package tuxascii

import "github.com/vovakirdan/tuxascii/internal/core"

// PlayerView is the drawable state of the player ship.
type PlayerView struct {
	Bounds     core.RectF
	Invincible bool
	Flash      bool // Dim half of the invincibility blink
}

// ProjectileView is a drawable projectile.
type ProjectileView struct {
	Bounds core.RectF
	Glyph  rune
	Color  core.Color
}

// EnemyView is a drawable enemy.
type EnemyView struct {
	Bounds core.RectF
	Kind   EnemyKind
	Health int
}

// PowerUpView is a drawable power-up pickup.
type PowerUpView struct {
	Bounds core.RectF
	Kind   PowerKind
}

// StarView is a drawable background star.
type StarView struct {
	X, Y  float64
	Glyph rune
}

// HUD holds the values shown in the status line.
type HUD struct {
	Score int
	Lives int
	Bombs int
	Power PowerKind
}

// RenderState is a read-only copy of everything a renderer needs for one
// frame. Mutating it has no effect on the session.
type RenderState struct {
	Screen ScreenState
	NowMs  int64

	Player            PlayerView
	PlayerProjectiles []ProjectileView
	EnemyProjectiles  []ProjectileView
	Enemies           []EnemyView
	PowerUps          []PowerUpView
	Stars             []StarView
	HUD               HUD
}

// RenderState captures the current frame for drawing.
func (s *Session) RenderState() RenderState {
	p := s.player
	rs := RenderState{
		Screen: s.screen,
		NowMs:  s.nowMs,
		Player: PlayerView{
			Bounds:     p.Bounds(),
			Invincible: p.Invincible,
			Flash:      p.Flashing(s.nowMs),
		},
		PlayerProjectiles: projectileViews(nil, p.Projectiles),
		Enemies:           make([]EnemyView, 0, len(s.enemies)),
		PowerUps:          make([]PowerUpView, 0, len(s.powerUps)),
		Stars:             make([]StarView, 0, len(s.stars)),
		HUD: HUD{
			Score: p.Score,
			Lives: p.Lives,
			Bombs: p.Bombs,
			Power: p.Power,
		},
	}

	for _, e := range s.enemies {
		rs.Enemies = append(rs.Enemies, EnemyView{Bounds: e.Bounds(), Kind: e.Kind, Health: e.Health})
		rs.EnemyProjectiles = projectileViews(rs.EnemyProjectiles, e.Projectiles)
	}
	for _, pu := range s.powerUps {
		rs.PowerUps = append(rs.PowerUps, PowerUpView{Bounds: pu.Bounds(), Kind: pu.Kind})
	}
	for _, st := range s.stars {
		rs.Stars = append(rs.Stars, StarView{X: st.X, Y: st.Y, Glyph: st.Glyph})
	}

	return rs
}

func projectileViews(dst []ProjectileView, list []*Projectile) []ProjectileView {
	for _, pr := range list {
		dst = append(dst, ProjectileView{Bounds: pr.Bounds(), Glyph: pr.Glyph, Color: pr.Color})
	}
	return dst
}
