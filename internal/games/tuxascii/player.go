package tuxascii

import "github.com/vovakirdan/tuxascii/internal/core"

// Player is the ship controlled by the user.
type Player struct {
	X, Y        float64
	Speed       float64
	Projectiles []*Projectile

	ShootDelay int64 // Milliseconds between shots
	lastShot   int64

	Score int
	Lives int
	Bombs int

	Power      PowerKind
	powerSince int64

	Invincible      bool
	invincibleSince int64
}

// NewPlayer creates a player in its spawn state at time nowMs.
func NewPlayer(nowMs int64) *Player {
	p := &Player{}
	p.Reset(nowMs)
	return p
}

// Reset restores the spawn state. The fire cooldown starts at nowMs.
func (p *Player) Reset(nowMs int64) {
	p.X = ArenaWidth / 2
	p.Y = ArenaHeight - PlayerSpawnYOffset
	p.Speed = PlayerBaseSpeed
	p.Projectiles = nil
	p.ShootDelay = BaseShootDelayMs
	p.lastShot = nowMs
	p.Score = 0
	p.Lives = PlayerStartLives
	p.Bombs = PlayerStartBombs
	p.Power = PowerNone
	p.powerSince = 0
	p.Invincible = false
	p.invincibleSince = 0
}

// Bounds returns the player hitbox.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, PlayerSize, PlayerSize)
}

// Move shifts the player by Speed along every held direction and keeps it
// inside the arena.
func (p *Player) Move(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		p.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.X += p.Speed
	}
	if in.Has(core.ActionUp) {
		p.Y -= p.Speed
	}
	if in.Has(core.ActionDown) {
		p.Y += p.Speed
	}
	p.X = core.ClampF(p.X, 0, ArenaWidth-PlayerSize)
	p.Y = core.ClampF(p.Y, 0, ArenaHeight-PlayerSize)
}

// Shoot fires according to the active power when the cooldown has elapsed.
// Returns false, with no effect, while the cooldown is still running.
func (p *Player) Shoot(nowMs int64) bool {
	if nowMs-p.lastShot < p.ShootDelay {
		return false
	}
	p.lastShot = nowMs

	center := p.X + PlayerSize/2
	left := p.X + PlayerShotInset
	right := p.X + PlayerSize - PlayerShotInset

	switch p.Power {
	case PowerDouble:
		p.Projectiles = append(p.Projectiles,
			playerShot(left, p.Y, 0),
			playerShot(right, p.Y, 0),
		)
	case PowerTriple:
		p.Projectiles = append(p.Projectiles,
			playerShot(center, p.Y, 0),
			playerShot(left, p.Y, -TripleShotAngle),
			playerShot(right, p.Y, TripleShotAngle),
		)
	default:
		p.Projectiles = append(p.Projectiles, playerShot(center, p.Y, 0))
	}
	return true
}

func playerShot(x, y, angle float64) *Projectile {
	return NewProjectile(x, y, DirectionUp, angle, ProjectileSpeed, '*', core.ColorWhite)
}

// UseBomb spends one bomb. Returns false, with no effect, when none are left.
// Clearing the enemies is the session's job.
func (p *Player) UseBomb() bool {
	if p.Bombs <= 0 {
		return false
	}
	p.Bombs--
	return true
}

// ApplyPowerUp activates kind at nowMs. Picking up a kind again restarts its
// timer; durations never stack.
func (p *Player) ApplyPowerUp(kind PowerKind, nowMs int64) {
	p.Power = kind
	p.powerSince = nowMs

	switch kind {
	case PowerSpeed:
		p.Speed = PlayerBoostSpeed
	case PowerBomb:
		p.Bombs++
	case PowerDouble, PowerTriple:
		p.ShootDelay = BoostedShootDelayMs
	}
}

// Tick expires the active power and the invincibility window.
func (p *Player) Tick(nowMs int64) {
	if p.Power != PowerNone && nowMs-p.powerSince >= PowerDurationMs {
		p.Power = PowerNone
		p.Speed = PlayerBaseSpeed
		p.ShootDelay = BaseShootDelayMs
	}

	if p.Invincible && nowMs-p.invincibleSince >= InvincibleDurationMs {
		p.Invincible = false
	}
}

// Hit takes one life and starts the invincibility window.
func (p *Player) Hit(nowMs int64) {
	p.Lives--
	p.Invincible = true
	p.invincibleSince = nowMs
}

// AddScore adds a non-negative amount to the score.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

// Flashing reports whether the sprite is in the dim half of the blink cycle.
func (p *Player) Flashing(nowMs int64) bool {
	return p.Invincible && nowMs%FlashPeriodMs >= FlashPeriodMs/2
}
