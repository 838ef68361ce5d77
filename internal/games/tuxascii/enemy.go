package tuxascii

import (
	"math"

	"github.com/vovakirdan/tuxascii/internal/core"
)

// EnemyKind distinguishes regular enemies from the boss.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyBoss
)

// String returns the name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// MovePattern is chosen at spawn and kept for the enemy's lifetime.
type MovePattern int

const (
	MoveStraight MovePattern = iota // Straight down
	MoveZigzag                      // Down with a shared time-based sway
	MoveCircular                    // Down with a per-enemy accumulating sway
	movePatternCount
)

// String returns the name of the movement pattern.
func (m MovePattern) String() string {
	switch m {
	case MoveStraight:
		return "straight"
	case MoveZigzag:
		return "zigzag"
	case MoveCircular:
		return "circular"
	default:
		return "unknown"
	}
}

// BossPattern is the volley a boss fires. It is drawn anew on every shot.
type BossPattern int

const (
	BossCircle BossPattern = iota // 12 shots, 30 degrees apart
	BossSpread                    // 7 shots over ±45 degrees
	BossAimed                     // 5 slow shots over ±20 degrees
	bossPatternCount
)

// String returns the name of the boss attack pattern.
func (b BossPattern) String() string {
	switch b {
	case BossCircle:
		return "circle"
	case BossSpread:
		return "spread"
	case BossAimed:
		return "aimed"
	default:
		return "unknown"
	}
}

// Enemy is a hostile ship. Each enemy owns the projectiles it fired.
type Enemy struct {
	X, Y        float64
	Speed       float64
	Kind        EnemyKind
	Health      int
	Pattern     MovePattern
	ShootDelay  int64
	Projectiles []*Projectile

	angle    float64
	lastShot int64
}

// NewEnemy creates an enemy of the given kind at (x, y) at time nowMs.
// Speed, fire cooldown and movement pattern are drawn from rng in that order.
func NewEnemy(x, y float64, kind EnemyKind, nowMs int64, rng Rand) *Enemy {
	e := &Enemy{
		X:        x,
		Y:        y,
		Kind:     kind,
		Health:   NormalHealth,
		lastShot: nowMs,
	}
	if kind == EnemyBoss {
		e.Health = BossHealth
	}
	e.Speed = float64(randRange(rng, EnemyMinSpeed, EnemyMaxSpeed))
	e.ShootDelay = int64(randRange(rng, EnemyMinShootDelay, EnemyMaxShootDelay))
	e.Pattern = MovePattern(rng.Intn(int(movePatternCount)))
	return e
}

// Bounds returns the enemy hitbox.
func (e *Enemy) Bounds() core.RectF {
	return core.NewRectF(e.X, e.Y, EnemySize, EnemySize)
}

// Tick moves the enemy along its pattern and fires once the cooldown elapsed.
// Returns true if the enemy fired this tick.
func (e *Enemy) Tick(nowMs int64, rng Rand) bool {
	switch e.Pattern {
	case MoveZigzag:
		e.X += math.Sin(float64(nowMs)*ZigzagFrequency) * SwayAmplitude
	case MoveCircular:
		e.angle += CircularStep
		e.X += math.Sin(e.angle) * SwayAmplitude
	}
	e.Y += e.Speed

	if nowMs-e.lastShot >= e.ShootDelay {
		e.lastShot = nowMs
		e.Fire(rng)
		return true
	}
	return false
}

// Fire appends one volley to the enemy's projectiles. Bosses pick a random
// pattern per volley; normal enemies fire a single straight shot.
func (e *Enemy) Fire(rng Rand) {
	x := e.X + EnemySize/2
	y := e.Y + EnemySize

	if e.Kind != EnemyBoss {
		e.Projectiles = append(e.Projectiles,
			NewProjectile(x, y, DirectionDown, 0, ProjectileSpeed, 'v', core.ColorYellow))
		return
	}

	pattern := BossPattern(rng.Intn(int(bossPatternCount)))
	switch pattern {
	case BossCircle:
		for angle := 0; angle < 360; angle += 30 {
			e.Projectiles = append(e.Projectiles,
				NewProjectile(x, y, DirectionDown, float64(angle), ProjectileSpeed, '+', core.ColorRed))
		}
	case BossSpread:
		for angle := -45; angle <= 45; angle += 15 {
			e.Projectiles = append(e.Projectiles,
				NewProjectile(x, y, DirectionDown, float64(angle), ProjectileSpeed, '*', core.ColorMagenta))
		}
	case BossAimed:
		for i := -2; i <= 2; i++ {
			e.Projectiles = append(e.Projectiles,
				NewProjectile(x, y, DirectionDown, float64(i*10), SlowProjectileSpeed, 'o', core.ColorCyan))
		}
	}
}

// Damage takes one point of health and reports whether the enemy is destroyed.
func (e *Enemy) Damage() bool {
	e.Health--
	return e.Destroyed()
}

// Destroyed reports whether health is depleted.
func (e *Enemy) Destroyed() bool {
	return e.Health <= 0
}

// Offscreen reports whether the enemy sank past the bottom edge.
func (e *Enemy) Offscreen() bool {
	return e.Y > ArenaHeight+EnemyOffscreenPad
}

// Score returns the points awarded for destroying the enemy.
func (e *Enemy) Score() int {
	if e.Kind == EnemyBoss {
		return ScoreBoss
	}
	return ScoreNormal
}
