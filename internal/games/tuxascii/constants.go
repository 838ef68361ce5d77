// Package tuxascii implements the TuxAscii shoot-em-up simulation: the player
// ship, enemy waves with a periodic boss, projectiles, power-ups and the screen
// state machine. The package never draws and never reads the clock; callers
// pass the current time in milliseconds into every update.
package tuxascii

// Arena dimensions in arena units. All entity positions live in this space;
// the platform scales it to whatever surface it renders on.
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0
)

// Player tuning.
const (
	PlayerSize         = 30.0
	PlayerBaseSpeed    = 5.0
	PlayerBoostSpeed   = 8.0
	PlayerStartLives   = 3
	PlayerStartBombs   = 3
	PlayerSpawnYOffset = 100.0 // Distance of the spawn point from the bottom edge
	PlayerShotInset    = 5.0   // Horizontal inset of the side guns

	BaseShootDelayMs    = 200
	BoostedShootDelayMs = 150

	PowerDurationMs      = 10000
	InvincibleDurationMs = 3000
	FlashPeriodMs        = 400 // Invincibility blink cycle
)

// Projectile tuning.
const (
	ProjectileSize      = 5.0
	ProjectileSpeed     = 10.0
	SlowProjectileSpeed = 5.0
	TripleShotAngle     = 15.0
	DirectionUp         = -1.0 // Player shots travel up
	DirectionDown       = 1.0  // Enemy shots travel down
)

// Enemy tuning.
const (
	EnemySize          = 30.0
	EnemyMinSpeed      = 1
	EnemyMaxSpeed      = 3
	EnemyMinShootDelay = 1000
	EnemyMaxShootDelay = 3000
	NormalHealth       = 3
	BossHealth         = 10
	EnemyOffscreenPad  = 50.0

	ZigzagFrequency = 0.002 // Radians per millisecond
	SwayAmplitude   = 2.0
	CircularStep    = 0.05
)

// Spawning and scoring.
const (
	EnemySpawnIntervalMs = 1500
	BossSpawnIntervalMs  = 30000
	EnemySpawnMargin     = 50  // Horizontal margin for normal spawns
	EnemySpawnY          = -30.0
	BossSpawnXOffset     = 50.0 // Boss spawns this far left of center
	BossSpawnY           = -50.0

	PowerUpSize      = 20.0
	PowerUpFallSpeed = 2.0
	PowerUpDropRate  = 0.3

	ScoreNormal       = 100
	ScoreBoss         = 500
	ScoreBombPerEnemy = 100

	DefaultStarCount = 100
	StarMinSpeed     = 1
	StarMaxSpeed     = 3

	maxPendingEvents = 256
)
