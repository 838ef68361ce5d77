package tuxascii

// Event is something notable that happened during an update. The platform
// drains events after each frame, for logging.
type Event interface {
	sessionEvent()
}

// ScreenChangedEvent is emitted on every screen transition.
type ScreenChangedEvent struct {
	From, To ScreenState
}

func (ScreenChangedEvent) sessionEvent() {}

// BossSpawnedEvent is emitted when the boss timer fires.
type BossSpawnedEvent struct {
	X float64
}

func (BossSpawnedEvent) sessionEvent() {}

// EnemyDestroyedEvent is emitted when an enemy's health is depleted by fire.
type EnemyDestroyedEvent struct {
	Kind    EnemyKind
	Points  int
	Dropped PowerKind // PowerNone when nothing dropped
}

func (EnemyDestroyedEvent) sessionEvent() {}

// PlayerHitEvent is emitted when an enemy projectile costs the player a life.
type PlayerHitEvent struct {
	LivesLeft int
}

func (PlayerHitEvent) sessionEvent() {}

// BombUsedEvent is emitted when a bomb clears the field.
type BombUsedEvent struct {
	Cleared   int
	BombsLeft int
}

func (BombUsedEvent) sessionEvent() {}

// PowerUpCollectedEvent is emitted when the player picks up a power-up.
type PowerUpCollectedEvent struct {
	Kind PowerKind
}

func (PowerUpCollectedEvent) sessionEvent() {}

// GameOverEvent is emitted once, when the last life is lost.
type GameOverEvent struct {
	Score int
}

func (GameOverEvent) sessionEvent() {}
