package tuxascii

import "github.com/vovakirdan/tuxascii/internal/core"

// Config holds the options for a new session.
type Config struct {
	Stars int   // Number of background stars
	Seed  int64 // Seed for the default random source
	Rand  Rand  // Random source; a SimpleRNG seeded with Seed when nil
}

// DefaultConfig returns the session options used by the game.
func DefaultConfig() Config {
	return Config{
		Stars: DefaultStarCount,
		Seed:  1,
	}
}

// Session is one running game instance. It owns every entity and is the only
// thing that mutates them.
type Session struct {
	player   *Player
	enemies  []*Enemy
	powerUps []*PowerUp
	stars    []*Star
	spawner  Spawner

	screen ScreenState
	rng    Rand
	nowMs  int64
	frame  uint64

	events []Event
}

// NewSession creates a session on the title screen.
func NewSession(cfg Config) *Session {
	rng := cfg.Rand
	if rng == nil {
		rng = NewSimpleRNG(cfg.Seed)
	}

	return &Session{
		player: NewPlayer(0),
		stars:  newStarfield(max(cfg.Stars, 0), rng),
		screen: ScreenTitle,
		rng:    rng,
	}
}

// ResetForGameplay starts a fresh game at nowMs: the player is restored to
// its spawn state, all enemies and power-ups are cleared, both spawn timers
// restart and the session enters Gameplay.
func (s *Session) ResetForGameplay(nowMs int64) {
	s.player.Reset(nowMs)
	clear(s.enemies)
	s.enemies = s.enemies[:0]
	clear(s.powerUps)
	s.powerUps = s.powerUps[:0]
	s.spawner.Reset(nowMs)
	s.nowMs = nowMs
	s.setScreen(ScreenGameplay)
}

// CurrentScreen returns the screen being shown.
func (s *Session) CurrentScreen() ScreenState {
	return s.screen
}

// Frame returns the number of frames advanced so far.
func (s *Session) Frame() uint64 {
	return s.frame
}

// HandleCommand applies a discrete command at nowMs. Commands that do not
// apply to the current screen are ignored. Returns true when the program
// should quit.
func (s *Session) HandleCommand(cmd Command, nowMs int64) bool {
	if cmd == CommandQuit {
		return true
	}

	to, reset, ok := nextScreen(s.screen, cmd)
	if !ok {
		return false
	}
	if reset {
		s.ResetForGameplay(nowMs)
		return false
	}
	s.setScreen(to)
	return false
}

// AdvanceFrame runs one fixed-timestep update at nowMs. Stars move on every
// screen; the simulation itself only runs during Gameplay.
func (s *Session) AdvanceFrame(in core.InputFrame, nowMs int64) {
	s.nowMs = nowMs
	s.frame++

	for _, star := range s.stars {
		star.Update(s.rng)
	}

	if s.screen != ScreenGameplay {
		return
	}

	p := s.player
	p.Move(in)
	p.Tick(nowMs)

	if in.Has(core.ActionFire) {
		p.Shoot(nowMs)
	}
	if in.Has(core.ActionBomb) && p.UseBomb() {
		s.detonateBomb()
	}

	for _, e := range s.spawner.Spawn(nowMs, s.rng) {
		if e.Kind == EnemyBoss {
			s.emit(BossSpawnedEvent{X: e.X})
		}
		s.enemies = append(s.enemies, e)
	}

	p.Projectiles = advanceProjectiles(p.Projectiles)

	s.updateEnemies(nowMs)
	s.updatePowerUps(nowMs)
}

// detonateBomb awards points for every live enemy and clears the field.
func (s *Session) detonateBomb() {
	cleared := len(s.enemies)
	s.player.AddScore(cleared * ScoreBombPerEnemy)
	clear(s.enemies)
	s.enemies = s.enemies[:0]
	s.emit(BombUsedEvent{Cleared: cleared, BombsLeft: s.player.Bombs})
}

func (s *Session) updateEnemies(nowMs int64) {
	p := s.player

	kept := s.enemies[:0]
	for _, e := range s.enemies {
		e.Tick(nowMs, s.rng)
		e.Projectiles = advanceProjectiles(e.Projectiles)

		s.resolveEnemyFire(e, nowMs)

		if s.resolvePlayerFire(e) {
			points := e.Score()
			p.AddScore(points)

			dropped := PowerNone
			if pu := DropPowerUp(e, s.rng); pu != nil {
				s.powerUps = append(s.powerUps, pu)
				dropped = pu.Kind
			}
			s.emit(EnemyDestroyedEvent{Kind: e.Kind, Points: points, Dropped: dropped})
			continue
		}

		if e.Offscreen() {
			continue
		}
		kept = append(kept, e)
	}
	clear(s.enemies[len(kept):])
	s.enemies = kept
}

// resolveEnemyFire checks the enemy's projectiles against the player.
// A hit consumes the projectile and costs a life unless the player is
// invincible.
func (s *Session) resolveEnemyFire(e *Enemy, nowMs int64) {
	p := s.player
	bounds := p.Bounds()

	kept := e.Projectiles[:0]
	for _, pr := range e.Projectiles {
		if !p.Invincible && Overlaps(pr.Bounds(), bounds) {
			p.Hit(nowMs)
			s.emit(PlayerHitEvent{LivesLeft: p.Lives})
			if p.Lives <= 0 && s.screen == ScreenGameplay {
				s.emit(GameOverEvent{Score: p.Score})
				s.setScreen(ScreenGameOver)
			}
			continue
		}
		kept = append(kept, pr)
	}
	clear(e.Projectiles[len(kept):])
	e.Projectiles = kept
}

// resolvePlayerFire checks the player's projectiles against one enemy. Each
// hit consumes the projectile and costs the enemy one health. Checking stops
// once the enemy is destroyed. Returns true if it was.
func (s *Session) resolvePlayerFire(e *Enemy) bool {
	p := s.player
	bounds := e.Bounds()
	destroyed := false

	kept := p.Projectiles[:0]
	for _, pr := range p.Projectiles {
		if !destroyed && Overlaps(pr.Bounds(), bounds) {
			destroyed = e.Damage()
			continue
		}
		kept = append(kept, pr)
	}
	clear(p.Projectiles[len(kept):])
	p.Projectiles = kept
	return destroyed
}

func (s *Session) updatePowerUps(nowMs int64) {
	p := s.player
	bounds := p.Bounds()

	kept := s.powerUps[:0]
	for _, pu := range s.powerUps {
		pu.Update()
		if pu.Offscreen() {
			continue
		}
		if Overlaps(pu.Bounds(), bounds) {
			p.ApplyPowerUp(pu.Kind, nowMs)
			s.emit(PowerUpCollectedEvent{Kind: pu.Kind})
			continue
		}
		kept = append(kept, pu)
	}
	clear(s.powerUps[len(kept):])
	s.powerUps = kept
}

func (s *Session) setScreen(to ScreenState) {
	if s.screen == to {
		return
	}
	s.emit(ScreenChangedEvent{From: s.screen, To: to})
	s.screen = to
}

func (s *Session) emit(ev Event) {
	if len(s.events) >= maxPendingEvents {
		return
	}
	s.events = append(s.events, ev)
}

// DrainEvents returns the events emitted since the last call and empties the
// buffer.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
