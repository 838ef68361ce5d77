package tuxascii

import "math"

// Snapshot is a flattened view of the session used for determinism checks.
// Positions are stored as raw float bits so equal snapshots mean bit-equal
// simulations.
type Snapshot struct {
	Frame  uint64
	NowMs  int64
	Screen int

	PlayerX, PlayerY uint64
	Score            int
	Lives            int
	Bombs            int
	Power            int
	Invincible       bool

	// Each enemy is 5 values: Kind, X, Y, Health, Pattern
	EnemyCount int
	EnemyData  []uint64

	// Each projectile is 2 values: X, Y. Player shots first, then enemy shots
	// in enemy order.
	ProjectileCount int
	ProjectileData  []uint64

	// Each power-up is 3 values: Kind, X, Y
	PowerUpCount int
	PowerUpData  []uint64

	// RNG state when the session uses SimpleRNG, zero otherwise
	RNGState uint64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Frame:      s.frame,
		NowMs:      s.nowMs,
		Screen:     int(s.screen),
		PlayerX:    math.Float64bits(p.X),
		PlayerY:    math.Float64bits(p.Y),
		Score:      p.Score,
		Lives:      p.Lives,
		Bombs:      p.Bombs,
		Power:      int(p.Power),
		Invincible: p.Invincible,
		EnemyCount: len(s.enemies),
	}

	snap.EnemyData = make([]uint64, 0, len(s.enemies)*5)
	for _, e := range s.enemies {
		snap.EnemyData = append(snap.EnemyData,
			uint64(e.Kind), //#nosec G115 -- enum value
			math.Float64bits(e.X),
			math.Float64bits(e.Y),
			uint64(e.Health),  //#nosec G115 -- hash input
			uint64(e.Pattern), //#nosec G115 -- enum value
		)
	}

	snap.ProjectileData = appendProjectiles(nil, p.Projectiles)
	for _, e := range s.enemies {
		snap.ProjectileData = appendProjectiles(snap.ProjectileData, e.Projectiles)
	}
	snap.ProjectileCount = len(snap.ProjectileData) / 2

	snap.PowerUpCount = len(s.powerUps)
	snap.PowerUpData = make([]uint64, 0, len(s.powerUps)*3)
	for _, pu := range s.powerUps {
		snap.PowerUpData = append(snap.PowerUpData,
			uint64(pu.Kind), //#nosec G115 -- enum value
			math.Float64bits(pu.X),
			math.Float64bits(pu.Y),
		)
	}

	if rng, ok := s.rng.(*SimpleRNG); ok {
		snap.RNGState = rng.State()
	}

	return snap
}

func appendProjectiles(dst []uint64, list []*Projectile) []uint64 {
	for _, pr := range list {
		dst = append(dst, math.Float64bits(pr.X), math.Float64bits(pr.Y))
	}
	return dst
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.NowMs)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Screen) //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bombs) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Power) //#nosec G115 -- hash computation
	if snap.Invincible {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)    //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + v
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + v
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
