package tuxascii

// Spawner holds the two independent wave timers.
type Spawner struct {
	enemyAt int64 // Time of the last normal spawn
	bossAt  int64 // Time of the last boss spawn
}

// Reset restarts both timers at nowMs.
func (sp *Spawner) Reset(nowMs int64) {
	sp.enemyAt = nowMs
	sp.bossAt = nowMs
}

// Spawn returns the enemies due at nowMs: at most one normal enemy and at
// most one boss.
func (sp *Spawner) Spawn(nowMs int64, rng Rand) []*Enemy {
	var spawned []*Enemy

	if nowMs-sp.enemyAt >= EnemySpawnIntervalMs {
		sp.enemyAt = nowMs
		x := float64(randRange(rng, EnemySpawnMargin, int(ArenaWidth)-EnemySpawnMargin))
		spawned = append(spawned, NewEnemy(x, EnemySpawnY, EnemyNormal, nowMs, rng))
	}

	if nowMs-sp.bossAt >= BossSpawnIntervalMs {
		sp.bossAt = nowMs
		spawned = append(spawned, NewEnemy(ArenaWidth/2-BossSpawnXOffset, BossSpawnY, EnemyBoss, nowMs, rng))
	}

	return spawned
}

// DropPowerUp rolls the drop for a destroyed enemy. Bosses always drop;
// normal enemies drop with PowerUpDropRate. Returns nil when nothing drops.
func DropPowerUp(e *Enemy, rng Rand) *PowerUp {
	if e.Kind != EnemyBoss && rng.Float64() >= PowerUpDropRate {
		return nil
	}
	return NewPowerUp(e.X, e.Y, rng)
}
