package tuxascii

import (
	"testing"

	"github.com/vovakirdan/tuxascii/internal/core"
)

func TestPlayerSpawnState(t *testing.T) {
	p := NewPlayer(0)

	if p.X != 400 || p.Y != 500 {
		t.Errorf("spawn position = (%v, %v), expected (400, 500)", p.X, p.Y)
	}
	if p.Lives != 3 || p.Bombs != 3 || p.Score != 0 {
		t.Errorf("lives/bombs/score = %d/%d/%d, expected 3/3/0", p.Lives, p.Bombs, p.Score)
	}
	if p.Power != PowerNone {
		t.Errorf("power = %v, expected %v", p.Power, PowerNone)
	}
	if p.Speed != PlayerBaseSpeed || p.ShootDelay != BaseShootDelayMs {
		t.Errorf("speed/delay = %v/%d, expected base values", p.Speed, p.ShootDelay)
	}
}

func TestPlayerMoveStaysInArena(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
	}{
		{"left", []core.Action{core.ActionLeft}},
		{"right", []core.Action{core.ActionRight}},
		{"up", []core.Action{core.ActionUp}},
		{"down", []core.Action{core.ActionDown}},
		{"up-left", []core.Action{core.ActionUp, core.ActionLeft}},
		{"down-right", []core.Action{core.ActionDown, core.ActionRight}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(0)
			p.ApplyPowerUp(PowerSpeed, 0)
			in := core.InputOf(tc.actions...)

			for range 500 {
				p.Move(in)
				if p.X < 0 || p.X > ArenaWidth-PlayerSize {
					t.Fatalf("X out of bounds: %v", p.X)
				}
				if p.Y < 0 || p.Y > ArenaHeight-PlayerSize {
					t.Fatalf("Y out of bounds: %v", p.Y)
				}
			}
		})
	}
}

func TestPlayerMoveEdges(t *testing.T) {
	p := NewPlayer(0)
	for range 200 {
		p.Move(core.InputOf(core.ActionRight, core.ActionDown))
	}
	if p.X != ArenaWidth-PlayerSize || p.Y != ArenaHeight-PlayerSize {
		t.Errorf("expected bottom-right corner, got (%v, %v)", p.X, p.Y)
	}

	for range 200 {
		p.Move(core.InputOf(core.ActionLeft, core.ActionUp))
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("expected top-left corner, got (%v, %v)", p.X, p.Y)
	}
}

func TestPlayerMoveIgnoresMissingFlags(t *testing.T) {
	p := NewPlayer(0)
	x, y := p.X, p.Y

	p.Move(core.InputFrame{})
	p.Move(core.NewInputFrame())

	if p.X != x || p.Y != y {
		t.Errorf("empty input moved player to (%v, %v)", p.X, p.Y)
	}
}

func TestPlayerShootCooldown(t *testing.T) {
	p := NewPlayer(0)

	steps := []struct {
		now      int64
		fired    bool
		expected int
	}{
		{0, false, 0},
		{199, false, 0},
		{200, true, 1},
		{250, false, 1},
		{399, false, 1},
		{400, true, 2},
		{1000, true, 3},
	}

	for _, st := range steps {
		if got := p.Shoot(st.now); got != st.fired {
			t.Errorf("Shoot(%d) = %v, expected %v", st.now, got, st.fired)
		}
		if len(p.Projectiles) != st.expected {
			t.Errorf("after Shoot(%d): %d projectiles, expected %d", st.now, len(p.Projectiles), st.expected)
		}
	}
}

func TestPlayerShootPatterns(t *testing.T) {
	tests := []struct {
		name   string
		power  PowerKind
		xs     []float64 // Offsets from player X
		angles []float64
	}{
		{"normal", PowerNone, []float64{15}, []float64{0}},
		{"speed", PowerSpeed, []float64{15}, []float64{0}},
		{"bomb", PowerBomb, []float64{15}, []float64{0}},
		{"double", PowerDouble, []float64{5, 25}, []float64{0, 0}},
		{"triple", PowerTriple, []float64{15, 5, 25}, []float64{0, -15, 15}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(0)
			p.ApplyPowerUp(tc.power, 0)

			if !p.Shoot(1000) {
				t.Fatal("Shoot should fire after the cooldown")
			}
			if len(p.Projectiles) != len(tc.xs) {
				t.Fatalf("%d projectiles, expected %d", len(p.Projectiles), len(tc.xs))
			}
			for i, pr := range p.Projectiles {
				if pr.X != p.X+tc.xs[i] {
					t.Errorf("projectile %d X = %v, expected %v", i, pr.X, p.X+tc.xs[i])
				}
				if pr.Angle != tc.angles[i] {
					t.Errorf("projectile %d angle = %v, expected %v", i, pr.Angle, tc.angles[i])
				}
				if pr.Direction != DirectionUp || pr.Speed != ProjectileSpeed {
					t.Errorf("projectile %d direction/speed = %v/%v", i, pr.Direction, pr.Speed)
				}
			}
		})
	}
}

func TestPlayerUseBomb(t *testing.T) {
	p := NewPlayer(0)

	for i := range PlayerStartBombs {
		if !p.UseBomb() {
			t.Fatalf("UseBomb #%d should succeed", i+1)
		}
	}
	if p.Bombs != 0 {
		t.Fatalf("bombs = %d, expected 0", p.Bombs)
	}

	if p.UseBomb() {
		t.Error("UseBomb with no bombs should fail")
	}
	if p.Bombs != 0 {
		t.Errorf("bombs = %d after failed UseBomb, expected 0", p.Bombs)
	}
}

func TestPlayerApplyPowerUp(t *testing.T) {
	tests := []struct {
		kind  PowerKind
		speed float64
		delay int64
		bombs int
	}{
		{PowerDouble, PlayerBaseSpeed, BoostedShootDelayMs, 3},
		{PowerTriple, PlayerBaseSpeed, BoostedShootDelayMs, 3},
		{PowerSpeed, PlayerBoostSpeed, BaseShootDelayMs, 3},
		{PowerBomb, PlayerBaseSpeed, BaseShootDelayMs, 4},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := NewPlayer(0)
			p.ApplyPowerUp(tc.kind, 100)

			if p.Power != tc.kind {
				t.Errorf("power = %v, expected %v", p.Power, tc.kind)
			}
			if p.Speed != tc.speed {
				t.Errorf("speed = %v, expected %v", p.Speed, tc.speed)
			}
			if p.ShootDelay != tc.delay {
				t.Errorf("shoot delay = %d, expected %d", p.ShootDelay, tc.delay)
			}
			if p.Bombs != tc.bombs {
				t.Errorf("bombs = %d, expected %d", p.Bombs, tc.bombs)
			}
		})
	}
}

func TestPlayerPowerDecay(t *testing.T) {
	for _, kind := range []PowerKind{PowerDouble, PowerTriple, PowerSpeed, PowerBomb} {
		t.Run(kind.String(), func(t *testing.T) {
			p := NewPlayer(0)
			p.ApplyPowerUp(kind, 1000)

			p.Tick(10999)
			if p.Power != kind {
				t.Fatalf("power expired early at 9999ms: %v", p.Power)
			}

			p.Tick(11000)
			if p.Power != PowerNone {
				t.Errorf("power = %v at 10000ms, expected %v", p.Power, PowerNone)
			}
			if p.Speed != PlayerBaseSpeed || p.ShootDelay != BaseShootDelayMs {
				t.Errorf("speed/delay = %v/%d after decay, expected base values", p.Speed, p.ShootDelay)
			}
		})
	}
}

func TestPlayerPowerRefresh(t *testing.T) {
	p := NewPlayer(0)
	p.ApplyPowerUp(PowerSpeed, 0)
	p.ApplyPowerUp(PowerSpeed, 8000)

	p.Tick(10000)
	if p.Power != PowerSpeed {
		t.Fatalf("refreshed power expired at the first deadline")
	}
	p.Tick(18000)
	if p.Power != PowerNone {
		t.Errorf("power = %v, expected expiry 10000ms after refresh", p.Power)
	}
}

func TestPlayerInvincibility(t *testing.T) {
	p := NewPlayer(0)
	p.Hit(500)

	if p.Lives != 2 || !p.Invincible {
		t.Fatalf("after Hit: lives=%d invincible=%v", p.Lives, p.Invincible)
	}

	p.Tick(3499)
	if !p.Invincible {
		t.Fatal("invincibility cleared early")
	}
	p.Tick(3500)
	if p.Invincible {
		t.Error("invincibility should clear 3000ms after the hit")
	}
}

func TestPlayerFlashing(t *testing.T) {
	p := NewPlayer(0)
	if p.Flashing(300) {
		t.Error("flashing without invincibility")
	}

	p.Hit(0)
	tests := []struct {
		now      int64
		expected bool
	}{
		{0, false},
		{199, false},
		{200, true},
		{399, true},
		{400, false},
		{600, true},
	}
	for _, tc := range tests {
		if got := p.Flashing(tc.now); got != tc.expected {
			t.Errorf("Flashing(%d) = %v, expected %v", tc.now, got, tc.expected)
		}
	}
}

func TestPlayerAddScoreNeverDecreases(t *testing.T) {
	p := NewPlayer(0)
	p.AddScore(100)
	p.AddScore(-50)
	p.AddScore(0)

	if p.Score != 100 {
		t.Errorf("score = %d, expected 100", p.Score)
	}
}
