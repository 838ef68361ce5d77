package tuxascii

import "github.com/vovakirdan/tuxascii/internal/core"

// Autopilot returns a scripted input for the given frame: fire constantly,
// sweep the arena in a square every 180 frames and bomb every 700 frames.
// Headless runs use it to exercise the simulation without a player.
func Autopilot(frame int) core.InputFrame {
	in := core.InputOf(core.ActionFire)
	switch (frame / 45) % 4 {
	case 0:
		in.Set(core.ActionLeft)
	case 1:
		in.Set(core.ActionUp)
	case 2:
		in.Set(core.ActionRight)
	default:
		in.Set(core.ActionDown)
	}
	if frame%700 == 0 {
		in.Set(core.ActionBomb)
	}
	return in
}
