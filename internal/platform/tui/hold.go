package tui

import "github.com/vovakirdan/tuxascii/internal/core"

// HoldTracker turns terminal key presses into held-action snapshots.
// Terminals report presses and auto-repeats but never releases, so an
// action stays held for a fixed window after its last press. Bomb is the
// exception: each press yields exactly one frame with the action set.
type HoldTracker struct {
	holdMs  int64
	pressed map[core.Action]int64 // Time of the last press
	bomb    bool                  // Bomb press not yet consumed
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(holdMs int) *HoldTracker {
	return &HoldTracker{
		holdMs:  int64(holdMs),
		pressed: make(map[core.Action]int64),
	}
}

// Press records a key press for action at nowMs.
func (h *HoldTracker) Press(action core.Action, nowMs int64) {
	switch action {
	case core.ActionNone:
		return
	case core.ActionBomb:
		h.bomb = true
	default:
		h.pressed[action] = nowMs
	}
}

// Frame returns the actions held at nowMs and consumes a pending bomb press.
func (h *HoldTracker) Frame(nowMs int64) core.InputFrame {
	f := core.NewInputFrame()
	for a, at := range h.pressed {
		if nowMs-at < h.holdMs {
			f.Set(a)
		} else {
			delete(h.pressed, a)
		}
	}
	if h.bomb {
		f.Set(core.ActionBomb)
		h.bomb = false
	}
	return f
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.pressed)
	h.bomb = false
}
