// Package tui runs TuxAscii in the terminal with Bubble Tea. It maps keys to
// session commands and held actions, drives the fixed-rate tick loop and
// draws the session's render state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tuxascii/internal/core"
)

// TickMsg asks the model to advance one frame. It carries the wall-clock
// time the tick fired at.
type TickMsg time.Time

// frameInterval is the wall-clock length of one frame.
func frameInterval(rc core.RuntimeConfig) time.Duration {
	rate := rc.TickRate
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next frame.
func tickCmd(rc core.RuntimeConfig) tea.Cmd {
	return tea.Tick(frameInterval(rc), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
