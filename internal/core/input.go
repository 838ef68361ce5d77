package core

// Action is a gameplay action, independent of the key that triggers it.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionBomb

	actionCount
)

var actionNames = [...]string{
	ActionNone:  "None",
	ActionLeft:  "Left",
	ActionRight: "Right",
	ActionUp:    "Up",
	ActionDown:  "Down",
	ActionFire:  "Fire",
	ActionBomb:  "Bomb",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions held during one frame. The zero value
// holds nothing, and an action missing from the frame reads as not held.
type InputFrame struct {
	held uint16
}

// NewInputFrame returns an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputOf builds a frame with the given actions held.
func InputOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.held |= 1 << a
}

// Has reports whether the action is held.
func (f InputFrame) Has(a Action) bool {
	if a >= actionCount {
		return false
	}
	return f.held&(1<<a) != 0
}

// Clear releases every action.
func (f *InputFrame) Clear() {
	f.held = 0
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.held == 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
