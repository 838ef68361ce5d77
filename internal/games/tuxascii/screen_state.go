package tuxascii

// ScreenState is the screen the session is showing.
type ScreenState int

const (
	ScreenTitle ScreenState = iota
	ScreenGameplay
	ScreenLore
	ScreenControls
	ScreenGameOver
)

// String returns the name of the screen.
func (s ScreenState) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenGameplay:
		return "gameplay"
	case ScreenLore:
		return "lore"
	case ScreenControls:
		return "controls"
	case ScreenGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Command is a discrete key-press event that drives screen transitions.
type Command int

const (
	CommandNone     Command = iota
	CommandStart            // Title: start a game
	CommandLore             // Title: show the lore
	CommandControls         // Title: show the controls
	CommandBack             // Return to the title screen
	CommandRestart          // Game over: play again
	CommandQuit             // Leave the program
)

// String returns the name of the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandStart:
		return "start"
	case CommandLore:
		return "lore"
	case CommandControls:
		return "controls"
	case CommandBack:
		return "back"
	case CommandRestart:
		return "restart"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// nextScreen returns the screen a command leads to from the given screen and
// whether the command applies there at all. reset is true when the target
// screen starts a fresh game.
func nextScreen(from ScreenState, cmd Command) (to ScreenState, reset, ok bool) {
	switch from {
	case ScreenTitle:
		switch cmd {
		case CommandStart:
			return ScreenGameplay, true, true
		case CommandLore:
			return ScreenLore, false, true
		case CommandControls:
			return ScreenControls, false, true
		}
	case ScreenLore, ScreenControls, ScreenGameplay:
		if cmd == CommandBack {
			return ScreenTitle, false, true
		}
	case ScreenGameOver:
		switch cmd {
		case CommandRestart:
			return ScreenGameplay, true, true
		case CommandBack:
			return ScreenTitle, false, true
		}
	}
	return from, false, false
}
