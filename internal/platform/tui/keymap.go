package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tuxascii/internal/config"
	"github.com/vovakirdan/tuxascii/internal/core"
	"github.com/vovakirdan/tuxascii/internal/games/tuxascii"
)

// KeyMap defines the key bindings for the game. Which bindings are live
// depends on the screen being shown.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Fire  key.Binding
	Bomb  key.Binding

	Start    key.Binding
	Lore     key.Binding
	Controls key.Binding
	Back     key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// NewKeyMap builds the bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:     binding(cfg.Left, "left"),
		Right:    binding(cfg.Right, "right"),
		Up:       binding(cfg.Up, "up"),
		Down:     binding(cfg.Down, "down"),
		Fire:     binding(cfg.Fire, "shoot"),
		Bomb:     binding(cfg.Bomb, "bomb"),
		Start:    binding(cfg.Start, "start game"),
		Lore:     binding(cfg.Lore, "lore"),
		Controls: binding(cfg.Controls, "controls"),
		Back:     binding(cfg.Back, "title screen"),
		Restart:  binding(cfg.Restart, "restart"),
		Quit:     binding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultTuxConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(keys), desc),
	)
}

// keyLabel renders key names for help text.
func keyLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case " ":
			labels = append(labels, "space")
		case "":
			continue
		default:
			labels = append(labels, k)
		}
	}
	return strings.Join(labels, "/")
}

// Command maps a key press to the screen command it triggers, if any.
func (k KeyMap) Command(screen tuxascii.ScreenState, msg tea.KeyMsg) tuxascii.Command {
	if key.Matches(msg, k.Quit) {
		return tuxascii.CommandQuit
	}

	switch screen {
	case tuxascii.ScreenTitle:
		switch {
		case key.Matches(msg, k.Start):
			return tuxascii.CommandStart
		case key.Matches(msg, k.Lore):
			return tuxascii.CommandLore
		case key.Matches(msg, k.Controls):
			return tuxascii.CommandControls
		}
	case tuxascii.ScreenLore, tuxascii.ScreenControls, tuxascii.ScreenGameplay:
		if key.Matches(msg, k.Back) {
			return tuxascii.CommandBack
		}
	case tuxascii.ScreenGameOver:
		switch {
		case key.Matches(msg, k.Restart):
			return tuxascii.CommandRestart
		case key.Matches(msg, k.Back):
			return tuxascii.CommandBack
		}
	}
	return tuxascii.CommandNone
}

// Action maps a key press to a gameplay action. Returns ActionNone for keys
// that are not gameplay bindings.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Bomb):
		return core.ActionBomb
	}
	return core.ActionNone
}

// screenHelp is the help.KeyMap for one screen.
type screenHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (h screenHelp) ShortHelp() []key.Binding {
	return h.short
}

// FullHelp returns key bindings for the full help view.
func (h screenHelp) FullHelp() [][]key.Binding {
	return h.full
}

// HelpFor returns the bindings that are live on the given screen.
func (k KeyMap) HelpFor(screen tuxascii.ScreenState) help.KeyMap {
	var short []key.Binding
	switch screen {
	case tuxascii.ScreenTitle:
		short = []key.Binding{k.Start, k.Lore, k.Controls, k.Quit}
	case tuxascii.ScreenGameplay:
		short = []key.Binding{k.Fire, k.Bomb, k.Back, k.Quit}
	case tuxascii.ScreenGameOver:
		short = []key.Binding{k.Restart, k.Back, k.Quit}
	default:
		short = []key.Binding{k.Back, k.Quit}
	}
	return screenHelp{
		short: short,
		full: [][]key.Binding{
			{k.Left, k.Right, k.Up, k.Down},
			{k.Fire, k.Bomb},
			short,
		},
	}
}
