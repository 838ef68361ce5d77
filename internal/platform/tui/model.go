package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tuxascii/internal/config"
	"github.com/vovakirdan/tuxascii/internal/core"
	"github.com/vovakirdan/tuxascii/internal/games/tuxascii"
)

// Options configures a terminal game run.
type Options struct {
	Config config.TuxConfig
	Logger *log.Logger // Discards output when nil
	Width  int         // Initial terminal size; updated on resize
	Height int
}

// Model is the Bubble Tea model that runs one TuxAscii session.
type Model struct {
	session  *tuxascii.Session
	keys     KeyMap
	hold     *HoldTracker
	renderer *Renderer
	help     help.Model
	logger   *log.Logger
	runtime  core.RuntimeConfig

	start    time.Time
	nowMs    int64 // Session time of the last tick
	quitting bool
}

// NewModel creates a model with a fresh session on the title screen.
func NewModel(opts Options) Model {
	cfg := opts.Config
	rc := core.RuntimeConfig{
		ScreenW:  max(opts.Width, 1),
		ScreenH:  max(opts.Height, 2),
		TickRate: cfg.Runtime.TickRate,
		Seed:     cfg.Runtime.Seed,
	}.ResolveSeed(func() int64 { return time.Now().UnixNano() })

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("run", uuid.NewString())

	keys := NewKeyMap(cfg.Keys)
	h := help.New()
	h.Width = rc.ScreenW

	logger.Info("session created", "seed", rc.Seed, "tick_rate", rc.TickRate, "stars", cfg.Runtime.Stars)

	return Model{
		session:  tuxascii.NewSession(tuxascii.Config{Stars: cfg.Runtime.Stars, Seed: rc.Seed}),
		keys:     keys,
		hold:     NewHoldTracker(cfg.Input.HoldMs),
		renderer: NewRenderer(rc.ScreenW, rc.ScreenH-1, keys),
		help:     h,
		logger:   logger,
		runtime:  rc,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns a key press into a screen command or a held action.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.session.CurrentScreen()

	if cmd := m.keys.Command(screen, msg); cmd != tuxascii.CommandNone {
		if m.session.HandleCommand(cmd, m.nowMs) {
			m.logger.Info("quit", "screen", screen)
			m.quitting = true
			return m, tea.Quit
		}
		if m.session.CurrentScreen() != screen {
			m.hold.Reset()
		}
		m.logEvents()
		return m, nil
	}

	if screen == tuxascii.ScreenGameplay {
		m.hold.Press(m.keys.Action(msg), m.nowMs)
	}
	return m, nil
}

// handleResize keeps the drawing surface in step with the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.renderer.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by one frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = t
	}
	now := t.Sub(m.start).Milliseconds()
	if now < m.nowMs {
		now = m.nowMs
	}
	m.nowMs = now

	in := m.hold.Frame(now)
	if m.session.CurrentScreen() != tuxascii.ScreenGameplay {
		in.Clear()
	}
	m.session.AdvanceFrame(in, now)
	m.logEvents()

	return m, tickCmd(m.runtime)
}

// logEvents drains the session's events into the logger.
func (m Model) logEvents() {
	for _, ev := range m.session.DrainEvents() {
		switch e := ev.(type) {
		case tuxascii.ScreenChangedEvent:
			m.logger.Info("screen changed", "from", e.From, "to", e.To)
		case tuxascii.BossSpawnedEvent:
			m.logger.Info("boss spawned", "x", e.X)
		case tuxascii.EnemyDestroyedEvent:
			m.logger.Debug("enemy destroyed", "kind", e.Kind, "points", e.Points, "drop", e.Dropped)
		case tuxascii.PlayerHitEvent:
			m.logger.Info("player hit", "lives", e.LivesLeft)
		case tuxascii.BombUsedEvent:
			m.logger.Info("bomb used", "cleared", e.Cleared, "bombs", e.BombsLeft)
		case tuxascii.PowerUpCollectedEvent:
			m.logger.Debug("power-up collected", "kind", e.Kind)
		case tuxascii.GameOverEvent:
			m.logger.Info("game over", "score", e.Score)
		}
	}
}

// Session returns the session driven by the model.
func (m Model) Session() *tuxascii.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rs := m.session.RenderState()
	m.renderer.Draw(rs)

	return RenderScreen(m.renderer.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys.HelpFor(rs.Screen)))
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
