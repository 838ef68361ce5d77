package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tuxascii/internal/config"
	"github.com/vovakirdan/tuxascii/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play TuxAscii",
	Long: `Start the game on the title screen.

Default controls:
  Arrows/WASD  - Move
  Space        - Shoot
  B            - Bomb (clears the screen)
  Q            - Back to the title screen
  R            - Restart (after game over)
  Esc/Ctrl+C   - Quit

Keys can be rebound in the config file; see "tuxascii config".

Examples:
  tuxascii play
  tuxascii play --seed 42
  tuxascii play --config ./my-keys.yaml --log-file tux.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	out, closeLog, err := openLogOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(tui.Options{
		Config: cfg,
		Logger: logger,
		Width:  width,
		Height: height,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadConfig loads the config and applies the command-line overrides.
func loadConfig(logger *log.Logger) (config.TuxConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Runtime.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)
	return cfg, nil
}
