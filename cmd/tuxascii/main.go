// tuxascii is a vertical-scrolling ASCII shoot-'em-up for the terminal.
//
// Usage:
//
//	tuxascii                  - Play (same as "tuxascii play")
//	tuxascii play             - Play in the terminal
//	tuxascii simulate         - Run a headless seeded game and print the result
//	tuxascii config           - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - RNG seed (0 = time based)
//	--log-file <path>   - Write logs to a file while playing
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuxascii",
	Short: "TuxAscii - an ASCII space shooter in your terminal",
	Long: `TuxAscii is a vertical-scrolling shoot-'em-up drawn in ASCII.
Pilot Tux through waves of drones and bosses, collect power-ups
and keep your bombs for when things get crowded.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run a headless game with a scripted pilot
  config    - Print the default configuration

Examples:
  tuxascii
  tuxascii play --fps 30
  tuxascii simulate --frames 3600 --seed 42
  tuxascii config > ~/.tuxascii/config.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (logs are discarded while playing when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tuxascii",
		Level:           level,
	}), nil
}

// openLogOutput returns the --log-file writer, or fallback when the flag is
// unset. The returned close function is never nil.
func openLogOutput(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
