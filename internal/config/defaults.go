package config

import (
	_ "embed"
)

//go:embed defaults/tuxascii.yaml
var defaultTuxYAML []byte

// DefaultTuxConfig returns the built-in configuration. It matches the
// embedded YAML and is used when even that cannot be parsed.
func DefaultTuxConfig() TuxConfig {
	return TuxConfig{
		Runtime: RuntimeConfig{
			TickRate: 60,
			Stars:    100,
			Seed:     0,
		},
		Input: InputConfig{
			HoldMs: 150,
		},
		Keys: KeysConfig{
			Left:     []string{"left", "a"},
			Right:    []string{"right", "d"},
			Up:       []string{"up", "w"},
			Down:     []string{"down", "s"},
			Fire:     []string{" "},
			Bomb:     []string{"b"},
			Start:    []string{"s", "enter"},
			Lore:     []string{"a"},
			Controls: []string{"d"},
			Back:     []string{"q"},
			Restart:  []string{"r"},
			Quit:     []string{"ctrl+c", "esc"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTuxYAML
}
