// Package config provides YAML-based configuration loading for TuxAscii:
// runtime options, terminal input timing and key bindings.
package config

import (
	"errors"
	"fmt"
)

// TuxConfig contains all configuration for the game.
type TuxConfig struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Input   InputConfig   `yaml:"input"`
	Keys    KeysConfig    `yaml:"keys"`
}

// RuntimeConfig defines how the simulation is driven.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"` // Simulation steps per second
	Stars    int   `yaml:"stars"`     // Background star count
	Seed     int64 `yaml:"seed"`      // 0 picks a seed from the clock
}

// InputConfig defines how terminal key presses become held actions.
type InputConfig struct {
	// HoldMs is how long a key counts as held after its last press.
	// Terminals report repeats but never releases.
	HoldMs int `yaml:"hold_ms"`
}

// KeysConfig maps every action and command to its key names.
// Names follow Bubble Tea's KeyMsg.String(): "left", "a", " ", "ctrl+c".
type KeysConfig struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Up       []string `yaml:"up"`
	Down     []string `yaml:"down"`
	Fire     []string `yaml:"fire"`
	Bomb     []string `yaml:"bomb"`
	Start    []string `yaml:"start"`
	Lore     []string `yaml:"lore"`
	Controls []string `yaml:"controls"`
	Back     []string `yaml:"back"`
	Restart  []string `yaml:"restart"`
	Quit     []string `yaml:"quit"`
}

// Validate fills unset values from the defaults and rejects values the game
// cannot run with.
func (c *TuxConfig) Validate() error {
	def := DefaultTuxConfig()

	if c.Runtime.TickRate < 0 {
		return fmt.Errorf("runtime.tick_rate must not be negative, got %d", c.Runtime.TickRate)
	}
	if c.Runtime.TickRate == 0 {
		c.Runtime.TickRate = def.Runtime.TickRate
	}
	if c.Runtime.TickRate > 240 {
		return fmt.Errorf("runtime.tick_rate must be at most 240, got %d", c.Runtime.TickRate)
	}
	if c.Runtime.Stars < 0 {
		return fmt.Errorf("runtime.stars must not be negative, got %d", c.Runtime.Stars)
	}
	if c.Input.HoldMs < 0 {
		return fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMs)
	}
	if c.Input.HoldMs == 0 {
		c.Input.HoldMs = def.Input.HoldMs
	}

	return c.Keys.fill(def.Keys)
}

// fill replaces every empty binding with its default and checks that no
// binding is blank.
func (k *KeysConfig) fill(def KeysConfig) error {
	bindings := []struct {
		name string
		keys *[]string
		def  []string
	}{
		{"left", &k.Left, def.Left},
		{"right", &k.Right, def.Right},
		{"up", &k.Up, def.Up},
		{"down", &k.Down, def.Down},
		{"fire", &k.Fire, def.Fire},
		{"bomb", &k.Bomb, def.Bomb},
		{"start", &k.Start, def.Start},
		{"lore", &k.Lore, def.Lore},
		{"controls", &k.Controls, def.Controls},
		{"back", &k.Back, def.Back},
		{"restart", &k.Restart, def.Restart},
		{"quit", &k.Quit, def.Quit},
	}

	var errs []error
	for _, b := range bindings {
		if len(*b.keys) == 0 {
			*b.keys = b.def
			continue
		}
		for _, name := range *b.keys {
			if name == "" {
				errs = append(errs, fmt.Errorf("keys.%s contains an empty key name", b.name))
				break
			}
		}
	}
	return errors.Join(errs...)
}
