// Package config provides YAML-based configuration for the Connect Four
// terminal game, with environment variable overrides.
package config

import (
	"time"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Players []PlayerConfig `yaml:"players"`
	Display DisplayConfig  `yaml:"display"`
	Dont    DontConfig     `yaml:"dont"`
	Log     LogConfig      `yaml:"log"`
	Server  ServerConfig   `yaml:"server"`
}

// PlayerConfig defines how a player is shown.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// DisplayConfig controls the terminal presentation.
type DisplayConfig struct {
	TickRate        int  `yaml:"tick_rate" env:"CONNECT4_TICK_RATE"`
	DropTicksPerRow int  `yaml:"drop_ticks_per_row" env:"CONNECT4_DROP_TICKS"`
	ShowHelp        bool `yaml:"show_help" env:"CONNECT4_SHOW_HELP"`
}

// DontConfig holds the escalating warnings of the "don't press" button.
type DontConfig struct {
	Warnings []string `yaml:"warnings"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level" env:"CONNECT4_LOG_LEVEL"`
}

// ServerConfig holds settings for the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"CONNECT4_SSH_ADDR"`
	HostKey     string        `yaml:"host_key" env:"CONNECT4_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"CONNECT4_IDLE_TIMEOUT"`
}

// Player returns the settings for player n (1 or 2).
func (c Config) Player(n int) PlayerConfig {
	if n < 1 || n > len(c.Players) {
		return PlayerConfig{Name: "?", Glyph: "?"}
	}
	return c.Players[n-1]
}

// ColorValue returns the parsed color. Unknown names map to the default color;
// Validate reports them.
func (p PlayerConfig) ColorValue() core.Color {
	c, err := core.ParseColor(p.Color)
	if err != nil {
		return core.ColorDefault
	}
	return c
}

// GlyphRune returns the first rune of the glyph, or '●' if it is empty.
func (p PlayerConfig) GlyphRune() rune {
	for _, r := range p.Glyph {
		return r
	}
	return '●'
}
