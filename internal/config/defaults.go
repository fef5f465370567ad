package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/connect4.yaml
// and is used when the embedded file cannot be decoded.
func Default() Config {
	return Config{
		Players: []PlayerConfig{
			{Name: "Player 1", Glyph: "●", Color: "red"},
			{Name: "Player 2", Glyph: "●", Color: "yellow"},
		},
		Display: DisplayConfig{
			TickRate:        60,
			DropTicksPerRow: 2,
			ShowHelp:        true,
		},
		Dont: DontConfig{
			Warnings: []string{
				"Don't press that.",
				"Really. Don't.",
				"I TOLD YOU NOT TO!",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23234",
			HostKey:     "~/.connect4/host_key",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
