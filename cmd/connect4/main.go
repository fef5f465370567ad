// connect4 is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connect4 play    - Play on this terminal (hot seat)
//	connect4 serve   - Start an SSH server; every connection gets its own game
//	connect4 rules   - Print the rules and controls
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.connect4/config.yaml)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four in your terminal",
	Long: `Connect Four for two players sharing one keyboard.

Drop pieces into the columns of a 6x7 grid; the first player with four in a
row (horizontal, vertical or diagonal) wins. A full board is a tie.

Available commands:
  play     - Play on this terminal
  serve    - Start an SSH server for remote play
  rules    - Print the rules and controls

Examples:
  connect4 play
  connect4 play --log-file connect4.log --log-level debug
  connect4 serve --ssh :2222
  ssh localhost -p 2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rulesCmd)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	return cfg, nil
}

// newLogger creates the root logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
		Level:           level,
	})
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
