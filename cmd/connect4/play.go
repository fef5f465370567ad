package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var (
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a game for two players sharing this keyboard.

Controls:
  Left/Right, h/l, a/d  - Move the column cursor
  Space/Enter/Down      - Drop a piece
  1-7                   - Drop straight into a column
  Mouse click           - Drop into the clicked column
  R                     - Reset the board
  X                     - Don't.
  Ctrl+S                - Save a screenshot to ~/.connect4/screenshots
  ?                     - Show all keys
  Q/Ctrl+C              - Quit

The game uses the whole terminal, so logs go to --log-file if given and are
discarded otherwise.

Examples:
  connect4 play
  connect4 play --fps 30
  connect4 play --config ./my-connect4.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = display.tick_rate from config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fail("cannot open log file: %v", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg)

	// Get terminal size, the program corrects it on the first resize event
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := cfg.Display.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	game := connect4.New(cfg, logger)
	runErr := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate,
		},
		ShowHelp:      cfg.Display.ShowHelp,
		ScreenshotDir: config.UserPath("screenshots"),
		Logger:        logger,
	})
	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		fail("%v", runErr)
	}
}
