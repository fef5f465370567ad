package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/engine"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules and controls",
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(rulesText(cfg))
}

// rulesText describes the game using the configured player names.
func rulesText(cfg config.Config) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	p1, p2 := cfg.Player(1), cfg.Player(2)

	var b strings.Builder
	b.WriteString(titleStyle.Render("CONNECT FOUR"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The board has %d columns and %d rows. %s (%s) and %s (%s)\n",
		engine.Width, engine.Height, p1.Name, p1.Glyph, p2.Name, p2.Glyph)
	fmt.Fprintf(&b, "take turns dropping a piece into a column; it falls to the lowest\n")
	fmt.Fprintf(&b, "empty cell. %s moves first.\n\n", p1.Name)
	fmt.Fprintf(&b, "The first to line up %d pieces horizontally, vertically or diagonally\n", engine.ConnectN)
	b.WriteString("wins. If the board fills up with no line, the game is a tie.\n")
	b.WriteString("A full column takes no more pieces.\n\n")

	b.WriteString(titleStyle.Render("CONTROLS"))
	b.WriteString("\n\n")
	b.WriteString("  Left/Right, h/l, a/d   move the cursor\n")
	b.WriteString("  Space, Enter, Down     drop a piece\n")
	fmt.Fprintf(&b, "  1-%d                    drop straight into a column\n", engine.Width)
	b.WriteString("  r                      reset the board\n")
	b.WriteString("  x                      please don't\n")
	b.WriteString("  q                      quit\n")
	return b.String()
}
