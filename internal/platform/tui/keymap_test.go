package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyToFrame(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"h", runes("h"), core.ActionLeft, false},
		{"a", runes("a"), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"l", runes("l"), core.ActionRight, false},
		{"d", runes("d"), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionDrop, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDrop, false},
		{"r", runes("r"), core.ActionRestart, false},
		{"x", runes("x"), core.ActionDont, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	keys := DefaultKeyMap()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()

			quit := keys.MapKeyToFrame(tc.msg, &frame)

			if quit != tc.quit {
				t.Errorf("MapKeyToFrame() quit = %v, expected %v", quit, tc.quit)
			}
			if !frame.Has(tc.action) {
				t.Errorf("frame %v missing action %v", frame.Actions, tc.action)
			}
		})
	}
}

func TestMapKeyToFrameDigits(t *testing.T) {
	keys := DefaultKeyMap()

	for digit := '1'; digit <= '7'; digit++ {
		frame := core.NewInputFrame()
		keys.MapKeyToFrame(runes(string(digit)), &frame)

		want := int(digit - '1')
		if !frame.Has(core.ActionColumn) || frame.Column != want {
			t.Errorf("key %q: column = %d (set %v), expected %d", digit, frame.Column, frame.Has(core.ActionColumn), want)
		}
	}
}

func TestMapKeyToFrameIgnoresUnknownKeys(t *testing.T) {
	keys := DefaultKeyMap()

	for _, s := range []string{"8", "9", "0", "z", "p"} {
		frame := core.NewInputFrame()
		if keys.MapKeyToFrame(runes(s), &frame) {
			t.Errorf("key %q should not quit", s)
		}
		if !frame.Empty() {
			t.Errorf("key %q set actions %v", s, frame.Actions)
		}
	}
}

func TestColumnKey(t *testing.T) {
	tests := []struct {
		key  string
		col  int
		want bool
	}{
		{"1", 0, true},
		{"7", 6, true},
		{"8", 7, false},
		{"0", 0, false},
		{"12", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		col, ok := columnKey(tc.key)
		if ok != tc.want || (ok && col != tc.col) {
			t.Errorf("columnKey(%q) = %d, %v; expected %d, %v", tc.key, col, ok, tc.col, tc.want)
		}
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 9 {
		t.Errorf("FullHelp() has %d bindings, expected 9", total)
	}
}
