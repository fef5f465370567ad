package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Game is what the platform drives: a tick-based simulation that draws itself
// onto a screen buffer.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
}

// ColumnPicker is implemented by games that map mouse clicks to columns.
type ColumnPicker interface {
	ColumnAt(x, y int) (int, bool)
}

// Options configures a Model.
type Options struct {
	Runtime       core.RuntimeConfig
	ShowHelp      bool
	ScreenshotDir string // empty disables ctrl+s
	Logger        *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	status     core.Status
	shotDir    string
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		config:     opts.Runtime,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showHelp:   opts.ShowHelp,
		inputFrame: core.NewInputFrame(),
		shotDir:    opts.ScreenshotDir,
		logger:     logger,
	}
	m.help.Width = opts.Runtime.ScreenW
	m.screen = core.NewScreen(opts.Runtime.ScreenW, m.gameHeight())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime())
	m.logger.Debug("game started", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		if m.showHelp {
			m.help.ShowAll = !m.help.ShowAll
			return m.handleResize(m.config.ScreenW, m.config.ScreenH)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left click on the board into a column choice.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	picker, ok := m.game.(ColumnPicker)
	if !ok {
		return m, nil
	}
	if col, ok := picker.ColumnAt(msg.X, msg.Y); ok {
		m.inputFrame.SetColumn(col)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(w, h int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.help.Width = w
	m.screen.Resize(w, m.gameHeight())
	m.game.Resize(w, m.gameHeight())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	if result.Status.GameOver && !m.status.GameOver {
		m.logger.Debug("game over", "game", m.game.ID(), "message", result.Status.Message)
	}
	m.status = result.Status

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// gameHeight is the number of rows left for the game below the help bar.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-m.helpHeight(), 0)
}

func (m Model) helpHeight() int {
	if !m.showHelp {
		return 0
	}
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, group := range m.keys.FullHelp() {
		rows = max(rows, len(group))
	}
	return rows
}

// runtime is the config handed to the game: the screen minus the help bar.
func (m Model) runtime() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	path, err := SaveScreenshot(m.game, m.screen, m.shotDir, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// SaveScreenshot renders game onto screen and writes it as plain text into dir.
// It returns the path of the new file.
func SaveScreenshot(game Game, screen *core.Screen, dir string, now time.Time) (string, error) {
	game.Render(screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.showHelp {
		out += "\n" + RenderHelp(m.help, m.keys)
	}
	return out
}

// Status returns the game status after the last tick.
func (m Model) Status() core.Status {
	return m.status
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks pick a column
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", game.Title(), err)
	}
	return nil
}
