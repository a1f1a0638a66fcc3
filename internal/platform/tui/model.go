package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/torgrid/torsnake/internal/config"
	"github.com/torgrid/torsnake/internal/core"
	"github.com/torgrid/torsnake/internal/grid"
	"github.com/torgrid/torsnake/internal/snake"
)

// Model is the Bubble Tea model driving the game. It owns the single
// current game state; every key press or tick replaces that value with
// the output of a pure engine transition.
type Model struct {
	state    snake.State
	world    grid.Grid
	cellSize int
	interval time.Duration // 0 means key-driven stepping only

	keys   KeyMap
	help   help.Model
	screen *core.Screen

	quitting bool
}

// NewModel creates a model for the given validated configuration.
func NewModel(cfg config.Config, rt core.RuntimeConfig) Model {
	return Model{
		state:    snake.NewState(),
		world:    grid.New(cfg.World.Width, cfg.World.Height),
		cellSize: cfg.Render.CellSize,
		interval: time.Duration(cfg.Step.AutoIntervalMs) * time.Millisecond,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		// The bottom terminal row is left to the help line, which
		// renders its own styling outside the cell buffer.
		screen: core.NewScreen(rt.ScreenW, max(1, rt.ScreenH-1)),
	}
}

// Init starts the auto-step timer when one is configured.
func (m Model) Init() tea.Cmd {
	if m.interval > 0 {
		return tickCmd(m.interval)
	}
	return nil
}

// Update handles messages and advances the game state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// Autonomous tick: step alone, heading unchanged.
		m.state = snake.Step(m.state, m.world)
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// handleKey processes a key press. A direction key turns the snake and
// immediately steps, as one atomic update; anything unmapped is
// ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if d, ok := m.keys.DirectionFor(msg); ok {
		m.state = snake.Turn(m.state, d, m.world)
	}
	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n " + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one game session.
func Run(cfg config.Config, rt core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, rt),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
