package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slipway-games/slipway/internal/core"
	"github.com/slipway-games/slipway/internal/game"
	"github.com/slipway-games/slipway/internal/storage"
)

// keyHoldWindow is how long a steering key counts as held after its
// last press. Terminal auto-repeat delivers discrete events; without a
// hold window the steering scalar would decay between repeats.
const keyHoldWindow = 150 * time.Millisecond

// Model is the Bubble Tea model for running the slipway game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	lastFrame  time.Time
	leftUntil  time.Time // Steering hold windows
	rightUntil time.Time
	slowUntil  time.Time

	quitting bool
	runSaved bool // Whether the finished run has been persisted
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		lastFrame:  time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "left", "a", "h":
		m.leftUntil = now.Add(keyHoldWindow)
	case "right", "d", "l":
		m.rightUntil = now.Add(keyHoldWindow)
	case "shift+left", "shift+right", "s":
		m.slowUntil = now.Add(keyHoldWindow)
	case "p", "esc":
		m.inputFrame.Set(core.ActionPause)
	case "n":
		m.inputFrame.Set(core.ActionNewSeed)
	case "r":
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one display frame: measure wall-clock delta, apply
// held steering, and let the game convert the delta into fixed steps.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	frameTime := now.Sub(m.lastFrame).Seconds()
	m.lastFrame = now

	// Restart after run end with a fresh seed.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = now.UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if now.Before(m.leftUntil) {
		m.inputFrame.Set(core.ActionSteerLeft)
	}
	if now.Before(m.rightUntil) {
		m.inputFrame.Set(core.ActionSteerRight)
	}
	if now.Before(m.slowUntil) {
		m.inputFrame.Set(core.ActionSlowMo)
	}

	m.gameState = m.game.Step(m.inputFrame, frameTime)
	m.game.DrainEvents()

	// Persist the run once it ends.
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(int64(m.game.World().Seed()), m.gameState.Score, m.gameState.Distance)
		}
		m.runSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
