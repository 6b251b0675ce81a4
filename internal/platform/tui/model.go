package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the model drives. Games contain pure logic with no
// Bubble Tea dependency; the model handles input mapping, timing and
// rendering.
type Game interface {
	// ID returns a short identifier used in logs.
	ID() string

	// Reset builds a fresh game for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize updates the layout without touching the simulation.
	Resize(w, h int)

	// Apply feeds one action and reports whether it had an effect.
	Apply(a core.Action) bool

	// Step advances the simulation by dt seconds.
	Step(dt float64) core.GameState

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// SetFPS sets the frame rate shown in the HUD.
	SetFPS(fps int)

	// Moves returns the number of moves made in the current game.
	Moves() uint64
}

// helpHeight is the number of rows reserved under the board for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	session  string // Id of the game in progress, empty before the first start
	state    core.GameState
	fps      FPSMeter
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	screenH := max(cfg.ScreenH-helpHeight, 0)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  screenH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, screenH),
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		logger: logger,
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "session", m.session, "score", m.state.Score)
		return m, tea.Quit
	}

	// Any key starts a game from the title or game over screen.
	if action == core.ActionNone && (!m.state.Started || m.state.GameOver) {
		action = core.ActionRestart
	}
	m.apply(action)
	return m, nil
}

// handleMouse turns the snake clockwise on a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.apply(core.ActionTurn)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	screenH := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, screenH)
	m.game.Resize(msg.Width, screenH)
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameDelta)
	}
	m.lastTick = now

	m.fps.Update(dt)
	m.game.SetFPS(m.fps.FPS())

	prev := m.state
	m.state = m.game.Step(dt)
	m.logTransition(prev)

	return m, tickCmd(m.config.TickRate)
}

// apply feeds an action to the game and records any state change.
func (m *Model) apply(a core.Action) {
	if !m.game.Apply(a) {
		return
	}
	prev := m.state
	m.state = m.game.State()
	m.logTransition(prev)
}

// logTransition logs game starts and game overs between prev and the
// current state.
func (m *Model) logTransition(prev core.GameState) {
	cur := m.state
	if cur.Started && !cur.GameOver && (!prev.Started || prev.GameOver) {
		m.session = uuid.NewString()
		m.logger.Info("new game", "game", m.game.ID(), "session", m.session)
	}
	if cur.GameOver && !prev.GameOver {
		m.logger.Info("game over",
			"session", m.session,
			"score", cur.Score,
			"moves", m.game.Moves(),
		)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks turn the snake
	)

	_, err := p.Run()
	return err
}
