package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Game drives a Simulator for the terminal platform: it maps actions to
// simulator requests and draws the board into a core.Screen.
type Game struct {
	settings Settings
	sim      *Simulator
	started  bool // False until the first key press
	fps      int

	// Layout
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

// New creates a Snake game with the given settings.
func New(settings Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid settings: %w", err)
	}
	return &Game{settings: settings}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset builds a fresh simulator and waits for the first key press.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	sim, err := NewSimulator(g.settings, cfg.Seed)
	if err != nil {
		// Settings were validated in New.
		panic(err)
	}
	g.sim = sim
	g.started = false
	g.fps = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new screen size without touching
// the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	cols, rows := g.settings.Cols, g.settings.Rows
	g.tooSmall = w < cols || h < rows+hudHeight
	g.mapOffsetX = (w - cols) / 2
	g.mapOffsetY = hudHeight + (h-hudHeight-rows)/2
}

// SetFPS sets the frame rate shown in the HUD.
func (g *Game) SetFPS(fps int) {
	g.fps = fps
}

// Moves returns the number of moves committed in the current game.
func (g *Game) Moves() uint64 {
	return g.sim.Moves()
}

// Simulator exposes the underlying simulation.
func (g *Game) Simulator() *Simulator {
	return g.sim
}

// Apply feeds one input action into the game and reports whether it had
// an effect. Before the first game and after a game over, any action
// counts as a request to start.
func (g *Game) Apply(a core.Action) bool {
	if a == core.ActionNone || a == core.ActionQuit {
		return false
	}

	if !g.started {
		g.started = true
		return true
	}

	if g.sim.State().GameOver() {
		return g.sim.RequestRestart()
	}

	switch a {
	case core.ActionUp:
		return g.sim.RequestDirection(DirUp)
	case core.ActionRight:
		return g.sim.RequestDirection(DirRight)
	case core.ActionDown:
		return g.sim.RequestDirection(DirDown)
	case core.ActionLeft:
		return g.sim.RequestDirection(DirLeft)
	case core.ActionTurn:
		return g.sim.RequestTurn()
	}
	return false
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(dt float64) core.GameState {
	if g.started && !g.tooSmall {
		g.sim.Tick(dt)
	}
	return g.State()
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		Started:  g.started,
		GameOver: st.GameOver(),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.settings.Cols, g.settings.Rows+hudHeight))
		return
	}

	g.renderBoard(dst)
	g.renderSnake(dst)

	switch {
	case !g.started:
		g.renderOverlay(dst, "S N A K E", "Press any key to start!")
	case g.sim.State().GameOver():
		prompt := ""
		if g.sim.CanRestart() {
			prompt = "Press any key to start!"
		}
		g.renderOverlay(dst, fmt.Sprintf("Game Over - Score: %d", g.sim.State().Score), prompt)
	}
}

// renderHUD draws the score line and a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Snake  Score: %d", g.sim.State().Score))

	fps := fmt.Sprintf("FPS: %d ", g.fps)
	dst.DrawTextColored(dst.Width()-len(fps), 0, fps, core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws walls and items.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.sim.Grid()
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			sx, sy := g.mapOffsetX+x, g.mapOffsetY+y
			switch grid.Get(Position{X: x, Y: y}) {
			case TileWall:
				dst.SetColored(sx, sy, '#', core.ColorGray)
			case TileItem:
				dst.SetColored(sx, sy, '*', core.ColorBrightRed)
			}
		}
	}
}

// renderSnake draws the body, then the head on top.
func (g *Game) renderSnake(dst *core.Screen) {
	actor := g.sim.Actor()
	segments := actor.Segments()

	color := core.ColorGreen
	if g.sim.State().GameOver() {
		color = core.ColorYellow
	}

	for i := len(segments) - 1; i >= 1; i-- {
		seg := segments[i]
		dst.SetColored(g.mapOffsetX+seg.X, g.mapOffsetY+seg.Y, 'o', color)
	}

	head := segments[0]
	dst.SetColored(g.mapOffsetX+head.X, g.mapOffsetY+head.Y, headGlyph(actor.Direction()), core.ColorBrightGreen)
}

func headGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return '^'
	case DirRight:
		return '>'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return 'O'
	}
}

// renderOverlay draws a centered box with up to two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	if line2 != "" {
		dst.DrawTextCentered(box.Y+3, line2)
	}
}
