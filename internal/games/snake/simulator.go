package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// Phase is the simulator's top-level state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the per-session state returned from every tick.
type GameState struct {
	Score           int
	Phase           Phase
	GameOverElapsed float64 // Seconds since the game ended
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Settings describe a new game. See DefaultSettings for the classic layout.
type Settings struct {
	Cols          int
	Rows          int
	StartX        int
	StartY        int
	Direction     Direction
	Speed         float64 // Moves per second
	Length        int     // Initial number of segments
	GameOverDelay float64 // Seconds before a restart is accepted
}

// DefaultSettings returns a 25×20 board with a four-segment snake at (10, 10)
// heading right at 8 moves per second.
func DefaultSettings() Settings {
	return Settings{
		Cols:          25,
		Rows:          20,
		StartX:        10,
		StartY:        10,
		Direction:     DirRight,
		Speed:         8,
		Length:        4,
		GameOverDelay: 0.5,
	}
}

// Validate checks that the settings describe a playable board.
func (s Settings) Validate() error {
	var errs []error

	if s.Cols < 3 || s.Rows < 3 {
		errs = append(errs, fmt.Errorf("grid %dx%d has no interior, need at least 3x3", s.Cols, s.Rows))
	}
	if !s.Direction.Valid() {
		errs = append(errs, fmt.Errorf("invalid direction %d", s.Direction))
	}
	if s.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", s.Speed))
	}
	if s.Length < 1 {
		errs = append(errs, fmt.Errorf("length must be at least 1, got %d", s.Length))
	}
	if s.GameOverDelay < 0 {
		errs = append(errs, fmt.Errorf("gameover delay must not be negative, got %v", s.GameOverDelay))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	// Every initial segment has to start inside the walls.
	probe := &Grid{cols: s.Cols, rows: s.Rows}
	step := s.Direction.Vector()
	for i := range s.Length {
		p := Position{X: s.StartX - i*step.X, Y: s.StartY - i*step.Y}
		if !probe.Interior(p) {
			return fmt.Errorf("segment %d at (%d, %d) is outside the %dx%d interior", i, p.X, p.Y, s.Cols-2, s.Rows-2)
		}
	}
	return nil
}

// Simulator advances one snake session. All state lives in the value, so
// independent simulators can run side by side.
type Simulator struct {
	settings Settings
	rng      *rand.Rand
	grid     *Grid
	actor    Actor
	state    GameState
	moves    uint64 // Commits in the current game
}

// NewSimulator validates settings and starts a new game.
func NewSimulator(settings Settings, seed int64) (*Simulator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid settings: %w", err)
	}

	s := &Simulator{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.newGame()
	return s, nil
}

// newGame rebuilds the board, respawns the snake and places the first item.
func (s *Simulator) newGame() {
	if s.grid == nil {
		s.grid = NewGrid(s.settings.Cols, s.settings.Rows)
	}
	s.grid.GenerateBorderWalls()

	s.actor.Init(s.settings.StartX, s.settings.StartY, s.settings.Direction, s.settings.Speed, s.settings.Length)
	s.placeItem()

	s.state = GameState{Phase: PhasePlaying}
	s.moves = 0
}

func (s *Simulator) placeItem() {
	// A full board simply has no item; play continues.
	s.grid.PlaceRandomItem(s.rng, s.actor.Occupies)
}

// Tick advances the session by dt seconds and returns the resulting state.
// At most one move is committed per call.
func (s *Simulator) Tick(dt float64) GameState {
	if dt < 0 {
		panic(fmt.Sprintf("snake: negative tick %v", dt))
	}

	switch s.state.Phase {
	case PhasePlaying:
		s.step(dt)
	case PhaseGameOver:
		s.state.GameOverElapsed += dt
	}
	return s.state
}

func (s *Simulator) step(dt float64) {
	if !s.actor.Tick(dt) {
		return
	}

	next := s.actor.PeekNextHead()

	// Bounds first so the tile lookup never leaves the grid.
	if !s.grid.InBounds(next) || s.grid.Get(next) == TileWall || s.actor.Occupies(next) {
		s.endGame()
		return
	}

	s.actor.CommitMove()
	s.moves++

	if s.grid.Get(next) == TileItem {
		s.grid.Set(next, TileEmpty)
		s.placeItem()
		s.actor.Grow()
		s.state.Score++
	}
}

func (s *Simulator) endGame() {
	s.state.Phase = PhaseGameOver
	s.state.GameOverElapsed = 0
}

// RequestDirection queues a turn. Ignored unless playing.
func (s *Simulator) RequestDirection(d Direction) bool {
	if s.state.Phase != PhasePlaying {
		return false
	}
	return s.actor.SetDirection(d)
}

// RequestTurn queues a clockwise quarter turn. Ignored unless playing.
func (s *Simulator) RequestTurn() bool {
	if s.state.Phase != PhasePlaying {
		return false
	}
	return s.actor.Turn()
}

// RequestRestart starts a new game once the gameover delay has passed.
// It reports whether a new game was started.
func (s *Simulator) RequestRestart() bool {
	if !s.CanRestart() {
		return false
	}
	s.newGame()
	return true
}

// CanRestart reports whether RequestRestart would start a new game.
func (s *Simulator) CanRestart() bool {
	return s.state.Phase == PhaseGameOver && s.state.GameOverElapsed > s.settings.GameOverDelay
}

// State returns the current session state.
func (s *Simulator) State() GameState {
	return s.state
}

// Grid returns the board. Callers must treat it as read-only.
func (s *Simulator) Grid() *Grid {
	return s.grid
}

// Actor returns the snake. Callers must treat it as read-only.
func (s *Simulator) Actor() *Actor {
	return &s.actor
}

// Settings returns the settings the simulator was created with.
func (s *Simulator) Settings() Settings {
	return s.settings
}

// Moves returns the number of moves committed in the current game.
func (s *Simulator) Moves() uint64 {
	return s.moves
}
