package snake

import "fmt"

// Actor is the snake: an ordered body (head first), a heading, a speed in
// moves per second and a counter of segments still to be grown.
//
// Turns are queued rather than applied at once. A turn is checked against
// the direction the snake is actually travelling, so two quick key presses
// inside one move can never fold the head back into the neck.
type Actor struct {
	segments  []Position // Head at index 0
	dir       Direction  // Direction of the last committed move
	queued    Direction  // Direction the next move will take
	speed     float64    // Moves per second
	moveDelay float64    // Seconds accumulated since the last commit
	moveDue   bool
	growth    int // Pending segments
}

// Init places a snake of length segments with its head at (x, y),
// trailing backwards from dir.
func (a *Actor) Init(x, y int, dir Direction, speed float64, length int) {
	if !dir.Valid() {
		panic(fmt.Sprintf("snake: invalid direction %d", dir))
	}
	if speed <= 0 {
		panic(fmt.Sprintf("snake: speed must be positive, got %v", speed))
	}
	if length < 1 {
		panic(fmt.Sprintf("snake: length must be at least 1, got %d", length))
	}

	a.dir = dir
	a.queued = dir
	a.speed = speed
	a.moveDelay = 0
	a.moveDue = false
	a.growth = 0

	step := dir.Vector()
	a.segments = make([]Position, length)
	for i := range a.segments {
		a.segments[i] = Position{X: x - i*step.X, Y: y - i*step.Y}
	}
}

// SetDirection queues a turn for the next move. A turn into the reverse of
// the current direction is ignored and reported as false. A later call
// within the same move replaces an earlier one.
func (a *Actor) SetDirection(d Direction) bool {
	if !d.Valid() {
		panic(fmt.Sprintf("snake: invalid direction %d", d))
	}
	if d == a.dir.Opposite() {
		return false
	}
	a.queued = d
	return true
}

// Turn queues a clockwise quarter turn relative to the queued direction.
func (a *Actor) Turn() bool {
	return a.SetDirection(a.queued.Clockwise())
}

// Tick adds dt seconds to the move timer and reports whether a move is due.
func (a *Actor) Tick(dt float64) bool {
	a.moveDelay += dt
	if a.moveDelay > 1/a.speed {
		a.moveDue = true
	}
	return a.moveDue
}

// PeekNextHead returns where the head would be after the next move.
func (a *Actor) PeekNextHead() Position {
	return a.Head().Add(a.queued.Vector())
}

// CommitMove advances the body one cell. The tail is kept in place while
// growth is pending, which lengthens the snake by exactly one segment.
// Calling it when Tick has not reported a due move is a caller bug.
func (a *Actor) CommitMove() {
	if !a.moveDue {
		panic("snake: CommitMove called with no move due")
	}

	head := a.PeekNextHead()
	a.dir = a.queued

	if a.growth > 0 {
		a.segments = append(a.segments, Position{})
		a.growth--
	}
	copy(a.segments[1:], a.segments[:len(a.segments)-1])
	a.segments[0] = head

	a.moveDelay = 0
	a.moveDue = false
}

// Grow schedules one more segment to be added on a future move.
func (a *Actor) Grow() {
	a.growth++
}

// Head returns the head position.
func (a *Actor) Head() Position {
	return a.segments[0]
}

// Direction returns the direction of the last committed move.
func (a *Actor) Direction() Direction {
	return a.dir
}

// QueuedDirection returns the direction the next move will take.
func (a *Actor) QueuedDirection() Direction {
	return a.queued
}

// Speed returns the speed in moves per second.
func (a *Actor) Speed() float64 {
	return a.speed
}

// Len returns the number of segments.
func (a *Actor) Len() int {
	return len(a.segments)
}

// PendingGrowth returns how many segments are still to be added.
func (a *Actor) PendingGrowth() int {
	return a.growth
}

// Segments returns a copy of the body, head first.
func (a *Actor) Segments() []Position {
	out := make([]Position, len(a.segments))
	copy(out, a.segments)
	return out
}

// Occupies reports whether any segment is at p.
func (a *Actor) Occupies(p Position) bool {
	for _, seg := range a.segments {
		if seg == p {
			return true
		}
	}
	return false
}
