package snake

import (
	"fmt"
	"strings"
)

// Position is a cell in grid coordinates.
type Position struct {
	X, Y int
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Direction represents the snake's heading. The numeric values are
// clockwise starting from Up, so opposite directions differ by 2.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// directionVectors holds the unit step for each direction. Y grows downwards.
var directionVectors = [...]Position{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() Position {
	return directionVectors[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Clockwise returns the direction a quarter turn to the right.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "left" (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	}
	return DirUp, fmt.Errorf("snake: unknown direction %q", s)
}
