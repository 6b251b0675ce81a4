package snake

import (
	"fmt"
	"math/rand"
)

// Tile is the content of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileItem
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileItem:
		return "item"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size cols×rows board of tiles. Its shape never changes
// after creation; only tile contents do.
//
// Accessing a position outside the board is a caller bug and panics;
// use InBounds to check first.
type Grid struct {
	cols  int
	rows  int
	tiles []Tile // Row-major
}

// NewGrid creates an all-empty grid.
func NewGrid(cols, rows int) *Grid {
	if cols < 1 || rows < 1 {
		panic(fmt.Sprintf("snake: invalid grid size %dx%d", cols, rows))
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		tiles: make([]Tile, cols*rows),
	}
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// Interior reports whether p lies inside the border ring.
func (g *Grid) Interior(p Position) bool {
	return p.X > 0 && p.X < g.cols-1 && p.Y > 0 && p.Y < g.rows-1
}

func (g *Grid) index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("snake: position (%d, %d) outside %dx%d grid", p.X, p.Y, g.cols, g.rows))
	}
	return p.Y*g.cols + p.X
}

// Get returns the tile at p.
func (g *Grid) Get(p Position) Tile {
	return g.tiles[g.index(p)]
}

// Set replaces the tile at p.
func (g *Grid) Set(p Position, t Tile) {
	g.tiles[g.index(p)] = t
}

// GenerateBorderWalls turns the perimeter into walls and empties the interior.
func (g *Grid) GenerateBorderWalls() {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			p := Position{X: x, Y: y}
			if g.Interior(p) {
				g.Set(p, TileEmpty)
			} else {
				g.Set(p, TileWall)
			}
		}
	}
}

// PlaceItemAt puts an item on an empty tile.
func (g *Grid) PlaceItemAt(p Position) {
	if t := g.Get(p); t != TileEmpty {
		panic(fmt.Sprintf("snake: cannot place item on %s tile at (%d, %d)", t, p.X, p.Y))
	}
	g.Set(p, TileItem)
}

// PlaceRandomItem puts an item on a uniformly chosen interior cell that is
// empty and not occupied. It samples from the list of free cells, so it
// always terminates. ok is false when no cell qualifies.
func (g *Grid) PlaceRandomItem(rng *rand.Rand, occupied func(Position) bool) (pos Position, ok bool) {
	var free []Position
	for y := 1; y < g.rows-1; y++ {
		for x := 1; x < g.cols-1; x++ {
			p := Position{X: x, Y: y}
			if g.Get(p) == TileEmpty && (occupied == nil || !occupied(p)) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Position{}, false
	}

	pos = free[rng.Intn(len(free))]
	g.PlaceItemAt(pos)
	return pos, true
}

// Items returns the positions of all item tiles in row-major order.
func (g *Grid) Items() []Position {
	var items []Position
	for i, t := range g.tiles {
		if t == TileItem {
			items = append(items, Position{X: i % g.cols, Y: i / g.cols})
		}
	}
	return items
}

// Count returns how many tiles hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}
