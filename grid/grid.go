package grid

import (
	"errors"
	"fmt"

	"pursuit/utils"
)

var ErrInvalidGrid = errors.New("invalid grid")

// Position is a (row, column) coordinate on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Cell uint8

const (
	Free Cell = iota
	Wall
)

// Grid is a rectangular occupancy field. The core treats it as read-only.
type Grid struct {
	cells [][]Cell
	rows  int
	cols  int
}

// NewGrid returns an all-free grid of the given size.
func NewGrid(rows, cols int) Grid {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return Grid{cells: cells, rows: rows, cols: cols}
}

// FromMatrix builds a grid from an integer matrix where 0 is free and any
// other value is a wall. Ragged input is rejected.
func FromMatrix(m [][]int) (Grid, error) {
	if len(m) == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	g := NewGrid(len(m), len(m[0]))
	for r, row := range m {
		if len(row) != g.cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidGrid, r, len(row), g.cols)
		}
		for c, v := range row {
			if v != 0 {
				g.cells[r][c] = Wall
			}
		}
	}
	return g, nil
}

func (g Grid) Rows() int { return g.rows }
func (g Grid) Cols() int { return g.cols }

// InBounds reports whether p lies inside the grid on both axes.
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. Out-of-bounds positions read as walls.
func (g Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row][p.Col]
}

// Set changes the cell at p. Out-of-bounds positions are ignored.
func (g Grid) Set(p Position, c Cell) {
	if g.InBounds(p) {
		g.cells[p.Row][p.Col] = c
	}
}

func (g Grid) Clone() Grid {
	clone := NewGrid(g.rows, g.cols)
	for r := range g.cells {
		copy(clone.cells[r], g.cells[r])
	}
	return clone
}

// FreeCells returns every free position in row-major order.
func (g Grid) FreeCells() []Position {
	var free []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Free {
				free = append(free, Position{r, c})
			}
		}
	}
	return free
}

// IsValidPosition is true iff pos is in bounds and not a wall.
func IsValidPosition(pos Position, g Grid) bool {
	return g.InBounds(pos) && g.cells[pos.Row][pos.Col] == Free
}

// ApplyMove offsets pos by the move's delta. Bounds are not checked.
func ApplyMove(pos Position, m Move) Position {
	d := m.Delta()
	return Position{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
}

// Neighbor is a position reachable in one move together with that move.
type Neighbor struct {
	Pos  Position
	Move Move
}

// Neighbors returns the valid positions one directional move away from pos,
// in the order UP, DOWN, LEFT, RIGHT.
func Neighbors(pos Position, g Grid) []Neighbor {
	neighbors := make([]Neighbor, 0, len(Moves))
	for _, m := range Moves {
		next := ApplyMove(pos, m)
		if IsValidPosition(next, g) {
			neighbors = append(neighbors, Neighbor{Pos: next, Move: m})
		}
	}
	return neighbors
}

func ManhattanDistance(a, b Position) int {
	return utils.Abs(a.Row-b.Row) + utils.Abs(a.Col-b.Col)
}
