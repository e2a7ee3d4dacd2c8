/*
Package maze implements the procedural maze engine: a rectangular grid of
wall-flagged cells, randomized depth-first generators with rooms, hallways
and deterministic "hack" corridor layouts, feature overlays (holes, portal
pairs, a wildcard tile), a breadth-first shortest-path solver, and a
fill-in generator that completes partially edited grids.

All randomness flows through an injected *rand.Rand, so generation is
reproducible under a fixed seed. Grids are plain in-memory arrays; the
package performs no I/O and holds no state across calls.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// maxDimension bounds a single grid axis.
	maxDimension = 64
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrOutOfBounds       = errors.New("position is out of the grid")
)

// Grid is a rectangular maze grid, indexed Cells[row][col]. It is mutable
// during generation and treated as read-only once accepted by a caller.
type Grid struct {
	Width  int       `bson:"width" json:"width"`
	Height int       `bson:"height" json:"height"`
	Cells  [][]*Cell `bson:"cells" json:"cells"`
}

// NewGrid creates a grid of the given dimensions with every wall present.
// It is deterministic and involves no randomness.
func NewGrid(width, height int) (*Grid, error) {
	if min(width, height) <= 0 || max(width, height) > maxDimension {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]*Cell, height)
	for row := range cells {
		cells[row] = make([]*Cell, width)
		for col := range cells[row] {
			cells[row][col] = &Cell{
				NorthWall: true,
				EastWall:  true,
				SouthWall: true,
				WestWall:  true,
			}
		}
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// InBound reports whether the row/col pair lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// At returns the cell at the given position, or nil when out of bounds.
func (g *Grid) At(p CellPosition) *Cell {
	if !g.InBound(p.Row, p.Col) {
		return nil
	}
	return g.Cells[p.Row][p.Col]
}

// directionBetween returns the direction of the single step from a to b.
func directionBetween(a, b CellPosition) (Direction, error) {
	dRow, dCol := b.Row-a.Row, b.Col-a.Col
	if abs(dRow)+abs(dCol) != 1 {
		return North, ErrNotAdjacent
	}
	switch {
	case dRow == -1:
		return North, nil
	case dRow == 1:
		return South, nil
	case dCol == 1:
		return East, nil
	default:
		return West, nil
	}
}

// RemoveWallBetween clears the wall pair separating two 4-adjacent cells.
// Calling it on non-adjacent cells is a contract violation and returns
// ErrNotAdjacent without touching any wall state.
func (g *Grid) RemoveWallBetween(a, b CellPosition) error {
	if !g.InBound(a.Row, a.Col) || !g.InBound(b.Row, b.Col) {
		return ErrOutOfBounds
	}
	dir, err := directionBetween(a, b)
	if err != nil {
		return err
	}
	g.setWallPair(a, dir, false)
	return nil
}

// PunchEntrance clears the named wall on the cell at p and mirrors the
// clear on the neighbor in that direction when the neighbor exists. The
// mirror step is skipped on the grid boundary.
func (g *Grid) PunchEntrance(p CellPosition, d Direction) error {
	if !g.InBound(p.Row, p.Col) {
		return ErrOutOfBounds
	}
	g.setWallPair(p, d, false)
	return nil
}

// setWallPair sets the wall on side d of the cell at p and keeps the
// neighboring cell's facing wall in sync when that neighbor is in bounds.
func (g *Grid) setWallPair(p CellPosition, d Direction, present bool) {
	g.Cells[p.Row][p.Col].SetWall(d, present)
	neighbor := p.Step(d)
	if g.InBound(neighbor.Row, neighbor.Col) {
		g.Cells[neighbor.Row][neighbor.Col].SetWall(d.Opposite(), present)
	}
}

// internalWallCount returns the number of walls on the cell at p that
// face another in-bounds cell.
func (g *Grid) internalWallCount(p CellPosition) int {
	count := 0
	for d := North; d <= West; d++ {
		neighbor := p.Step(d)
		if g.InBound(neighbor.Row, neighbor.Col) && g.Cells[p.Row][p.Col].HasWall(d) {
			count++
		}
	}
	return count
}

// String provides an ASCII rendering of the grid, useful for debugging.
func (g *Grid) String() string {
	var output strings.Builder

	output.WriteString("+" + strings.Repeat("---+", g.Width) + "\n")
	for row := 0; row < g.Height; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			cellRow += "   "
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		fmt.Fprintf(&output, "%s\n%s\n", cellRow, wallRow)
	}

	return output.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
