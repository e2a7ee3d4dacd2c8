package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertWallsMirrored fails the test when any adjacent cell pair
// disagrees about the wall between them.
func assertWallsMirrored(t *testing.T, g *Grid) {
	t.Helper()
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			current := CellPosition{Row: row, Col: col}
			for _, d := range []Direction{East, South} {
				neighbor := current.Step(d)
				if !g.InBound(neighbor.Row, neighbor.Col) {
					continue
				}
				assert.Equal(t,
					g.Cells[current.Row][current.Col].HasWall(d),
					g.Cells[neighbor.Row][neighbor.Col].HasWall(d.Opposite()),
					"wall mismatch between %v and %v", current, neighbor)
			}
		}
	}
}

func TestNewGrid(t *testing.T) {
	t.Run("all walls present", func(t *testing.T) {
		g, err := NewGrid(5, 4)
		assert.NoError(t, err)
		assert.Equal(t, 5, g.Width)
		assert.Equal(t, 4, g.Height)
		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				assert.Equal(t, 4, g.Cells[row][col].WallCount())
			}
		}
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		_, err := NewGrid(0, 5)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = NewGrid(5, -1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = NewGrid(maxDimension+1, 5)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestRemoveWallBetween(t *testing.T) {
	t.Run("clears both sides", func(t *testing.T) {
		g, _ := NewGrid(4, 4)
		a := CellPosition{Row: 1, Col: 1}
		b := CellPosition{Row: 1, Col: 2}

		assert.NoError(t, g.RemoveWallBetween(a, b))
		assert.False(t, g.Cells[1][1].EastWall)
		assert.False(t, g.Cells[1][2].WestWall)
		assertWallsMirrored(t, g)
	})

	t.Run("rejects non-adjacent cells", func(t *testing.T) {
		g, _ := NewGrid(4, 4)
		err := g.RemoveWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 0})
		assert.ErrorIs(t, err, ErrNotAdjacent)

		err = g.RemoveWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 1})
		assert.ErrorIs(t, err, ErrNotAdjacent)

		// Nothing may change on a rejected call.
		assert.Equal(t, 4, g.Cells[0][0].WallCount())
	})

	t.Run("rejects out-of-bounds cells", func(t *testing.T) {
		g, _ := NewGrid(4, 4)
		err := g.RemoveWallBetween(CellPosition{Row: -1, Col: 0}, CellPosition{Row: 0, Col: 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestPunchEntrance(t *testing.T) {
	t.Run("mirrors onto interior neighbor", func(t *testing.T) {
		g, _ := NewGrid(4, 4)
		assert.NoError(t, g.PunchEntrance(CellPosition{Row: 1, Col: 1}, East))
		assert.False(t, g.Cells[1][1].EastWall)
		assert.False(t, g.Cells[1][2].WestWall)
	})

	t.Run("boundary safe", func(t *testing.T) {
		g, _ := NewGrid(4, 4)
		assert.NoError(t, g.PunchEntrance(CellPosition{Row: 0, Col: 0}, North))
		assert.False(t, g.Cells[0][0].NorthWall)
		assertWallsMirrored(t, g)
	})

	t.Run("rejects out-of-bounds position", func(t *testing.T) {
		g, _ := NewGrid(4, 4)
		assert.ErrorIs(t, g.PunchEntrance(CellPosition{Row: 9, Col: 0}, North), ErrOutOfBounds)
	})
}
