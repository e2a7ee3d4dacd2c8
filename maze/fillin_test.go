package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openInternalWalls counts cell boundaries inside the grid with no wall.
func openInternalWalls(g *Grid) int {
	count := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if col+1 < g.Width && !g.Cells[row][col].HasWall(East) {
				count++
			}
			if row+1 < g.Height && !g.Cells[row][col].HasWall(South) {
				count++
			}
		}
	}
	return count
}

// blockedGrid returns an 8x6 grid with every internal wall removed except
// a fully sealed 2x2 block at rows 1-2, cols 1-2.
func blockedGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(8, 6)
	require.NoError(t, err)
	carveBoxOpen(g, Box{Row: 0, Col: 0, Width: g.Width, Height: g.Height})

	for row := 1; row <= 2; row++ {
		for col := 1; col <= 2; col++ {
			p := CellPosition{Row: row, Col: col}
			for d := North; d <= West; d++ {
				g.setWallPair(p, d, true)
			}
		}
	}
	return g
}

func TestFillIn(t *testing.T) {
	t.Run("sealed block survives and empty cells stay reachable", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g := blockedGrid(t)
			FillIn(g, rand.New(rand.NewSource(seed)))

			assertWallsMirrored(t, g)
			for row := 1; row <= 2; row++ {
				for col := 1; col <= 2; col++ {
					assert.Equal(t, 4, g.Cells[row][col].WallCount(),
						"block cell (%d,%d) was opened, seed %d", row, col, seed)
				}
			}

			// The block plus its mirrored ring is one feature region; the
			// stitch opens at least one contact into it. Every cell outside
			// the ring must stay mutually reachable.
			stats := Solve(g, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 5, Col: 7}, nil)
			assert.NotEqual(t, -1, stats.ShortestPath, "seed %d", seed)
			assert.GreaterOrEqual(t, stats.TotalReachable, 37, "seed %d", seed)
			assert.LessOrEqual(t, stats.TotalReachable, 44, "seed %d", seed)
		}
	})

	t.Run("fully open grid becomes a spanning maze", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g, err := NewGrid(8, 6)
			require.NoError(t, err)
			carveBoxOpen(g, Box{Row: 0, Col: 0, Width: g.Width, Height: g.Height})

			FillIn(g, rand.New(rand.NewSource(seed)))

			assertWallsMirrored(t, g)
			stats := Solve(g, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 5, Col: 7}, nil)
			assert.Equal(t, 48, stats.TotalReachable, "seed %d", seed)
			assert.Equal(t, 47, openInternalWalls(g), "seed %d", seed)
		}
	})

	t.Run("untouched grid is left alone", func(t *testing.T) {
		g, err := NewGrid(6, 4)
		require.NoError(t, err)
		before, err := NewGrid(6, 4)
		require.NoError(t, err)

		FillIn(g, rand.New(rand.NewSource(3)))
		assert.Equal(t, before.Cells, g.Cells)
	})

	t.Run("same seed reproduces the same grid", func(t *testing.T) {
		first := blockedGrid(t)
		second := blockedGrid(t)
		FillIn(first, rand.New(rand.NewSource(11)))
		FillIn(second, rand.New(rand.NewSource(11)))
		assert.Equal(t, first.Cells, second.Cells)
	})
}
