package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHack(t *testing.T) {
	t.Run("always solvable by construction", func(t *testing.T) {
		for seed := int64(0); seed < 30; seed++ {
			gen := newTestGenerator(t, 16, 12, seed, false)
			layout, err := gen.GenerateHack()
			assert.NoError(t, err)

			stats := Solve(layout.Grid, layout.Start, layout.Goal, nil)
			assert.NotEqual(t, -1, stats.ShortestPath, "seed %d produced an unsolvable maze", seed)
			assertFullyConnected(t, layout)
			assertWallsMirrored(t, layout.Grid)
		}
	})

	t.Run("start and goal are distinct", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			gen := newTestGenerator(t, 16, 12, seed, false)
			layout, err := gen.GenerateHack()
			assert.NoError(t, err)
			assert.NotEqual(t, layout.Start, layout.Goal)
		}
	})

	t.Run("endpoints stay distinct on short hallways", func(t *testing.T) {
		// On a 5x5 grid the hallway is short enough for both endpoint
		// insets to reach the same middle cell.
		for seed := int64(0); seed < 500; seed++ {
			gen := newTestGenerator(t, 5, 5, seed, false)
			layout, err := gen.GenerateHack()
			assert.NoError(t, err)
			assert.NotEqual(t, layout.Start, layout.Goal, "seed %d", seed)
		}
	})
}

func TestGenerateHack2(t *testing.T) {
	t.Run("always solvable by construction", func(t *testing.T) {
		for seed := int64(0); seed < 30; seed++ {
			gen := newTestGenerator(t, 16, 12, seed, false)
			layout, err := gen.GenerateHack2()
			assert.NoError(t, err)

			stats := Solve(layout.Grid, layout.Start, layout.Goal, nil)
			assert.NotEqual(t, -1, stats.ShortestPath, "seed %d produced an unsolvable maze", seed)
			assertFullyConnected(t, layout)
			assertWallsMirrored(t, layout.Grid)
		}
	})

	t.Run("free ends stay distinct on small grids", func(t *testing.T) {
		// A 4x4 grid allows two-cell segments of width 2, where both free
		// ends can land inside the shared corner joint.
		for seed := int64(0); seed < 500; seed++ {
			gen := newTestGenerator(t, 4, 4, seed, false)
			layout, err := gen.GenerateHack2()
			assert.NoError(t, err)
			assert.NotEqual(t, layout.Start, layout.Goal, "seed %d", seed)
		}
	})
}

func TestConnectCorner(t *testing.T) {
	t.Run("opens the joint square", func(t *testing.T) {
		g, _ := NewGrid(8, 6)
		connectCorner(g, 0, 2)

		// The 2x2 square at the top-left corner must be fully open
		// towards its in-bounds neighbors.
		assert.False(t, g.Cells[0][0].EastWall)
		assert.False(t, g.Cells[0][0].SouthWall)
		assert.False(t, g.Cells[1][1].NorthWall)
		assert.False(t, g.Cells[1][1].WestWall)
		assertWallsMirrored(t, g)
	})

	t.Run("invalid corner code leaves the grid untouched", func(t *testing.T) {
		g, _ := NewGrid(8, 6)
		connectCorner(g, 9, 2)

		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				assert.Equal(t, 4, g.Cells[row][col].WallCount())
			}
		}
	})
}
