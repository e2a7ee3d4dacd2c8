package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// corridorGrid builds a 3x3 grid whose only open passage runs from
// (0,0) down to (2,0) and then right to (2,2).
func corridorGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(3, 3)
	assert.NoError(t, err)

	steps := [][2]CellPosition{
		{{Row: 0, Col: 0}, {Row: 1, Col: 0}},
		{{Row: 1, Col: 0}, {Row: 2, Col: 0}},
		{{Row: 2, Col: 0}, {Row: 2, Col: 1}},
		{{Row: 2, Col: 1}, {Row: 2, Col: 2}},
	}
	for _, pair := range steps {
		assert.NoError(t, g.RemoveWallBetween(pair[0], pair[1]))
	}
	return g
}

func TestSolve(t *testing.T) {
	t.Run("straight corridor", func(t *testing.T) {
		g := corridorGrid(t)
		stats := Solve(g, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 2}, nil)

		assert.Equal(t, 4, stats.ShortestPath)
		assert.Equal(t, 5, stats.TotalReachable)
		assert.InDelta(t, 5.0/9.0, stats.Ratio, 1e-9)
	})

	t.Run("unreachable goal", func(t *testing.T) {
		g := corridorGrid(t)
		stats := Solve(g, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 2}, nil)

		assert.Equal(t, -1, stats.ShortestPath)
		assert.Equal(t, 5, stats.TotalReachable)
	})

	t.Run("fully open grid", func(t *testing.T) {
		g, _ := NewGrid(3, 3)
		carveBoxOpen(g, Box{Row: 0, Col: 0, Width: 3, Height: 3})
		stats := Solve(g, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 2}, nil)

		assert.Equal(t, 4, stats.ShortestPath)
		assert.Equal(t, 9, stats.TotalReachable)
		assert.InDelta(t, 1.0, stats.Ratio, 1e-9)
	})

	t.Run("hole column blocks the route", func(t *testing.T) {
		g, _ := NewGrid(3, 3)
		carveBoxOpen(g, Box{Row: 0, Col: 0, Width: 3, Height: 3})
		holes := []Hole{{Row: 0, Col: 1, Width: 1, Height: 3}}

		stats := Solve(g, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 2}, holes)
		assert.Equal(t, -1, stats.ShortestPath)
		assert.Equal(t, 3, stats.TotalReachable)
		assert.InDelta(t, 3.0/9.0, stats.Ratio, 1e-9)
	})

	t.Run("start inside a hole", func(t *testing.T) {
		g, _ := NewGrid(3, 3)
		carveBoxOpen(g, Box{Row: 0, Col: 0, Width: 3, Height: 3})
		holes := []Hole{{Row: 0, Col: 0, Width: 1, Height: 1}}

		stats := Solve(g, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 2}, holes)
		assert.Equal(t, -1, stats.ShortestPath)
		assert.Equal(t, 0, stats.TotalReachable)
	})

	t.Run("start out of bounds", func(t *testing.T) {
		g, _ := NewGrid(3, 3)
		stats := Solve(g, CellPosition{Row: -1, Col: 0}, CellPosition{Row: 2, Col: 2}, nil)
		assert.Equal(t, -1, stats.ShortestPath)
		assert.Equal(t, 0, stats.TotalReachable)
	})
}
