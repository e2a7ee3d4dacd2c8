package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHoles(t *testing.T) {
	start := CellPosition{Row: 0, Col: 0}
	goal := CellPosition{Row: 11, Col: 15}

	t.Run("holes respect margin, spacing, start and goal", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g, _ := NewGrid(16, 12)
			rng := rand.New(rand.NewSource(seed))
			holes := GenerateHoles(rng, g, 3, start, goal)

			for idx, hole := range holes {
				box := hole.Box()
				assert.GreaterOrEqual(t, hole.Row, 1)
				assert.GreaterOrEqual(t, hole.Col, 1)
				assert.LessOrEqual(t, hole.Row+hole.Height, g.Height-1)
				assert.LessOrEqual(t, hole.Col+hole.Width, g.Width-1)
				assert.False(t, box.Contains(start))
				assert.False(t, box.Contains(goal))

				for _, other := range holes[idx+1:] {
					assert.False(t, box.Overlaps(other.Box(), 1), "holes too close: %+v %+v", hole, other)
				}
			}
		}
	})

	t.Run("impossible placement is silently omitted", func(t *testing.T) {
		g, _ := NewGrid(3, 3) // no room for a 2x2 hole inside the margin
		rng := rand.New(rand.NewSource(1))
		holes := GenerateHoles(rng, g, 2, start, goal)
		assert.Empty(t, holes)
	})
}

func TestIsPositionInHole(t *testing.T) {
	holes := []Hole{{Row: 2, Col: 3, Width: 2, Height: 3}}

	assert.True(t, IsPositionInHole(CellPosition{Row: 2, Col: 3}, holes))
	assert.True(t, IsPositionInHole(CellPosition{Row: 4, Col: 4}, holes))
	assert.False(t, IsPositionInHole(CellPosition{Row: 5, Col: 3}, holes)) // half-open
	assert.False(t, IsPositionInHole(CellPosition{Row: 2, Col: 5}, holes))
	assert.False(t, IsPositionInHole(CellPosition{Row: 0, Col: 0}, nil))
}

func TestGenerateWildcard(t *testing.T) {
	t.Run("avoids start, goal and holes", func(t *testing.T) {
		g, _ := NewGrid(16, 12)
		start := CellPosition{Row: 0, Col: 0}
		goal := CellPosition{Row: 11, Col: 15}
		holes := []Hole{{Row: 2, Col: 2, Width: 4, Height: 4}}

		rng := rand.New(rand.NewSource(5))
		tile := GenerateWildcard(rng, g, start, goal, holes)

		assert.NotNil(t, tile)
		assert.NotEqual(t, start, *tile)
		assert.NotEqual(t, goal, *tile)
		assert.False(t, IsPositionInHole(*tile, holes))
	})

	t.Run("returns nil when no cell qualifies", func(t *testing.T) {
		g, _ := NewGrid(2, 1)
		start := CellPosition{Row: 0, Col: 0}
		goal := CellPosition{Row: 0, Col: 1}

		rng := rand.New(rand.NewSource(5))
		assert.Nil(t, GenerateWildcard(rng, g, start, goal, nil))
	})
}

func TestGeneratePortals(t *testing.T) {
	t.Run("portals sit on distinct sides with open outward walls", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g, _ := NewGrid(8, 6)
			start := CellPosition{Row: 3, Col: 3}
			goal := CellPosition{Row: 3, Col: 4}

			rng := rand.New(rand.NewSource(seed))
			pair := GeneratePortals(rng, g, start, goal)

			assert.NotNil(t, pair)
			assert.NotEqual(t, pair.A.Side, pair.B.Side)
			for _, portal := range []Portal{pair.A, pair.B} {
				cell := CellPosition{Row: portal.Row, Col: portal.Col}
				assert.NotEqual(t, start, cell)
				assert.NotEqual(t, goal, cell)
				assert.False(t, g.Cells[portal.Row][portal.Col].HasWall(portal.Side))
			}
		}
	})

	t.Run("portals avoid start and goal on tiny grids", func(t *testing.T) {
		for seed := int64(0); seed < 100; seed++ {
			g, _ := NewGrid(3, 3)
			start := CellPosition{Row: 0, Col: 1}
			goal := CellPosition{Row: 2, Col: 1}

			pair := GeneratePortals(rand.New(rand.NewSource(seed)), g, start, goal)

			assert.NotNil(t, pair)
			for _, portal := range []Portal{pair.A, pair.B} {
				cell := CellPosition{Row: portal.Row, Col: portal.Col}
				assert.NotEqual(t, start, cell, "seed %d", seed)
				assert.NotEqual(t, goal, cell, "seed %d", seed)
			}
		}
	})
}

func TestRandomEdgePosition(t *testing.T) {
	t.Run("last resort avoids excluded cells", func(t *testing.T) {
		// On a 3x3 grid the north side's only non-corner cell is excluded
		// and both corners sit inside the distance filter, so every random
		// attempt fails and the side scan decides the result.
		excluded := CellPosition{Row: 0, Col: 1}
		for seed := int64(0); seed < 50; seed++ {
			g, _ := NewGrid(3, 3)
			rng := rand.New(rand.NewSource(seed))

			p := randomEdgePosition(rng, g, North, []CellPosition{excluded}, 1)

			assert.Equal(t, 0, p.Row)
			assert.NotEqual(t, excluded, p, "seed %d", seed)
		}
	})
}

func TestCheckPortalTeleport(t *testing.T) {
	pair := &PortalPair{
		A: Portal{Row: 0, Col: 2, Side: North},
		B: Portal{Row: 3, Col: 4, Side: East},
	}
	width, height := 5, 4

	t.Run("round trip through both portals", func(t *testing.T) {
		dest := CheckPortalTeleport(CellPosition{Row: -1, Col: 2}, width, height, pair)
		assert.NotNil(t, dest)
		assert.Equal(t, CellPosition{Row: 3, Col: 4}, *dest)

		dest = CheckPortalTeleport(CellPosition{Row: 3, Col: 5}, width, height, pair)
		assert.NotNil(t, dest)
		assert.Equal(t, CellPosition{Row: 0, Col: 2}, *dest)
	})

	t.Run("misaligned off-grid positions return nil", func(t *testing.T) {
		assert.Nil(t, CheckPortalTeleport(CellPosition{Row: -1, Col: 3}, width, height, pair))
		assert.Nil(t, CheckPortalTeleport(CellPosition{Row: 2, Col: 5}, width, height, pair))
		assert.Nil(t, CheckPortalTeleport(CellPosition{Row: 4, Col: 2}, width, height, pair))
	})

	t.Run("in-bounds positions return nil", func(t *testing.T) {
		assert.Nil(t, CheckPortalTeleport(CellPosition{Row: 0, Col: 2}, width, height, pair))
	})

	t.Run("nil pair returns nil", func(t *testing.T) {
		assert.Nil(t, CheckPortalTeleport(CellPosition{Row: -1, Col: 2}, width, height, nil))
	})
}
