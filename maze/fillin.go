package maze

import "math/rand"

// redundantConnectionProb is the chance of opening one extra contact wall
// when stitching a feature region to the generated maze.
const redundantConnectionProb = 0.3

// FillIn completes a partially edited grid. Cells carrying at least one
// internal (non-boundary) wall are treated as user-placed feature cells
// and left alone; all other cells are "empty" and fair game. Empty cells
// first get their walls reinstated, since DFS carving only ever removes
// walls, then DFS runs over the empty cells only, and finally every
// feature region is stitched to the surrounding generated region.
func FillIn(g *Grid, rng *rand.Rand) {
	feature := make([][]bool, g.Height)
	for row := range feature {
		feature[row] = make([]bool, g.Width)
		for col := range feature[row] {
			feature[row][col] = g.internalWallCount(CellPosition{Row: row, Col: col}) > 0
		}
	}

	// Reinstate walls on empty cells, synchronized on both sides of each
	// boundary even when the neighbor is a feature cell.
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if feature[row][col] {
				continue
			}
			p := CellPosition{Row: row, Col: col}
			for d := North; d <= West; d++ {
				g.setWallPair(p, d, true)
			}
		}
	}

	// DFS restricted to empty cells: feature cells start out visited so
	// the carving walk never enters or opens into them.
	arena := newCarveArena(g)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if feature[row][col] {
				arena.visited[row][col] = true
			}
		}
	}
	carveEmptyDFS(g, arena, feature, rng)

	stitchFeatureRegions(g, feature, rng)
}

// carveEmptyDFS is carveDFS constrained to empty cells: new components
// join only previously carved empty neighbors, never feature cells.
func carveEmptyDFS(g *Grid, arena *carveArena, feature [][]bool, rng *rand.Rand) {
	carved := make(map[CellPosition]struct{})

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			seed := CellPosition{Row: row, Col: col}
			if arena.isVisited(seed) {
				continue
			}

			arena.mark(seed)
			var joinable []CellPosition
			for _, neighbor := range visitedNeighbors(g, arena, seed) {
				if _, ok := carved[neighbor]; ok {
					joinable = append(joinable, neighbor)
				}
			}
			if len(joinable) > 0 {
				_ = g.RemoveWallBetween(seed, joinable[rng.Intn(len(joinable))])
			}
			carved[seed] = struct{}{}

			stack := []CellPosition{seed}
			for len(stack) > 0 {
				current := stack[len(stack)-1]
				candidates := unvisitedNeighbors(g, arena, current)
				if len(candidates) == 0 {
					stack = stack[:len(stack)-1]
					continue
				}

				next := candidates[rng.Intn(len(candidates))]
				_ = g.RemoveWallBetween(current, next)
				arena.mark(next)
				carved[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
}

type wallContact struct {
	from CellPosition
	to   CellPosition
}

// stitchFeatureRegions connects each maximal feature region (cells
// adjacent by position, regardless of walls) to the surrounding
// generated region by removing at least one wall at a boundary contact
// point, occasionally adding a redundant extra connection. Walls between
// two feature cells are never touched, so user-drawn structure inside a
// region survives intact. Empty pockets left isolated between feature
// regions are joined to a neighboring region the same way.
func stitchFeatureRegions(g *Grid, feature [][]bool, rng *rand.Rand) {
	for _, region := range featureRegions(g, feature) {
		var contacts []wallContact
		for _, cell := range region {
			for d := North; d <= West; d++ {
				neighbor := cell.Step(d)
				if g.InBound(neighbor.Row, neighbor.Col) && !feature[neighbor.Row][neighbor.Col] {
					contacts = append(contacts, wallContact{from: cell, to: neighbor})
				}
			}
		}
		if len(contacts) == 0 {
			continue
		}

		chosen := contacts[rng.Intn(len(contacts))]
		_ = g.RemoveWallBetween(chosen.from, chosen.to)
		if len(contacts) > 1 && rng.Float64() < redundantConnectionProb {
			extra := contacts[rng.Intn(len(contacts))]
			_ = g.RemoveWallBetween(extra.from, extra.to)
		}
	}

	connectEmptyPockets(g, feature, rng)
}

// featureRegions groups feature cells into maximal 4-adjacent components.
func featureRegions(g *Grid, feature [][]bool) [][]CellPosition {
	seen := make([][]bool, g.Height)
	for row := range seen {
		seen[row] = make([]bool, g.Width)
	}

	var regions [][]CellPosition
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if !feature[row][col] || seen[row][col] {
				continue
			}

			var region []CellPosition
			queue := []CellPosition{{Row: row, Col: col}}
			seen[row][col] = true
			for len(queue) > 0 {
				current := queue[0]
				queue = queue[1:]
				region = append(region, current)
				for d := North; d <= West; d++ {
					neighbor := current.Step(d)
					if g.InBound(neighbor.Row, neighbor.Col) &&
						feature[neighbor.Row][neighbor.Col] && !seen[neighbor.Row][neighbor.Col] {
						seen[neighbor.Row][neighbor.Col] = true
						queue = append(queue, neighbor)
					}
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// connectEmptyPockets opens one wall per empty region that ended up
// connected to nothing outside itself, so every previously-disconnected
// empty area reaches a feature region or the rest of the maze. Only
// walls with an empty cell on at least one side are candidates.
func connectEmptyPockets(g *Grid, feature [][]bool, rng *rand.Rand) {
	for {
		labels, _ := regionLabels(g)

		emptyRegions := make(map[int]bool)  // regions holding an empty cell
		joinedRegions := make(map[int]bool) // regions also holding a feature cell
		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				if feature[row][col] {
					joinedRegions[labels[row][col]] = true
				} else {
					emptyRegions[labels[row][col]] = true
				}
			}
		}

		var isolated []int
		for label := range emptyRegions {
			if !joinedRegions[label] {
				isolated = append(isolated, label)
			}
		}
		// A single all-empty region needs no feature connection.
		if len(isolated) == 0 || (len(isolated) == 1 && len(emptyRegions) == 1) {
			return
		}

		target := isolated[0]
		var contacts []wallContact
		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				if labels[row][col] != target || feature[row][col] {
					continue
				}
				current := CellPosition{Row: row, Col: col}
				for d := North; d <= West; d++ {
					neighbor := current.Step(d)
					if g.InBound(neighbor.Row, neighbor.Col) && labels[neighbor.Row][neighbor.Col] != target {
						contacts = append(contacts, wallContact{from: current, to: neighbor})
					}
				}
			}
		}
		if len(contacts) == 0 {
			return
		}
		chosen := contacts[rng.Intn(len(contacts))]
		_ = g.RemoveWallBetween(chosen.from, chosen.to)
	}
}
