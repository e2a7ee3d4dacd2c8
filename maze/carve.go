package maze

import "math/rand"

// carveArena holds the transient visited flags used while carving. It is
// allocated once per generation attempt and discarded afterwards; visited
// state never becomes part of an accepted grid.
type carveArena struct {
	visited [][]bool
}

func newCarveArena(g *Grid) *carveArena {
	visited := make([][]bool, g.Height)
	for row := range visited {
		visited[row] = make([]bool, g.Width)
	}
	return &carveArena{visited: visited}
}

func (a *carveArena) mark(p CellPosition) {
	a.visited[p.Row][p.Col] = true
}

func (a *carveArena) isVisited(p CellPosition) bool {
	return a.visited[p.Row][p.Col]
}

// markBox marks every cell of the box as visited.
func (a *carveArena) markBox(b Box) {
	for row := b.Row; row < b.Row+b.Height; row++ {
		for col := b.Col; col < b.Col+b.Width; col++ {
			a.visited[row][col] = true
		}
	}
}

// unvisitedNeighbors returns the in-bounds 4-connected neighbors of p
// whose visited flag is unset, in the fixed scan order North, East,
// South, West. The order only affects randomized selection fairness.
func unvisitedNeighbors(g *Grid, a *carveArena, p CellPosition) []CellPosition {
	var result []CellPosition
	for d := North; d <= West; d++ {
		neighbor := p.Step(d)
		if g.InBound(neighbor.Row, neighbor.Col) && !a.isVisited(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// visitedNeighbors returns the in-bounds neighbors already visited.
func visitedNeighbors(g *Grid, a *carveArena, p CellPosition) []CellPosition {
	var result []CellPosition
	for d := North; d <= West; d++ {
		neighbor := p.Step(d)
		if g.InBound(neighbor.Row, neighbor.Col) && a.isVisited(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// carveDFS runs randomized iterative depth-first carving over every cell
// of the grid not yet marked visited. It uses an explicit stack rather
// than recursion so large grids cannot exhaust call depth. When the walk
// reaches a pocket isolated from earlier carving, a fresh component is
// started there and, when possible, joined to an adjacent visited cell so
// corridors do not fragment.
func carveDFS(g *Grid, a *carveArena, rng *rand.Rand) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			seed := CellPosition{Row: row, Col: col}
			if a.isVisited(seed) {
				continue
			}

			a.mark(seed)
			if joined := visitedNeighbors(g, a, seed); len(joined) > 0 {
				_ = g.RemoveWallBetween(seed, joined[rng.Intn(len(joined))])
			}

			stack := []CellPosition{seed}
			for len(stack) > 0 {
				current := stack[len(stack)-1]
				candidates := unvisitedNeighbors(g, a, current)
				if len(candidates) == 0 {
					stack = stack[:len(stack)-1]
					continue
				}

				next := candidates[rng.Intn(len(candidates))]
				_ = g.RemoveWallBetween(current, next)
				a.mark(next)
				stack = append(stack, next)
			}
		}
	}
}

// regionLabels assigns a region index to every cell reachable through
// open walls, ignoring holes. It returns the labels and region count.
func regionLabels(g *Grid) ([][]int, int) {
	labels := make([][]int, g.Height)
	for row := range labels {
		labels[row] = make([]int, g.Width)
		for col := range labels[row] {
			labels[row][col] = -1
		}
	}

	regions := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if labels[row][col] != -1 {
				continue
			}
			queue := []CellPosition{{Row: row, Col: col}}
			labels[row][col] = regions
			for len(queue) > 0 {
				current := queue[0]
				queue = queue[1:]
				for d := North; d <= West; d++ {
					neighbor := current.Step(d)
					if !g.InBound(neighbor.Row, neighbor.Col) ||
						labels[neighbor.Row][neighbor.Col] != -1 ||
						g.Cells[current.Row][current.Col].HasWall(d) {
						continue
					}
					labels[neighbor.Row][neighbor.Col] = regions
					queue = append(queue, neighbor)
				}
			}
			regions++
		}
	}

	return labels, regions
}

// connectRegions stitches every disconnected region of the grid together
// by opening one wall at a randomly chosen contact point per join, until
// a single region remains. Post-processing passes that add walls call
// this to restore the full-connectivity guarantee.
func connectRegions(g *Grid, rng *rand.Rand) {
	for {
		labels, regions := regionLabels(g)
		if regions <= 1 {
			return
		}

		// Collect every wall separating two different regions.
		type contact struct {
			from CellPosition
			to   CellPosition
		}
		byRegion := make(map[int][]contact)
		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				current := CellPosition{Row: row, Col: col}
				for _, d := range []Direction{East, South} {
					neighbor := current.Step(d)
					if !g.InBound(neighbor.Row, neighbor.Col) {
						continue
					}
					if labels[row][col] != labels[neighbor.Row][neighbor.Col] {
						key := max(labels[row][col], labels[neighbor.Row][neighbor.Col])
						byRegion[key] = append(byRegion[key], contact{from: current, to: neighbor})
					}
				}
			}
		}

		for _, contacts := range byRegion {
			chosen := contacts[rng.Intn(len(contacts))]
			_ = g.RemoveWallBetween(chosen.from, chosen.to)
		}
	}
}
