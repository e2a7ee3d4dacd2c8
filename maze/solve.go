package maze

// Stats summarizes one solver run over a grid.
type Stats struct {
	// ShortestPath is the BFS distance from start to goal in edge count,
	// or -1 when the goal is unreachable.
	ShortestPath int `bson:"shortestPath" json:"shortestPath"`
	// TotalReachable counts the cells reachable from start, including
	// start itself.
	TotalReachable int `bson:"totalReachable" json:"totalReachable"`
	// Ratio is TotalReachable divided by the grid area.
	Ratio float64 `bson:"ratio" json:"ratio"`
}

// Solve runs breadth-first search from start over the grid graph, where
// an edge joins two adjacent cells iff no wall separates them and neither
// end lies inside a hole. It runs in O(width*height) with no state kept
// across calls, so the generation retry loop can invoke it per attempt.
func Solve(g *Grid, start, goal CellPosition, holes []Hole) Stats {
	area := g.Width * g.Height
	unreachable := Stats{ShortestPath: -1, TotalReachable: 0, Ratio: 0}

	blocked := make(map[CellPosition]struct{})
	for _, hole := range holes {
		box := hole.Box()
		for row := box.Row; row < box.Row+box.Height; row++ {
			for col := box.Col; col < box.Col+box.Width; col++ {
				blocked[CellPosition{Row: row, Col: col}] = struct{}{}
			}
		}
	}

	if !g.InBound(start.Row, start.Col) {
		return unreachable
	}
	if _, inHole := blocked[start]; inHole {
		return unreachable
	}

	distance := make(map[CellPosition]int, area)
	distance[start] = 0
	queue := []CellPosition{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for d := North; d <= West; d++ {
			if g.Cells[current.Row][current.Col].HasWall(d) {
				continue
			}
			neighbor := current.Step(d)
			if !g.InBound(neighbor.Row, neighbor.Col) {
				continue
			}
			if _, inHole := blocked[neighbor]; inHole {
				continue
			}
			if _, seen := distance[neighbor]; seen {
				continue
			}
			distance[neighbor] = distance[current] + 1
			queue = append(queue, neighbor)
		}
	}

	stats := Stats{
		ShortestPath:   -1,
		TotalReachable: len(distance),
		Ratio:          float64(len(distance)) / float64(area),
	}
	if goalDistance, reached := distance[goal]; reached {
		stats.ShortestPath = goalDistance
	}
	return stats
}
