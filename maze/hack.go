package maze

// Hack-mode generators produce mazes with a deliberately simple,
// near-direct route between start and goal. They exist to probe whether a
// solving agent recognizes trivial cases.

// endpointPlacementAttempts bounds the re-rolls when randomly inset
// endpoints collide on a short hallway.
const endpointPlacementAttempts = 10

// GenerateHack carves exactly one long hallway with start and goal at its
// two ends, fills the rest of the grid with DFS corridors and punches 4-8
// entrances into the hallway. The corridor guarantees solvability by
// construction.
func (gen *Generator) GenerateHack() (*Layout, error) {
	grid, err := NewGrid(gen.width, gen.height)
	if err != nil {
		return nil, err
	}
	arena := newCarveArena(grid)

	hallway, _ := gen.placeHallway(nil)
	gen.carveHallway(grid, arena, hallway)
	bounds := hallway.Bounds()

	start, goal := gen.hallwayEndpoints(hallway)

	carveDFS(grid, arena, gen.rng)
	gen.punchFeatureEntrances(grid, bounds, 4+gen.rng.Intn(5))
	gen.addExtraPaths(grid)
	connectRegions(grid, gen.rng)

	return &Layout{Grid: grid, Start: start, Goal: goal}, nil
}

// hallwayEndpoints picks start and goal at the two ends of the hallway,
// inset by a small random amount so they do not sit exactly on the tips.
// On a short hallway the insets can meet in the middle, so colliding
// endpoints are re-rolled; the fallback places both on the bare tips,
// which are distinct since a hallway is at least two cells long.
func (gen *Generator) hallwayEndpoints(hallway Hallway) (start, goal CellPosition) {
	bounds := hallway.Bounds()
	maxInset := min(2, hallway.Length/3)
	inset := func() int {
		if maxInset == 0 {
			return 0
		}
		return gen.rng.Intn(maxInset + 1)
	}
	lane := func() int { return gen.rng.Intn(hallway.Width) }

	place := func(startInset, goalInset int) (CellPosition, CellPosition) {
		if hallway.Orientation == Horizontal {
			return CellPosition{Row: bounds.Row + lane(), Col: bounds.Col + startInset},
				CellPosition{Row: bounds.Row + lane(), Col: bounds.Col + hallway.Length - 1 - goalInset}
		}
		return CellPosition{Row: bounds.Row + startInset, Col: bounds.Col + lane()},
			CellPosition{Row: bounds.Row + hallway.Length - 1 - goalInset, Col: bounds.Col + lane()}
	}

	for attempt := 0; attempt < endpointPlacementAttempts; attempt++ {
		start, goal = place(inset(), inset())
		if start != goal {
			return start, goal
		}
	}
	return place(0, 0)
}

// GenerateHack2 carves an L-shaped corridor: two perpendicular hallway
// segments meeting at one of the four grid corners, chosen uniformly.
// Start sits at the free end of one segment and goal at the free end of
// the other, sometimes offset into a one-cell alcove. DFS fills the
// remainder and 6-10 entrances are punched along the corridor.
func (gen *Generator) GenerateHack2() (*Layout, error) {
	grid, err := NewGrid(gen.width, gen.height)
	if err != nil {
		return nil, err
	}
	arena := newCarveArena(grid)

	corner := gen.rng.Intn(4)
	width := 1 + gen.rng.Intn(2)
	if width > min(gen.width, gen.height)/2 {
		width = 1
	}

	horizontal, vertical := gen.cornerSegments(corner, width)
	gen.carveHallway(grid, arena, horizontal)
	gen.carveHallway(grid, arena, vertical)
	connectCorner(grid, corner, width)

	start := gen.segmentFreeEnd(horizontal, corner)
	goal := gen.segmentFreeEnd(vertical, corner)
	if goal == start {
		// Two-cell segments of width 2 can land both free ends inside the
		// shared joint square; shift the goal to its corridor's other lane.
		vBounds := vertical.Bounds()
		goal.Col = vBounds.Col + (goal.Col-vBounds.Col+1)%vertical.Width
	}

	// Half the time the goal steps aside into a one-cell alcove stub.
	if gen.rng.Intn(2) == 1 {
		if alcove, ok := gen.carveAlcove(grid, arena, goal, vertical.Bounds()); ok {
			goal = alcove
		}
	}

	carveDFS(grid, arena, gen.rng)
	gen.punchFeatureEntrances(grid, horizontal.Bounds(), 3+gen.rng.Intn(3))
	gen.punchFeatureEntrances(grid, vertical.Bounds(), 3+gen.rng.Intn(3))
	gen.addExtraPaths(grid)
	connectRegions(grid, gen.rng)

	return &Layout{Grid: grid, Start: start, Goal: goal}, nil
}

// cornerSegments builds the two perpendicular hallway segments anchored
// at the chosen corner: 0 top-left, 1 top-right, 2 bottom-right,
// 3 bottom-left. Each segment spans 60-90% of its axis.
func (gen *Generator) cornerSegments(corner, width int) (horizontal, vertical Hallway) {
	hLength := spanFraction(gen.rng, gen.width)
	vLength := spanFraction(gen.rng, gen.height)

	horizontal = Hallway{Length: hLength, Width: width, Orientation: Horizontal}
	vertical = Hallway{Length: vLength, Width: width, Orientation: Vertical}

	switch corner {
	case 0: // top-left
		horizontal.Row, horizontal.Col = 0, 0
		vertical.Row, vertical.Col = 0, 0
	case 1: // top-right
		horizontal.Row, horizontal.Col = 0, gen.width-hLength
		vertical.Row, vertical.Col = 0, gen.width-width
	case 2: // bottom-right
		horizontal.Row, horizontal.Col = gen.height-width, gen.width-hLength
		vertical.Row, vertical.Col = gen.height-vLength, gen.width-width
	case 3: // bottom-left
		horizontal.Row, horizontal.Col = gen.height-width, 0
		vertical.Row, vertical.Col = gen.height-vLength, 0
	}
	return horizontal, vertical
}

// connectCorner clears the mutual walls of the width x width joint square
// where the two corner segments meet, so the segments always connect.
// Invalid corner codes leave the grid untouched.
func connectCorner(g *Grid, corner, width int) {
	var jointRow, jointCol int
	switch corner {
	case 0:
		jointRow, jointCol = 0, 0
	case 1:
		jointRow, jointCol = 0, g.Width-width
	case 2:
		jointRow, jointCol = g.Height-width, g.Width-width
	case 3:
		jointRow, jointCol = g.Height-width, 0
	default:
		return
	}

	for dRow := 0; dRow < width; dRow++ {
		for dCol := 0; dCol < width; dCol++ {
			cell := CellPosition{Row: jointRow + dRow, Col: jointCol + dCol}
			for d := North; d <= West; d++ {
				neighbor := cell.Step(d)
				if g.InBound(neighbor.Row, neighbor.Col) {
					g.setWallPair(cell, d, false)
				}
			}
		}
	}
}

// segmentFreeEnd returns the corridor cell at the end of the segment away
// from the corner joint.
func (gen *Generator) segmentFreeEnd(segment Hallway, corner int) CellPosition {
	bounds := segment.Bounds()
	lane := gen.rng.Intn(segment.Width)

	if segment.Orientation == Horizontal {
		row := bounds.Row + lane
		if corner == 0 || corner == 3 { // anchored at the left, free end right
			return CellPosition{Row: row, Col: bounds.Col + segment.Length - 1}
		}
		return CellPosition{Row: row, Col: bounds.Col}
	}

	col := bounds.Col + lane
	if corner == 0 || corner == 1 { // anchored at the top, free end bottom
		return CellPosition{Row: bounds.Row + segment.Length - 1, Col: col}
	}
	return CellPosition{Row: bounds.Row, Col: col}
}

// carveAlcove opens one extra cell just outside the corridor next to the
// goal and marks it visited, forming a short reachable stub.
func (gen *Generator) carveAlcove(g *Grid, arena *carveArena, goal CellPosition, corridor Box) (CellPosition, bool) {
	for d := North; d <= West; d++ {
		candidate := goal.Step(d)
		if !g.InBound(candidate.Row, candidate.Col) || corridor.Contains(candidate) || arena.isVisited(candidate) {
			continue
		}
		_ = g.RemoveWallBetween(goal, candidate)
		arena.mark(candidate)
		return candidate, true
	}
	return goal, false
}
