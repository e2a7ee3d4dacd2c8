package maze

import (
	"math/rand"
	"time"
)

const (
	defaultExtraPathsDivisor = 10

	// roomAreaDivisor controls how many rooms a grid receives.
	roomAreaDivisor = 80
	// scatteredWallDensity controls how many scattered-wall attempts the
	// complexity pass makes, one per this many cells.
	scatteredWallDensity = 8

	roomPlacementAttempts = 50
)

// Config holds the parameters of a Generator.
type Config struct {
	Width  int
	Height int

	// ExtraPathsDivisor scales the number of random extra wall removals:
	// one per ExtraPathsDivisor cells. Extra paths create cycles so a
	// maze offers more than one route. Zero selects the default.
	ExtraPathsDivisor int

	// SkipFeatures suppresses rooms, hallways and scattered walls,
	// producing the simplest pure-DFS topology.
	SkipFeatures bool

	// Rand is the random source for all generation decisions. When nil a
	// source seeded from the clock is used; inject a seeded source for
	// reproducible output.
	Rand *rand.Rand
}

// Generator produces maze layouts. A Generator is cheap to create; each
// generation call allocates a fresh grid and shares no state with
// previous calls, so distinct Generators may run concurrently as long as
// each owns its random source.
type Generator struct {
	width             int
	height            int
	extraPathsDivisor int
	skipFeatures      bool
	rng               *rand.Rand
}

// Layout is the product of one generation attempt: a fully connected grid
// with its start and goal positions.
type Layout struct {
	Grid  *Grid
	Start CellPosition
	Goal  CellPosition
}

// NewGenerator validates the configuration and creates a Generator. A
// grid must hold at least two cells so start and goal can differ.
func NewGenerator(cfg Config) (*Generator, error) {
	if min(cfg.Width, cfg.Height) <= 0 || max(cfg.Width, cfg.Height) > maxDimension {
		return nil, ErrInvalidDimensions
	}
	if cfg.Width*cfg.Height < 2 {
		return nil, ErrInvalidDimensions
	}

	divisor := cfg.ExtraPathsDivisor
	if divisor <= 0 {
		divisor = defaultExtraPathsDivisor
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{
		width:             cfg.Width,
		height:            cfg.Height,
		extraPathsDivisor: divisor,
		skipFeatures:      cfg.SkipFeatures,
		rng:               rng,
	}, nil
}

// Generate produces a maze with the general strategy: optional hallway
// and room features, randomized DFS over the remainder, punched feature
// entrances, extra cyclic paths and scattered complexity walls. The
// returned grid is always fully connected.
func (gen *Generator) Generate() (*Layout, error) {
	grid, err := NewGrid(gen.width, gen.height)
	if err != nil {
		return nil, err
	}
	arena := newCarveArena(grid)

	wantRooms, wantHallways := gen.rollFeatures()

	var hallways []Hallway
	if wantHallways {
		if hallway, ok := gen.placeHallway(nil); ok {
			gen.carveHallway(grid, arena, hallway)
			hallways = append(hallways, hallway)
		}
	}

	var rooms []Room
	if wantRooms {
		rooms = gen.placeRooms(grid, arena, hallways)
	}

	carveDFS(grid, arena, gen.rng)

	for _, room := range rooms {
		gen.punchFeatureEntrances(grid, room.Bounds(), 1+gen.rng.Intn(3))
	}
	for _, hallway := range hallways {
		gen.punchFeatureEntrances(grid, hallway.Bounds(), 2+gen.rng.Intn(3))
	}

	gen.addExtraPaths(grid)
	if !gen.skipFeatures {
		gen.addScatteredWalls(grid, scatteredWallDensity)
	}
	connectRegions(grid, gen.rng)

	start := gen.randomCell()
	goal := gen.randomCell()
	for goal == start {
		goal = gen.randomCell()
	}

	return &Layout{Grid: grid, Start: start, Goal: goal}, nil
}

// rollFeatures decides which structural features the attempt gets:
// 40% rooms only, 40% hallways only, 10% both, 10% neither.
func (gen *Generator) rollFeatures() (rooms, hallways bool) {
	if gen.skipFeatures {
		return false, false
	}
	roll := gen.rng.Float64()
	switch {
	case roll < 0.4:
		return true, false
	case roll < 0.8:
		return false, true
	case roll < 0.9:
		return true, true
	default:
		return false, false
	}
}

// placeHallway sizes a hallway spanning 60-90% of its axis and positions
// it so it does not overlap the given boxes (buffer 1). ok is false when
// no position fits.
func (gen *Generator) placeHallway(avoid []Box) (Hallway, bool) {
	orientation := Horizontal
	if gen.rng.Intn(2) == 1 {
		orientation = Vertical
	}

	axis := gen.width
	cross := gen.height
	if orientation == Vertical {
		axis = gen.height
		cross = gen.width
	}

	length := spanFraction(gen.rng, axis)
	width := 1 + gen.rng.Intn(3)
	if width > cross {
		width = cross
	}

	for attempt := 0; attempt < roomPlacementAttempts; attempt++ {
		hallway := Hallway{Length: length, Width: width, Orientation: orientation}
		if orientation == Horizontal {
			hallway.Row = gen.rng.Intn(gen.height - width + 1)
			hallway.Col = gen.rng.Intn(gen.width - length + 1)
		} else {
			hallway.Row = gen.rng.Intn(gen.height - length + 1)
			hallway.Col = gen.rng.Intn(gen.width - width + 1)
		}

		bounds := hallway.Bounds()
		conflict := false
		for _, box := range avoid {
			if bounds.Overlaps(box, 1) {
				conflict = true
				break
			}
		}
		if !conflict {
			return hallway, true
		}
	}

	return Hallway{}, false
}

// spanFraction returns a length covering 60-90% of the axis, at least 2.
func spanFraction(rng *rand.Rand, axis int) int {
	fraction := 0.6 + rng.Float64()*0.3
	length := int(float64(axis) * fraction)
	if length < 2 {
		length = 2
	}
	if length > axis {
		length = axis
	}
	return length
}

// carveHallway opens every internal wall inside the hallway, marks its
// cells visited, and, for hallways at least 2 wide, adds randomized wall
// intrusions poking in from the sides. At most one intrusion is placed
// per cross-section, so the corridor can never be cut in two.
func (gen *Generator) carveHallway(g *Grid, arena *carveArena, hallway Hallway) {
	bounds := hallway.Bounds()
	carveBoxOpen(g, bounds)
	arena.markBox(bounds)

	if hallway.Width < 2 {
		return
	}

	along := East
	if hallway.Orientation == Vertical {
		along = South
	}
	for offset := 1; offset < hallway.Length; offset++ {
		if gen.rng.Float64() >= 0.25 {
			continue
		}
		// Pick the edge lane the intrusion pokes in from.
		lane := 0
		if gen.rng.Intn(2) == 1 {
			lane = hallway.Width - 1
		}
		cell := CellPosition{Row: bounds.Row + lane, Col: bounds.Col + offset - 1}
		if hallway.Orientation == Vertical {
			cell = CellPosition{Row: bounds.Row + offset - 1, Col: bounds.Col + lane}
		}
		g.setWallPair(cell, along, true)
	}
}

// carveBoxOpen removes every wall between adjacent cells inside the box.
func carveBoxOpen(g *Grid, b Box) {
	for row := b.Row; row < b.Row+b.Height; row++ {
		for col := b.Col; col < b.Col+b.Width; col++ {
			current := CellPosition{Row: row, Col: col}
			if col+1 < b.Col+b.Width {
				_ = g.RemoveWallBetween(current, current.Step(East))
			}
			if row+1 < b.Row+b.Height {
				_ = g.RemoveWallBetween(current, current.Step(South))
			}
		}
	}
}

// placeRooms carves up to area/80 rooms of 3-6 cells per side, skipping
// candidates that overlap a hallway or an earlier room (buffer 1). Rooms
// may receive a re-walled obstacle block inside them.
func (gen *Generator) placeRooms(g *Grid, arena *carveArena, hallways []Hallway) []Room {
	var avoid []Box
	for _, hallway := range hallways {
		avoid = append(avoid, hallway.Bounds())
	}

	count := gen.width * gen.height / roomAreaDivisor
	var rooms []Room
	for i := 0; i < count; i++ {
		room, ok := gen.placeRoom(avoid)
		if !ok {
			continue
		}
		gen.carveRoom(g, arena, room)
		rooms = append(rooms, room)
		avoid = append(avoid, room.Bounds())
	}

	return rooms
}

func (gen *Generator) placeRoom(avoid []Box) (Room, bool) {
	for attempt := 0; attempt < roomPlacementAttempts; attempt++ {
		width := 3 + gen.rng.Intn(4)
		height := 3 + gen.rng.Intn(4)
		if width > gen.width || height > gen.height {
			continue
		}

		room := Room{
			Row:    gen.rng.Intn(gen.height - height + 1),
			Col:    gen.rng.Intn(gen.width - width + 1),
			Width:  width,
			Height: height,
		}

		bounds := room.Bounds()
		conflict := false
		for _, box := range avoid {
			if bounds.Overlaps(box, 1) {
				conflict = true
				break
			}
		}
		if !conflict {
			return room, true
		}
	}

	return Room{}, false
}

// carveRoom opens the room interior, marks it visited and, half the time,
// restores the walls of a small obstacle block inside it. Obstacle cells
// stay part of the grid; the final stitch pass keeps them reachable.
func (gen *Generator) carveRoom(g *Grid, arena *carveArena, room Room) {
	bounds := room.Bounds()
	carveBoxOpen(g, bounds)
	arena.markBox(bounds)

	if room.Width < 3 || room.Height < 3 || gen.rng.Intn(2) == 0 {
		return
	}

	obstacleWidth := 1 + gen.rng.Intn(min(2, room.Width-2))
	obstacleHeight := 1 + gen.rng.Intn(min(2, room.Height-2))
	obstacle := Box{
		Row:    room.Row + 1 + gen.rng.Intn(room.Height-obstacleHeight-1),
		Col:    room.Col + 1 + gen.rng.Intn(room.Width-obstacleWidth-1),
		Width:  obstacleWidth,
		Height: obstacleHeight,
	}

	for row := obstacle.Row; row < obstacle.Row+obstacle.Height; row++ {
		for col := obstacle.Col; col < obstacle.Col+obstacle.Width; col++ {
			p := CellPosition{Row: row, Col: col}
			for d := North; d <= West; d++ {
				g.setWallPair(p, d, true)
			}
		}
	}
}

// punchFeatureEntrances opens n randomly chosen walls on the boundary of
// the box so the feature connects to the surrounding corridors rather
// than staying an isolated pocket.
func (gen *Generator) punchFeatureEntrances(g *Grid, b Box, n int) {
	type opening struct {
		cell CellPosition
		dir  Direction
	}

	var candidates []opening
	for row := b.Row; row < b.Row+b.Height; row++ {
		for col := b.Col; col < b.Col+b.Width; col++ {
			cell := CellPosition{Row: row, Col: col}
			for d := North; d <= West; d++ {
				outside := cell.Step(d)
				if g.InBound(outside.Row, outside.Col) && !b.Contains(outside) {
					candidates = append(candidates, opening{cell: cell, dir: d})
				}
			}
		}
	}

	gen.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	for _, chosen := range candidates[:n] {
		_ = g.PunchEntrance(chosen.cell, chosen.dir)
	}
}

// addExtraPaths removes one wall per ExtraPathsDivisor cells between
// randomly chosen adjacent cell pairs, deliberately introducing cycles.
func (gen *Generator) addExtraPaths(g *Grid) {
	count := gen.width * gen.height / gen.extraPathsDivisor
	for i := 0; i < count; i++ {
		cell := gen.randomCell()
		dir := East
		if gen.rng.Intn(2) == 1 {
			dir = South
		}
		neighbor := cell.Step(dir)
		if g.InBound(neighbor.Row, neighbor.Col) {
			_ = g.RemoveWallBetween(cell, neighbor)
		}
	}
}

// addScatteredWalls drops extra internal walls onto relatively open cells
// (2 walls or fewer) to break up large empty areas. One attempt is made
// per density cells. The pass only adds walls; the caller restores full
// connectivity afterwards.
func (gen *Generator) addScatteredWalls(g *Grid, density int) {
	attempts := gen.width * gen.height / density
	for i := 0; i < attempts; i++ {
		cell := gen.randomCell()
		if g.Cells[cell.Row][cell.Col].WallCount() > 2 {
			continue
		}

		var open []Direction
		for d := North; d <= West; d++ {
			neighbor := cell.Step(d)
			if g.InBound(neighbor.Row, neighbor.Col) && !g.Cells[cell.Row][cell.Col].HasWall(d) {
				open = append(open, d)
			}
		}
		if len(open) == 0 {
			continue
		}
		g.setWallPair(cell, open[gen.rng.Intn(len(open))], true)
	}
}

func (gen *Generator) randomCell() CellPosition {
	return CellPosition{Row: gen.rng.Intn(gen.height), Col: gen.rng.Intn(gen.width)}
}
