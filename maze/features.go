package maze

import "math/rand"

const (
	holePlacementAttempts     = 50
	wildcardPlacementAttempts = 50
	portalPlacementAttempts   = 20
)

// Hole is a rectangular void region. Cells inside a hole are
// untraversable and entering one signals failure to the game layer.
type Hole struct {
	Row    int `bson:"row" json:"row"`
	Col    int `bson:"col" json:"col"`
	Width  int `bson:"width" json:"width"`
	Height int `bson:"height" json:"height"`
}

// Box returns the hole's covering rectangle.
func (h Hole) Box() Box {
	return Box{Row: h.Row, Col: h.Col, Width: h.Width, Height: h.Height}
}

// Portal is a wall opening on the grid boundary. Stepping off the grid
// through it teleports the actor to its paired portal's cell.
type Portal struct {
	Row  int       `bson:"row" json:"row"`
	Col  int       `bson:"col" json:"col"`
	Side Direction `bson:"side" json:"side"`
}

// PortalPair is a linked pair of boundary portals.
type PortalPair struct {
	A Portal `bson:"a" json:"a"`
	B Portal `bson:"b" json:"b"`
}

// GenerateHoles places up to count holes of 2-4 x 2-4 cells inside a
// one-cell interior margin. Each hole gets up to 50 placement attempts;
// candidates overlapping start, goal or an earlier hole (buffer 1) are
// rejected, and a hole whose attempts run out is silently omitted.
func GenerateHoles(rng *rand.Rand, g *Grid, count int, start, goal CellPosition) []Hole {
	var holes []Hole
	for i := 0; i < count; i++ {
		hole, ok := placeHole(rng, g, holes, start, goal)
		if ok {
			holes = append(holes, hole)
		}
	}
	return holes
}

func placeHole(rng *rand.Rand, g *Grid, existing []Hole, start, goal CellPosition) (Hole, bool) {
	for attempt := 0; attempt < holePlacementAttempts; attempt++ {
		width := 2 + rng.Intn(3)
		height := 2 + rng.Intn(3)
		if width > g.Width-2 || height > g.Height-2 {
			continue
		}

		hole := Hole{
			Row:    1 + rng.Intn(g.Height-height-1),
			Col:    1 + rng.Intn(g.Width-width-1),
			Width:  width,
			Height: height,
		}

		box := hole.Box()
		if box.Contains(start) || box.Contains(goal) {
			continue
		}
		conflict := false
		for _, other := range existing {
			if box.Overlaps(other.Box(), 1) {
				conflict = true
				break
			}
		}
		if !conflict {
			return hole, true
		}
	}
	return Hole{}, false
}

// IsPositionInHole reports whether the position lies inside any hole.
func IsPositionInHole(p CellPosition, holes []Hole) bool {
	for _, hole := range holes {
		if hole.Box().Contains(p) {
			return true
		}
	}
	return false
}

// GenerateWildcard picks a uniform random cell for the movable wildcard
// tile, avoiding start, goal and hole interiors. It returns nil when no
// valid cell is found within the attempt budget; the tile is optional and
// its absence is not an error.
func GenerateWildcard(rng *rand.Rand, g *Grid, start, goal CellPosition, holes []Hole) *CellPosition {
	for attempt := 0; attempt < wildcardPlacementAttempts; attempt++ {
		candidate := CellPosition{Row: rng.Intn(g.Height), Col: rng.Intn(g.Width)}
		if candidate == start || candidate == goal || IsPositionInHole(candidate, holes) {
			continue
		}
		return &candidate
	}
	return nil
}

// GeneratePortals opens a linked pair of boundary portals on two distinct
// randomly chosen sides, avoiding start and goal cells. The outward wall
// of each portal cell is cleared in place.
func GeneratePortals(rng *rand.Rand, g *Grid, start, goal CellPosition) *PortalPair {
	sideA := Direction(rng.Intn(4))
	sideB := Direction(rng.Intn(4))
	for sideB == sideA {
		sideB = Direction(rng.Intn(4))
	}

	cellA := randomEdgePosition(rng, g, sideA, []CellPosition{start, goal}, 1)
	cellB := randomEdgePosition(rng, g, sideB, []CellPosition{start, goal, cellA}, 1)

	pair := &PortalPair{
		A: Portal{Row: cellA.Row, Col: cellA.Col, Side: sideA},
		B: Portal{Row: cellB.Row, Col: cellB.Col, Side: sideB},
	}
	_ = g.PunchEntrance(cellA, sideA)
	_ = g.PunchEntrance(cellB, sideB)
	return pair
}

// randomEdgePosition picks a boundary cell on the given side, retrying to
// avoid corners and cells too close to the exclusion list. When no
// non-corner candidate satisfies the distance filter within the attempt
// budget the corner restriction is dropped rather than failing, which
// keeps placement permissive on small grids. The last resort scans the
// whole side and takes the cell farthest from the exclusions, so the
// result never lands on an excluded cell while another side cell exists.
func randomEdgePosition(rng *rand.Rand, g *Grid, side Direction, exclude []CellPosition, minDist int) CellPosition {
	sideLength := g.Width
	if side == East || side == West {
		sideLength = g.Height
	}
	at := func(offset int) CellPosition {
		switch side {
		case North:
			return CellPosition{Row: 0, Col: offset}
		case South:
			return CellPosition{Row: g.Height - 1, Col: offset}
		case West:
			return CellPosition{Row: offset, Col: 0}
		default:
			return CellPosition{Row: offset, Col: g.Width - 1}
		}
	}
	isCorner := func(p CellPosition) bool {
		return (p.Row == 0 || p.Row == g.Height-1) && (p.Col == 0 || p.Col == g.Width-1)
	}
	distance := func(p CellPosition) int {
		nearest := g.Width + g.Height
		for _, other := range exclude {
			if d := abs(p.Row-other.Row) + abs(p.Col-other.Col); d < nearest {
				nearest = d
			}
		}
		return nearest
	}

	for attempt := 0; attempt < portalPlacementAttempts; attempt++ {
		candidate := at(rng.Intn(sideLength))
		if !isCorner(candidate) && distance(candidate) > minDist {
			return candidate
		}
	}
	// Permissive fallback: allow corners but keep avoiding exclusions.
	for attempt := 0; attempt < portalPlacementAttempts; attempt++ {
		candidate := at(rng.Intn(sideLength))
		if distance(candidate) > minDist {
			return candidate
		}
	}

	best := at(0)
	bestDistance := distance(best)
	for offset := 1; offset < sideLength; offset++ {
		if candidate := at(offset); distance(candidate) > bestDistance {
			best, bestDistance = candidate, distance(candidate)
		}
	}
	return best
}

// CheckPortalTeleport resolves a tentative off-grid position against the
// portal pair. When the position is exactly one step outside the grid
// through one portal's open side it returns the other portal's cell as
// the teleport destination, and nil otherwise. Movement logic must call
// this right after computing an off-grid step, before any clamping.
func CheckPortalTeleport(p CellPosition, width, height int, pair *PortalPair) *CellPosition {
	if pair == nil {
		return nil
	}
	if matchesPortalExit(p, width, height, pair.A) {
		destination := CellPosition{Row: pair.B.Row, Col: pair.B.Col}
		return &destination
	}
	if matchesPortalExit(p, width, height, pair.B) {
		destination := CellPosition{Row: pair.A.Row, Col: pair.A.Col}
		return &destination
	}
	return nil
}

// matchesPortalExit reports whether p is the one-step-off-grid position
// reached by walking out through the portal's open side.
func matchesPortalExit(p CellPosition, width, height int, portal Portal) bool {
	switch portal.Side {
	case North:
		return p.Row == -1 && p.Col == portal.Col && portal.Row == 0
	case South:
		return p.Row == height && p.Col == portal.Col && portal.Row == height-1
	case West:
		return p.Col == -1 && p.Row == portal.Row && portal.Col == 0
	case East:
		return p.Col == width && p.Row == portal.Row && portal.Col == width-1
	}
	return false
}
