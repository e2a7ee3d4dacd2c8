package maze

// Direction identifies one of the four sides of a cell.
type Direction uint8

// The four cardinal directions, in the fixed scan order used throughout
// the package: North, East, South, West.
const (
	North Direction = iota
	East
	South
	West
)

// Rotation identifies one of the four perspective rotations a rendered
// maze can be viewed under.
type Rotation uint8

const (
	RotateNone Rotation = iota
	RotateRight
	RotateHalf
	RotateLeft
)

// directionDeltas maps a direction to its row/col step.
var directionDeltas = [4]CellPosition{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// remapTables holds, per rotation, a permutation of the four directions.
var remapTables = [4][4]Direction{
	RotateNone:  {North: North, East: East, South: South, West: West},
	RotateRight: {North: East, East: South, South: West, West: North},
	RotateHalf:  {North: South, East: West, South: North, West: East},
	RotateLeft:  {North: West, East: North, South: East, West: South},
}

// String returns the human-readable name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "Unknown"
}

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	return remapTables[RotateHalf][d]
}

// Delta returns the row/col step taken when moving in direction d.
func (d Direction) Delta() CellPosition {
	return directionDeltas[d]
}

// RemapDirection translates a direction into the frame of the given
// rotation. It is total over its domain and pure.
func RemapDirection(d Direction, r Rotation) Direction {
	return remapTables[r][d]
}
