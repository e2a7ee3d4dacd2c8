package maze

// Cell represents a single cell in a maze grid. It holds four independent
// wall flags, one per side. A wall shared by two adjacent cells is always
// mirrored: both cells agree on its presence after every mutation.
type Cell struct {
	NorthWall bool `bson:"northWall" json:"northWall"`
	EastWall  bool `bson:"eastWall" json:"eastWall"`
	SouthWall bool `bson:"southWall" json:"southWall"`
	WestWall  bool `bson:"westWall" json:"westWall"`
}

// HasWall reports whether the wall on side d is present.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case East:
		return c.EastWall
	case South:
		return c.SouthWall
	case West:
		return c.WestWall
	}
	return false
}

// SetWall sets the presence of the wall on side d.
func (c *Cell) SetWall(d Direction, present bool) {
	switch d {
	case North:
		c.NorthWall = present
	case East:
		c.EastWall = present
	case South:
		c.SouthWall = present
	case West:
		c.WestWall = present
	}
}

// WallCount returns the number of walls present on the cell.
func (c *Cell) WallCount() int {
	count := 0
	for d := North; d <= West; d++ {
		if c.HasWall(d) {
			count++
		}
	}
	return count
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `bson:"row" json:"row"`
	Col int `bson:"col" json:"col"`
}

// Step returns the position one cell away in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	delta := d.Delta()
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}
