package maze

// Orientation distinguishes the long axis of a hallway.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Box is an axis-aligned rectangle of cells. Width counts columns and
// Height counts rows; both bounds are half-open.
type Box struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// Overlaps reports whether b, inflated by buffer cells on every side,
// intersects other. A buffer of 1 enforces one empty cell of spacing.
func (b Box) Overlaps(other Box, buffer int) bool {
	return b.Row-buffer < other.Row+other.Height &&
		b.Row+b.Height+buffer > other.Row &&
		b.Col-buffer < other.Col+other.Width &&
		b.Col+b.Width+buffer > other.Col
}

// Contains reports whether the position lies inside the rectangle.
func (b Box) Contains(p CellPosition) bool {
	return p.Row >= b.Row && p.Row < b.Row+b.Height &&
		p.Col >= b.Col && p.Col < b.Col+b.Width
}

// Hallway is a straight open corridor. Length runs along the orientation
// axis and Width across it.
type Hallway struct {
	Row         int
	Col         int
	Length      int
	Width       int
	Orientation Orientation
}

// Bounds maps the hallway onto its covering box.
func (h Hallway) Bounds() Box {
	if h.Orientation == Horizontal {
		return Box{Row: h.Row, Col: h.Col, Width: h.Length, Height: h.Width}
	}
	return Box{Row: h.Row, Col: h.Col, Width: h.Width, Height: h.Length}
}

// Room is an axis-aligned open rectangle carved into the grid.
type Room struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// Bounds maps the room onto its covering box.
func (r Room) Bounds() Box {
	return Box{Row: r.Row, Col: r.Col, Width: r.Width, Height: r.Height}
}
