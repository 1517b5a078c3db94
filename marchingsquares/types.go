package marchingsquares

// CellType classifies a single grid cell for segment extraction.
type CellType int

const (
	// Free is "outside" — open space.
	Free CellType = iota
	// Solid is permanently "inside" — an impassable wall.
	Solid
	// Destroyable is "inside" for extraction purposes but distinguishes
	// cells a caller may later carve away.
	Destroyable
)

// Point is an integer lattice coordinate.
type Point struct {
	X, Y int
}

// Segment is an axis-aligned line between two lattice points: either A.Y
// == B.Y (horizontal) or A.X == B.X (vertical).
type Segment struct {
	A, B Point
}

// Grid is a row-major field of cells.
//
// The zero value is not usable; construct one with NewGrid.
type Grid struct {
	width, height int
	cells         []CellType
}

// NewGrid returns a grid of the given dimensions backed by cells, which
// must have exactly width*height elements in row-major order.
func NewGrid(width, height int, cells []CellType) *Grid {
	if len(cells) != width*height {
		panic("marchingsquares: cells length does not match width*height")
	}

	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) CellType { return g.cells[y*g.width+x] }
