package geom

// Grid provides an interface for reasoning over a 1D slice as if it were a
// 2D grid.
type Grid struct {
	CellBounds
	Length, Area int
	uBounds      [2]int
}

// CellBounds represents a bounding box aligned to grid cells.
type CellBounds struct {
	Origin, Width [2]int
}

// NewGrid returns a new Grid instance.
func NewGrid(origin [2]int, width [2]int) *Grid {
	g := &Grid{}
	g.Init(origin, width)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(origin [2]int, width [2]int) {
	g.Origin = origin
	g.Width = width

	g.Length = width[0]
	g.Area = width[0] * width[1]

	for i := 0; i < 2; i++ {
		g.uBounds[i] = g.Origin[i] + g.Width[i]
	}
}

// Idx returns the grid index corresponding to a set of coordinates. This is
// the linearized key column + row*Length.
func (g *Grid) Idx(x, y int) int {
	return (x - g.Origin[0]) + (y-g.Origin[1])*g.Length
}

// IdxCheck returns an index and true if the given coordinate are valid and
// false otherwise.
func (g *Grid) IdxCheck(x, y int) (idx int, ok bool) {
	if !g.BoundsCheck(x, y) {
		return -1, false
	}

	return g.Idx(x, y), true
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(x, y int) bool {
	return (g.Origin[0] <= x && g.Origin[1] <= y) &&
		(x < g.uBounds[0] && y < g.uBounds[1])
}

// Coords returns the x, y coordinates of a point from its grid index.
func (g *Grid) Coords(idx int) (x, y int) {
	x = idx%g.Length + g.Origin[0]
	y = idx/g.Length + g.Origin[1]
	return x, y
}

// Clamp moves the given coordinates to the nearest cell inside the Grid.
func (g *Grid) Clamp(x, y int) (int, int) {
	return clamp(x, g.Origin[0], g.uBounds[0]-1),
		clamp(y, g.Origin[1], g.uBounds[1]-1)
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
