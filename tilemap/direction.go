package tilemap

// Direction identifies one of the eight neighbors of a grid cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthWest
	SouthWest
	SouthEast
	NorthEast
)

// Directions lists all eight directions in neighbor order: the four
// orthogonals first, then the diagonals. Neighbors returns cells in this
// order and coastline edge keys are assembled in it.
var Directions = [8]Direction{
	North, South, East, West,
	NorthWest, SouthWest, SouthEast, NorthEast,
}

// directionNames maps Direction to a human-readable name.
var directionNames = map[Direction]string{
	North:     "north",
	South:     "south",
	East:      "east",
	West:      "west",
	NorthWest: "northwest",
	SouthWest: "southwest",
	SouthEast: "southeast",
	NorthEast: "northeast",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// directionOffsets holds the grid delta per direction, indexed by Direction.
var directionOffsets = [8][2]int{
	{0, -1},  // North
	{0, 1},   // South
	{1, 0},   // East
	{-1, 0},  // West
	{-1, -1}, // NorthWest
	{-1, 1},  // SouthWest
	{1, 1},   // SouthEast
	{1, -1},  // NorthEast
}

// Offset returns the grid delta to move one cell in the direction. Y grows
// southward.
func (d Direction) Offset() (dx, dy int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

// Diagonal reports whether the direction is one of the four corners.
func (d Direction) Diagonal() bool {
	return d >= NorthWest
}
