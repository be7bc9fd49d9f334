// Package bitgrid defines the Grid and Neighborhood types.
package bitgrid

// Direction indexes a Neighborhood. The order is clockwise starting at North.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// neighborOffsets holds {dx, dy} per Direction. y grows downwards, so North is dy = −1.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Offset returns the {dx, dy} step for d.
func (d Direction) Offset() (dx, dy int) {
	o := neighborOffsets[d]
	return o[0], o[1]
}

// String returns the compass abbreviation of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "?"
	}
}

// Neighborhood is the 8-connected context of one pixel: 0 = background,
// 1 = foreground, indexed by Direction. It is a value type and is never stored.
type Neighborhood [8]uint8

// Grid is a width×height binary mask stored row-major; cells[y*width+x] is 0 or 1.
// The dimensions are fixed at construction.
type Grid struct {
	width, height int
	cells         []uint8
}
