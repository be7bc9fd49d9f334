package bitgrid

import "fmt"

// Neighborhood samples the eight neighbours of the interior pixel (x,y) from
// the current contents of g, clockwise from North.
//
// Contract: 1 ≤ x ≤ width−2 and 1 ≤ y ≤ height−2. Border pixels have no full
// neighbourhood and are never sampled; calling Neighborhood on one is a
// programming error and panics.
//
// Complexity: O(1).
func (g *Grid) Neighborhood(x, y int) Neighborhood {
	if !g.IsInterior(x, y) {
		panic(fmt.Sprintf("bitgrid: Neighborhood(%d,%d) on non-interior pixel of %dx%d grid", x, y, g.width, g.height))
	}
	w := g.width
	c := g.index(x, y)
	return Neighborhood{
		g.cells[c-w],   // N
		g.cells[c-w+1], // NE
		g.cells[c+1],   // E
		g.cells[c+w+1], // SE
		g.cells[c+w],   // S
		g.cells[c+w-1], // SW
		g.cells[c-1],   // W
		g.cells[c-w-1], // NW
	}
}

// At returns the neighbour in direction d.
func (n Neighborhood) At(d Direction) uint8 { return n[d] }

// N, NE, E, SE, S, SW, W and NW are named accessors for the eight neighbours.
func (n Neighborhood) N() uint8  { return n[North] }
func (n Neighborhood) NE() uint8 { return n[NorthEast] }
func (n Neighborhood) E() uint8  { return n[East] }
func (n Neighborhood) SE() uint8 { return n[SouthEast] }
func (n Neighborhood) S() uint8  { return n[South] }
func (n Neighborhood) SW() uint8 { return n[SouthWest] }
func (n Neighborhood) W() uint8  { return n[West] }
func (n Neighborhood) NW() uint8 { return n[NorthWest] }

// Transitions counts background→foreground steps walking the eight
// neighbours clockwise, wrapping from NW back to N (8 pairs).
func (n Neighborhood) Transitions() int {
	t := 0
	for i := 0; i < 8; i++ {
		if n[i] == 0 && n[(i+1)%8] == 1 {
			t++
		}
	}
	return t
}

// NonZero counts foreground neighbours.
func (n Neighborhood) NonZero() int {
	s := 0
	for _, v := range n {
		s += int(v)
	}
	return s
}
