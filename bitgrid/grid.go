package bitgrid

import (
	"strings"

	"github.com/katalvlaran/epicycles/geom"
)

// New returns an all-background width×height grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}, nil
}

// FromRows builds a grid from rows[y][x]; true is foreground.
// The input is copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := New(w, h)
	for y, row := range rows {
		for x, v := range row {
			if v {
				g.cells[g.index(x, y)] = 1
			}
		}
	}
	return g, nil
}

// FromInts builds a grid from values[y][x]; a cell is foreground when its
// value is ≥ threshold.
// Returns ErrEmptyGrid or ErrNonRectangular like FromRows.
func FromInts(values [][]int, threshold int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := New(w, h)
	for y, row := range values {
		for x, v := range row {
			if v >= threshold {
				g.cells[g.index(x, y)] = 1
			}
		}
	}
	return g, nil
}

// Parse builds a grid from an ASCII picture: '#', '1' and 'X' are
// foreground, anything else is background. Blank lines are skipped.
// It is the inverse of String and is mostly useful in tests and examples.
func Parse(s string) (*Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			row = append(row, r == '#' || r == '1' || r == 'X')
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsInterior reports whether (x,y) has all eight neighbours inside the grid,
// i.e. 1 ≤ x ≤ width−2 and 1 ≤ y ≤ height−2.
func (g *Grid) IsInterior(x, y int) bool {
	return x >= 1 && x <= g.width-2 && y >= 1 && y <= g.height-2
}

// Get reports whether (x,y) is foreground. Out-of-bounds cells read as background.
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)] != 0
}

// Set writes (x,y). Returns ErrOutOfBounds outside the grid.
func (g *Grid) Set(x, y int, on bool) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	var v uint8
	if on {
		v = 1
	}
	g.cells[g.index(x, y)] = v
	return nil
}

// clear sets an in-bounds cell to background without a bounds check.
func (g *Grid) clear(idx int) {
	g.cells[idx] = 0
}

// ClearAll sets every listed row-major index to background.
// It is the batch-apply step of thinning; indices come from Index.
func (g *Grid) ClearAll(indices []int) {
	for _, i := range indices {
		g.clear(i)
	}
}

// Index maps (x,y) to its row-major index y*width + x.
func (g *Grid) Index(x, y int) int {
	return g.index(x, y)
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Count returns the number of foreground cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}
	return n
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	cp := make([]uint8, len(g.cells))
	copy(cp, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cp}
}

// CopyFrom overwrites g with the contents of src without allocating.
// Returns ErrNonRectangular if the dimensions differ.
func (g *Grid) CopyFrom(src *Grid) error {
	if g.width != src.width || g.height != src.height {
		return ErrNonRectangular
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Points returns every foreground pixel as an image-centred geom.Point, in
// raster order (row by row, left to right). The result is never nil.
func (g *Grid) Points() []geom.Point {
	pts := make([]geom.Point, 0, g.Count())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] != 0 {
				pts = append(pts, geom.FromPixel(x, y, g.width, g.height))
			}
		}
	}
	return pts
}

// String renders the grid with '#' for foreground and '.' for background,
// one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
