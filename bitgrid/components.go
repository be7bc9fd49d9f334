package bitgrid

// Components finds all 8-connected regions of foreground cells.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order. Components are ordered by the raster
// position of their first cell.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.index(x, y)
			if g.cells[i0] == 0 || seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) {
						continue
					}
					vi := g.index(vx, vy)
					if g.cells[vi] != 0 && !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
