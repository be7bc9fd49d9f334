package pathorder

import "github.com/katalvlaran/epicycles/geom"

// Greedy is the reference nearest-neighbour orderer: every step scans all
// remaining points.
//
// Complexity: O(n²) time, O(n) memory.
type Greedy struct{}

// Order implements Orderer.
//
// Steps:
//  1. Seed the output with pts[0].
//  2. Keep the remaining input indices in their original order.
//  3. Pick the first remaining point with strictly minimal DistSq to the
//     current point, so ties go to the lowest input index.
//  4. Remove it (order-preserving), append it, make it current; repeat.
func (Greedy) Order(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	if len(pts) == 0 {
		return out
	}
	rest := make([]int, len(pts)-1)
	for i := range rest {
		rest[i] = i + 1
	}
	cur := pts[0]
	out = append(out, cur)

	var (
		best  int     // position in rest of the current winner
		bestD float64 // its squared distance
		d     float64
		j     int
	)
	for len(rest) > 0 {
		best, bestD = 0, cur.DistSq(pts[rest[0]])
		for j = 1; j < len(rest); j++ {
			d = cur.DistSq(pts[rest[j]])
			if d < bestD {
				best, bestD = j, d
			}
		}
		cur = pts[rest[best]]
		out = append(out, cur)
		rest = append(rest[:best], rest[best+1:]...)
	}
	return out
}
