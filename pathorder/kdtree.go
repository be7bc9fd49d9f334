package pathorder

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/epicycles/geom"
)

// defaultInitialK is the neighbour count requested first; it doubles until an
// unconsumed point shows up.
const defaultInitialK = 8

// KDTree is a nearest-neighbour orderer backed by a gonum k-d tree. It
// follows exactly the same rule as Greedy, tie-break included.
//
// Consumed points stay in the tree as tombstones; once they outnumber the
// live ones the tree is rebuilt from the survivors.
//
// Complexity: O(n log n) typical, O(n²) worst case when every step has to
// jump across a large consumed region.
type KDTree struct {
	// InitialK is the first neighbour count requested per step; 0 means 8.
	InitialK int
}

// node is a point tagged with its input index; it implements kdtree.Comparable.
type node struct {
	p   geom.Point
	idx int
}

// Compare satisfies the axis comparison method of kdtree.Comparable:
// dimension 0 is X, dimension 1 is Y.
func (n node) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(node)
	switch d {
	case 0:
		return n.p.X - q.p.X
	case 1:
		return n.p.Y - q.p.Y
	default:
		panic("pathorder: illegal dimension")
	}
}

// Dims returns the number of dimensions.
func (n node) Dims() int { return 2 }

// Distance returns the squared Euclidean distance, the same value Greedy compares.
func (n node) Distance(c kdtree.Comparable) float64 {
	return n.p.DistSq(c.(node).p)
}

// nodes satisfies kdtree.Interface.
type nodes []node

func (s nodes) Index(i int) kdtree.Comparable         { return s[i] }
func (s nodes) Len() int                              { return len(s) }
func (s nodes) Pivot(d kdtree.Dim) int                { return plane{nodes: s, Dim: d}.Pivot() }
func (s nodes) Slice(start, end int) kdtree.Interface { return s[start:end] }

// plane sorts nodes along one dimension for median partitioning.
type plane struct {
	kdtree.Dim
	nodes
}

func (p plane) Less(i, j int) bool {
	if p.Dim == 0 {
		return p.nodes[i].p.X < p.nodes[j].p.X
	}
	return p.nodes[i].p.Y < p.nodes[j].p.Y
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.nodes = p.nodes[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i]
}

// index is a k-d tree over the live points at build time plus a tombstone count.
type index struct {
	tree *kdtree.Tree
	size int // nodes in the tree
	dead int // nodes in the tree consumed since the build
}

// newIndex builds a tree over every pts[i] with alive[i] set.
func newIndex(pts []geom.Point, alive []bool) *index {
	ns := make(nodes, 0, len(pts))
	for i, p := range pts {
		if alive[i] {
			ns = append(ns, node{p: p, idx: i})
		}
	}
	return &index{tree: kdtree.New(ns, false), size: len(ns)}
}

// nearest returns the live point closest to at, lowest input index on ties,
// or −1 when the tree holds no live point.
func (ix *index) nearest(at geom.Point, alive []bool, k int) int {
	q := node{p: at, idx: -1}
	for {
		if k > ix.size {
			k = ix.size
		}
		keep := kdtree.NewNKeeper(k)
		ix.tree.NearestSet(keep, q)

		best, bestD := -1, math.Inf(1)
		for _, c := range keep.Heap {
			nd, ok := c.Comparable.(node)
			if !ok || !alive[nd.idx] {
				continue
			}
			if c.Dist < bestD || (c.Dist == bestD && nd.idx < best) {
				best, bestD = nd.idx, c.Dist
			}
		}
		if best >= 0 {
			// NKeeper may cut a tie at its boundary; collect every live
			// point at exactly bestD so the lowest index wins.
			ties := kdtree.NewDistKeeper(bestD)
			ix.tree.NearestSet(ties, q)
			for _, c := range ties.Heap {
				nd, ok := c.Comparable.(node)
				if ok && alive[nd.idx] && c.Dist == bestD && nd.idx < best {
					best = nd.idx
				}
			}
			return best
		}
		if k >= ix.size {
			return -1
		}
		k *= 2
	}
}

// Order implements Orderer.
func (o KDTree) Order(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	if len(pts) == 0 {
		return out
	}
	k0 := o.InitialK
	if k0 <= 0 {
		k0 = defaultInitialK
	}

	alive := make([]bool, len(pts))
	for i := range alive {
		alive[i] = true
	}
	ix := newIndex(pts, alive)

	cur := 0
	alive[cur] = false
	ix.dead++
	out = append(out, pts[cur])

	for left := len(pts) - 1; left > 0; left-- {
		if ix.dead*2 > ix.size {
			ix = newIndex(pts, alive)
		}
		next := ix.nearest(pts[cur], alive, k0)
		if next < 0 {
			// The tree always holds every live point, so this is unreachable.
			panic("pathorder: k-d tree lost a live point")
		}
		alive[next] = false
		ix.dead++
		cur = next
		out = append(out, pts[cur])
	}
	return out
}
