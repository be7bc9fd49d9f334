// Package pathorder — path utilities shared by the orderers and their callers.
//
// Provided helpers:
//   - IsPermutation: verify an ordered path against its input multiset.
//   - Length: total Euclidean length of the open path.
//   - Jumps: count segments longer than a step threshold.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time, no mutation of the arguments.
package pathorder

import (
	"fmt"

	"github.com/katalvlaran/epicycles/geom"
)

// IsPermutation reports whether out holds exactly the points of in, with the
// same multiplicities, in any order.
// Returns an error wrapping ErrNotPermutation naming the first offending point.
//
// Complexity: O(n) time, O(n) space.
func IsPermutation(in, out []geom.Point) error {
	if len(in) != len(out) {
		return fmt.Errorf("%w: %d points in, %d out", ErrNotPermutation, len(in), len(out))
	}
	seen := make(map[geom.Point]int, len(in))
	for _, p := range in {
		seen[p]++
	}
	for _, p := range out {
		if seen[p] == 0 {
			return fmt.Errorf("%w: unexpected point %s", ErrNotPermutation, p)
		}
		seen[p]--
	}
	return nil
}

// Length returns the sum of Euclidean segment lengths along path. The path is
// open: the last point is not joined back to the first.
func Length(path []geom.Point) float64 {
	var sum float64
	for i := 1; i < len(path); i++ {
		sum += path[i-1].Dist(path[i])
	}
	return sum
}

// Jumps counts consecutive pairs farther apart than maxStep. On a skeleton
// ordered with 8-connectivity every in-stroke step is at most √2, so
// Jumps(path, math.Sqrt2) counts the pen lifts between branches.
func Jumps(path []geom.Point, maxStep float64) int {
	var (
		n     int
		limit = maxStep * maxStep
	)
	for i := 1; i < len(path); i++ {
		if path[i-1].DistSq(path[i]) > limit {
			n++
		}
	}
	return n
}
