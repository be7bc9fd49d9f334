// Package pathorder turns an unordered set of skeleton points into a single
// drawable stroke with the greedy nearest-neighbour rule.
//
// What:
//
//   - Orderer is the strategy interface; callers never depend on a concrete
//     heuristic.
//   - Greedy scans every remaining point at each step: O(n²) comparisons.
//   - KDTree answers the same queries from a gonum k-d tree that is rebuilt
//     as points are consumed; typical cost O(n log n) on skeletons.
//
// Rule:
//
//	Start at the first input point. Repeatedly move to the remaining point
//	with the smallest squared Euclidean distance to the current one.
//	Equidistant candidates are broken by the lowest input index, i.e. the
//	earliest point in raster order. Both strategies apply this rule exactly and
//	return identical sequences.
//
// The result is an open path and a permutation of the input. It is not an
// optimal tour: disconnected skeleton branches are joined by long "jump"
// segments, which Jumps can count.
//
// Errors:
//
//   - ErrUnknownStrategy: New was given an unsupported Strategy.
//   - ErrNotPermutation: IsPermutation found a missing or extra point.
package pathorder
