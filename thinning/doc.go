// Package thinning reduces a binary mask to a one-pixel-wide skeleton with
// the Zhang–Suen algorithm.
//
// 🚀 What is Zhang–Suen thinning?
//
//	An iterative erosion that peels boundary pixels off a shape while
//	keeping its topology: lines stay connected, holes stay open. Each outer
//	pass runs two sub-iterations that remove south-east and north-west
//	boundary pixels respectively; the loop stops at a fixed point, when a
//	full pass removes nothing.
//
// ✨ Removal predicate (for an interior foreground pixel):
//
//   - transitions == 1 (exactly one 0→1 step walking N, NE, …, NW, N)
//   - 2 ≤ nonzero ≤ 6
//   - FirstStep:  N·E·S == 0 and E·S·W == 0
//   - SecondStep: N·E·W == 0 and N·S·W == 0
//
// Marks from one sub-iteration are applied as a single batch, so no removal
// is visible mid-pass and the result does not depend on scan order. The
// thinner keeps two buffers and swaps them at each sub-iteration boundary.
//
// Border pixels are never evaluated and never removed.
//
// ⚙️ Usage:
//
//	skel, stats := thinning.Thin(mask, thinning.DefaultOptions())
//	fmt.Println(stats.Passes, stats.Removed)
//
// Performance:
//
//   - Time:   O(P·W·H) for P outer passes (P is about half the stroke width).
//   - Memory: O(W·H) for the two buffers plus the mark list.
package thinning
