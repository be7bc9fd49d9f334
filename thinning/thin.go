package thinning

import (
	"github.com/katalvlaran/epicycles/bitgrid"
)

// Removable reports whether an interior foreground pixel with neighbourhood n
// is deleted in sub-iteration step.
// Complexity: O(1).
func Removable(n bitgrid.Neighborhood, step Step) bool {
	if n.Transitions() != 1 {
		return false
	}
	if b := n.NonZero(); b < 2 || b > 6 {
		return false
	}
	switch step {
	case FirstStep:
		return n.N()*n.E()*n.S() == 0 && n.E()*n.S()*n.W() == 0
	case SecondStep:
		return n.N()*n.E()*n.W() == 0 && n.N()*n.S()*n.W() == 0
	default:
		return false
	}
}

// Thin returns the Zhang–Suen skeleton of g together with run statistics.
// g itself is not modified.
//
// Algorithm:
//  1. Copy g into two buffers, src (read) and dst (write).
//  2. For FirstStep then SecondStep: scan interior foreground pixels of src,
//     collect those satisfying Removable, clear them in dst, swap src/dst and
//     clear them in the new dst as well so both buffers agree.
//  3. Repeat until an outer pass removes nothing, or MaxPasses is reached.
//
// An empty or already-thin mask converges after a single pass.
// Complexity: O(P·W·H) time, O(W·H) memory.
func Thin(g *bitgrid.Grid, opts Options) (*bitgrid.Grid, Stats) {
	src := g.Clone()
	dst := g.Clone()
	var (
		stats Stats
		marks []int
	)
	for {
		if opts.MaxPasses > 0 && stats.Passes >= opts.MaxPasses {
			return src, stats
		}
		stats.Passes++
		removed := 0
		for _, step := range [...]Step{FirstStep, SecondStep} {
			marks = collect(src, step, marks[:0])
			if len(marks) == 0 {
				continue
			}
			dst.ClearAll(marks)
			src, dst = dst, src
			dst.ClearAll(marks)
			removed += len(marks)
		}
		stats.Removed += removed
		if removed == 0 {
			stats.Converged = true
			return src, stats
		}
	}
}

// collect appends to marks the row-major index of every interior foreground
// pixel of g that step would remove. g is only read.
func collect(g *bitgrid.Grid, step Step, marks []int) []int {
	w, h := g.Width(), g.Height()
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if !g.Get(x, y) {
				continue
			}
			if Removable(g.Neighborhood(x, y), step) {
				marks = append(marks, g.Index(x, y))
			}
		}
	}
	return marks
}

// IsThin reports whether g is a fixed point of Thin: no interior foreground
// pixel satisfies the removal predicate of either sub-iteration.
func IsThin(g *bitgrid.Grid) bool {
	for _, step := range [...]Step{FirstStep, SecondStep} {
		if len(collect(g, step, nil)) > 0 {
			return false
		}
	}
	return true
}
