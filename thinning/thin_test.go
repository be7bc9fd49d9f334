package thinning_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epicycles/bitgrid"
	"github.com/katalvlaran/epicycles/thinning"
)

// mustParse builds a grid from an ASCII picture or fails the test.
func mustParse(t testing.TB, s string) *bitgrid.Grid {
	t.Helper()
	g, err := bitgrid.Parse(s)
	require.NoError(t, err)
	return g
}

// randomGrid fills a w×h grid with foreground at probability p.
func randomGrid(rng *rand.Rand, w, h int, p float64) *bitgrid.Grid {
	g, _ := bitgrid.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < p {
				_ = g.Set(x, y, true)
			}
		}
	}
	return g
}

//----------------------------------------------------------------------------//
// Removal predicate
//----------------------------------------------------------------------------//

// TestRemovable_Conditions walks the predicate's clauses one at a time.
func TestRemovable_Conditions(t *testing.T) {
	cases := []struct {
		name   string
		n      bitgrid.Neighborhood
		first  bool
		second bool
	}{
		// Isolated pixel: nonzero = 0.
		{"Isolated", bitgrid.Neighborhood{}, false, false},
		// Line end: nonzero = 1.
		{"Endpoint", bitgrid.Neighborhood{1, 0, 0, 0, 0, 0, 0, 0}, false, false},
		// Middle of a diagonal: transitions = 2.
		{"DiagonalMiddle", bitgrid.Neighborhood{0, 1, 0, 0, 0, 1, 0, 0}, false, false},
		// Interior of a blob: nonzero = 8.
		{"Interior", bitgrid.Neighborhood{1, 1, 1, 1, 1, 1, 1, 1}, false, false},
		// Top edge of a blob (foreground E, SE, S, SW, W): N·E·S = 0 and E·S·W ≠ 0.
		{"TopEdge", bitgrid.Neighborhood{0, 0, 1, 1, 1, 1, 1, 0}, false, true},
		// Bottom edge (foreground N, NE, E, W, NW): N·E·W ≠ 0 blocks the second step.
		{"BottomEdge", bitgrid.Neighborhood{1, 1, 1, 0, 0, 0, 1, 1}, true, false},
		// South-east corner of a blob (foreground N, W, NW).
		{"SECorner", bitgrid.Neighborhood{1, 0, 0, 0, 0, 0, 1, 1}, true, true},
		// Short stub: N and NE, nonzero = 2, one transition.
		{"Stub", bitgrid.Neighborhood{1, 1, 0, 0, 0, 0, 0, 0}, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.first, thinning.Removable(tc.n, thinning.FirstStep), "FirstStep")
			assert.Equal(t, tc.second, thinning.Removable(tc.n, thinning.SecondStep), "SecondStep")
		})
	}
	assert.False(t, thinning.Removable(bitgrid.Neighborhood{1, 1, 0, 0, 0, 0, 0, 0}, thinning.Step(7)))
}

// TestStep_String covers the step names.
func TestStep_String(t *testing.T) {
	assert.Equal(t, "first", thinning.FirstStep.String())
	assert.Equal(t, "second", thinning.SecondStep.String())
	assert.Equal(t, "unknown", thinning.Step(9).String())
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestThin_SinglePixelUnchanged: an isolated pixel is already minimal.
func TestThin_SinglePixelUnchanged(t *testing.T) {
	g := mustParse(t, `
		.....
		.....
		..#..
		.....
		.....
	`)
	skel, stats := thinning.Thin(g, thinning.DefaultOptions())
	assert.True(t, g.Equal(skel))
	assert.Equal(t, thinning.Stats{Passes: 1, Removed: 0, Converged: true}, stats)
}

// TestThin_DiagonalLineUnchanged: a 1-pixel diagonal has no removable pixel.
func TestThin_DiagonalLineUnchanged(t *testing.T) {
	g := mustParse(t, `
		.......
		.#.....
		..#....
		...#...
		....#..
		.....#.
		.......
	`)
	skel, stats := thinning.Thin(g, thinning.DefaultOptions())
	assert.True(t, g.Equal(skel), "diagonal must survive intact:\n%s", skel)
	assert.Equal(t, 0, stats.Removed)
	assert.True(t, thinning.IsThin(g))
}

// TestThin_EmptyGrid converges in a single pass.
func TestThin_EmptyGrid(t *testing.T) {
	g, _ := bitgrid.New(6, 4)
	skel, stats := thinning.Thin(g, thinning.DefaultOptions())
	assert.Equal(t, 0, skel.Count())
	assert.Equal(t, 1, stats.Passes)
	assert.True(t, stats.Converged)
}

// TestThin_Rectangle reduces a solid 9×5 block to a connected horizontal stroke.
func TestThin_Rectangle(t *testing.T) {
	g := mustParse(t, `
		...........
		.#########.
		.#########.
		.#########.
		.#########.
		.#########.
		...........
	`)
	skel, stats := thinning.Thin(g, thinning.DefaultOptions())
	want := mustParse(t, `
		...........
		...........
		...........
		...####....
		...........
		...........
		...........
	`)
	assert.True(t, want.Equal(skel), "got:\n%s", skel)
	assert.Equal(t, thinning.Stats{Passes: 3, Removed: 41, Converged: true}, stats)
	assert.Len(t, skel.Components(), 1)
	assert.Less(t, skel.Count(), g.Count())
}

// TestThin_ThickRing keeps the hole open and the loop connected.
func TestThin_ThickRing(t *testing.T) {
	g := mustParse(t, `
		............
		.##########.
		.##########.
		.##########.
		.###....###.
		.###....###.
		.###....###.
		.###....###.
		.##########.
		.##########.
		.##########.
		............
	`)
	skel, stats := thinning.Thin(g, thinning.DefaultOptions())
	want := mustParse(t, `
		............
		............
		..########..
		..#......#..
		..#......#..
		..#......#..
		..#......#..
		..#......#..
		..#.....##..
		..#######...
		............
		............
	`)
	assert.True(t, want.Equal(skel), "got:\n%s", skel)
	assert.Equal(t, 2, stats.Passes)
	assert.Equal(t, 56, stats.Removed)
	assert.Len(t, skel.Components(), 1)
}

// TestThin_LShape thins a thick L to a single-pixel L.
func TestThin_LShape(t *testing.T) {
	g := mustParse(t, `
		.........
		.###.....
		.###.....
		.###.....
		.###.....
		.#######.
		.#######.
		.#######.
		.........
	`)
	skel, _ := thinning.Thin(g, thinning.DefaultOptions())
	want := mustParse(t, `
		.........
		.........
		..#......
		..#......
		..#......
		..#......
		..####...
		.........
		.........
	`)
	assert.True(t, want.Equal(skel), "got:\n%s", skel)
}

// TestThin_TwoByTwoVanishes documents a known Zhang–Suen artefact: a 2×2
// block has no surviving pixel.
func TestThin_TwoByTwoVanishes(t *testing.T) {
	g := mustParse(t, `
		....
		.##.
		.##.
		....
	`)
	skel, stats := thinning.Thin(g, thinning.DefaultOptions())
	assert.Equal(t, 0, skel.Count())
	assert.Equal(t, 2, stats.Passes)
}

// TestThin_BorderPixelsKept: border pixels are never evaluated.
func TestThin_BorderPixelsKept(t *testing.T) {
	g := mustParse(t, `
		#####
		#####
		#####
		#####
		#####
	`)
	skel, stats := thinning.Thin(g, thinning.DefaultOptions())
	assert.True(t, g.Equal(skel))
	assert.Equal(t, 0, stats.Removed)
}

// TestThin_MaxPasses stops early and reports non-convergence.
func TestThin_MaxPasses(t *testing.T) {
	g := mustParse(t, `
		...........
		.#########.
		.#########.
		.#########.
		.#########.
		.#########.
		...........
	`)
	skel, stats := thinning.Thin(g, thinning.Options{MaxPasses: 1})
	assert.Equal(t, 1, stats.Passes)
	assert.False(t, stats.Converged)
	assert.Equal(t, 20, skel.Count())
	assert.Equal(t, 25, stats.Removed)
	assert.False(t, thinning.IsThin(skel))
}

// TestThin_InputNotMutated checks that the caller's grid is left intact.
func TestThin_InputNotMutated(t *testing.T) {
	g := mustParse(t, `
		......
		.####.
		.####.
		.####.
		......
	`)
	before := g.Clone()
	_, _ = thinning.Thin(g, thinning.DefaultOptions())
	assert.True(t, before.Equal(g))
}

//----------------------------------------------------------------------------//
// Properties on random masks
//----------------------------------------------------------------------------//

// TestThin_Properties checks idempotence, the fixed-point predicate and
// monotonicity on seeded random masks.
func TestThin_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		w, h := 3+rng.Intn(30), 3+rng.Intn(30)
		g := randomGrid(rng, w, h, 0.2+0.6*rng.Float64())

		once, stats := thinning.Thin(g, thinning.DefaultOptions())
		twice, again := thinning.Thin(once, thinning.DefaultOptions())

		require.True(t, stats.Converged)
		assert.True(t, once.Equal(twice), "thin(thin(G)) != thin(G) for case %d", i)
		assert.Equal(t, 0, again.Removed)
		assert.True(t, thinning.IsThin(once))
		assert.Equal(t, g.Count()-stats.Removed, once.Count())
	}
}

// TestThin_Deterministic runs the same input twice.
func TestThin_Deterministic(t *testing.T) {
	g := randomGrid(rand.New(rand.NewSource(7)), 40, 30, 0.6)
	a, sa := thinning.Thin(g, thinning.DefaultOptions())
	b, sb := thinning.Thin(g, thinning.DefaultOptions())
	assert.True(t, a.Equal(b))
	assert.Equal(t, sa, sb)
}
