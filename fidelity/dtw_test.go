package fidelity_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epicycles/fidelity"
	"github.com/katalvlaran/epicycles/geom"
	"github.com/katalvlaran/epicycles/spectrum"
)

// line embeds scalars on the x axis, where point distance equals |a−b|.
func line(xs ...float64) []geom.Point {
	out := make([]geom.Point, len(xs))
	for i, x := range xs {
		out[i] = geom.Pt(x, 0)
	}
	return out
}

// circle samples n points of a radius-r circle.
func circle(n int, r float64) []geom.Point {
	out := make([]geom.Point, n)
	for j := range out {
		a := 2 * math.Pi * float64(j) / float64(n)
		out[j] = geom.Pt(r*math.Cos(a), r*math.Sin(a))
	}
	return out
}

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

// TestDTW_EmptyInput rejects an empty side.
func TestDTW_EmptyInput(t *testing.T) {
	opts := fidelity.DefaultOptions()
	_, _, err := fidelity.DTW(nil, line(1, 2), &opts)
	assert.ErrorIs(t, err, fidelity.ErrEmptySequence)
	_, _, err = fidelity.DTW(line(1), []geom.Point{}, &opts)
	assert.ErrorIs(t, err, fidelity.ErrEmptySequence)
}

// TestDTW_BadOptions rejects Window < −1 and negative penalties.
func TestDTW_BadOptions(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*fidelity.Options)
		want error
	}{
		{"WindowBelowMinusOne", func(o *fidelity.Options) { o.Window = -2 }, fidelity.ErrBadInput},
		{"NegativePenalty", func(o *fidelity.Options) { o.SlopePenalty = -0.1 }, fidelity.ErrBadInput},
		{"PathWithTwoRows", func(o *fidelity.Options) {
			o.ReturnPath = true
			o.MemoryMode = fidelity.TwoRows
		}, fidelity.ErrPathNeedsMatrix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := fidelity.DefaultOptions()
			tc.mod(&opts)
			_, _, err := fidelity.DTW(line(1), line(1), &opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

//----------------------------------------------------------------------------//
// Distances and paths
//----------------------------------------------------------------------------//

// TestDTW_Identical has zero cost and no path by default.
func TestDTW_Identical(t *testing.T) {
	a := circle(12, 3)
	dist, path, err := fidelity.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Zero(t, dist)
	assert.Nil(t, path)
}

// TestDTW_SubsequencePath aligns a repeated sample for free.
func TestDTW_SubsequencePath(t *testing.T) {
	opts := fidelity.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := fidelity.DTW(line(1, 2, 3), line(1, 2, 2, 3), &opts)
	require.NoError(t, err)
	assert.Zero(t, dist)
	assert.Equal(t, []fidelity.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)
}

// TestDTW_WindowConstraint: a zero band cannot absorb a length mismatch.
func TestDTW_WindowConstraint(t *testing.T) {
	opts := fidelity.DefaultOptions()
	opts.Window = 0
	dist, _, err := fidelity.DTW(line(1, 2, 3), line(1, 2, 3, 4), &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))

	opts.Window = -1
	dist, _, err = fidelity.DTW(line(1, 2, 3), line(1, 2, 3, 4), &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist)
}

// TestDTW_SlopePenalty adds exactly one penalty for one stretch.
func TestDTW_SlopePenalty(t *testing.T) {
	opts := fidelity.DefaultOptions()
	dist, _, err := fidelity.DTW(line(1, 2, 3), line(1, 1, 2, 3), &opts)
	require.NoError(t, err)
	assert.Zero(t, dist)

	opts.SlopePenalty = 1
	opts.ReturnPath = true
	dist, path, err := fidelity.DTW(line(1, 2, 3), line(1, 1, 2, 3), &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist)
	assert.Len(t, path, 4)
}

// TestDTW_TwoRowsMatchesFull on random 2D sequences, banded and unbanded.
func TestDTW_TwoRowsMatchesFull(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		a := make([]geom.Point, 1+rng.Intn(40))
		b := make([]geom.Point, 1+rng.Intn(40))
		for k := range a {
			a[k] = geom.Pt(rng.NormFloat64(), rng.NormFloat64())
		}
		for k := range b {
			b[k] = geom.Pt(rng.NormFloat64(), rng.NormFloat64())
		}
		for _, w := range []int{-1, 3} {
			full := fidelity.Options{Window: w, SlopePenalty: 0.25, MemoryMode: fidelity.FullMatrix}
			rows := full
			rows.MemoryMode = fidelity.TwoRows

			d1, _, err := fidelity.DTW(a, b, &full)
			require.NoError(t, err)
			d2, p, err := fidelity.DTW(a, b, &rows)
			require.NoError(t, err)
			assert.Equal(t, d1, d2, "case %d window %d", i, w)
			assert.Nil(t, p)
		}
	}
}

// TestDTW_PathIsMonotone: every step moves by at most one in each index.
func TestDTW_PathIsMonotone(t *testing.T) {
	opts := fidelity.DefaultOptions()
	opts.ReturnPath = true
	opts.SlopePenalty = 0.1
	a, b := circle(30, 5), circle(45, 5)

	_, path, err := fidelity.DTW(a, b, &opts)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, fidelity.Coord{0, 0}, path[0])
	assert.Equal(t, fidelity.Coord{29, 44}, path[len(path)-1])
	for k := 1; k < len(path); k++ {
		di, dj := path[k].I-path[k-1].I, path[k].J-path[k-1].J
		assert.True(t, di >= 0 && di <= 1 && dj >= 0 && dj <= 1 && di+dj > 0, "step %d", k)
	}
}

//----------------------------------------------------------------------------//
// Score
//----------------------------------------------------------------------------//

// TestScore_FullSpectrumIsExact: every bin kept reproduces the path.
func TestScore_FullSpectrumIsExact(t *testing.T) {
	path := circle(64, 10)
	path[5] = geom.Pt(3, 3) // break the pure harmonic
	bins, err := spectrum.Bins(path)
	require.NoError(t, err)

	rep, err := fidelity.Score(path, bins, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, rep.DTW, 1e-6)
	assert.InDelta(t, 0, rep.MaxError, 1e-9)
	assert.InDelta(t, 0, rep.RMSError, 1e-9)
}

// TestScore_TruncationCosts: fewer terms never fit better on this shape.
func TestScore_TruncationCosts(t *testing.T) {
	path := make([]geom.Point, 0, 80)
	for i := 0; i < 20; i++ {
		f := float64(i)
		path = append(path, geom.Pt(f, 0))
	}
	for i := 0; i < 20; i++ {
		f := float64(i)
		path = append(path, geom.Pt(20, f))
	}
	for i := 0; i < 20; i++ {
		f := float64(i)
		path = append(path, geom.Pt(20-f, 20))
	}
	for i := 0; i < 20; i++ {
		f := float64(i)
		path = append(path, geom.Pt(0, 20-f))
	}

	opts := fidelity.DefaultOptions()
	opts.Window = 8
	prev := math.Inf(1)
	for _, terms := range []int{2, 8, 80} {
		eps, err := spectrum.Decompose(path, spectrum.Options{MinAmplitude: 0, MaxTerms: terms})
		require.NoError(t, err)
		rep, err := fidelity.Score(path, eps, &opts)
		require.NoError(t, err)
		assert.LessOrEqual(t, rep.RMSError, prev, "terms=%d", terms)
		assert.InDelta(t, rep.DTW/float64(len(path)), rep.Mean, 1e-12)
		assert.GreaterOrEqual(t, rep.MaxError, rep.RMSError)
		prev = rep.RMSError
	}
	assert.InDelta(t, 0, prev, 1e-6)
}

// TestScore_Errors covers the empty path and bad options.
func TestScore_Errors(t *testing.T) {
	_, err := fidelity.Score(nil, nil, nil)
	assert.ErrorIs(t, err, fidelity.ErrEmptySequence)

	bad := fidelity.Options{Window: -5}
	_, err = fidelity.Score(line(1, 2), nil, &bad)
	assert.ErrorIs(t, err, fidelity.ErrBadInput)

	// ReturnPath is ignored by Score, so TwoRows is fine.
	rows := fidelity.Options{Window: -1, ReturnPath: true, MemoryMode: fidelity.TwoRows}
	_, err = fidelity.Score(line(1, 2), nil, &rows)
	assert.NoError(t, err)
}

// TestMemoryMode_String names both modes.
func TestMemoryMode_String(t *testing.T) {
	assert.Equal(t, "full", fidelity.FullMatrix.String())
	assert.Equal(t, "tworows", fidelity.TwoRows.String())
	assert.Equal(t, "unknown", fidelity.MemoryMode(5).String())
}
