package fidelity

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/epicycles/geom"
	"github.com/katalvlaran/epicycles/spectrum"
)

// Residuals returns |a_i − b_i| for i < min(len(a), len(b)).
func Residuals(a, b []geom.Point) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a[i].Dist(b[i])
	}
	return out
}

// Score traces eps at len(path) evenly spaced times and compares the result
// with path. The trace sample j lands at t = 2π·j/n, the time at which the
// full spectrum passes through path[j], so the residuals measure truncation
// loss directly.
//
// Returns ErrEmptySequence for an empty path and any DTW option error.
func Score(path []geom.Point, eps []spectrum.Epicycle, opts *Options) (Report, error) {
	if len(path) == 0 {
		return Report{}, ErrEmptySequence
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.ReturnPath = false

	trace := spectrum.Trace(eps, len(path))
	d, _, err := DTW(path, trace, &o)
	if err != nil {
		return Report{}, err
	}

	res := Residuals(path, trace)
	n := float64(len(res))
	return Report{
		DTW:      d,
		Mean:     d / n,
		MaxError: floats.Max(res),
		RMSError: floats.Norm(res, 2) / math.Sqrt(n),
	}, nil
}
