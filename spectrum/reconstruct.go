package spectrum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/epicycles/geom"
)

// Position returns the pen position at time t:
//
//	Σ amplitude·e^{i(frequency·t + phase)}
//
// An empty list yields 0.
func Position(eps []Epicycle, t float64) complex128 {
	var z complex128
	for _, e := range eps {
		z += cmplx.Rect(e.Amplitude, float64(e.Frequency)*t+e.Phase)
	}
	return z
}

// Chain returns the centre of every circle followed by the pen tip at time
// t: Chain(eps, t)[0] is the origin and the last element equals
// Position(eps, t). A renderer draws circle i around element i with radius
// eps[i].Amplitude.
func Chain(eps []Epicycle, t float64) []geom.Point {
	out := make([]geom.Point, 0, len(eps)+1)
	var z complex128
	out = append(out, geom.FromComplex(z))
	for _, e := range eps {
		z += cmplx.Rect(e.Amplitude, float64(e.Frequency)*t+e.Phase)
		out = append(out, geom.FromComplex(z))
	}
	return out
}

// Trace samples Position at t = 2π·j/samples for j = 0..samples−1.
// With the full bin set and samples = len(path), Trace reproduces the path.
// A non-positive samples count yields an empty slice.
//
// Complexity: O(samples·len(eps)).
func Trace(eps []Epicycle, samples int) []geom.Point {
	if samples <= 0 {
		return []geom.Point{}
	}
	out := make([]geom.Point, samples)
	step := 2 * math.Pi / float64(samples)
	for j := range out {
		out[j] = geom.FromComplex(Position(eps, step*float64(j)))
	}
	return out
}

// Reconstruct runs path through the forward and inverse transforms and
// returns the recovered samples. Without filtering or truncation the
// result matches path up to floating-point rounding.
// Returns ErrEmptyInput when path is empty.
func Reconstruct(path []geom.Point) ([]geom.Point, error) {
	n := len(path)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	fft := fourier.NewCmplxFFT(n)
	coeff := fft.Coefficients(nil, samples(path))
	seq := fft.Sequence(nil, coeff)

	out := make([]geom.Point, n)
	scale := complex(1/float64(n), 0)
	for j, z := range seq {
		out[j] = geom.FromComplex(z * scale)
	}
	return out, nil
}
