package spectrum

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/epicycles/geom"
)

// samples reinterprets path as complex samples.
func samples(path []geom.Point) []complex128 {
	seq := make([]complex128, len(path))
	for i, p := range path {
		seq[i] = p.Complex()
	}
	return seq
}

// SignedFrequency maps bin k of an n-point transform to its harmonic index:
// k for k ≤ n/2, k−n above the Nyquist bin.
func SignedFrequency(k, n int) int {
	if k <= n/2 {
		return k
	}
	return k - n
}

// normPhase folds an angle from cmplx.Phase's [−π, π] into (−π, π].
func normPhase(phi float64) float64 {
	if phi <= -math.Pi {
		return phi + 2*math.Pi
	}
	return phi
}

// Bins returns one Epicycle per transform bin, in bin order, unfiltered.
// Returns ErrEmptyInput when path is empty.
//
// Complexity: O(n log n).
func Bins(path []geom.Point) ([]Epicycle, error) {
	n := len(path)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	coeff := fourier.NewCmplxFFT(n).Coefficients(nil, samples(path))

	out := make([]Epicycle, n)
	scale := 1 / float64(n)
	for k, c := range coeff {
		out[k] = Epicycle{
			Frequency: SignedFrequency(k, n),
			Amplitude: cmplx.Abs(c) * scale,
			Phase:     normPhase(cmplx.Phase(c)),
		}
	}
	return out, nil
}

// Decompose returns the ranked epicycles of path.
//
// Steps:
//  1. Bins(path).
//  2. Keep bins with Amplitude > opts.MinAmplitude.
//  3. Stable sort by Amplitude, descending.
//  4. Truncate to opts.MaxTerms.
//
// Returns ErrEmptyInput for an empty path. When no bin survives step 2 it
// returns an empty, non-nil slice together with ErrDegenerateSpectrum.
func Decompose(path []geom.Point, opts Options) ([]Epicycle, error) {
	bins, err := Bins(path)
	if err != nil {
		return nil, err
	}

	kept := bins[:0]
	for _, e := range bins {
		if e.Amplitude > opts.MinAmplitude {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return []Epicycle{}, ErrDegenerateSpectrum
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Amplitude > kept[j].Amplitude
	})
	if opts.MaxTerms > 0 && len(kept) > opts.MaxTerms {
		kept = kept[:opts.MaxTerms]
	}
	return kept, nil
}
