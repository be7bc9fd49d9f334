// Package spectrum decomposes an ordered path into epicycles: rotating
// phasors whose sum retraces the path.
//
// 🚀 What is an epicycle decomposition?
//
//	The path's n points are read as n complex samples z_j = x_j + i·y_j and
//	treated as one period of a periodic signal. Its discrete Fourier
//	transform X_k (k = 0..n−1) gives one rotating circle per bin:
//
//	  frequency = k        if k ≤ n/2
//	            = k − n    otherwise (negative harmonics turn clockwise)
//	  amplitude = |X_k| / n
//	  phase     = arg X_k ∈ (−π, π]
//
//	At time t the pen sits at Σ amplitude·e^{i(frequency·t + phase)}.
//	Sweeping t over [0, 2π) draws a closed approximation of the path.
//
// ✨ Selection:
//
//   - Bins whose amplitude is not strictly above Options.MinAmplitude are dropped.
//   - Survivors are stably sorted by amplitude, largest first; equal
//     amplitudes keep bin order.
//   - The list is cut to Options.MaxTerms.
//
// ⚙️ Usage:
//
//	eps, err := spectrum.Decompose(path, spectrum.DefaultOptions())
//	switch {
//	case errors.Is(err, spectrum.ErrEmptyInput):
//	    // nothing to draw
//	case errors.Is(err, spectrum.ErrDegenerateSpectrum):
//	    // eps is empty; lower MinAmplitude or give up
//	}
//	frame := spectrum.Trace(eps, spectrum.DefaultFrames)
//
// The transform is gonum's dsp/fourier complex FFT (unnormalised forward
// transform, e^{−i} kernel), so any n ≥ 1 is accepted.
//
// Performance:
//
//   - Decompose: O(n log n) for the transform plus O(n log n) for the sort.
//   - Position: O(terms). Trace: O(samples·terms).
package spectrum
