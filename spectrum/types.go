package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for a zero-length path; the transform is undefined.
	ErrEmptyInput = errors.New("spectrum: empty input path")

	// ErrDegenerateSpectrum is advisory: no bin passed the amplitude threshold
	// and the epicycle list is empty.
	ErrDegenerateSpectrum = errors.New("spectrum: no bin above the amplitude threshold")
)

const (
	// DefaultMinAmplitude drops bins with |X_k|/n ≤ 0.001.
	DefaultMinAmplitude = 0.001
	// DefaultMaxTerms keeps at most 500 epicycles.
	DefaultMaxTerms = 500
	// DefaultFrames is the number of animation frames per full revolution.
	DefaultFrames = 1200
)

// Epicycle is one rotating phasor: amplitude·e^{i(frequency·t + phase)}.
// Epicycles are values; a decomposed list is safe to share read-only.
type Epicycle struct {
	Frequency int     `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase"`
}

// String formats e as "f=… a=… φ=…".
func (e Epicycle) String() string {
	return fmt.Sprintf("f=%d a=%.6g φ=%.6g", e.Frequency, e.Amplitude, e.Phase)
}

// Options configures Decompose.
//
// Fields:
//   - MinAmplitude — bins must have amplitude strictly greater than this.
//     A negative value keeps every bin.
//   - MaxTerms     — upper bound on the returned list; 0 (or negative) keeps
//     every bin that passes the threshold.
type Options struct {
	MinAmplitude float64
	MaxTerms     int
}

// DefaultOptions returns Options{MinAmplitude: 0.001, MaxTerms: 500}.
func DefaultOptions() Options {
	return Options{
		MinAmplitude: DefaultMinAmplitude,
		MaxTerms:     DefaultMaxTerms,
	}
}
