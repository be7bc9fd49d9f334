package thinning

// Step selects one of the two Zhang–Suen sub-iterations.
type Step int

const (
	// FirstStep removes south-east boundary and north-west corner pixels.
	FirstStep Step = iota
	// SecondStep removes north-west boundary and south-east corner pixels.
	SecondStep
)

// String returns a short name for s.
func (s Step) String() string {
	switch s {
	case FirstStep:
		return "first"
	case SecondStep:
		return "second"
	default:
		return "unknown"
	}
}

// Options configures Thin.
//
// Fields:
//   - MaxPasses — upper bound on outer passes; 0 (or negative) runs to the
//     fixed point. A capped run reports Converged=false when it stops early.
type Options struct {
	MaxPasses int
}

// DefaultOptions returns Options that run to the fixed point.
func DefaultOptions() Options {
	return Options{MaxPasses: 0}
}

// Stats describes one Thin run.
type Stats struct {
	// Passes is the number of outer passes executed, including the final
	// pass that removed nothing.
	Passes int
	// Removed is the total number of pixels cleared.
	Removed int
	// Converged is false only when MaxPasses stopped the run before a
	// removal-free pass.
	Converged bool
}
