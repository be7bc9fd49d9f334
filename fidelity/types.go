package fidelity

import "errors"

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("fidelity: input sequences must be non-empty")

	// ErrBadInput indicates an out-of-range option (Window < −1, negative penalty).
	ErrBadInput = errors.New("fidelity: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("fidelity: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) table; supports ReturnPath.
//   - TwoRows    — keep the previous and current rows only; distance only.
type MemoryMode int

const (
	// FullMatrix stores every row: O(n·m) memory.
	FullMatrix MemoryMode = iota
	// TwoRows stores two rows: O(m) memory, no path recovery.
	TwoRows
)

// String returns the mode name used in configuration files.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case TwoRows:
		return "tworows"
	default:
		return "unknown"
	}
}

// Options configures DTW.
//
// Fields:
//   - Window       — Sakoe–Chiba band |i−j| ≤ Window; −1 disables the band.
//     Values below −1 are rejected with ErrBadInput.
//   - SlopePenalty — added to every insertion and deletion step; must be ≥ 0.
//   - ReturnPath   — backtrack and return the warping path (FullMatrix only).
//   - MemoryMode   — FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unbanded, penalty-free, distance-only FullMatrix setup.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

// Coord is one step of a warping path: a[I] is matched with b[J].
type Coord struct {
	I, J int
}

// Report summarises a reconstruction against its source path.
type Report struct {
	// DTW is the accumulated warped distance.
	DTW float64 `json:"dtw"`
	// Mean is DTW divided by the number of path samples.
	Mean float64 `json:"mean"`
	// MaxError is the largest pointwise distance without warping.
	MaxError float64 `json:"max_error"`
	// RMSError is the root-mean-square pointwise distance without warping.
	RMSError float64 `json:"rms_error"`
}
