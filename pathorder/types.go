package pathorder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/epicycles/geom"
)

var (
	// ErrUnknownStrategy indicates an unsupported Options.Strategy.
	ErrUnknownStrategy = errors.New("pathorder: unknown ordering strategy")
	// ErrNotPermutation indicates an ordered path that is not a permutation of its input.
	ErrNotPermutation = errors.New("pathorder: output is not a permutation of the input")
)

// Orderer turns an unordered point set into a single traversal.
// Implementations must return a permutation of pts, must not modify pts, and
// must be deterministic for a given input order.
type Orderer interface {
	Order(pts []geom.Point) []geom.Point
}

// Strategy names an Orderer implementation.
type Strategy string

const (
	// StrategyGreedy selects the linear-scan Greedy orderer.
	StrategyGreedy Strategy = "greedy"
	// StrategyKDTree selects the k-d tree backed orderer.
	StrategyKDTree Strategy = "kdtree"
)

// Options configures New.
//
// Fields:
//   - Strategy — which orderer to build; empty means StrategyGreedy.
type Options struct {
	Strategy Strategy
}

// DefaultOptions returns Options selecting the greedy linear scan.
func DefaultOptions() Options {
	return Options{Strategy: StrategyGreedy}
}

// New returns the Orderer selected by opts.
// Returns ErrUnknownStrategy for anything but "", "greedy" and "kdtree".
func New(opts Options) (Orderer, error) {
	switch opts.Strategy {
	case "", StrategyGreedy:
		return Greedy{}, nil
	case StrategyKDTree:
		return KDTree{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, opts.Strategy)
	}
}
