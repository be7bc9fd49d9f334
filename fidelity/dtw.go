package fidelity

import (
	"math"

	"github.com/katalvlaran/epicycles/geom"
)

// DTW computes the Dynamic Time Warping distance between a and b with
// Euclidean point cost. Returns (distance, path, error); path is nil unless
// opts.ReturnPath is set.
//
// A nil opts means DefaultOptions(). Errors:
//   - ErrEmptySequence   — either input is empty.
//   - ErrBadInput        — Window < −1 or SlopePenalty < 0.
//   - ErrPathNeedsMatrix — ReturnPath with a mode other than FullMatrix.
//
// A band too narrow to connect (0,0) to (n−1,m−1) yields +Inf.
//
// Complexity: O(n·m) time; memory per MemoryMode.
func DTW(a, b []geom.Point, opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	if o.MemoryMode == FullMatrix {
		dp := fillMatrix(a, b, o)
		var path []Coord
		if o.ReturnPath {
			path = backtrack(dp, n, m, o.SlopePenalty)
		}
		return dp[n][m], path, nil
	}
	return fillRows(a, b, o), nil, nil
}

// outside reports whether cell (i,j) (1-based) falls outside the band.
func outside(i, j, window int) bool {
	return window >= 0 && absInt(i-j) > window
}

// fillMatrix computes the full (n+1)×(m+1) table.
func fillMatrix(a, b []geom.Point, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			dp[i][j] = a[i-1].Dist(b[j-1]) + min3(
				dp[i-1][j]+o.SlopePenalty,
				dp[i][j-1]+o.SlopePenalty,
				dp[i-1][j-1],
			)
		}
	}
	return dp
}

// fillRows computes D[n][m] keeping only two rows.
func fillRows(a, b []geom.Point, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = a[i-1].Dist(b[j-1]) + min3(
				prev[j]+o.SlopePenalty,
				curr[j-1]+o.SlopePenalty,
				prev[j-1],
			)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// backtrack walks from (n,m) to (1,1) choosing the cheapest predecessor,
// diagonal first on ties, and returns 0-based coordinates in forward order.
func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		switch {
		case i == 1 && j == 1:
			i, j = 0, 0
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
			if diag <= up && diag <= left {
				i, j = i-1, j-1
			} else if up <= left {
				i--
			} else {
				j--
			}
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
