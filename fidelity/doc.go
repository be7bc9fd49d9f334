// Package fidelity measures how closely an epicycle reconstruction follows
// the path it was decomposed from.
//
// 🚀 Why DTW?
//
//	Truncating the spectrum smooths corners and shifts samples along the
//	curve, so a point-by-point comparison overstates the error. Dynamic
//	Time Warping aligns the two sample sequences first and charges only the
//	Euclidean distance between matched points:
//
//	  D[i][j] = |a_i − b_j| + min(D[i−1][j]+p, D[i][j−1]+p, D[i−1][j−1])
//
//	with slope penalty p and an optional Sakoe–Chiba band |i−j| ≤ Window.
//
// ✨ Features:
//   - FullMatrix mode keeps the whole table and can return the warping path.
//   - TwoRows mode keeps two rows: O(m) memory, distance only.
//   - Score combines DTW with pointwise residual statistics (gonum floats).
//
// ⚙️ Usage:
//
//	opts := fidelity.DefaultOptions()
//	opts.Window = 32
//	rep, err := fidelity.Score(path, eps, &opts)
//	fmt.Printf("mean warped error %.3f px\n", rep.Mean)
//
// Performance:
//
//   - Time:   O(n·m), or O(n·w) with a band of width w.
//   - Memory: O(n·m) (FullMatrix) or O(m) (TwoRows).
package fidelity
