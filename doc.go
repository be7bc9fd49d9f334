// Package epicycles turns a binary shape into a drawing machine: a chain of
// rotating circles whose tip retraces the shape's outline.
//
// 🚀 What is a Fourier drawing?
//
//	Any closed curve, sampled as complex numbers and read as one period of
//	a signal, is the sum of its Fourier harmonics. Each harmonic is a
//	circle spinning at an integer speed; stacking the circles end to end
//	and keeping the largest ones draws an approximation of the curve.
//
// ✨ The pipeline, leaves first:
//
//	geom/      — image-centred Point, complex view, distances
//	bitgrid/   — binary grid, clockwise 8-neighbourhood sampler, components
//	thinning/  — Zhang–Suen thinning to a one-pixel skeleton
//	pathorder/ — greedy nearest-neighbour stroke ordering (linear scan or k-d tree)
//	spectrum/  — FFT, signed harmonics, ranking, truncation, reconstruction
//	fidelity/  — DTW distance between a path and its reconstruction
//	pipeline/  — mask → skeleton → path → epicycles, with per-stage errors
//	imaging/   — image decoding and mask extraction (edges or silhouette)
//	config/    — TOML configuration of every tunable
//	cmd/epicycles — command-line front end writing JSON
//
// Quick example:
//
//	mask, _ := bitgrid.Parse(`
//		.......
//		.#####.
//		.#...#.
//		.#####.
//		.......
//	`)
//	res, err := pipeline.Run(mask, pipeline.DefaultOptions())
//	if err != nil {
//		// *pipeline.StageError names the failed stage
//	}
//	for _, e := range res.Epicycles {
//		fmt.Println(e.Frequency, e.Amplitude, e.Phase)
//	}
//
// Everything is deterministic: the same mask always yields the same
// skeleton, path and epicycle list.
//
//	go install github.com/katalvlaran/epicycles/cmd/epicycles@latest
package epicycles
