// Package pipeline runs the full mask → skeleton → path → epicycles chain.
//
// Stages, in order:
//
//  1. thin      — thinning.Thin reduces the mask to a one-pixel skeleton.
//  2. order     — the skeleton's raster-order points go through a
//     pathorder.Orderer to become one open stroke.
//  3. decompose — spectrum.Decompose ranks and truncates the epicycles.
//  4. fidelity  — optional: fidelity.Score compares the truncated
//     reconstruction with the stroke.
//
// Errors come back as *StageError naming the failed stage; nothing partial
// is returned. The only exception is an empty epicycle list
// (spectrum.ErrDegenerateSpectrum): Run then returns the complete Result
// together with the advisory error, so callers check
//
//	res, err := pipeline.Run(mask, pipeline.DefaultOptions())
//	if err != nil && !errors.Is(err, spectrum.ErrDegenerateSpectrum) {
//	    return err
//	}
//
// The Result is never written after Run returns; share it freely.
//
// Run is silent unless a logger is installed with SetLogger.
package pipeline
