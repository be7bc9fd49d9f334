package pipeline

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/epicycles/bitgrid"
	"github.com/katalvlaran/epicycles/fidelity"
	"github.com/katalvlaran/epicycles/geom"
	"github.com/katalvlaran/epicycles/pathorder"
	"github.com/katalvlaran/epicycles/spectrum"
	"github.com/katalvlaran/epicycles/thinning"
)

// Options bundles the per-stage settings.
//
// Fields:
//   - Thinning — passed to thinning.Thin.
//   - Order    — selects the pathorder strategy.
//   - Spectrum — threshold and term count for spectrum.Decompose.
//   - Fidelity — nil skips the fidelity stage.
type Options struct {
	Thinning thinning.Options
	Order    pathorder.Options
	Spectrum spectrum.Options
	Fidelity *fidelity.Options
}

// DefaultOptions runs thinning to its fixed point, orders greedily, keeps
// up to 500 epicycles above 0.001 and skips fidelity scoring.
func DefaultOptions() Options {
	return Options{
		Thinning: thinning.DefaultOptions(),
		Order:    pathorder.DefaultOptions(),
		Spectrum: spectrum.DefaultOptions(),
	}
}

// Result holds every artefact of one run.
type Result struct {
	// Skeleton is the thinned mask.
	Skeleton *bitgrid.Grid
	// Points are the skeleton pixels in raster order, image-centred.
	Points []geom.Point
	// Path is Points reordered into one stroke.
	Path []geom.Point
	// Epicycles are ranked by amplitude, largest first.
	Epicycles []spectrum.Epicycle
	// Components is the number of 8-connected skeleton pieces.
	Components int
	// PathLength is the open length of Path.
	PathLength float64
	// Jumps counts steps of Path longer than one diagonal pixel.
	Jumps int
	// Thinning reports the thinner's passes and removals.
	Thinning thinning.Stats
	// Fidelity is nil unless Options.Fidelity was set.
	Fidelity *fidelity.Report
}

// Run executes every stage on mask. The mask is not modified.
//
// Errors (all *StageError):
//   - thin:      bitgrid.ErrEmptyGrid for a nil mask.
//   - order:     pathorder.ErrUnknownStrategy.
//   - decompose: spectrum.ErrEmptyInput when the skeleton has no pixel;
//     spectrum.ErrDegenerateSpectrum is advisory and comes with a Result.
//   - fidelity:  any fidelity option error.
func Run(mask *bitgrid.Grid, opts Options) (*Result, error) {
	log := Logger()
	if mask == nil {
		return nil, &StageError{Stage: StageThin, Err: bitgrid.ErrEmptyGrid}
	}

	// Stage 1: thinning.
	skel, stats := thinning.Thin(mask, opts.Thinning)
	log.Debug("pipeline: thinned",
		slog.Int("width", mask.Width()),
		slog.Int("height", mask.Height()),
		slog.Int("passes", stats.Passes),
		slog.Int("removed", stats.Removed),
		slog.Bool("converged", stats.Converged),
	)
	if !stats.Converged {
		log.Warn("pipeline: thinning stopped before its fixed point", slog.Int("max_passes", opts.Thinning.MaxPasses))
	}

	points := skel.Points()
	components := len(skel.Components())
	log.Debug("pipeline: skeleton", slog.Int("points", len(points)), slog.Int("components", components))
	if components > 1 {
		log.Warn("pipeline: skeleton is disconnected; the path will jump between pieces",
			slog.Int("components", components))
	}

	// Stage 2: ordering.
	orderer, err := pathorder.New(opts.Order)
	if err != nil {
		return nil, &StageError{Stage: StageOrder, Err: err}
	}
	path := orderer.Order(points)
	res := &Result{
		Skeleton:   skel,
		Points:     points,
		Path:       path,
		Components: components,
		PathLength: pathorder.Length(path),
		Jumps:      pathorder.Jumps(path, math.Sqrt2),
		Thinning:   stats,
	}
	log.Debug("pipeline: ordered",
		slog.String("strategy", string(opts.Order.Strategy)),
		slog.Float64("length", res.PathLength),
		slog.Int("jumps", res.Jumps),
	)

	// Stage 3: decomposition.
	var advisory error
	res.Epicycles, err = spectrum.Decompose(path, opts.Spectrum)
	switch {
	case errors.Is(err, spectrum.ErrDegenerateSpectrum):
		log.Warn("pipeline: no epicycle above the amplitude threshold",
			slog.Float64("min_amplitude", opts.Spectrum.MinAmplitude))
		advisory = &StageError{Stage: StageDecompose, Err: err}
	case err != nil:
		return nil, &StageError{Stage: StageDecompose, Err: err}
	default:
		log.Debug("pipeline: decomposed",
			slog.Int("samples", len(path)),
			slog.Int("epicycles", len(res.Epicycles)),
			slog.Float64("largest", res.Epicycles[0].Amplitude),
		)
	}

	// Stage 4: optional fidelity.
	if opts.Fidelity != nil {
		rep, err := fidelity.Score(path, res.Epicycles, opts.Fidelity)
		if err != nil {
			return nil, &StageError{Stage: StageFidelity, Err: err}
		}
		res.Fidelity = &rep
		log.Debug("pipeline: fidelity",
			slog.Float64("mean_dtw", rep.Mean),
			slog.Float64("rms", rep.RMSError),
			slog.Float64("max", rep.MaxError),
		)
	}

	return res, advisory
}
