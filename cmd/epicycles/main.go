// Command epicycles turns an image into a ranked list of Fourier epicycles.
//
// Usage:
//
//	epicycles [flags] image
//
// The image is reduced to a binary mask (edges or silhouette), thinned to a
// skeleton, ordered into one stroke and decomposed. The result is written
// as JSON: image size, skeleton points, ordered path and epicycles, plus
// optional fidelity scores and an animation trace.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/epicycles/config"
	"github.com/katalvlaran/epicycles/fidelity"
	"github.com/katalvlaran/epicycles/geom"
	"github.com/katalvlaran/epicycles/imaging"
	"github.com/katalvlaran/epicycles/pipeline"
	"github.com/katalvlaran/epicycles/spectrum"
)

// output is the JSON document written on success.
type output struct {
	Width     int                 `json:"width"`
	Height    int                 `json:"height"`
	Points    []geom.Point        `json:"points"`
	Path      []geom.Point        `json:"path"`
	Epicycles []spectrum.Epicycle `json:"epicycles"`
	Stats     stats               `json:"stats"`
	Fidelity  *fidelity.Report    `json:"fidelity,omitempty"`
	Trace     []geom.Point        `json:"trace,omitempty"`
}

type stats struct {
	Passes     int     `json:"passes"`
	Removed    int     `json:"removed"`
	Components int     `json:"components"`
	PathLength float64 `json:"path_length"`
	Jumps      int     `json:"jumps"`
}

// levelFromFlags maps -vv, -v and -q to a log level; Warn otherwise.
func levelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit: 0 on success, 1 on a failed run,
// 2 on a usage error.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("epicycles", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath  = fs.String("config", "", "TOML configuration file")
		terms    = fs.Int("terms", spectrum.DefaultMaxTerms, "maximum number of epicycles")
		minAmp   = fs.Float64("min-amp", spectrum.DefaultMinAmplitude, "minimum epicycle amplitude (exclusive)")
		order    = fs.String("order", "greedy", "path ordering strategy: greedy or kdtree")
		mode     = fs.String("mode", "edges", "mask mode: edges or silhouette")
		invert   = fs.Bool("invert", false, "invert the image before masking (dark shapes on light paper)")
		score    = fs.Bool("fidelity", false, "score the truncated reconstruction against the path")
		maskOut  = fs.String("mask", "", "also write the binary mask to this .png or .bmp file")
		skelOut  = fs.String("skeleton", "", "also write the skeleton to this .png or .bmp file")
		trace    = fs.Bool("trace", false, "include one revolution of sampled pen positions")
		outPath  = fs.String("o", "", "output JSON file (default stdout)")
		verbose  = fs.Bool("v", false, "log progress")
		vverbose = fs.Bool("vv", false, "log debug details")
		quiet    = fs.Bool("q", false, "log errors only")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: epicycles [flags] image")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: levelFromFlags(*vverbose, *verbose, *quiet),
	}))
	pipeline.SetLogger(log)
	defer pipeline.SetLogger(nil)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Error("load config", "err", err)
			return 1
		}
	}

	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "terms":
			cfg.Spectrum.MaxTerms = *terms
		case "min-amp":
			cfg.Spectrum.MinAmplitude = *minAmp
		case "order":
			cfg.Order.Strategy = *order
		case "mode":
			cfg.Mask.Mode = *mode
		case "invert":
			cfg.Mask.Invert = *invert
		case "fidelity":
			cfg.Fidelity.Enabled = *score
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Error("invalid settings", "err", err)
		return 2
	}

	src := fs.Arg(0)
	img, err := imaging.Load(src)
	if err != nil {
		log.Error("load image", "err", err)
		return 1
	}
	mask, err := imaging.EdgeMask(img, cfg.MaskOptions())
	if err != nil {
		log.Error("build mask", "err", err)
		return 1
	}
	log.Info("mask ready", "file", src, "width", mask.Width(), "height", mask.Height(), "foreground", mask.Count())
	if *maskOut != "" {
		if err := imaging.SaveMask(*maskOut, mask); err != nil {
			log.Error("write mask", "err", err)
			return 1
		}
	}

	res, err := pipeline.Run(mask, cfg.PipelineOptions())
	if err != nil && !errors.Is(err, spectrum.ErrDegenerateSpectrum) {
		log.Error("pipeline failed", "err", err)
		return 1
	}
	if err != nil {
		log.Warn("writing an empty epicycle list; lower -min-amp to keep more terms", "err", err)
	}
	log.Info("decomposed", "points", len(res.Path), "epicycles", len(res.Epicycles), "components", res.Components)

	if *skelOut != "" {
		if err := imaging.SaveMask(*skelOut, res.Skeleton); err != nil {
			log.Error("write skeleton", "err", err)
			return 1
		}
	}

	doc := output{
		Width:     mask.Width(),
		Height:    mask.Height(),
		Points:    res.Points,
		Path:      res.Path,
		Epicycles: res.Epicycles,
		Stats: stats{
			Passes:     res.Thinning.Passes,
			Removed:    res.Thinning.Removed,
			Components: res.Components,
			PathLength: res.PathLength,
			Jumps:      res.Jumps,
		},
		Fidelity: res.Fidelity,
	}
	if *trace {
		doc.Trace = spectrum.Trace(res.Epicycles, cfg.Spectrum.Frames)
	}

	if err := write(*outPath, stdout, doc); err != nil {
		log.Error("write output", "err", err)
		return 1
	}
	return 0
}

// write encodes doc as indented JSON to path, or to stdout when path is empty.
func write(path string, stdout io.Writer, doc output) error {
	if path == "" {
		return encode(stdout, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encode(w io.Writer, doc output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
