// Package config loads every tunable of the pipeline from a TOML file.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default. Unknown keys are rejected so typos do not pass silently.
//
//	[spectrum]
//	min_amplitude = 0.01
//	max_terms     = 200
//
//	[order]
//	strategy = "kdtree"
//
//	[mask]
//	mode   = "silhouette"
//	invert = true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/epicycles/fidelity"
	"github.com/katalvlaran/epicycles/imaging"
	"github.com/katalvlaran/epicycles/pathorder"
	"github.com/katalvlaran/epicycles/pipeline"
	"github.com/katalvlaran/epicycles/spectrum"
	"github.com/katalvlaran/epicycles/thinning"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the file layout.
type Config struct {
	Thinning Thinning `toml:"thinning"`
	Order    Order    `toml:"order"`
	Spectrum Spectrum `toml:"spectrum"`
	Fidelity Fidelity `toml:"fidelity"`
	Mask     Mask     `toml:"mask"`
}

// Thinning mirrors thinning.Options.
type Thinning struct {
	// MaxPasses caps the outer passes; 0 runs to the fixed point.
	MaxPasses int `toml:"max_passes"`
}

// Order mirrors pathorder.Options.
type Order struct {
	// Strategy is "greedy" or "kdtree".
	Strategy string `toml:"strategy"`
}

// Spectrum mirrors spectrum.Options plus the animation sampling rate.
type Spectrum struct {
	MinAmplitude float64 `toml:"min_amplitude"`
	MaxTerms     int     `toml:"max_terms"`
	// Frames is the number of trace samples per revolution.
	Frames int `toml:"frames"`
}

// Fidelity mirrors fidelity.Options; the stage runs only when Enabled.
type Fidelity struct {
	Enabled      bool    `toml:"enabled"`
	Window       int     `toml:"window"`
	SlopePenalty float64 `toml:"slope_penalty"`
	// Memory is "full" or "tworows".
	Memory string `toml:"memory"`
}

// Mask mirrors imaging.MaskOptions.
type Mask struct {
	Mode         string  `toml:"mode"`
	BlurRadius   float64 `toml:"blur_radius"`
	EdgeRadius   float64 `toml:"edge_radius"`
	Threshold    int     `toml:"threshold"`
	DilateRadius float64 `toml:"dilate_radius"`
	Invert       bool    `toml:"invert"`
}

// Default returns the configuration matching every package's defaults.
// Fidelity scoring is off; when enabled it uses a ±64 band and two rows.
func Default() Config {
	sp := spectrum.DefaultOptions()
	mk := imaging.DefaultMaskOptions()
	return Config{
		Thinning: Thinning{MaxPasses: thinning.DefaultOptions().MaxPasses},
		Order:    Order{Strategy: string(pathorder.DefaultOptions().Strategy)},
		Spectrum: Spectrum{
			MinAmplitude: sp.MinAmplitude,
			MaxTerms:     sp.MaxTerms,
			Frames:       spectrum.DefaultFrames,
		},
		Fidelity: Fidelity{
			Enabled: false,
			Window:  64,
			Memory:  fidelity.TwoRows.String(),
		},
		Mask: Mask{
			Mode:         string(mk.Mode),
			BlurRadius:   mk.BlurRadius,
			EdgeRadius:   mk.EdgeRadius,
			Threshold:    int(mk.Threshold),
			DilateRadius: mk.DilateRadius,
			Invert:       mk.Invert,
		},
	}
}

// Parse decodes TOML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// invalid wraps ErrInvalidConfig with a key and a reason.
func invalid(key, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, key, fmt.Sprintf(format, args...))
}

// Validate reports every out-of-range value, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Thinning.MaxPasses < 0 {
		errs = append(errs, invalid("thinning.max_passes", "must be ≥ 0, got %d", c.Thinning.MaxPasses))
	}
	if _, err := pathorder.New(pathorder.Options{Strategy: pathorder.Strategy(c.Order.Strategy)}); err != nil {
		errs = append(errs, invalid("order.strategy", "must be greedy or kdtree, got %q", c.Order.Strategy))
	}
	if c.Spectrum.MinAmplitude < 0 || math.IsNaN(c.Spectrum.MinAmplitude) || math.IsInf(c.Spectrum.MinAmplitude, 0) {
		errs = append(errs, invalid("spectrum.min_amplitude", "must be finite and ≥ 0, got %g", c.Spectrum.MinAmplitude))
	}
	if c.Spectrum.MaxTerms < 1 {
		errs = append(errs, invalid("spectrum.max_terms", "must be ≥ 1, got %d", c.Spectrum.MaxTerms))
	}
	if c.Spectrum.Frames < 1 {
		errs = append(errs, invalid("spectrum.frames", "must be ≥ 1, got %d", c.Spectrum.Frames))
	}
	if c.Fidelity.Window < -1 {
		errs = append(errs, invalid("fidelity.window", "must be ≥ -1, got %d", c.Fidelity.Window))
	}
	if c.Fidelity.SlopePenalty < 0 {
		errs = append(errs, invalid("fidelity.slope_penalty", "must be ≥ 0, got %g", c.Fidelity.SlopePenalty))
	}
	if _, ok := memoryMode(c.Fidelity.Memory); !ok {
		errs = append(errs, invalid("fidelity.memory", "must be full or tworows, got %q", c.Fidelity.Memory))
	}
	switch imaging.Mode(c.Mask.Mode) {
	case imaging.ModeEdges:
		if c.Mask.EdgeRadius <= 0 {
			errs = append(errs, invalid("mask.edge_radius", "must be > 0 in edges mode, got %g", c.Mask.EdgeRadius))
		}
	case imaging.ModeSilhouette:
	default:
		errs = append(errs, invalid("mask.mode", "must be edges or silhouette, got %q", c.Mask.Mode))
	}
	if c.Mask.Threshold < 0 || c.Mask.Threshold > 255 {
		errs = append(errs, invalid("mask.threshold", "must be in [0, 255], got %d", c.Mask.Threshold))
	}
	if c.Mask.BlurRadius < 0 || c.Mask.DilateRadius < 0 {
		errs = append(errs, invalid("mask", "radii must be ≥ 0, got blur %g dilate %g", c.Mask.BlurRadius, c.Mask.DilateRadius))
	}
	return errors.Join(errs...)
}

// memoryMode resolves a configuration name to a fidelity.MemoryMode.
func memoryMode(name string) (fidelity.MemoryMode, bool) {
	for _, m := range []fidelity.MemoryMode{fidelity.FullMatrix, fidelity.TwoRows} {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// PipelineOptions converts c into pipeline.Options. c should be valid.
func (c Config) PipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		Thinning: thinning.Options{MaxPasses: c.Thinning.MaxPasses},
		Order:    pathorder.Options{Strategy: pathorder.Strategy(c.Order.Strategy)},
		Spectrum: spectrum.Options{
			MinAmplitude: c.Spectrum.MinAmplitude,
			MaxTerms:     c.Spectrum.MaxTerms,
		},
	}
	if c.Fidelity.Enabled {
		mode, _ := memoryMode(c.Fidelity.Memory)
		opts.Fidelity = &fidelity.Options{
			Window:       c.Fidelity.Window,
			SlopePenalty: c.Fidelity.SlopePenalty,
			MemoryMode:   mode,
		}
	}
	return opts
}

// MaskOptions converts c into imaging.MaskOptions. c should be valid.
func (c Config) MaskOptions() imaging.MaskOptions {
	return imaging.MaskOptions{
		Mode:         imaging.Mode(c.Mask.Mode),
		BlurRadius:   c.Mask.BlurRadius,
		EdgeRadius:   c.Mask.EdgeRadius,
		Threshold:    uint8(c.Mask.Threshold),
		DilateRadius: c.Mask.DilateRadius,
		Invert:       c.Mask.Invert,
	}
}
