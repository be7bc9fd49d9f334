package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif" // register GIF decoding
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/segment"
	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/katalvlaran/epicycles/bitgrid"
)

var (
	// ErrNilImage indicates a nil image.
	ErrNilImage = errors.New("imaging: nil image")
	// ErrUnknownMode indicates an unsupported MaskOptions.Mode.
	ErrUnknownMode = errors.New("imaging: unknown mask mode")
	// ErrUnknownFormat indicates an output extension SaveMask cannot encode.
	ErrUnknownFormat = errors.New("imaging: unsupported output format")
)

// Mode selects how EdgeMask turns pixels into foreground.
type Mode string

const (
	// ModeEdges keeps detected edges.
	ModeEdges Mode = "edges"
	// ModeSilhouette keeps pixels brighter than the threshold.
	ModeSilhouette Mode = "silhouette"
)

// MaskOptions configures EdgeMask.
//
// Fields:
//   - Mode         — ModeEdges (default when empty) or ModeSilhouette.
//   - BlurRadius   — Gaussian pre-blur; 0 disables it.
//   - EdgeRadius   — Laplacian kernel radius (ModeEdges only).
//   - Threshold    — gray level at or above which a pixel is foreground.
//   - DilateRadius — morphological dilation after thresholding; 0 disables it.
//   - Invert       — invert the grayscale image first (dark shapes on light paper).
type MaskOptions struct {
	Mode         Mode
	BlurRadius   float64
	EdgeRadius   float64
	Threshold    uint8
	DilateRadius float64
	Invert       bool
}

// DefaultMaskOptions returns edge mode with radius 1, threshold 128 and a
// dilation radius of 2.
func DefaultMaskOptions() MaskOptions {
	return MaskOptions{
		Mode:         ModeEdges,
		BlurRadius:   0,
		EdgeRadius:   1,
		Threshold:    128,
		DilateRadius: 2,
	}
}

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: load %s: %w", path, err)
	}
	return img, nil
}

// EdgeMask turns img into a binary grid per opts.
//
// Steps (ModeEdges):
//  1. Flatten transparency onto black, grayscale, then Invert if requested.
//  2. Gaussian blur when BlurRadius > 0.
//  3. Edge detection with EdgeRadius.
//  4. Threshold at Threshold.
//  5. Dilate when DilateRadius > 0.
//
// ModeSilhouette skips step 3.
func EdgeMask(img image.Image, opts MaskOptions) (*bitgrid.Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("imaging: %w", bitgrid.ErrEmptyGrid)
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeEdges
	}
	if mode != ModeEdges && mode != ModeSilhouette {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}

	var cur image.Image = effect.Grayscale(flatten(img))
	if opts.Invert {
		cur = effect.Invert(cur)
	}
	if opts.BlurRadius > 0 {
		cur = blur.Gaussian(cur, opts.BlurRadius)
	}
	if mode == ModeEdges {
		cur = effect.EdgeDetection(cur, opts.EdgeRadius)
	}
	cur = segment.Threshold(cur, opts.Threshold)
	if opts.DilateRadius > 0 {
		cur = effect.Dilate(cur, opts.DilateRadius)
	}

	// Threshold and dilation only emit 0 and 255.
	return bitgrid.FromImage(cur, 128)
}

// flatten composites img over opaque black. bild's threshold treats fully
// transparent pixels as white, which would turn an empty background into
// foreground.
func flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}

// SaveMask writes g as a black and white image. The format follows the
// extension of path: .png or .bmp.
func SaveMask(path string, g *bitgrid.Grid) error {
	var enc imgio.Encoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = imgio.PNGEncoder()
	case ".bmp":
		enc = imgio.BMPEncoder()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if err := imgio.Save(path, g.Image(), enc); err != nil {
		return fmt.Errorf("imaging: save %s: %w", path, err)
	}
	return nil
}
