package bitgrid

import (
	"image"
	"image/color"
)

// FromImage converts img to a grid: a pixel is foreground when its gray
// luminance is ≥ level. Use level 1 for "any non-zero pixel", which is what
// edge detectors and threshold filters emit.
// The grid origin is img.Bounds().Min.
// Returns ErrEmptyGrid for an empty image.
func FromImage(img image.Image, level uint8) (*Grid, error) {
	b := img.Bounds()
	g, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.height; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+g.width]
			for x, v := range row {
				if v >= level {
					g.cells[g.index(x, y)] = 1
				}
			}
		}
		return g, nil
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if c.Y >= level {
				g.cells[g.index(x, y)] = 1
			}
		}
	}
	return g, nil
}

// Image renders g as an 8-bit gray image: foreground 255, background 0.
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for i, v := range g.cells {
		if v != 0 {
			img.Pix[i] = 0xFF
		}
	}
	return img
}
