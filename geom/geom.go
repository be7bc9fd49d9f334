// Package geom defines the 2D point type shared by the path orderer and the
// spectral decomposer.
//
// Points live in image-centred coordinates: the origin sits at the image
// midpoint, x grows to the right and y grows downwards (raster convention).
// A Point doubles as a complex sample (real = X, imag = Y).
package geom

import (
	"fmt"
	"math/cmplx"
)

// Point is an immutable 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromPixel maps grid coordinates (x,y) of a width×height grid to a
// centred Point: (x − width/2, y − height/2). Halves are kept, so odd-sized
// grids produce .5 offsets.
func FromPixel(x, y, width, height int) Point {
	return Point{
		X: float64(x) - float64(width)/2,
		Y: float64(y) - float64(height)/2,
	}
}

// FromComplex reinterprets a complex sample as a Point.
func FromComplex(z complex128) Point {
	return Point{X: real(z), Y: imag(z)}
}

// Complex reinterprets p as a complex sample.
func (p Point) Complex() complex128 {
	return complex(p.X, p.Y)
}

// DistSq returns the squared Euclidean distance between p and q.
// It is symmetric bit-for-bit, so it is safe to compare ties exactly.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return cmplx.Abs(p.Complex() - q.Complex())
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p−q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Centroid returns the arithmetic mean of pts, or the zero Point for an
// empty slice.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{X: sx / n, Y: sy / n}
}
