// Package bitgrid stores a binary foreground/background mask and samples the
// 8-connected neighbourhood of its pixels.
//
// What:
//
//   - Grid wraps a width×height field of 0/1 cells in a single row-major slice.
//   - Neighborhood returns the eight neighbours of an interior pixel in
//     clockwise order starting at North: N, NE, E, SE, S, SW, W, NW.
//   - Points enumerates foreground pixels in raster order as image-centred
//     geom.Points.
//   - Components finds 8-connected foreground regions (BFS).
//   - FromImage/Image convert to and from the standard image types that
//     collaborators (decoders, edge detectors) produce.
//
// Why:
//
//   - Thinning algorithms read neighbourhoods millions of times; a flat []uint8
//     keeps them cache friendly and lets predicates multiply neighbour values.
//
// Complexity:
//
//   - Get/Set/Neighborhood: O(1).
//   - Points, Count, Equal, Clone: O(W×H).
//   - Components: O(W×H×8) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is zero.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinates outside the grid.
//
// Neighborhood panics on non-interior coordinates: border pixels are never
// sampled, which keeps every thinning predicate in bounds.
package bitgrid
