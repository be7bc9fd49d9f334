// Package imaging adapts image files to the binary masks the pipeline
// consumes. It sits outside the algorithmic core: decoding, edge detection,
// blurring, thresholding and dilation are delegated to bild.
//
// Two mask modes are offered:
//
//   - ModeEdges draws the outline of whatever is in the picture: grayscale,
//     optional Gaussian blur, Laplacian edge detection, threshold, dilation.
//     Dilation thickens broken edge fragments so thinning can join them.
//   - ModeSilhouette thresholds the (optionally inverted) grayscale image and
//     keeps the filled shape; thinning then finds its medial axis.
//
// Load understands PNG, JPEG, GIF, BMP, TIFF and WebP.
package imaging
