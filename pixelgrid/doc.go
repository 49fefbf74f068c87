// Package pixelgrid treats an RGBA image as a 4-connected grid of cells and
// defines the color traversal cost between adjacent cells.
//
// What:
//
//   - Grid wraps an *image.RGBA (borrowed, never mutated) anchored at (0,0).
//   - Point is a grid coordinate; Pixel is an 8-bit RGBA sample.
//   - Cost(a, b) is |Ra−Rb| + |Ga−Gb| + |Ba−Bb|; alpha is ignored.
//   - Neighbors enumerates the in-bounds N, S, E, W neighbours of a cell;
//     there is no wraparound and no clamping at the border.
//
// Complexity:
//
//   - At, InBounds, Index, Coordinate, Cost: O(1).
//   - FromImage: O(W×H) time and memory (one normalising copy).
//   - New: O(1), no copy.
//
// Errors:
//
//   - ErrNilImage: nil image passed to New or FromImage.
//   - ErrEmptyGrid: zero-width or zero-height image.
package pixelgrid
