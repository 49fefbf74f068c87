// Package render converts distance fields into 8-bit RGBA pixel buffers.
//
// Every converter is a pure function of its input field: the same field always
// yields byte-identical output, and the field is never modified. Outputs are
// *image.RGBA anchored at (0,0) with the field's dimensions; their Pix slice is
// row-major RGBA and can be uploaded to a texture as-is.
//
// Converters:
//
//   - Grayscale: distance scaled into 0–255 by the furthest finite distance;
//     Unreached cells are painted UnreachedColor (opaque magenta).
//   - GradientMagnitude: R = |∂x|, G = |∂y| of the field (Unreached read as 0),
//     saturated to 255, B = 0.
//   - GradientOrientation: the unit gradient vector mapped from [−1,1] to
//     [0,255] on R and G, B = 0. Cells with a zero gradient get
//     DegenerateOrientation.
//
// Gradients use unscaled central differences v[i+1] − v[i−1]. At the border the
// Boundary option decides the missing neighbour:
//
//   - BoundaryWrap (default): the opposite edge, as if the field were periodic.
//   - BoundaryClamp: the border cell itself, giving a one-sided difference.
//
// A field that is one cell wide (or tall) has zero gradient along that axis in
// both modes.
package render
