package render

import (
	"image"

	"github.com/katalvlaran/colorfield/field"
)

// Grayscale maps each finite distance d to the gray level d*255/furthest,
// where furthest is the largest finite distance in f. The furthest cells map
// to 255. Unreached cells become UnreachedColor.
//
// When furthest is 0 (a single-point field, or zero-cost edges everywhere)
// every finite cell maps to gray 0 instead of dividing by zero.
// Complexity: O(W×H).
func Grayscale(f *field.Field) *image.RGBA {
	w, h := f.Width(), f.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	furthest := f.Furthest()

	vals := f.Values()
	for i, d := range vals {
		px := img.Pix[i*4 : i*4+4 : i*4+4]
		if field.IsUnreached(d) {
			px[0], px[1], px[2], px[3] = UnreachedColor.R, UnreachedColor.G, UnreachedColor.B, UnreachedColor.A
			continue
		}
		var g uint8
		if furthest > 0 {
			g = saturate(d * 255 / furthest)
		}
		px[0], px[1], px[2], px[3] = g, g, g, 255
	}
	return img
}

// saturate truncates v toward zero into [0,255].
func saturate(v float32) uint8 {
	switch {
	case v != v, v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
