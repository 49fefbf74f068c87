package render

import (
	"image"
	"math"

	"github.com/katalvlaran/colorfield/field"
)

// Gradient returns the unscaled central differences of f along x and y.
// Unreached cells are read as 0. Border cells follow b (see Boundary).
// Both results have f's dimensions and contain only finite values.
// Complexity: O(W×H).
func Gradient(f *field.Field, b Boundary) (gx, gy *field.Field) {
	w, h := f.Width(), f.Height()
	z := f.ZeroUnreached()
	gx = z.Clone()
	gy = z.Clone()

	for y := 0; y < h; y++ {
		up, down := neighbours(y, h, b)
		for x := 0; x < w; x++ {
			left, right := neighbours(x, w, b)
			gx.Put(y*w+x, z.Get(y*w+right)-z.Get(y*w+left))
			gy.Put(y*w+x, z.Get(down*w+x)-z.Get(up*w+x))
		}
	}
	return gx, gy
}

// neighbours returns the indices read as i−1 and i+1 on an axis of length n.
func neighbours(i, n int, b Boundary) (prev, next int) {
	if b == BoundaryClamp {
		return max(i-1, 0), min(i+1, n-1)
	}
	return (i - 1 + n) % n, (i + 1) % n
}

// GradientMagnitude paints R = |∂x| and G = |∂y|, each truncated and
// saturated to 8 bits; B = 0, A = 255.
// Complexity: O(W×H).
func GradientMagnitude(f *field.Field, opts ...Option) *image.RGBA {
	cfg := buildOptions(opts)
	gx, gy := Gradient(f, cfg.Boundary)

	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for i := 0; i < f.Len(); i++ {
		px := img.Pix[i*4 : i*4+4 : i*4+4]
		px[0] = saturate(abs32(gx.Get(i)))
		px[1] = saturate(abs32(gy.Get(i)))
		px[2] = 0
		px[3] = 255
	}
	return img
}

// GradientOrientation paints the unit gradient (nx, ny) as
// R = (nx+1)·127.5 and G = (ny+1)·127.5, truncated; B = 0, A = 255.
// Cells whose gradient is the zero vector are painted DegenerateOrientation.
// Complexity: O(W×H).
func GradientOrientation(f *field.Field, opts ...Option) *image.RGBA {
	cfg := buildOptions(opts)
	gx, gy := Gradient(f, cfg.Boundary)

	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for i := 0; i < f.Len(); i++ {
		px := img.Pix[i*4 : i*4+4 : i*4+4]
		dx, dy := float64(gx.Get(i)), float64(gy.Get(i))
		n := math.Hypot(dx, dy)
		if n == 0 {
			c := DegenerateOrientation
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
			continue
		}
		px[0] = saturate(float32((dx/n + 1) * 127.5))
		px[1] = saturate(float32((dy/n + 1) * 127.5))
		px[2] = 0
		px[3] = 255
	}
	return img
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
