package pixelgrid

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Grid is a read-only rectangular grid of RGBA samples.
// The backing image is borrowed: Grid never writes to it, and callers must not
// mutate it while a search is reading it.
type Grid struct {
	width, height int
	img           *image.RGBA
}

// New wraps img without copying. The image bounds may start anywhere; grid
// coordinates are relative to img.Bounds().Min.
// Returns ErrNilImage for nil and ErrEmptyGrid for a zero-area image.
// Complexity: O(1).
func New(img *image.RGBA) (*Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyGrid
	}
	if b.Min != (image.Point{}) {
		// Pix[0] already holds the sample at Rect.Min; rebase so At(0,0) reads it.
		img = &image.RGBA{
			Pix:    img.Pix,
			Stride: img.Stride,
			Rect:   image.Rect(0, 0, b.Dx(), b.Dy()),
		}
	}

	return &Grid{width: b.Dx(), height: b.Dy(), img: img}, nil
}

// FromImage converts any image.Image into a Grid, copying its pixels into a
// fresh *image.RGBA anchored at (0,0). An *image.RGBA input is still copied so
// the grid never aliases caller memory.
// Note that image.RGBA stores alpha-premultiplied values, so translucent
// pixels contribute their premultiplied channels to Cost.
// Complexity: O(W×H).
func FromImage(src image.Image) (*Grid, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyGrid
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)

	return &Grid{width: b.Dx(), height: b.Dy(), img: dst}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells (W×H).
func (g *Grid) Len() int { return g.width * g.height }

// Bounds returns the grid rectangle [0,W)×[0,H).
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid) Contains(p Point) bool { return g.InBounds(p.X, p.Y) }

// At returns the sample at (x,y). The caller guarantees InBounds(x,y).
// Complexity: O(1).
func (g *Grid) At(x, y int) Pixel {
	i := y*g.img.Stride + x*4
	s := g.img.Pix[i : i+4 : i+4]
	return Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Neighbors appends the in-bounds 4-neighbours of p to buf and returns it.
// Order is W, E, N, S. Cells on the border get fewer than four neighbours.
// Pass a reusable buf (capacity 4) to avoid allocating in hot loops.
func (g *Grid) Neighbors(p Point, buf []Point) []Point {
	for _, d := range neighbors4 {
		nx, ny := p.X+d.X, p.Y+d.Y
		if !g.InBounds(nx, ny) {
			continue
		}
		buf = append(buf, Point{X: nx, Y: ny})
	}
	return buf
}

// EdgeCost returns Cost between the samples at a and b.
// The caller guarantees both points are in bounds.
func (g *Grid) EdgeCost(a, b Point) float32 {
	return Cost(g.At(a.X, a.Y), g.At(b.X, b.Y))
}
