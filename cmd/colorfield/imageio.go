package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decodeImage reads any format registered with the image package.
func decodeImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open the image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, format, nil
}

// downscale shrinks img so its longer side is at most maxSize, preserving the
// aspect ratio. It returns the ratio applied (1 when no resize happened).
// maxSize ≤ 0 disables resizing.
func downscale(img image.Image, maxSize int) (image.Image, float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img, 1
	}
	scale := float64(maxSize) / float64(max(w, h))
	nw := max(1, int(float64(w)*scale))
	nh := max(1, int(float64(h)*scale))
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, scale
}

// scaleOrigin maps a source-image coordinate onto a grid resized by scale,
// clamped into [0, w) × [0, h).
func scaleOrigin(o OriginConfig, scale float64, w, h int) (x, y int) {
	x = min(int(float64(o.X)*scale), w-1)
	y = min(int(float64(o.Y)*scale), h-1)
	return x, y
}

// writePNG encodes img to path through a temporary file and rename, so a
// viewer polling path never sees a half-written image.
func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".colorfield-*.png")
	if err != nil {
		return fmt.Errorf("failed to create a temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
