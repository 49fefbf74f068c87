package pixelgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for pixelgrid operations.
var (
	// ErrNilImage indicates a nil image was passed to a constructor.
	ErrNilImage = errors.New("pixelgrid: image is nil")
	// ErrEmptyGrid indicates the image has zero width or zero height.
	ErrEmptyGrid = errors.New("pixelgrid: grid must have at least one row and one column")
)

// MaxCost is the largest value Cost can return (3 channels × 255).
const MaxCost float32 = 3 * 255

// Point is a grid coordinate. Valid points satisfy 0 ≤ X < width, 0 ≤ Y < height.
type Point struct {
	X, Y int
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Pixel is a single RGBA sample read from the grid.
type Pixel struct {
	R, G, B, A uint8
}

// neighbors4 are the axis-aligned offsets: W, E, N, S.
var neighbors4 = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
