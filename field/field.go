// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"strings"
)

// Unreached marks a cell for which no path has been found yet.
var Unreached = float32(math.Inf(1))

// method tags used in error wrappers
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

func fieldErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, x, y, err)
}

// IsUnreached reports whether v is the Unreached sentinel.
func IsUnreached(v float32) bool {
	return math.IsInf(float64(v), 1)
}

// Field is a dense width×height grid of accumulated costs.
//   - w,h hold dimensions (both > 0).
//   - data is a flat row-major buffer of length w*h.
type Field struct {
	w, h int
	data []float32
}

var _ fmt.Stringer = (*Field)(nil)

// New creates a width×height field with every cell set to Unreached.
// Returns ErrInvalidDimensions if either dimension is not positive.
// Complexity: O(W*H).
func New(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]float32, width*height)
	for i := range data {
		data[i] = Unreached
	}

	return &Field{w: width, h: height, data: data}, nil
}

// FromRows builds a field from rows[y][x]. The input is copied.
// Returns ErrInvalidDimensions for an empty input, ErrNonRectangular for ragged
// rows and ErrNaN if any value is NaN.
func FromRows(rows [][]float32) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h, w := len(rows), len(rows[0])
	f := &Field{w: w, h: h, data: make([]float32, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		for x, v := range row {
			if v != v {
				return nil, fieldErrorf(ctxSet, x, y, ErrNaN)
			}
		}
		copy(f.data[y*w:(y+1)*w], row)
	}

	return f, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.w }

// Height returns the number of rows.
func (f *Field) Height() int { return f.h }

// Len returns the number of cells.
func (f *Field) Len() int { return len(f.data) }

// At returns the value at (x,y) or ErrOutOfRange.
// Complexity: O(1).
func (f *Field) At(x, y int) (float32, error) {
	if !f.inBounds(x, y) {
		return 0, fieldErrorf(ctxAt, x, y, ErrOutOfRange)
	}
	return f.data[y*f.w+x], nil
}

// Set stores v at (x,y). Unreached (+Inf) is allowed; NaN is rejected.
// Complexity: O(1).
func (f *Field) Set(x, y int, v float32) error {
	if !f.inBounds(x, y) {
		return fieldErrorf(ctxSet, x, y, ErrOutOfRange)
	}
	if v != v {
		return fieldErrorf(ctxSet, x, y, ErrNaN)
	}
	f.data[y*f.w+x] = v

	return nil
}

// Get returns the value at row-major index i without bounds checking beyond
// the runtime's own. Intended for hot loops that already validated i.
func (f *Field) Get(i int) float32 { return f.data[i] }

// Put stores v at row-major index i. Same contract as Get.
func (f *Field) Put(i int, v float32) { f.data[i] = v }

// Reached reports whether (x,y) holds a finite distance.
// Out-of-range coordinates report false.
func (f *Field) Reached(x, y int) bool {
	return f.inBounds(x, y) && !IsUnreached(f.data[y*f.w+x])
}

// Values returns the row-major buffer. The slice aliases the field; callers
// must treat it as read-only. Use Clone for an independent copy.
func (f *Field) Values() []float32 { return f.data }

// Rows returns a copy of the field as rows[y][x].
func (f *Field) Rows() [][]float32 {
	out := make([][]float32, f.h)
	for y := range out {
		out[y] = make([]float32, f.w)
		copy(out[y], f.data[y*f.w:(y+1)*f.w])
	}
	return out
}

// Clone returns a deep copy. This is the snapshot primitive: the copy shares
// no memory with f.
// Complexity: O(W*H).
func (f *Field) Clone() *Field {
	data := make([]float32, len(f.data))
	copy(data, f.data)

	return &Field{w: f.w, h: f.h, data: data}
}

// CountUnreached returns the number of cells still at Unreached.
func (f *Field) CountUnreached() int {
	n := 0
	for _, v := range f.data {
		if IsUnreached(v) {
			n++
		}
	}
	return n
}

// Furthest returns the largest finite value, treating Unreached as 0.
// A field with no positive finite values returns 0.
func (f *Field) Furthest() float32 {
	var furthest float32
	for _, v := range f.data {
		if IsUnreached(v) {
			continue
		}
		if v > furthest {
			furthest = v
		}
	}
	return furthest
}

// ZeroUnreached returns a copy with every Unreached cell replaced by 0.
func (f *Field) ZeroUnreached() *Field {
	out := f.Clone()
	for i, v := range out.data {
		if IsUnreached(v) {
			out.data[i] = 0
		}
	}
	return out
}

// Equal reports whether g has the same shape as f and every pair of cells is
// within tol of each other. Two Unreached cells are equal; an Unreached cell
// never equals a finite one.
func (f *Field) Equal(g *Field, tol float32) (bool, error) {
	if f.w != g.w || f.h != g.h {
		return false, fmt.Errorf("%dx%d vs %dx%d: %w", f.w, f.h, g.w, g.h, ErrDimensionMismatch)
	}
	for i, a := range f.data {
		b := g.data[i]
		ua, ub := IsUnreached(a), IsUnreached(b)
		if ua || ub {
			if ua != ub {
				return false, nil
			}
			continue
		}
		if d := a - b; d > tol || d < -tol {
			return false, nil
		}
	}
	return true, nil
}

// String renders the field one row per line; Unreached prints as "inf".
func (f *Field) String() string {
	var sb strings.Builder
	for y := 0; y < f.h; y++ {
		sb.WriteString("[")
		for x := 0; x < f.w; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			v := f.data[y*f.w+x]
			if IsUnreached(v) {
				sb.WriteString("inf")
				continue
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && x < f.w && y >= 0 && y < f.h
}
