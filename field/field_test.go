// SPDX-License-Identifier: MIT

package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colorfield/field"
)

func TestNew_AllUnreached(t *testing.T) {
	f, err := field.New(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, f.Width())
	require.Equal(t, 2, f.Height())
	require.Equal(t, 6, f.Len())
	require.Equal(t, 6, f.CountUnreached())
	for _, v := range f.Values() {
		require.True(t, field.IsUnreached(v))
	}
}

func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := field.New(dims[0], dims[1])
		require.ErrorIs(t, err, field.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestAtSet(t *testing.T) {
	f, err := field.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, f.Set(1, 0, 4.5))
	v, err := f.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(4.5), v)
	assert.True(t, f.Reached(1, 0))
	assert.False(t, f.Reached(0, 0))
	assert.False(t, f.Reached(5, 5))

	_, err = f.At(2, 0)
	require.ErrorIs(t, err, field.ErrOutOfRange)
	require.ErrorIs(t, f.Set(0, -1, 1), field.ErrOutOfRange)
	require.ErrorIs(t, f.Set(0, 0, float32(math.NaN())), field.ErrNaN)
	require.NoError(t, f.Set(0, 0, field.Unreached))
}

func TestGetPut_RowMajor(t *testing.T) {
	f, err := field.New(3, 2)
	require.NoError(t, err)
	f.Put(1*3+2, 7)
	v, err := f.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)
	assert.Equal(t, float32(7), f.Get(5))
}

func TestFromRows(t *testing.T) {
	inf := field.Unreached
	f, err := field.FromRows([][]float32{{0, 1, inf}, {2, 3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 2, f.Height())
	assert.Equal(t, [][]float32{{0, 1, inf}, {2, 3, 4}}, f.Rows())

	_, err = field.FromRows(nil)
	require.ErrorIs(t, err, field.ErrInvalidDimensions)
	_, err = field.FromRows([][]float32{{1, 2}, {3}})
	require.ErrorIs(t, err, field.ErrNonRectangular)
	_, err = field.FromRows([][]float32{{float32(math.NaN())}})
	require.ErrorIs(t, err, field.ErrNaN)
}

func TestClone_Independent(t *testing.T) {
	f, err := field.FromRows([][]float32{{0, 1}, {2, 3}})
	require.NoError(t, err)
	c := f.Clone()
	require.NoError(t, f.Set(0, 0, 99))

	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(0), v, "clone must not share memory with the original")
}

func TestFurthestAndZeroUnreached(t *testing.T) {
	inf := field.Unreached
	f, err := field.FromRows([][]float32{{0, inf}, {7.5, 2}})
	require.NoError(t, err)
	assert.Equal(t, float32(7.5), f.Furthest())

	z := f.ZeroUnreached()
	assert.Equal(t, [][]float32{{0, 0}, {7.5, 2}}, z.Rows())
	assert.Equal(t, 1, f.CountUnreached(), "ZeroUnreached must not modify the receiver")

	allInf, err := field.New(2, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(0), allInf.Furthest())
}

func TestEqual(t *testing.T) {
	inf := field.Unreached
	a, _ := field.FromRows([][]float32{{0, 1.0, inf}})
	b, _ := field.FromRows([][]float32{{0, 1.0005, inf}})
	c, _ := field.FromRows([][]float32{{0, 1.0, 3}})
	d, _ := field.FromRows([][]float32{{0}, {1}, {2}})

	ok, err := a.Equal(b, 1e-3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Equal(b, 1e-5)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = a.Equal(c, 1)
	require.NoError(t, err)
	assert.False(t, ok, "unreached never equals a finite value")

	_, err = a.Equal(d, 0)
	require.ErrorIs(t, err, field.ErrDimensionMismatch)
}

func TestString(t *testing.T) {
	f, err := field.FromRows([][]float32{{0, field.Unreached}, {1.5, 2}})
	require.NoError(t, err)
	assert.Equal(t, "[0, inf]\n[1.5, 2]\n", f.String())
}
