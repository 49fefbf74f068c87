package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colorfield/field"
	"github.com/katalvlaran/colorfield/render"
)

func mustField(t *testing.T, rows [][]float32) *field.Field {
	t.Helper()
	f, err := field.FromRows(rows)
	require.NoError(t, err)
	return f
}

func TestGrayscale_SingleCell(t *testing.T) {
	img := render.Grayscale(mustField(t, [][]float32{{0}}))
	assert.Equal(t, []uint8{0, 0, 0, 255}, img.Pix)
}

func TestGrayscale_ScalesByFurthest(t *testing.T) {
	img := render.Grayscale(mustField(t, [][]float32{{0, 10}}))
	assert.Equal(t, []uint8{0, 0, 0, 255, 255, 255, 255, 255}, img.Pix)

	img = render.Grayscale(mustField(t, [][]float32{{0, 5, 10}}))
	assert.Equal(t, color.RGBA{127, 127, 127, 255}, img.RGBAAt(1, 0), "127.5 truncates to 127")
}

func TestGrayscale_UniformZeroFieldDoesNotDivideByZero(t *testing.T) {
	img := render.Grayscale(mustField(t, [][]float32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(x, y))
		}
	}
}

func TestGrayscale_UnreachedIsMagentaAndIgnoredForScale(t *testing.T) {
	inf := field.Unreached
	img := render.Grayscale(mustField(t, [][]float32{{0, 4}, {inf, 2}}))
	assert.Equal(t, render.UnreachedColor, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{127, 127, 127, 255}, img.RGBAAt(1, 1))

	allInf, err := field.New(2, 1)
	require.NoError(t, err)
	img = render.Grayscale(allInf)
	assert.Equal(t, render.UnreachedColor, img.RGBAAt(0, 0))
	assert.Equal(t, render.UnreachedColor, img.RGBAAt(1, 0))
}

func TestGradient_Boundaries(t *testing.T) {
	f := mustField(t, [][]float32{{0, 1, 4}})

	gx, gy := render.Gradient(f, render.BoundaryWrap)
	assert.Equal(t, [][]float32{{-3, 4, -1}}, gx.Rows())
	assert.Equal(t, [][]float32{{0, 0, 0}}, gy.Rows(), "a single row has no y gradient")

	gx, _ = render.Gradient(f, render.BoundaryClamp)
	assert.Equal(t, [][]float32{{1, 4, 3}}, gx.Rows())
}

func TestGradient_YAxisAndUnreachedZeroed(t *testing.T) {
	inf := field.Unreached
	f := mustField(t, [][]float32{{2}, {inf}, {5}, {6}})

	_, gy := render.Gradient(f, render.BoundaryWrap)
	// zeroed column: 2, 0, 5, 6
	assert.Equal(t, [][]float32{{0 - 6}, {5 - 2}, {6 - 0}, {2 - 5}}, gy.Rows())

	_, gy = render.Gradient(f, render.BoundaryClamp)
	assert.Equal(t, [][]float32{{0 - 2}, {5 - 2}, {6 - 0}, {6 - 5}}, gy.Rows())
	assert.Equal(t, 1, f.CountUnreached(), "input must not be modified")
}

func TestGradient_TwoWideWrapCancels(t *testing.T) {
	gx, _ := render.Gradient(mustField(t, [][]float32{{0, 9}}), render.BoundaryWrap)
	assert.Equal(t, [][]float32{{0, 0}}, gx.Rows())
}

func TestGradientMagnitude(t *testing.T) {
	img := render.GradientMagnitude(mustField(t, [][]float32{{0, 1, 4}}))
	assert.Equal(t, []uint8{3, 0, 0, 255, 4, 0, 0, 255, 1, 0, 0, 255}, img.Pix)

	img = render.GradientMagnitude(mustField(t, [][]float32{{0, 300, 0}}), render.WithBoundary(render.BoundaryClamp))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 0), "saturates above 255")
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(1, 0))
}

func TestGradientOrientation(t *testing.T) {
	img := render.GradientOrientation(mustField(t, [][]float32{{0, 1, 4}}))
	assert.Equal(t, color.RGBA{0, 127, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 127, 0, 255}, img.RGBAAt(1, 0))

	diag := mustField(t, [][]float32{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}})
	img = render.GradientOrientation(diag, render.WithBoundary(render.BoundaryClamp))
	assert.Equal(t, color.RGBA{217, 217, 0, 255}, img.RGBAAt(1, 1))
}

func TestGradientOrientation_ZeroVector(t *testing.T) {
	img := render.GradientOrientation(mustField(t, [][]float32{{7}}))
	assert.Equal(t, render.DegenerateOrientation, img.RGBAAt(0, 0))

	img = render.GradientOrientation(mustField(t, [][]float32{{0, 0}, {0, 0}}))
	for _, c := range []color.RGBA{img.RGBAAt(0, 0), img.RGBAAt(1, 1)} {
		assert.Equal(t, render.DegenerateOrientation, c)
	}
}

func TestConverters_Idempotent(t *testing.T) {
	inf := field.Unreached
	f := mustField(t, [][]float32{{0, 3, inf}, {7, 1, 2}, {inf, 9, 4}})
	for _, name := range render.Names() {
		conv, err := render.Lookup(name)
		require.NoError(t, err)
		for _, b := range []render.Boundary{render.BoundaryWrap, render.BoundaryClamp} {
			a := conv(f, render.WithBoundary(b))
			c := conv(f, render.WithBoundary(b))
			require.Equal(t, a.Pix, c.Pix, "%s/%s", name, b)
			require.Equal(t, f.Width(), a.Bounds().Dx())
			require.Equal(t, f.Height(), a.Bounds().Dy())
		}
	}
}

func TestLookupAndNames(t *testing.T) {
	assert.Equal(t, []string{"gradient", "gray", "orientation"}, render.Names())
	_, err := render.Lookup("sepia")
	require.ErrorIs(t, err, render.ErrUnknownConverter)
}

func TestParseBoundary(t *testing.T) {
	b, err := render.ParseBoundary("Clamp")
	require.NoError(t, err)
	assert.Equal(t, render.BoundaryClamp, b)
	assert.Equal(t, "clamp", b.String())

	b, err = render.ParseBoundary("")
	require.NoError(t, err)
	assert.Equal(t, render.BoundaryWrap, b)

	_, err = render.ParseBoundary("mirror")
	require.ErrorIs(t, err, render.ErrUnknownBoundary)
	assert.Equal(t, "Boundary(7)", render.Boundary(7).String())
}
