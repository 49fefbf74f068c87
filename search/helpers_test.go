package search_test

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colorfield/field"
	"github.com/katalvlaran/colorfield/pixelgrid"
)

// gridOf builds a grid from rows[y][x] of RGBA colors.
func gridOf(t testing.TB, rows [][]color.RGBA) *pixelgrid.Grid {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			img.SetRGBA(x, y, c)
		}
	}
	g, err := pixelgrid.New(img)
	require.NoError(t, err)
	return g
}

// uniformGrid returns a w×h grid where every pixel is c.
func uniformGrid(t testing.TB, w, h int, c color.RGBA) *pixelgrid.Grid {
	t.Helper()
	rows := make([][]color.RGBA, h)
	for y := range rows {
		rows[y] = make([]color.RGBA, w)
		for x := range rows[y] {
			rows[y][x] = c
		}
	}
	return gridOf(t, rows)
}

// randomGrid returns a w×h grid of pseudo-random opaque colors.
func randomGrid(t testing.TB, w, h int, seed int64) *pixelgrid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]color.RGBA, h)
	for y := range rows {
		rows[y] = make([]color.RGBA, w)
		for x := range rows[y] {
			rows[y][x] = color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255}
		}
	}
	return gridOf(t, rows)
}

// referenceDistances computes shortest costs by Bellman-Ford style sweeps,
// independently of the engine and its priority queue.
func referenceDistances(g *pixelgrid.Grid, origin pixelgrid.Point) [][]float32 {
	w, h := g.Width(), g.Height()
	dist := make([][]float32, h)
	for y := range dist {
		dist[y] = make([]float32, w)
		for x := range dist[y] {
			dist[y][x] = field.Unreached
		}
	}
	dist[origin.Y][origin.X] = 0
	for changed := true; changed; {
		changed = false
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				d := dist[y][x]
				if field.IsUnreached(d) {
					continue
				}
				p := pixelgrid.Point{X: x, Y: y}
				for _, nb := range g.Neighbors(p, nil) {
					c := d + g.EdgeCost(p, nb)
					if c < dist[nb.Y][nb.X] {
						dist[nb.Y][nb.X] = c
						changed = true
					}
				}
			}
		}
	}
	return dist
}
