// Package search_test provides runnable examples of the incremental engine.
package search_test

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/colorfield/pixelgrid"
	"github.com/katalvlaran/colorfield/search"
)

// ExampleEngine_Step drives the engine one relaxation round at a time.
func ExampleEngine_Step() {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{10, 0, 0, 255})
	img.SetRGBA(2, 0, color.RGBA{10, 5, 0, 255})
	g, _ := pixelgrid.New(img)

	e, err := search.New(g, pixelgrid.Point{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for step := 1; ; step++ {
		switch out := e.Step().(type) {
		case search.Continuing:
			snap, _ := out.Engine.Snapshot()
			fmt.Printf("step %d: %v", step, snap)
		case search.Finished:
			fmt.Printf("done after %d steps: %v", step, out.Field)
			return
		}
	}
	// Output:
	// step 1: [0, 10, inf]
	// step 2: [0, 10, 15]
	// done after 3 steps: [0, 10, 15]
}

// ExampleSolve runs a whole search in one call.
func ExampleSolve() {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 0, 3, 255})
	img.SetRGBA(0, 1, color.RGBA{1, 0, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{1, 0, 3, 255})
	g, _ := pixelgrid.New(img)

	f, st, err := search.Solve(context.Background(), g, pixelgrid.Point{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(f)
	fmt.Println("steps:", st.Steps)
	// Output:
	// [0, 3]
	// [1, 4]
	// steps: 4
}
