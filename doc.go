// Package colorfield computes single-source shortest-distance fields over the
// pixel grid of an image, where moving between two 4-adjacent pixels costs the
// sum of their absolute red, green and blue differences.
//
// The search is resumable: an engine performs one relaxation round per Step, so
// a driver can interleave it with other work and watch the field fill in.
//
// Under the hood, everything is organized under these subpackages:
//
//	pixelgrid/ — grid coordinates, pixel samples, 4-neighbourhood and the color cost model
//	frontier/  — min-cost priority queue with lazy (duplicate-tolerant) entries
//	field/     — dense float32 distance field with the +Inf "unreached" sentinel
//	search/    — the incremental Dijkstra engine (Step → Continuing | Finished)
//	progress/  — throttled snapshot producer and latest-only receiver for a second goroutine
//	render/    — grayscale, gradient-magnitude and gradient-orientation converters
//	cmd/colorfield — command-line driver wiring all of the above
//
// Quick example:
//
//	g, _ := pixelgrid.FromImage(img)
//	e, err := search.New(g, pixelgrid.Point{X: 225, Y: 225})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    if fin, ok := e.Step().(search.Finished); ok {
//	        gray := render.Grayscale(fin.Field)
//	        _ = gray
//	        break
//	    }
//	}
//
// Logging is silent by default; see SetLogger.
package colorfield
