package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/colorfield"
	"github.com/katalvlaran/colorfield/field"
	"github.com/katalvlaran/colorfield/frontier"
	"github.com/katalvlaran/colorfield/pixelgrid"
)

// Engine holds the mutable state of one search.
type Engine struct {
	grid   *pixelgrid.Grid // borrowed, read-only
	origin pixelgrid.Point
	opts   Options

	dist  *field.Field    // nil once spent
	queue *frontier.Queue // nil once spent
	stats Stats

	nbuf [4]pixelgrid.Point // neighbour scratch, reused every step
}

// New validates its inputs and returns a Running engine.
//
// Validation order:
//  1. grid must be non-nil (ErrNilGrid).
//  2. grid must have positive width and height (ErrEmptyGrid).
//  3. origin must lie inside the grid (ErrOriginOutOfBounds, wrapped with context).
//
// Complexity: O(W×H) to initialise the field.
func New(grid *pixelgrid.Grid, origin pixelgrid.Point, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if grid == nil {
		return nil, ErrNilGrid
	}
	if grid.Width() <= 0 || grid.Height() <= 0 {
		return nil, ErrEmptyGrid
	}
	if !grid.Contains(origin) {
		return nil, fmt.Errorf("%w: origin %v, grid %dx%d",
			ErrOriginOutOfBounds, origin, grid.Width(), grid.Height())
	}

	dist, err := field.New(grid.Width(), grid.Height())
	if err != nil {
		return nil, fmt.Errorf("search: allocate field: %w", err)
	}
	dist.Put(grid.Index(origin.X, origin.Y), 0)

	capacity := cfg.Capacity
	if capacity == 0 {
		// The frontier of a grid Dijkstra hovers around the perimeter of the explored region.
		capacity = grid.Width() + grid.Height()
	}
	queue := frontier.New(capacity)
	queue.Push(frontier.Entry{At: origin, Cost: 0})

	e := &Engine{
		grid:   grid,
		origin: origin,
		opts:   cfg,
		dist:   dist,
		queue:  queue,
	}
	e.stats.Pushes = 1
	e.stats.PeakFrontier = 1

	colorfield.Logger().Debug("search: engine created",
		slog.Int("width", grid.Width()),
		slog.Int("height", grid.Height()),
		slog.Int("origin_x", origin.X),
		slog.Int("origin_y", origin.Y))

	return e, nil
}

// Step performs one relaxation round and reports whether the search is done.
//
// A popped entry whose cost exceeds the committed distance of its cell is
// stale and is dropped. Otherwise, for each in-bounds neighbour nb:
//
//	candidate = dist[at] + Cost(pixel(at), pixel(nb))
//	if candidate < dist[nb] { dist[nb] = candidate; push (nb, candidate) }
//
// When the frontier is empty afterwards Step returns Finished and the engine
// becomes spent; otherwise it returns Continuing with the same engine.
//
// Step panics with ErrEngineSpent if called after Finished.
func (e *Engine) Step() Outcome {
	if e.dist == nil {
		panic(ErrEngineSpent)
	}

	entry, ok := e.queue.Pop()
	if !ok {
		// Unreachable: the engine finishes as soon as the frontier empties.
		panic("search: frontier empty on a running engine")
	}
	e.stats.Steps++

	at := entry.At
	committed := e.dist.Get(e.grid.Index(at.X, at.Y))
	if entry.Cost > committed {
		e.stats.StaleSkips++
	} else {
		e.relax(at, committed)
	}

	e.stats.PeakFrontier = e.queue.Peak()
	if e.opts.LogEvery > 0 && e.stats.Steps%e.opts.LogEvery == 0 {
		e.logProgress()
	}

	if e.queue.Len() == 0 {
		return e.finish()
	}
	return Continuing{Engine: e}
}

// relax examines the neighbours of at, whose committed distance is d.
func (e *Engine) relax(at pixelgrid.Point, d float32) {
	src := e.grid.At(at.X, at.Y)
	for _, nb := range e.grid.Neighbors(at, e.nbuf[:0]) {
		candidate := d + pixelgrid.Cost(src, e.grid.At(nb.X, nb.Y))
		i := e.grid.Index(nb.X, nb.Y)
		if candidate >= e.dist.Get(i) {
			continue
		}
		e.dist.Put(i, candidate)
		e.queue.Push(frontier.Entry{At: nb, Cost: candidate})
		e.stats.Relaxations++
		e.stats.Pushes++
	}
}

// finish transfers the field out of the engine and marks it spent.
func (e *Engine) finish() Finished {
	out := e.dist
	e.dist = nil
	e.queue = nil

	colorfield.Logger().Debug("search: finished",
		slog.Uint64("steps", e.stats.Steps),
		slog.Uint64("stale_skips", e.stats.StaleSkips),
		slog.Uint64("pushes", e.stats.Pushes),
		slog.Int("peak_frontier", e.stats.PeakFrontier))

	return Finished{Field: out, Stats: e.stats}
}

func (e *Engine) logProgress() {
	l := colorfield.Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("search: progress",
		slog.Uint64("steps", e.stats.Steps),
		slog.Int("pending", e.queue.Len()),
		slog.Int("unreached", e.dist.CountUnreached()))
}

// Snapshot returns an independent copy of the current distance field.
// Returns ErrEngineSpent once the engine has finished.
// Complexity: O(W×H).
func (e *Engine) Snapshot() (*field.Field, error) {
	if e.dist == nil {
		return nil, ErrEngineSpent
	}
	return e.dist.Clone(), nil
}

// Done reports whether the engine has finished and handed over its field.
func (e *Engine) Done() bool { return e.dist == nil }

// Pending returns the current frontier length, stale entries included.
// Zero once the engine is done.
func (e *Engine) Pending() int {
	if e.queue == nil {
		return 0
	}
	return e.queue.Len()
}

// Origin returns the search origin.
func (e *Engine) Origin() pixelgrid.Point { return e.origin }

// Width returns the grid width.
func (e *Engine) Width() int { return e.grid.Width() }

// Height returns the grid height.
func (e *Engine) Height() int { return e.grid.Height() }

// Stats returns the work counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }
