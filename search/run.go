package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/colorfield/field"
	"github.com/katalvlaran/colorfield/pixelgrid"
)

// RunToCompletion steps e until it finishes, checking ctx once per step.
// On cancellation it returns the wrapped ctx.Err(); the engine is left
// Running and may be resumed.
func RunToCompletion(ctx context.Context, e *Engine) (*field.Field, Stats, error) {
	if e.Done() {
		return nil, e.Stats(), ErrEngineSpent
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, e.Stats(), fmt.Errorf("search: stopped after %d steps: %w", e.stats.Steps, err)
		}
		if fin, ok := e.Step().(Finished); ok {
			return fin.Field, fin.Stats, nil
		}
	}
}

// Solve is New followed by RunToCompletion.
func Solve(ctx context.Context, grid *pixelgrid.Grid, origin pixelgrid.Point, opts ...Option) (*field.Field, Stats, error) {
	e, err := New(grid, origin, opts...)
	if err != nil {
		return nil, Stats{}, err
	}
	return RunToCompletion(ctx, e)
}
