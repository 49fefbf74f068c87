package search

import (
	"errors"

	"github.com/katalvlaran/colorfield/field"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates a nil *pixelgrid.Grid was passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrEmptyGrid indicates a zero-width or zero-height grid.
	ErrEmptyGrid = errors.New("search: grid must have at least one row and one column")

	// ErrOriginOutOfBounds indicates the origin lies outside [0,W)×[0,H).
	ErrOriginOutOfBounds = errors.New("search: origin outside grid bounds")

	// ErrEngineSpent indicates the engine already finished and handed its field over.
	ErrEngineSpent = errors.New("search: engine already finished")

	// ErrBadCapacity indicates a negative frontier capacity hint.
	ErrBadCapacity = errors.New("search: capacity must be non-negative")

	// ErrBadLogEvery indicates a negative progress logging interval.
	ErrBadLogEvery = errors.New("search: LogEvery must be non-negative")
)

// DefaultLogEvery matches the cadence of the progress line printed by the
// original command-line tool.
const DefaultLogEvery = 100_000

// Options configures an Engine.
//
// Capacity – initial frontier capacity; 0 picks W+H.
// LogEvery – emit a debug progress record every LogEvery steps; 0 disables.
type Options struct {
	Capacity int
	LogEvery uint64
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithCapacity presets the frontier capacity. Panics on negative values.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithLogEvery sets the debug progress cadence in steps. Panics on negative values.
func WithLogEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadLogEvery.Error())
		}
		o.LogEvery = uint64(n)
	}
}

// DefaultOptions returns Options with Capacity=0 (auto) and LogEvery=DefaultLogEvery.
func DefaultOptions() Options {
	return Options{
		Capacity: 0,
		LogEvery: DefaultLogEvery,
	}
}

// Stats counts the work done by an engine so far.
type Stats struct {
	Steps        uint64 // Step calls, equal to frontier pops
	StaleSkips   uint64 // popped entries discarded as superseded
	Relaxations  uint64 // neighbour updates that improved a distance
	Pushes       uint64 // frontier insertions, origin included
	PeakFrontier int    // largest frontier length observed
}

// Outcome is the result of one Step: either Continuing or Finished.
type Outcome interface {
	outcome()
}

// Continuing means the frontier is non-empty; call Engine.Step again.
type Continuing struct {
	Engine *Engine
}

// Finished means the search is complete. Field is owned by the receiver.
type Finished struct {
	Field *field.Field
	Stats Stats
}

func (Continuing) outcome() {}
func (Finished) outcome()   {}
