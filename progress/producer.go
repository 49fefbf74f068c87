package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/colorfield"
	"github.com/katalvlaran/colorfield/field"
	"github.com/katalvlaran/colorfield/search"
)

// Sentinel errors for the producer.
var (
	// ErrNilEngine indicates Produce was called without an engine.
	ErrNilEngine = errors.New("progress: engine is nil")
	// ErrBadInterval indicates a non-positive snapshot interval.
	ErrBadInterval = errors.New("progress: interval must be positive")
	// ErrBadCheckEvery indicates a zero step cadence.
	ErrBadCheckEvery = errors.New("progress: CheckEvery must be positive")
)

// Snapshot is one observation of the search. Field is owned by the receiver.
type Snapshot struct {
	Field *field.Field
	Final bool
	Stats search.Stats
}

// Report summarises a Produce call.
type Report struct {
	Search  search.Stats
	Emitted int // intermediate snapshots delivered
	Dropped int // intermediate snapshots skipped because the channel was full
}

// Options configures Produce.
//
// Interval     – minimum wall-clock spacing between intermediate snapshots.
// CheckEvery   – steps between limiter checks; keeps time.Now off the hot path.
// Intermediate – when false only the final snapshot is sent.
type Options struct {
	Interval     time.Duration
	CheckEvery   uint64
	Intermediate bool
}

// Option is a functional option for Produce.
type Option func(*Options)

// WithInterval sets the minimum spacing between intermediate snapshots.
// Panics if d ≤ 0.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadInterval.Error())
		}
		o.Interval = d
	}
}

// WithCheckEvery sets how many steps pass between limiter checks.
// Panics if n == 0.
func WithCheckEvery(n uint64) Option {
	return func(o *Options) {
		if n == 0 {
			panic(ErrBadCheckEvery.Error())
		}
		o.CheckEvery = n
	}
}

// WithoutIntermediate sends only the final snapshot.
func WithoutIntermediate() Option {
	return func(o *Options) {
		o.Intermediate = false
	}
}

// DefaultOptions: Interval=100ms, CheckEvery=1024, Intermediate=true.
func DefaultOptions() Options {
	return Options{
		Interval:     100 * time.Millisecond,
		CheckEvery:   1024,
		Intermediate: true,
	}
}

// Produce steps e to completion, streaming snapshots into out, and closes out
// before returning. out should be buffered: intermediate snapshots are only
// sent when there is room, so an unbuffered channel read with Receiver.Poll
// only ever sees the final snapshot.
//
// The final field travels only through out; Produce does not return it.
func Produce(ctx context.Context, e *search.Engine, out chan<- Snapshot, opts ...Option) (Report, error) {
	defer close(out)

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if e == nil {
		return Report{}, ErrNilEngine
	}
	if e.Done() {
		return Report{Search: e.Stats()}, search.ErrEngineSpent
	}

	log := colorfield.Logger()
	limiter := rate.NewLimiter(rate.Every(cfg.Interval), 1)
	var rep Report

	for {
		if err := ctx.Err(); err != nil {
			rep.Search = e.Stats()
			log.Warn("progress: stopped before completion",
				slog.Uint64("steps", rep.Search.Steps),
				slog.String("cause", err.Error()))
			return rep, fmt.Errorf("progress: stopped after %d steps: %w", rep.Search.Steps, err)
		}

		if fin, ok := e.Step().(search.Finished); ok {
			rep.Search = fin.Stats
			select {
			case out <- Snapshot{Field: fin.Field, Final: true, Stats: fin.Stats}:
			case <-ctx.Done():
				return rep, fmt.Errorf("progress: final snapshot not delivered: %w", ctx.Err())
			}
			log.Debug("progress: final snapshot sent",
				slog.Int("emitted", rep.Emitted),
				slog.Int("dropped", rep.Dropped))
			return rep, nil
		}

		if !cfg.Intermediate || e.Stats().Steps%cfg.CheckEvery != 0 || !limiter.Allow() {
			continue
		}
		// Single producer: len(out) can only shrink between this check and the send.
		if len(out) == cap(out) {
			rep.Dropped++
			continue
		}
		snap, err := e.Snapshot()
		if err != nil {
			return rep, err
		}
		select {
		case out <- Snapshot{Field: snap, Stats: e.Stats()}:
			rep.Emitted++
			log.Debug("progress: snapshot sent",
				slog.Uint64("steps", e.Stats().Steps),
				slog.Int("pending", e.Pending()))
		default:
			rep.Dropped++
		}
	}
}
