package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/colorfield"
	"github.com/katalvlaran/colorfield/pixelgrid"
	"github.com/katalvlaran/colorfield/progress"
	"github.com/katalvlaran/colorfield/render"
	"github.com/katalvlaran/colorfield/search"
)

// progressFile is refreshed with every intermediate snapshot.
const progressFile = "progress.png"

type traceFlags struct {
	config      string
	origin      string
	out         string
	boundary    string
	interval    time.Duration
	frame       time.Duration
	maxSize     int
	metricsFile string
	logLevel    string
	outputs     []string
}

func newTraceCmd() *cobra.Command {
	var fl traceFlags
	cmd := &cobra.Command{
		Use:   "trace [IMAGE]",
		Short: "Compute and render the color-distance field of an image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, fl, args)
			if err != nil {
				return err
			}
			id := uuid.NewString()
			log := newLogger(cfg.LogLevel, cmd.ErrOrStderr()).With("run_id", id)
			colorfield.SetLogger(log)
			defer colorfield.SetLogger(nil)
			return runTrace(cmd.Context(), cfg, id, log)
		},
	}

	def := DefaultConfig()
	f := cmd.Flags()
	f.StringVarP(&fl.config, "config", "c", "", "YAML config file")
	f.StringVar(&fl.origin, "origin", "", "origin pixel as X,Y (default: image centre)")
	f.StringVarP(&fl.out, "out", "o", def.OutDir, "output directory")
	f.StringVar(&fl.boundary, "boundary", def.Boundary, "gradient edge handling: wrap or clamp")
	f.DurationVar(&fl.interval, "interval", def.Interval, "minimum spacing between progress snapshots")
	f.DurationVar(&fl.frame, "frame", def.Frame, "how often progress.png is refreshed")
	f.IntVar(&fl.maxSize, "max-size", def.MaxSize, "downscale so the longer side is at most this (0 = off)")
	f.StringVar(&fl.metricsFile, "metrics", "", "write Prometheus textfile metrics here")
	f.StringVar(&fl.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	f.StringSliceVar(&fl.outputs, "outputs", def.Outputs, "converters to render: "+fmt.Sprint(render.Names()))
	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, fl traceFlags, args []string) (Config, error) {
	cfg := DefaultConfig()
	if fl.config != "" {
		var err error
		if cfg, err = loadConfig(fl.config); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if f.Changed("origin") {
		o, err := parseOrigin(fl.origin)
		if err != nil {
			return cfg, err
		}
		cfg.Origin = o
	}
	if f.Changed("out") {
		cfg.OutDir = fl.out
	}
	if f.Changed("boundary") {
		cfg.Boundary = fl.boundary
	}
	if f.Changed("interval") {
		cfg.Interval = fl.interval
	}
	if f.Changed("frame") {
		cfg.Frame = fl.frame
	}
	if f.Changed("max-size") {
		cfg.MaxSize = fl.maxSize
	}
	if f.Changed("metrics") {
		cfg.MetricsFile = fl.metricsFile
	}
	if f.Changed("log-level") {
		cfg.LogLevel = fl.logLevel
	}
	if f.Changed("outputs") {
		cfg.Outputs = fl.outputs
	}
	return cfg, cfg.Validate()
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var lv slog.Level
	_ = lv.UnmarshalText([]byte(level)) // validated already; falls back to info
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}))
}

// runTrace loads the image, runs the search on one goroutine while a second
// refreshes progress.png, then renders the final field.
func runTrace(ctx context.Context, cfg Config, runID string, log *slog.Logger) error {
	boundary, err := render.ParseBoundary(cfg.Boundary)
	if err != nil {
		return err
	}
	converters := make([]render.Converter, len(cfg.Outputs))
	for i, name := range cfg.Outputs {
		if converters[i], err = render.Lookup(name); err != nil {
			return err
		}
	}

	src, format, err := decodeImage(cfg.Input)
	if err != nil {
		return err
	}
	sb := src.Bounds()
	src, scale := downscale(src, cfg.MaxSize)

	grid, err := pixelgrid.FromImage(src)
	if err != nil {
		return err
	}
	origin := pixelgrid.Point{X: grid.Width() / 2, Y: grid.Height() / 2}
	if cfg.Origin != nil {
		if !originInside(cfg.Origin, sb.Dx(), sb.Dy()) {
			return fmt.Errorf("%w: origin (%d,%d), image %dx%d",
				search.ErrOriginOutOfBounds, cfg.Origin.X, cfg.Origin.Y, sb.Dx(), sb.Dy())
		}
		origin.X, origin.Y = scaleOrigin(*cfg.Origin, scale, grid.Width(), grid.Height())
	}
	log.Info("image loaded", "path", cfg.Input, "format", format,
		"width", grid.Width(), "height", grid.Height(), "scale", scale, "origin", origin.String())

	eng, err := search.New(grid, origin)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create the output directory: %w", err)
	}

	ch := make(chan progress.Snapshot, 1)
	recv := progress.NewReceiver(ch)
	var rep progress.Report
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rep, err = progress.Produce(gctx, eng, ch,
			progress.WithInterval(cfg.Interval),
			progress.WithCheckEvery(cfg.CheckEvery))
		return err
	})
	g.Go(func() error {
		return consume(gctx, recv, filepath.Join(cfg.OutDir, progressFile), cfg.Frame, log)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	final, ok := recv.Final()
	if !ok {
		return fmt.Errorf("search ended without a final field")
	}
	log.Info("search finished", "elapsed", elapsed, "steps", rep.Search.Steps,
		"stale", rep.Search.StaleSkips, "peak_frontier", rep.Search.PeakFrontier,
		"unreached", final.Field.CountUnreached(), "furthest", final.Field.Furthest(),
		"snapshots", rep.Emitted, "dropped", rep.Dropped)

	for i, conv := range converters {
		path := filepath.Join(cfg.OutDir, cfg.Outputs[i]+".png")
		if err := writePNG(path, conv(final.Field, render.WithBoundary(boundary))); err != nil {
			return err
		}
		log.Debug("wrote output", "path", path)
	}

	if cfg.MetricsFile != "" {
		m := newRunMetrics(runID)
		m.observe(grid.Len(), rep, elapsed)
		if err := m.writeTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// consume refreshes path with the newest intermediate snapshot once per frame
// until the producer closes the channel.
func consume(ctx context.Context, recv *progress.Receiver, path string, frame time.Duration, log *slog.Logger) error {
	t := time.NewTicker(frame)
	defer t.Stop()
	for !recv.Closed() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		s, ok := recv.Poll()
		if !ok || s.Final {
			continue
		}
		if err := writePNG(path, render.Grayscale(s.Field)); err != nil {
			return err
		}
		log.Debug("progress frame", "steps", s.Stats.Steps, "unreached", s.Field.CountUnreached())
	}
	return nil
}

func originInside(o *OriginConfig, w, h int) bool {
	return o.X >= 0 && o.Y >= 0 && o.X < w && o.Y < h
}
