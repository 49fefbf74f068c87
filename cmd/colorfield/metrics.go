package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/colorfield/progress"
)

// runMetrics holds one run's metrics in a private registry. They are written
// once, as a node_exporter textfile, after the run ends.
type runMetrics struct {
	reg *prometheus.Registry

	cells       prometheus.Gauge
	steps       prometheus.Counter
	staleSkips  prometheus.Counter
	relaxations prometheus.Counter
	pushes      prometheus.Counter
	peak        prometheus.Gauge
	emitted     prometheus.Counter
	dropped     prometheus.Counter
	duration    prometheus.Gauge
}

func newRunMetrics(runID string) *runMetrics {
	labels := prometheus.Labels{"run_id": runID}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "colorfield", Name: name, Help: help, ConstLabels: labels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "colorfield", Name: name, Help: help, ConstLabels: labels,
		})
	}

	m := &runMetrics{
		reg:         prometheus.NewRegistry(),
		cells:       gauge("grid_cells", "Pixels in the searched grid."),
		steps:       counter("search_steps_total", "Frontier pops, stale or not."),
		staleSkips:  counter("search_stale_skips_total", "Frontier pops discarded as stale."),
		relaxations: counter("search_relaxations_total", "Neighbour distances lowered."),
		pushes:      counter("search_pushes_total", "Frontier insertions."),
		peak:        gauge("search_peak_frontier", "Largest frontier size observed."),
		emitted:     counter("snapshots_emitted_total", "Intermediate snapshots delivered."),
		dropped:     counter("snapshots_dropped_total", "Intermediate snapshots skipped on a full channel."),
		duration:    gauge("run_duration_seconds", "Wall-clock time of the search."),
	}
	m.reg.MustRegister(m.cells, m.steps, m.staleSkips, m.relaxations, m.pushes,
		m.peak, m.emitted, m.dropped, m.duration)
	return m
}

func (m *runMetrics) observe(cells int, rep progress.Report, elapsed time.Duration) {
	m.cells.Set(float64(cells))
	m.steps.Add(float64(rep.Search.Steps))
	m.staleSkips.Add(float64(rep.Search.StaleSkips))
	m.relaxations.Add(float64(rep.Search.Relaxations))
	m.pushes.Add(float64(rep.Search.Pushes))
	m.peak.Set(float64(rep.Search.PeakFrontier))
	m.emitted.Add(float64(rep.Emitted))
	m.dropped.Add(float64(rep.Dropped))
	m.duration.Set(elapsed.Seconds())
}

func (m *runMetrics) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
