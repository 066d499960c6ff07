// Package wing runs the per-frame update of the feather wing: it decides when
// the instance set is rebuilt and poses every feather for the current time.
package wing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/plumage/config"
	"github.com/pthm-cable/plumage/curve"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
	"github.com/pthm-cable/plumage/scene"
	"github.com/pthm-cable/plumage/telemetry"
	"github.com/pthm-cable/plumage/transform"
)

// ErrGeometryUnavailable is returned by Update while the feather mesh has not
// loaded. The frame is skipped and nothing in the scene changes.
var ErrGeometryUnavailable = errors.New("wing: feather mesh not available")

// Options configures a Wing.
type Options struct {
	Mode       params.Mode
	Layers     []float64
	Sides      []placement.Side
	Curve      curve.Constants
	Motion     transform.Motion
	Attach     transform.Attachment
	Parameters params.Vector

	LogStats       bool
	StatsWindowSec float64
	FrameDT        float64 // seconds per frame, for window bookkeeping
	PerfWindow     int
	Output         *telemetry.OutputManager
}

// OptionsFromConfig builds options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Mode:           cfg.Wing.Mode,
		Layers:         cfg.Wing.Layers,
		Sides:          cfg.Wing.Sides,
		Curve:          cfg.Curve,
		Motion:         cfg.Motion,
		Attach:         cfg.Attach,
		Parameters:     cfg.Parameters,
		StatsWindowSec: cfg.Telemetry.StatsWindow,
		FrameDT:        cfg.Derived.FrameDT,
		PerfWindow:     cfg.Telemetry.PerfCollectorWindow,
	}
}

// Wing holds the live feather set and everything needed to pose it.
type Wing struct {
	store   *params.Store
	planner *placement.Planner
	engine  *transform.Engine
	scene   scene.Scene
	mesh    scene.MeshSource
	mode    params.Mode
	curves  curve.Constants

	pair      curve.Pair
	installed bool
	frame     int32

	perf          *telemetry.PerfCollector
	collector     *telemetry.Collector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
	scales        []float64
}

// New creates a wing drawing into sc with geometry from mesh. No instances
// exist until the first Update with the mesh available.
func New(sc scene.Scene, mesh scene.MeshSource, opts Options) (*Wing, error) {
	planner, err := placement.NewPlanner(opts.Layers, opts.Sides)
	if err != nil {
		return nil, fmt.Errorf("creating planner: %w", err)
	}

	dt := opts.FrameDT
	if dt <= 0 {
		dt = 1.0 / 60
	}
	window := opts.StatsWindowSec
	if window <= 0 {
		window = 1
	}

	w := &Wing{
		store:     params.NewStore(opts.Parameters),
		planner:   planner,
		engine:    transform.NewEngine(sc, opts.Motion, opts.Attach),
		scene:     sc,
		mesh:      mesh,
		mode:      opts.Mode,
		curves:    opts.Curve,
		perf:      telemetry.NewPerfCollector(opts.PerfWindow),
		collector: telemetry.NewCollector(window, dt),
		output:    opts.Output,
		logStats:  opts.LogStats,
	}

	w.store.OnChange(func(f params.Field, prev, next float64) {
		w.collector.RecordEdit()
		slog.Debug("parameter changed", "field", f.String(), "from", prev, "to", next, "mode", w.mode.String())
	})

	return w, nil
}

// Store returns the parameter store the UI writes to.
func (w *Wing) Store() *params.Store {
	return w.store
}

// Mode returns the update strategy fixed at construction.
func (w *Wing) Mode() params.Mode {
	return w.mode
}

// Pair returns the curves used for the most recent frame.
func (w *Wing) Pair() curve.Pair {
	return w.pair
}

// Len returns the number of live feathers.
func (w *Wing) Len() int {
	return w.engine.Len()
}

// Engine exposes the transform engine for inspection.
func (w *Wing) Engine() *transform.Engine {
	return w.engine
}

// Frame returns the number of Update calls so far.
func (w *Wing) Frame() int32 {
	return w.frame
}

// Perf returns the frame timing collector.
func (w *Wing) Perf() *telemetry.PerfCollector {
	return w.perf
}

// SetStatsCallback registers fn to receive every flushed stats window.
func (w *Wing) SetStatsCallback(fn func(telemetry.WindowStats)) {
	w.statsCallback = fn
}

// Update advances the wing to elapsed seconds. In rebuild mode a pending
// parameter change first destroys every feather and installs the new set; in
// continuous mode the set is installed once and only re-posed.
func (w *Wing) Update(elapsed float64) error {
	w.perf.StartFrame()
	defer w.perf.EndFrame()
	defer func() { w.frame++ }()

	mesh, ok := w.mesh.Mesh()
	if !ok {
		w.collector.RecordSkip()
		w.flushTelemetry()
		return ErrGeometryUnavailable
	}

	p := w.store.Vector()

	w.perf.StartPhase(telemetry.PhaseCurves)
	w.pair = curve.WingPair(p, elapsed, w.curves)
	w.collector.RecordFlap(curve.FlapOffset(p, elapsed, w.curves))

	switch w.mode {
	case params.ModeContinuous:
		if !w.installed {
			w.rebuild(p, mesh)
		}
		w.store.ClearDirty()
	default:
		if !w.installed || w.store.Dirty() {
			w.rebuild(p, mesh)
			w.store.ClearDirty()
		}
	}

	w.perf.StartPhase(telemetry.PhasePose)
	w.engine.Update(w.pair, p, elapsed, w.mode)

	w.perf.StartPhase(telemetry.PhaseTelemetry)
	w.flushTelemetry()
	return nil
}

// rebuild replaces the whole feather set. The old set is gone before the new
// one is created.
func (w *Wing) rebuild(p params.Vector, mesh scene.MeshHandle) {
	w.perf.StartPhase(telemetry.PhasePlan)
	slots := w.planner.Plan(p)

	w.perf.StartPhase(telemetry.PhaseClear)
	destroyed := w.engine.Clear()

	w.perf.StartPhase(telemetry.PhaseInstall)
	w.engine.Install(slots, mesh)
	w.installed = true

	w.collector.RecordRebuild(destroyed, len(slots))
	slog.Debug("wing rebuilt",
		"frame", w.frame,
		"destroyed", destroyed,
		"instances", len(slots),
		"mode", w.mode.String(),
	)
}
