package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one wing frame.
const (
	PhaseCurves    = "curves"
	PhasePlan      = "plan"
	PhaseClear     = "clear"
	PhaseInstall   = "install"
	PhasePose      = "pose"
	PhaseTelemetry = "telemetry"
)

// Phases lists every frame phase in execution order.
var Phases = []string{PhaseCurves, PhasePlan, PhaseClear, PhaseInstall, PhasePose, PhaseTelemetry}

// PerfSample holds timing data for a single frame update.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame update timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	// Wall-clock time between rendered frames (windowed mode)
	lastPresent     time.Time
	presentInterval time.Duration
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a wing update.
func (p *PerfCollector) StartFrame() {
	if p == nil {
		return
	}
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase ends the running phase, if any, and begins timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	if p == nil {
		return
	}
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current update and records the sample.
func (p *PerfCollector) EndFrame() {
	if p == nil {
		return
	}
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// RecordPresent records the time between presented frames.
func (p *PerfCollector) RecordPresent() {
	if p == nil {
		return
	}
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.presentInterval = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgUpdate time.Duration
	MinUpdate time.Duration
	MaxUpdate time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of total update time
	PhasePct map[string]float64

	// Updates per second the core could sustain
	UpdatesPerSecond float64

	PresentInterval time.Duration
	FPS             float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	var fps float64
	if p.presentInterval > 0 {
		fps = float64(time.Second) / float64(p.presentInterval)
	}

	if p.sampleCount == 0 {
		return PerfStats{
			PhaseAvg:        make(map[string]time.Duration),
			PhasePct:        make(map[string]float64),
			PresentInterval: p.presentInterval,
			FPS:             fps,
		}
	}

	var total, minD, maxD time.Duration
	phaseSum := make(map[string]time.Duration)

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s.FrameDuration

		if i == 0 || s.FrameDuration < minD {
			minD = s.FrameDuration
		}
		if s.FrameDuration > maxD {
			maxD = s.FrameDuration
		}
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	avg := total / time.Duration(p.sampleCount)

	phaseAvg := make(map[string]time.Duration, len(phaseSum))
	phasePct := make(map[string]float64, len(phaseSum))
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avg > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avg) * 100
		}
	}

	var ups float64
	if avg > 0 {
		ups = float64(time.Second) / float64(avg)
	}

	return PerfStats{
		AvgUpdate:        avg,
		MinUpdate:        minD,
		MaxUpdate:        maxD,
		PhaseAvg:         phaseAvg,
		PhasePct:         phasePct,
		UpdatesPerSecond: ups,
		PresentInterval:  p.presentInterval,
		FPS:              fps,
	}
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_update_us", s.AvgUpdate.Microseconds(),
		"min_update_us", s.MinUpdate.Microseconds(),
		"max_update_us", s.MaxUpdate.Microseconds(),
		"updates_per_sec", int(s.UpdatesPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_update_us", s.AvgUpdate.Microseconds()),
		slog.Int64("min_update_us", s.MinUpdate.Microseconds()),
		slog.Int64("max_update_us", s.MaxUpdate.Microseconds()),
		slog.Float64("updates_per_sec", s.UpdatesPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd     int32   `csv:"window_end"`
	AvgUpdateUS   int64   `csv:"avg_update_us"`
	MinUpdateUS   int64   `csv:"min_update_us"`
	MaxUpdateUS   int64   `csv:"max_update_us"`
	UpdatesPerSec float64 `csv:"updates_per_sec"`
	FPS           float64 `csv:"fps"`
	CurvesPct     float64 `csv:"curves_pct"`
	PlanPct       float64 `csv:"plan_pct"`
	ClearPct      float64 `csv:"clear_pct"`
	InstallPct    float64 `csv:"install_pct"`
	PosePct       float64 `csv:"pose_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:     windowEnd,
		AvgUpdateUS:   s.AvgUpdate.Microseconds(),
		MinUpdateUS:   s.MinUpdate.Microseconds(),
		MaxUpdateUS:   s.MaxUpdate.Microseconds(),
		UpdatesPerSec: s.UpdatesPerSecond,
		FPS:           s.FPS,
		CurvesPct:     s.PhasePct[PhaseCurves],
		PlanPct:       s.PhasePct[PhasePlan],
		ClearPct:      s.PhasePct[PhaseClear],
		InstallPct:    s.PhasePct[PhaseInstall],
		PosePct:       s.PhasePct[PhasePose],
		TelemetryPct:  s.PhasePct[PhaseTelemetry],
	}
}
