package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated wing statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	ElapsedSec       float64 `csv:"elapsed"`
	Mode             string  `csv:"mode"`

	// Instance set at window end
	Instances int `csv:"instances"`

	// Events during window
	Rebuilds  int `csv:"rebuilds"`
	Created   int `csv:"created"`
	Destroyed int `csv:"destroyed"`
	Skipped   int `csv:"skipped"` // frames with no mesh
	Edits     int `csv:"edits"`   // parameter changes

	// Tip flap offset range seen during the window
	FlapMin float64 `csv:"flap_min"`
	FlapMax float64 `csv:"flap_max"`

	// Feather scale distribution (sampled at window end)
	ScaleMean float64 `csv:"scale_mean"`
	ScaleStd  float64 `csv:"scale_std"`
	ScaleP10  float64 `csv:"scale_p10"`
	ScaleP50  float64 `csv:"scale_p50"`
	ScaleP90  float64 `csv:"scale_p90"`

	// Parameter vector at window end
	Curvature    float64 `csv:"curvature"`
	Orientation  float64 `csv:"orientation"`
	Size         float64 `csv:"size"`
	Distribution float64 `csv:"distribution"`
	Turbulence   float64 `csv:"turbulence"`
	FlapSpeed    float64 `csv:"flap_speed"`
	FlapMotion   float64 `csv:"flap_motion"`
	ColorTint    float64 `csv:"color_tint"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeScaleStats returns the mean, population standard deviation and
// percentiles of feather scales.
func ComputeScaleStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, variance := stat.PopMeanVariance(values, nil)
	if variance > 0 {
		std = math.Sqrt(variance)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartFrame)),
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("elapsed", s.ElapsedSec),
		slog.String("mode", s.Mode),
		slog.Int("instances", s.Instances),
		slog.Int("rebuilds", s.Rebuilds),
		slog.Int("created", s.Created),
		slog.Int("destroyed", s.Destroyed),
		slog.Int("skipped", s.Skipped),
		slog.Int("edits", s.Edits),
		slog.Float64("flap_min", s.FlapMin),
		slog.Float64("flap_max", s.FlapMax),
		slog.Float64("scale_mean", s.ScaleMean),
		slog.Float64("scale_p50", s.ScaleP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"elapsed", s.ElapsedSec,
		"mode", s.Mode,
		"instances", s.Instances,
		"rebuilds", s.Rebuilds,
		"created", s.Created,
		"destroyed", s.Destroyed,
		"skipped", s.Skipped,
		"edits", s.Edits,
		"flap_min", s.FlapMin,
		"flap_max", s.FlapMax,
		"scale_mean", s.ScaleMean,
		"scale_std", s.ScaleStd,
		"scale_p10", s.ScaleP10,
		"scale_p50", s.ScaleP50,
		"scale_p90", s.ScaleP90,
	)
}
