package telemetry

import (
	"math"

	"github.com/pthm-cable/plumage/params"
)

// Collector accumulates wing events within frame windows and produces
// WindowStats.
type Collector struct {
	windowDurationFrames int32
	dt                   float64

	windowStartFrame int32

	rebuilds  int
	created   int
	destroyed int
	skipped   int
	edits     int
	flapMin   float64
	flapMax   float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in wing time
// dt: seconds per frame
func NewCollector(windowDurationSec, dt float64) *Collector {
	frames := int32(1)
	if dt > 0 {
		frames = int32(math.Round(windowDurationSec / dt))
	}
	if frames < 1 {
		frames = 1
	}
	c := &Collector{
		windowDurationFrames: frames,
		dt:                   dt,
	}
	c.reset(0)
	return c
}

// RecordRebuild records one destroy-and-recreate of the instance set.
func (c *Collector) RecordRebuild(destroyed, created int) {
	c.rebuilds++
	c.destroyed += destroyed
	c.created += created
}

// RecordSkip records a frame skipped because the mesh was not ready.
func (c *Collector) RecordSkip() {
	c.skipped++
}

// RecordEdit records a parameter change.
func (c *Collector) RecordEdit() {
	c.edits++
}

// RecordFlap records the tip offset of one frame.
func (c *Collector) RecordFlap(offset float64) {
	c.flapMin = math.Min(c.flapMin, offset)
	c.flapMax = math.Max(c.flapMax, offset)
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int32) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats and resets counters for the next window.
// scales are the current feather scales, p the live parameters.
func (c *Collector) Flush(currentFrame int32, instances int, mode params.Mode, p params.Vector, scales []float64) WindowStats {
	mean, std, p10, p50, p90 := ComputeScaleStats(scales)

	flapMin, flapMax := c.flapMin, c.flapMax
	if flapMin > flapMax {
		// no flap recorded this window
		flapMin, flapMax = 0, 0
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		ElapsedSec:       float64(currentFrame) * c.dt,
		Mode:             mode.String(),

		Instances: instances,
		Rebuilds:  c.rebuilds,
		Created:   c.created,
		Destroyed: c.destroyed,
		Skipped:   c.skipped,
		Edits:     c.edits,
		FlapMin:   flapMin,
		FlapMax:   flapMax,

		ScaleMean: mean,
		ScaleStd:  std,
		ScaleP10:  p10,
		ScaleP50:  p50,
		ScaleP90:  p90,

		Curvature:    p.Curvature,
		Orientation:  p.OrientationDeg,
		Size:         p.SizeFactor,
		Distribution: p.DistributionFactor,
		Turbulence:   p.Turbulence,
		FlapSpeed:    p.FlapSpeed,
		FlapMotion:   p.FlapMotion,
		ColorTint:    p.ColorTint,
	}

	c.reset(currentFrame)
	return stats
}

func (c *Collector) reset(start int32) {
	c.windowStartFrame = start
	c.rebuilds = 0
	c.created = 0
	c.destroyed = 0
	c.skipped = 0
	c.edits = 0
	c.flapMin = math.Inf(1)
	c.flapMax = math.Inf(-1)
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() int32 {
	return c.windowDurationFrames
}
