package curve

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/plumage/easing"
	"github.com/pthm-cable/plumage/params"
)

// Constants are the hand-tuned control point offsets of the wing curves.
type Constants struct {
	Root            r3.Vec  `yaml:"root"`             // shared start point
	Tip             r3.Vec  `yaml:"tip"`              // shared end point before flapping
	HandleSpread    float64 `yaml:"handle_spread"`    // |x| of both handles at zero curvature
	CurvatureSpread float64 `yaml:"curvature_spread"` // extra |x| per unit curvature
	UpperInnerLift  float64 `yaml:"upper_inner_lift"` // y of the upper curve's first handle
	UpperOuterLift  float64 `yaml:"upper_outer_lift"` // y of the upper curve's second handle
	FlapAmplitude   float64 `yaml:"flap_amplitude"`   // tip y offset per unit flap motion
	FlapFrequency   float64 `yaml:"flap_frequency"`
}

// DefaultConstants returns the stock wing silhouette.
func DefaultConstants() Constants {
	return Constants{
		Root:            r3.Vec{X: 0, Y: 0, Z: -5},
		Tip:             r3.Vec{X: 0, Y: 0, Z: 5},
		HandleSpread:    2,
		CurvatureSpread: 2,
		UpperInnerLift:  1,
		UpperOuterLift:  0.1,
		FlapAmplitude:   0.5,
		FlapFrequency:   1,
	}
}

// Pair is the lower and upper boundary of one wing surface.
type Pair struct {
	Lower, Upper Bezier
}

// FlapOffset returns the vertical tip displacement at the given time.
func FlapOffset(p params.Vector, elapsed float64, k Constants) float64 {
	return k.FlapAmplitude * p.FlapMotion * easing.Oscillate(k.FlapFrequency, 0, p.FlapSpeed*elapsed)
}

// WingPair builds both boundary curves for the current parameters and time.
// Curvature pushes the two handles apart horizontally; the flap moves the tip
// up and down. Both wing sides share the pair, mirroring happens when
// instances are attached to their pivot.
func WingPair(p params.Vector, elapsed float64, k Constants) Pair {
	spread := k.HandleSpread + k.CurvatureSpread*p.Curvature
	flap := FlapOffset(p, elapsed, k)
	tip := r3.Add(k.Tip, r3.Vec{Y: flap})

	lower := NewBezier(
		k.Root,
		r3.Vec{X: -spread, Y: 0, Z: 0},
		r3.Vec{X: spread, Y: 0, Z: 0},
		tip,
	)
	upper := NewBezier(
		k.Root,
		r3.Vec{X: -spread, Y: k.UpperInnerLift, Z: 0},
		r3.Vec{X: spread, Y: k.UpperOuterLift, Z: 0},
		tip,
	)
	return Pair{Lower: lower, Upper: upper}
}

// SurfacePoint returns the point at arc-length fraction u on the surface
// layer with the given weight. Only the height is blended between the two
// curves; X and Z follow the lower curve so the wing stays flat in plan.
func (p Pair) SurfacePoint(layer, u float64) r3.Vec {
	lo := p.Lower.PointAt(u)
	if layer == 0 {
		return lo
	}
	up := p.Upper.PointAt(u)
	return r3.Vec{X: lo.X, Y: easing.Lerp(lo.Y, up.Y, layer), Z: lo.Z}
}
