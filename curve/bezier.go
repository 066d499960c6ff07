// Package curve implements the cubic Bezier curves that bound the wing
// surface.
package curve

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Divisions is the number of chords used to approximate arc length.
const Divisions = 200

// degenerateLength is the arc length below which a curve is treated as a
// point and PointAt falls back to linear interpolation.
const degenerateLength = 1e-9

// Bezier is a cubic Bezier curve with a precomputed arc-length table.
type Bezier struct {
	P0, P1, P2, P3 r3.Vec

	// lengths[i] is the arc length from t=0 to t=i/Divisions.
	lengths []float64
}

// NewBezier builds a curve from its start point, two handles and end point.
func NewBezier(p0, p1, p2, p3 r3.Vec) Bezier {
	b := Bezier{P0: p0, P1: p1, P2: p2, P3: p3}
	b.lengths = b.arcLengths(Divisions)
	return b
}

// Point evaluates the curve at parameter t using the Bernstein form:
// (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3.
func (b Bezier) Point(t float64) r3.Vec {
	s := 1 - t
	w0 := s * s * s
	w1 := 3 * s * s * t
	w2 := 3 * s * t * t
	w3 := t * t * t
	return r3.Add(
		r3.Add(r3.Scale(w0, b.P0), r3.Scale(w1, b.P1)),
		r3.Add(r3.Scale(w2, b.P2), r3.Scale(w3, b.P3)),
	)
}

// Length returns the approximate arc length of the curve.
func (b Bezier) Length() float64 {
	if len(b.lengths) == 0 {
		return 0
	}
	return b.lengths[len(b.lengths)-1]
}

// Degenerate reports whether the curve has no usable arc length.
func (b Bezier) Degenerate() bool {
	return b.Length() < degenerateLength
}

// PointAt returns the point at fraction u of the curve's arc length, so equal
// steps in u give roughly equal spacing along the curve. u is clamped to
// [0, 1]. Degenerate curves interpolate linearly from P0 to P3.
func (b Bezier) PointAt(u float64) r3.Vec {
	if u <= 0 {
		return b.P0
	}
	if u >= 1 {
		return b.P3
	}
	if b.Degenerate() {
		return lerpVec(b.P0, b.P3, u)
	}
	return b.Point(b.uToT(u))
}

// uToT maps an arc-length fraction to the curve parameter.
func (b Bezier) uToT(u float64) float64 {
	n := len(b.lengths) - 1
	target := u * b.Length()

	// First index whose cumulative length reaches target.
	j := sort.SearchFloat64s(b.lengths, target)
	if j >= len(b.lengths) {
		return 1
	}
	if b.lengths[j] == target || j == 0 {
		return float64(j) / float64(n)
	}

	before := b.lengths[j-1]
	seg := b.lengths[j] - before
	frac := (target - before) / seg
	return (float64(j-1) + frac) / float64(n)
}

// arcLengths samples the curve at n+1 evenly spaced parameters and returns
// the cumulative chord length at each sample.
func (b Bezier) arcLengths(n int) []float64 {
	chords := make([]float64, n+1)
	prev := b.Point(0)
	for i := 1; i <= n; i++ {
		cur := b.Point(float64(i) / float64(n))
		chords[i] = r3.Norm(r3.Sub(cur, prev))
		prev = cur
	}
	return floats.CumSum(make([]float64, n+1), chords)
}

func lerpVec(a, b r3.Vec, w float64) r3.Vec {
	return r3.Add(r3.Scale(1-w, a), r3.Scale(w, b))
}
