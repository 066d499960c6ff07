package curve

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/plumage/params"
)

func defaultVector() params.Vector {
	return params.Defaults()
}

func TestWingPairAtRest(t *testing.T) {
	p := defaultVector()
	pair := WingPair(p, 0, DefaultConstants())

	spread := 2 + 2*p.Curvature
	tests := []struct {
		name     string
		got      r3.Vec
		expected r3.Vec
	}{
		{"lower P0", pair.Lower.P0, r3.Vec{Z: -5}},
		{"lower P1", pair.Lower.P1, r3.Vec{X: -spread}},
		{"lower P2", pair.Lower.P2, r3.Vec{X: spread}},
		{"lower P3", pair.Lower.P3, r3.Vec{Z: 5}},
		{"upper P1", pair.Upper.P1, r3.Vec{X: -spread, Y: 1}},
		{"upper P2", pair.Upper.P2, r3.Vec{X: spread, Y: 0.1}},
		{"upper P3", pair.Upper.P3, r3.Vec{Z: 5}},
	}
	for _, tc := range tests {
		if !vecClose(tc.got, tc.expected, 1e-12) {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
		}
	}
}

func TestCurvatureWidensHandles(t *testing.T) {
	k := DefaultConstants()
	narrow := WingPair(defaultVector().With(params.Curvature, 0), 0, k)
	wide := WingPair(defaultVector().With(params.Curvature, 1), 0, k)
	if !(wide.Lower.P2.X > narrow.Lower.P2.X) {
		t.Errorf("expected curvature to widen handles: %v vs %v", wide.Lower.P2.X, narrow.Lower.P2.X)
	}
}

func TestFlapMovesTip(t *testing.T) {
	p := defaultVector()
	k := DefaultConstants()

	// Quarter period of sin(flapSpeed * t) with flapSpeed = 1.
	elapsed := math.Pi / 2
	pair := WingPair(p, elapsed, k)
	expected := k.FlapAmplitude * p.FlapMotion
	if math.Abs(pair.Lower.P3.Y-expected) > 1e-9 {
		t.Errorf("tip y = %v, expected %v", pair.Lower.P3.Y, expected)
	}
	if pair.Upper.P3 != pair.Lower.P3 {
		t.Errorf("upper and lower tips should coincide: %v vs %v", pair.Upper.P3, pair.Lower.P3)
	}
}

func TestZeroFlapSpeedIsStatic(t *testing.T) {
	p := defaultVector().With(params.FlapSpeed, 0)
	k := DefaultConstants()
	a := WingPair(p, 0, k)
	b := WingPair(p, 123.4, k)
	if a.Lower.P3 != b.Lower.P3 {
		t.Errorf("expected static tip with zero flap speed: %v vs %v", a.Lower.P3, b.Lower.P3)
	}
}

func TestSurfacePointBlendsHeightOnly(t *testing.T) {
	pair := WingPair(defaultVector(), 0, DefaultConstants())

	for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
		lo := pair.Lower.PointAt(u)
		up := pair.Upper.PointAt(u)

		if got := pair.SurfacePoint(0, u); got != lo {
			t.Errorf("layer 0 at %v = %v, expected lower %v", u, got, lo)
		}

		got := pair.SurfacePoint(1, u)
		if got.X != lo.X || got.Z != lo.Z {
			t.Errorf("layer 1 at %v: X/Z should follow lower curve, got %v lower %v", u, got, lo)
		}
		if math.Abs(got.Y-up.Y) > 1e-12 {
			t.Errorf("layer 1 at %v: Y = %v, expected upper %v", u, got.Y, up.Y)
		}

		half := pair.SurfacePoint(0.5, u)
		if math.Abs(half.Y-(lo.Y+up.Y)/2) > 1e-12 {
			t.Errorf("layer 0.5 at %v: Y = %v, expected %v", u, half.Y, (lo.Y+up.Y)/2)
		}
	}
}
