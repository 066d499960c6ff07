package transform

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/plumage/curve"
	"github.com/pthm-cable/plumage/easing"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
)

func testSlot(side placement.Side, t float64) placement.Slot {
	return placement.Slot{
		Key:      placement.Key{Side: side, Layer: 0, Step: 3},
		Weight:   0,
		T:        t,
		ScaleMin: 1,
		ScaleMax: 3,
	}
}

// axis returns where m sends direction v, normalized.
func axis(m mat.Matrix, v r3.Vec) r3.Vec {
	return r3.Unit(r3.Sub(Apply(m, v), Origin(m)))
}

func TestComposeIsAttachmentAfterLocal(t *testing.T) {
	p := params.Defaults()
	m := DefaultMotion()
	a := DefaultAttachment()
	slot := testSlot(placement.Right, 0.3)
	pos := r3.Vec{X: 1.2, Y: 0.4, Z: -2}

	var expected mat.Dense
	expected.Mul(a.Matrix(placement.Right), Local(slot, pos, p, 0.7, m))
	if got := Compose(slot, pos, p, 0.7, m, a); !mat.EqualApprox(got, &expected, 1e-12) {
		t.Errorf("compose mismatch:\ngot\n%v\nexpected\n%v", mat.Formatted(got), mat.Formatted(&expected))
	}
}

func TestRollTurnsAboutFeatherAxis(t *testing.T) {
	m := DefaultMotion()
	slot := testSlot(placement.Right, 1) // full 70° fan-out
	pos := r3.Vec{X: 0.3, Y: 0.1, Z: 4}

	// The facing flip plus yaw leaves the feather's Z axis here, whatever
	// the roll.
	yaw := math.Pi + easing.Deg2Rad(70)
	expected := r3.Vec{X: math.Sin(yaw), Z: math.Cos(yaw)}

	tests := []struct {
		name       string
		turbulence float64
		elapsed    float64
	}{
		{"calm", 0.5, 0},
		{"rough", 1.5, 0},
		{"rough later", 1.5, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.Defaults().With(params.Turbulence, tt.turbulence)
			if r := Roll(pos.X, p, tt.elapsed, m); math.Abs(r) < 0.1 {
				t.Fatalf("roll %v too small to tell axes apart", r)
			}
			local := Local(slot, pos, p, tt.elapsed, m)
			if got := axis(local, r3.Vec{Z: 1}); !vecClose(got, expected, 1e-9) {
				t.Errorf("feather Z axis moved: got %v, expected %v", got, expected)
			}
		})
	}
}

func TestZeroYawIsFlipThenRoll(t *testing.T) {
	m := DefaultMotion()
	p := params.Defaults()
	slot := testSlot(placement.Left, 0) // yaw 0, scale 1
	pos := r3.Vec{X: 0.5, Y: -0.2, Z: -5}
	elapsed := 0.4

	roll := Roll(pos.X, p, elapsed, m)
	expected := NewChain().
		Then(RotationZ(roll)).
		Then(RotationY(math.Pi)).
		Then(Translation(pos)).
		Matrix()

	if got := Local(slot, pos, p, elapsed, m); !mat.EqualApprox(got, expected, 1e-12) {
		t.Errorf("expected T(pos)·Ry(π)·Rz(%v):\ngot\n%v\nexpected\n%v", roll, mat.Formatted(got), mat.Formatted(expected))
	}
}

func TestAttachmentRotationsAreIntrinsic(t *testing.T) {
	a := Attachment{RollDeg: 90, PitchDeg: 30}

	// Pitch turns about the X axis left by the roll, which Rz(90°) sends
	// to +Y. That axis ignores the pitch.
	for _, pitch := range []float64{0, 30, 60} {
		a.PitchDeg = pitch
		if got := axis(a.Matrix(placement.Right), r3.Vec{X: 1}); !vecClose(got, r3.Vec{Y: 1}, 1e-9) {
			t.Errorf("pitch %v: X axis moved to %v", pitch, got)
		}
	}

	// Yaw turns about the Y axis left by roll and pitch.
	a.PitchDeg = 30
	expected := r3.Vec{X: -math.Cos(math.Pi / 6), Z: math.Sin(math.Pi / 6)}
	for _, yaw := range []float64{0, 40, 90} {
		a.YawDeg = yaw
		if got := axis(a.Matrix(placement.Right), r3.Vec{Y: 1}); !vecClose(got, expected, 1e-9) {
			t.Errorf("yaw %v: Y axis moved to %v, expected %v", yaw, got, expected)
		}
	}
}

func TestLocalPlacesOriginAtSurfacePoint(t *testing.T) {
	p := params.Defaults()
	pair := curve.WingPair(p, 0, curve.DefaultConstants())
	slot := testSlot(placement.Left, 0)

	pos := pair.SurfacePoint(slot.Weight, slot.T)
	local := Local(slot, pos, p, 0, DefaultMotion())
	if got := Origin(local); !vecClose(got, pair.Lower.PointAt(0), 1e-12) {
		t.Errorf("expected local origin %v, got %v", pair.Lower.PointAt(0), got)
	}
}

func TestYawMirrorsBySide(t *testing.T) {
	p := params.Defaults()
	for _, u := range []float64{0, 0.2, 0.5, 0.9, 1} {
		left := Yaw(testSlot(placement.Left, u), p)
		right := Yaw(testSlot(placement.Right, u), p)
		if left != -right {
			t.Errorf("t=%v: left yaw %v should mirror right yaw %v", u, left, right)
		}
	}
	// Full orientation at the tip.
	if got := Yaw(testSlot(placement.Right, 1), p); math.Abs(got-easing.Deg2Rad(70)) > 1e-12 {
		t.Errorf("expected 70° at tip, got %v rad", got)
	}
}

func TestRollScalesWithTurbulence(t *testing.T) {
	m := DefaultMotion()
	calm := params.Defaults().With(params.Turbulence, 0.5)
	rough := params.Defaults().With(params.Turbulence, 1.5)

	// At elapsed 0 the roll is turbulence·sin(3x).
	x := 0.4
	if got, expected := Roll(x, calm, 0, m), 0.5*math.Sin(3*x); math.Abs(got-expected) > 1e-12 {
		t.Errorf("calm roll %v, expected %v", got, expected)
	}
	if got, expected := Roll(x, rough, 0, m), 1.5*math.Sin(3*x); math.Abs(got-expected) > 1e-12 {
		t.Errorf("rough roll %v, expected %v", got, expected)
	}
}

func TestAttachmentMirrors(t *testing.T) {
	a := DefaultAttachment()
	left := a.Matrix(placement.Left)
	right := a.Matrix(placement.Right)

	for _, p := range []r3.Vec{{Z: -5}, {Z: 5}, {X: 1, Y: 0.5, Z: 2}} {
		l := Apply(left, p)
		r := Apply(right, p)
		if math.Abs(l.X+r.X) > 1e-9 || math.Abs(l.Y-r.Y) > 1e-9 {
			t.Errorf("point %v: left %v does not mirror right %v", p, l, r)
		}
	}

	// The wing root lands next to the body on each side.
	root := Apply(right, r3.Vec{Z: -5})
	if !vecClose(root, r3.Vec{X: 0.5}, 1e-9) {
		t.Errorf("expected right root at (0.5,0,0), got %v", root)
	}
}
