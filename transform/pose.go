package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/plumage/easing"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
)

// Motion holds the turbulence constants.
type Motion struct {
	TurbulenceFrequency float64 `yaml:"turbulence_frequency"`
	SpeedScale          float64 `yaml:"speed_scale"` // time multiplier for the turbulence wave
}

// DefaultMotion returns the stock turbulence settings.
func DefaultMotion() Motion {
	return Motion{TurbulenceFrequency: 3, SpeedScale: 1}
}

// Attachment places the curve frame on a wing pivot. Roll, pitch and yaw are
// intrinsic: each turns about the axes left by the one before it. Pitch, yaw
// and the pivot X are mirrored for the left wing.
type Attachment struct {
	RollDeg  float64 `yaml:"roll_deg"`
	PitchDeg float64 `yaml:"pitch_deg"`
	YawDeg   float64 `yaml:"yaw_deg"`
	Pivot    r3.Vec  `yaml:"pivot"`
}

// DefaultAttachment spreads the two wings out along X from a body at the
// origin.
func DefaultAttachment() Attachment {
	return Attachment{
		RollDeg:  90,
		PitchDeg: 90,
		YawDeg:   0,
		Pivot:    r3.Vec{X: 5.5, Y: 0, Z: 0},
	}
}

// Matrix returns the rigid placement for one side,
// T(pivot)·Rz(roll)·Rx(pitch)·Ry(yaw).
func (a Attachment) Matrix(side placement.Side) *mat.Dense {
	s := side.Sign()
	pivot := r3.Vec{X: s * a.Pivot.X, Y: a.Pivot.Y, Z: a.Pivot.Z}
	return NewChain().
		Then(RotationY(easing.Deg2Rad(s * a.YawDeg))).
		Then(RotationX(easing.Deg2Rad(s * a.PitchDeg))).
		Then(RotationZ(easing.Deg2Rad(a.RollDeg))).
		Then(Translation(pivot)).
		Matrix()
}

// Yaw returns the fan-out angle in radians for a slot: the orientation
// parameter eased along the curve, signed by side.
func Yaw(slot placement.Slot, p params.Vector) float64 {
	return slot.Key.Side.Sign() * easing.Gain(0.5, slot.T) * easing.Deg2Rad(p.OrientationDeg)
}

// Roll returns the turbulence roll angle in radians for a feather at curve
// position x.
func Roll(x float64, p params.Vector, elapsed float64, m Motion) float64 {
	return p.Turbulence * easing.Oscillate(m.TurbulenceFrequency, x, p.Turbulence*m.SpeedScale*elapsed)
}

// Local returns the feather transform in the curve frame, before attachment:
// T(pos)·Ry(π)·Ry(yaw)·Rz(roll)·S. The facing flip and fan-out yaw set up the
// feather's frame and the turbulence roll turns about the feather's own Z
// axis within it. The translation to pos is absolute.
func Local(slot placement.Slot, pos r3.Vec, p params.Vector, elapsed float64, m Motion) *mat.Dense {
	return NewChain().
		Then(Scaling(slot.Scale())).
		Then(RotationZ(Roll(pos.X, p, elapsed, m))).
		Then(RotationY(Yaw(slot, p))).
		Then(RotationY(math.Pi)).
		Then(Translation(pos)).
		Matrix()
}

// Compose returns the full world transform of a feather at surface point pos.
// The order of operations is fixed; reordering changes the wing.
func Compose(slot placement.Slot, pos r3.Vec, p params.Vector, elapsed float64, m Motion, a Attachment) *mat.Dense {
	var out mat.Dense
	out.Mul(a.Matrix(slot.Key.Side), Local(slot, pos, p, elapsed, m))
	return &out
}
