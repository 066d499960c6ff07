// Package transform computes feather transforms each frame and applies them
// to the scene, either directly or as deltas from the previous frame.
package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Matrices are 4x4 affine transforms acting on column vectors, so a point p
// maps to M·p and premultiplying by A applies A after M.

// Identity returns a new identity transform.
func Identity() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Translation returns a transform moving points by v.
func Translation(v r3.Vec) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	})
}

// Scaling returns a uniform scale.
func Scaling(s float64) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	})
}

// RotationX returns a rotation of rad radians about the X (pitch) axis.
func RotationX(rad float64) *mat.Dense {
	s, c := math.Sincos(rad)
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	})
}

// RotationY returns a rotation of rad radians about the Y (yaw) axis.
func RotationY(rad float64) *mat.Dense {
	s, c := math.Sincos(rad)
	return mat.NewDense(4, 4, []float64{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	})
}

// RotationZ returns a rotation of rad radians about the Z (roll) axis.
func RotationZ(rad float64) *mat.Dense {
	s, c := math.Sincos(rad)
	return mat.NewDense(4, 4, []float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Chain accumulates transforms by successive premultiplication: each Then
// applies its operand after everything already in the chain.
type Chain struct {
	m *mat.Dense
}

// NewChain starts a chain at the identity.
func NewChain() *Chain {
	return &Chain{m: Identity()}
}

// Then premultiplies the chain by op.
func (c *Chain) Then(op mat.Matrix) *Chain {
	var out mat.Dense
	out.Mul(op, c.m)
	c.m = &out
	return c
}

// Matrix returns the accumulated transform.
func (c *Chain) Matrix() *mat.Dense {
	return c.m
}

// Apply transforms point p by m.
func Apply(m mat.Matrix, p r3.Vec) r3.Vec {
	v := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	var out mat.VecDense
	out.MulVec(m, v)
	return r3.Vec{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// Origin returns where m places the local origin.
func Origin(m mat.Matrix) r3.Vec {
	return r3.Vec{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)}
}

// Delta returns next·prev⁻¹, the transform that takes an instance posed at
// prev to next when premultiplied.
func Delta(prev, next mat.Matrix) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(prev); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Mul(next, &inv)
	return &out, nil
}
