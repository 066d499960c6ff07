// Package params holds the wing's parameter vector, its declared ranges, and
// the store that tracks slider edits between frames.
package params

import (
	"fmt"
	"math"
	"strings"
)

// Field identifies one scalar in the parameter vector.
type Field uint8

const (
	Curvature Field = iota
	Orientation
	Size
	Distribution
	Turbulence
	FlapSpeed
	FlapMotion
	ColorTint
	NumFields
)

// Range is the closed interval a field may take, plus its slider step.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// Clamp clamps v into the range.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Snap rounds v to the nearest step from Min and clamps the result.
func (r Range) Snap(v float64) float64 {
	if r.Step <= 0 {
		return r.Clamp(v)
	}
	n := math.Round((v - r.Min) / r.Step)
	// Trim float noise so 1.3 stays 1.3 rather than 1.3000000000000003.
	snapped := math.Round((r.Min+n*r.Step)*1e9) / 1e9
	return r.Clamp(snapped)
}

var fieldNames = [NumFields]string{
	"curvature",
	"orientation",
	"size",
	"distribution",
	"turbulence",
	"flap_speed",
	"flap_motion",
	"color_tint",
}

var fieldRanges = [NumFields]Range{
	Curvature:    {Min: 0, Max: 1, Step: 0.1},
	Orientation:  {Min: 50, Max: 90, Step: 10},
	Size:         {Min: 1, Max: 2, Step: 0.1},
	Distribution: {Min: 1, Max: 2, Step: 0.1},
	Turbulence:   {Min: 0.5, Max: 1.5, Step: 0.1},
	FlapSpeed:    {Min: 0, Max: 1.5, Step: 0.1},
	FlapMotion:   {Min: 1, Max: 3, Step: 0.1},
	ColorTint:    {Min: 0.3, Max: 0.9, Step: 0.1},
}

// String returns the field's config/CSV name.
func (f Field) String() string {
	if f >= NumFields {
		return fmt.Sprintf("field(%d)", uint8(f))
	}
	return fieldNames[f]
}

// Range returns the declared range of the field.
func (f Field) Range() Range {
	if f >= NumFields {
		return Range{}
	}
	return fieldRanges[f]
}

// Fields returns all fields in declaration order.
func Fields() []Field {
	out := make([]Field, 0, NumFields)
	for f := Field(0); f < NumFields; f++ {
		out = append(out, f)
	}
	return out
}

// ParseField looks a field up by name.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == name {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("unknown parameter %q", name)
}

// Vector is the full set of wing parameters. It is passed by value into the
// curve, planner and transform code.
type Vector struct {
	Curvature          float64 `yaml:"curvature"`
	OrientationDeg     float64 `yaml:"orientation"`
	SizeFactor         float64 `yaml:"size"`
	DistributionFactor float64 `yaml:"distribution"`
	Turbulence         float64 `yaml:"turbulence"`
	FlapSpeed          float64 `yaml:"flap_speed"`
	FlapMotion         float64 `yaml:"flap_motion"`
	ColorTint          float64 `yaml:"color_tint"`
}

// Defaults returns the stock wing.
func Defaults() Vector {
	return Vector{
		Curvature:          0.5,
		OrientationDeg:     70,
		SizeFactor:         1.0,
		DistributionFactor: 1.5,
		Turbulence:         1.0,
		FlapSpeed:          1.0,
		FlapMotion:         2.0,
		ColorTint:          0.6,
	}
}

// Get returns the value of field f.
func (v Vector) Get(f Field) float64 {
	switch f {
	case Curvature:
		return v.Curvature
	case Orientation:
		return v.OrientationDeg
	case Size:
		return v.SizeFactor
	case Distribution:
		return v.DistributionFactor
	case Turbulence:
		return v.Turbulence
	case FlapSpeed:
		return v.FlapSpeed
	case FlapMotion:
		return v.FlapMotion
	case ColorTint:
		return v.ColorTint
	}
	return 0
}

// With returns a copy of v with field f set to x. x is not clamped.
func (v Vector) With(f Field, x float64) Vector {
	switch f {
	case Curvature:
		v.Curvature = x
	case Orientation:
		v.OrientationDeg = x
	case Size:
		v.SizeFactor = x
	case Distribution:
		v.DistributionFactor = x
	case Turbulence:
		v.Turbulence = x
	case FlapSpeed:
		v.FlapSpeed = x
	case FlapMotion:
		v.FlapMotion = x
	case ColorTint:
		v.ColorTint = x
	}
	return v
}

// Clamped returns v with every field clamped into its range.
func (v Vector) Clamped() Vector {
	for _, f := range Fields() {
		v = v.With(f, f.Range().Clamp(v.Get(f)))
	}
	return v
}

// Valid reports whether every field is within range.
func (v Vector) Valid() bool {
	for _, f := range Fields() {
		if !f.Range().Contains(v.Get(f)) {
			return false
		}
	}
	return true
}
