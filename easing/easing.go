// Package easing provides the response curves used to shape feather layout
// and motion along a wing.
package easing

import "math"

// Bias domain limits. ln(b)/ln(0.5) blows up at b=0 and b=1.
const (
	minBias = 1e-4
	maxBias = 1 - 1e-4
)

// Bias remaps t in [0, 1] so that Bias(b, 0.5) == b.
// b is clamped away from 0 and 1.
func Bias(b, t float64) float64 {
	b = Clamp(b, minBias, maxBias)
	t = Clamp(t, 0, 1)
	return math.Pow(t, math.Log(b)/math.Log(0.5))
}

// Gain is a symmetric S-curve built from two mirrored Bias halves.
// Gain(g, 0.5) is always 0.5.
func Gain(g, t float64) float64 {
	if t < 0.5 {
		return Bias(1-g, 2*t) / 2
	}
	return 1 - Bias(1-g, 2-2*t)/2
}

// Oscillate returns sin(freq*(x+t)). x is usually a spatial coordinate and t
// a scaled time, which makes neighbouring instances move as a traveling wave.
func Oscillate(freq, x, t float64) float64 {
	return math.Sin(freq * (x + t))
}

// Lerp interpolates between a and b by w.
func Lerp(a, b, w float64) float64 {
	return a*(1-w) + b*w
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
