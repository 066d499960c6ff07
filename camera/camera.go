// Package camera provides an orbit camera for viewing the wing.
package camera

import "math"

// pitchLimit keeps the eye off the poles where the up vector degenerates.
const pitchLimit = math.Pi/2 - 0.01

// Camera orbits a target point at a fixed distance.
type Camera struct {
	// Target is the point the camera looks at
	TargetX, TargetY, TargetZ float32

	// Yaw is the angle around Y from +Z, Pitch the elevation, both radians
	Yaw, Pitch float32

	Distance float32

	// FOV is the vertical field of view in degrees
	FOV float32

	MinDistance, MaxDistance float32
	MinFOV, MaxFOV           float32
}

// New creates a camera at eye looking at the origin.
func New(eyeX, eyeY, eyeZ, fov float32) *Camera {
	c := &Camera{
		FOV:         fov,
		MinDistance: 0.5,
		MaxDistance: 100,
		MinFOV:      1,
		MaxFOV:      179,
	}
	c.LookFrom(eyeX, eyeY, eyeZ)
	return c
}

// LookFrom moves the camera to eye, keeping the target.
func (c *Camera) LookFrom(eyeX, eyeY, eyeZ float32) {
	dx := float64(eyeX - c.TargetX)
	dy := float64(eyeY - c.TargetY)
	dz := float64(eyeZ - c.TargetZ)

	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if d == 0 {
		c.Distance, c.Yaw, c.Pitch = 0, 0, 0
		return
	}
	c.Distance = float32(d)
	c.Yaw = float32(math.Atan2(dx, dz))
	c.Pitch = float32(math.Asin(dy / d))
}

// Eye returns the camera position in world coordinates.
func (c *Camera) Eye() (x, y, z float32) {
	sy, cy := math.Sincos(float64(c.Yaw))
	sp, cp := math.Sincos(float64(c.Pitch))
	d := float64(c.Distance)
	return c.TargetX + float32(d*cp*sy),
		c.TargetY + float32(d*sp),
		c.TargetZ + float32(d*cp*cy)
}

// Orbit rotates the eye around the target. Pitch is clamped short of the
// poles.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw = wrapAngle(c.Yaw + dYaw)
	c.Pitch = clampf(c.Pitch+dPitch, -pitchLimit, pitchLimit)
}

// Dolly scales the distance to the target by factor (< 1 moves closer).
func (c *Camera) Dolly(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance = clampf(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// SetFOV sets the field of view, clamped to the camera's limits.
func (c *Camera) SetFOV(deg float32) {
	c.FOV = clampf(deg, c.MinFOV, c.MaxFOV)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapAngle maps a into (-π, π].
func wrapAngle(a float32) float32 {
	r := math.Mod(float64(a)+math.Pi, 2*math.Pi)
	if r <= 0 {
		r += 2 * math.Pi
	}
	return float32(r - math.Pi)
}
