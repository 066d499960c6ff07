// Package scene defines what the wing core needs from the renderer, the
// geometry loader and the clock, plus an in-memory scene for headless runs.
package scene

import "gonum.org/v1/gonum/mat"

// FeatherTag marks every instance the wing owns.
const FeatherTag = "feather"

// MeshHandle refers to geometry loaded by the renderer.
type MeshHandle uint32

// InstanceHandle refers to one live mesh instance in the scene.
type InstanceHandle uint32

// Color is a linear RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// Scene is the renderer's scene graph as seen by the wing: add and remove
// instances, and write their transform and color.
type Scene interface {
	AddInstance(mesh MeshHandle, tag string) InstanceHandle
	RemoveInstance(h InstanceHandle)
	// SetTransform replaces the instance transform.
	SetTransform(h InstanceHandle, m mat.Matrix)
	// ApplyTransform premultiplies the instance transform by m.
	ApplyTransform(h InstanceHandle, m mat.Matrix)
	SetColor(h InstanceHandle, c Color)
	// Instances lists live instances carrying tag.
	Instances(tag string) []InstanceHandle
}

// MeshSource yields the feather mesh once it has loaded.
type MeshSource interface {
	Mesh() (MeshHandle, bool)
}

// Clock reports elapsed time in seconds.
type Clock interface {
	Elapsed() float64
}

// StaticMesh is a MeshSource that is always ready.
type StaticMesh MeshHandle

// Mesh implements MeshSource.
func (m StaticMesh) Mesh() (MeshHandle, bool) {
	return MeshHandle(m), true
}

// ManualClock is a Clock advanced by hand.
type ManualClock struct {
	t float64
}

// Elapsed implements Clock.
func (c *ManualClock) Elapsed() float64 {
	return c.t
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.t += dt
}

// Set moves the clock to t.
func (c *ManualClock) Set(t float64) {
	c.t = t
}
