// Package components defines ECS components for the feather instance arena.
package components

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/plumage/placement"
	"github.com/pthm-cable/plumage/scene"
)

// Feather holds the slot a feather entity occupies.
type Feather struct {
	Slot placement.Slot
}

// Pose is the last transform written to the scene for a feather.
// A fresh instance starts at the identity.
type Pose struct {
	Applied *mat.Dense
	Frames  uint64 // frames posed since creation
}

// Instance links a feather entity to its renderer instance.
type Instance struct {
	Handle scene.InstanceHandle
	Mesh   scene.MeshHandle
	Color  scene.Color // last color written to the scene
}
