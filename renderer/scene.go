// Package renderer draws the wing with raylib.
package renderer

import (
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/plumage/scene"
)

// Scene is a scene.Scene whose instances are drawn with raylib models.
// Instance bookkeeping lives in the embedded in-memory scene.
type Scene struct {
	*scene.Memory

	models map[scene.MeshHandle]rl.Model
	next   scene.MeshHandle
}

// NewScene creates an empty scene. Models can only be loaded after the
// raylib window exists.
func NewScene() *Scene {
	return &Scene{
		Memory: scene.NewMemory(),
		models: make(map[scene.MeshHandle]rl.Model),
	}
}

// LoadMesh loads a model file (OBJ, glTF, ...) and returns its handle.
func (s *Scene) LoadMesh(path string) (scene.MeshHandle, error) {
	if !rl.FileExists(path) {
		return 0, fmt.Errorf("loading mesh %s: file not found", path)
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return 0, fmt.Errorf("loading mesh %s: no meshes in file", path)
	}
	s.next++
	s.models[s.next] = model
	slog.Info("mesh loaded", "path", path, "meshes", model.MeshCount, "handle", s.next)
	return s.next, nil
}

// Draw renders every live instance. Call between BeginMode3D and EndMode3D.
func (s *Scene) Draw() {
	s.Each(func(_ scene.InstanceHandle, mesh scene.MeshHandle, transform *mat.Dense, c scene.Color) {
		model, ok := s.models[mesh]
		if !ok {
			return
		}
		model.Transform = toMatrix(transform)
		rl.DrawModel(model, rl.Vector3{}, 1, toRGBA(c))
	})
}

// Unload frees every loaded model.
func (s *Scene) Unload() {
	for h, model := range s.models {
		rl.UnloadModel(model)
		delete(s.models, h)
	}
}

func toRGBA(c scene.Color) color.RGBA {
	r, g, b, a := c.RGBA8()
	return rl.NewColor(r, g, b, a)
}
