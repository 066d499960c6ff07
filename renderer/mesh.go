package renderer

import (
	"log/slog"

	"github.com/pthm-cable/plumage/scene"
)

// MeshLoader is a scene.MeshSource that loads the feather model on first
// use. A failed load is not retried; the wing keeps skipping frames.
type MeshLoader struct {
	scene  *Scene
	path   string
	handle scene.MeshHandle
	ready  bool
	tried  bool
	err    error
}

// NewMeshLoader creates a loader for the model at path.
func NewMeshLoader(s *Scene, path string) *MeshLoader {
	return &MeshLoader{scene: s, path: path}
}

// Mesh implements scene.MeshSource.
func (l *MeshLoader) Mesh() (scene.MeshHandle, bool) {
	if !l.tried {
		l.tried = true
		h, err := l.scene.LoadMesh(l.path)
		if err != nil {
			l.err = err
			slog.Warn("feather mesh unavailable", "path", l.path, "error", err)
		} else {
			l.handle, l.ready = h, true
		}
	}
	return l.handle, l.ready
}

// Err returns the load error, if any.
func (l *MeshLoader) Err() error {
	return l.err
}
