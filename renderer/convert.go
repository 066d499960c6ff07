package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/plumage/camera"
	"github.com/pthm-cable/plumage/scene"
)

// toMatrix converts a column-vector transform to raylib's matrix.
func toMatrix(m mat.Matrix) rl.Matrix {
	v := scene.ColumnMajor(m)
	return rl.Matrix{
		M0: v[0], M4: v[4], M8: v[8], M12: v[12],
		M1: v[1], M5: v[5], M9: v[9], M13: v[13],
		M2: v[2], M6: v[6], M10: v[10], M14: v[14],
		M3: v[3], M7: v[7], M11: v[11], M15: v[15],
	}
}

// Camera3D builds the raylib camera for an orbit camera.
func Camera3D(c *camera.Camera) rl.Camera3D {
	x, y, z := c.Eye()
	return rl.Camera3D{
		Position:   rl.NewVector3(x, y, z),
		Target:     rl.NewVector3(c.TargetX, c.TargetY, c.TargetZ),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
