package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plumage/scene"
)

// BackgroundRenderer fills the screen with a vertical sky gradient derived
// from a base color.
type BackgroundRenderer struct {
	screenW, screenH int32
	top, bottom      color.RGBA
}

// NewBackgroundRenderer creates a background from base. The top of the
// screen is a lighter tint of base, the bottom a darker one.
func NewBackgroundRenderer(screenW, screenH int32, base scene.Color) *BackgroundRenderer {
	lighter := scene.Color{R: lift(base.R), G: lift(base.G), B: lift(base.B)}
	darker := scene.Color{R: base.R * 0.5, G: base.G * 0.5, B: base.B * 0.5}
	return &BackgroundRenderer{
		screenW: screenW,
		screenH: screenH,
		top:     toRGBA(lighter),
		bottom:  toRGBA(darker),
	}
}

func lift(v float64) float64 {
	return v + (1-v)*0.35
}

// Resize updates the screen size.
func (b *BackgroundRenderer) Resize(screenW, screenH int32) {
	b.screenW, b.screenH = screenW, screenH
}

// Draw renders the gradient. Call before BeginMode3D.
func (b *BackgroundRenderer) Draw() {
	rl.DrawRectangleGradientV(0, 0, b.screenW, b.screenH, b.top, b.bottom)
}
