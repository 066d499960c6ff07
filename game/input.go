package game

import rl "github.com/gen2brain/raylib-go/raylib"

// Orbit and zoom rates.
const (
	orbitSpeed = 0.008 // radians per pixel dragged
	zoomStep   = 0.1   // distance fraction per wheel notch
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.showPerf = !g.showPerf
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.background.Resize(w, h)
	g.panel.SetPosition(w-panelWidth-10, 10)
}

// handleCameraInput orbits on left drag and zooms on the wheel. A drag that
// starts over the panel belongs to the sliders.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.dragging = !g.panel.Contains(mouse.X, mouse.Y)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		g.camera.Orbit(-delta.X*orbitSpeed, delta.Y*orbitSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !g.panel.Contains(mouse.X, mouse.Y) {
		g.camera.Dolly(1 - wheel*zoomStep)
	}
}
