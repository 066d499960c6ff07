// Package game runs the windowed wing viewer: raylib scene, orbit camera and
// the parameter panel around a wing.Wing.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plumage/camera"
	"github.com/pthm-cable/plumage/config"
	"github.com/pthm-cable/plumage/renderer"
	"github.com/pthm-cable/plumage/scene"
	"github.com/pthm-cable/plumage/ui"
	"github.com/pthm-cable/plumage/wing"
)

const controlsText = "Drag: orbit | Wheel: zoom | Space: pause | H: panel | P: perf | F11: fullscreen"

// Options configures a Game.
type Options struct {
	Wing wing.Options
}

// Game holds the viewer state. Create it after rl.InitWindow.
type Game struct {
	wing  *wing.Wing
	scene *renderer.Scene
	mesh  *renderer.MeshLoader
	clock scene.ManualClock

	camera     *camera.Camera
	background *renderer.BackgroundRenderer
	panel      *ui.ParamsPanel
	hud        *ui.HUD
	perfPanel  *ui.PerfPanel

	paused   bool
	showPerf bool
	dragging bool

	screenWidth, screenHeight int32
}

// New creates the viewer from the loaded config.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()

	sc := renderer.NewScene()
	mesh := renderer.NewMeshLoader(sc, cfg.Wing.MeshPath)

	w, err := wing.New(sc, mesh, opts.Wing)
	if err != nil {
		return nil, fmt.Errorf("creating wing: %w", err)
	}

	cam := camera.New(float32(cfg.Camera.EyeX), float32(cfg.Camera.EyeY), float32(cfg.Camera.EyeZ), float32(cfg.Camera.FOV))
	cam.MinFOV, cam.MaxFOV = float32(cfg.Camera.MinFOV), float32(cfg.Camera.MaxFOV)
	cam.MinDistance, cam.MaxDistance = float32(cfg.Camera.MinDistance), float32(cfg.Camera.MaxDistance)

	base, err := scene.ParseHex(cfg.Screen.Background)
	if err != nil {
		slog.Warn("invalid background color, using black", "value", cfg.Screen.Background, "error", err)
	}

	g := &Game{
		wing:         w,
		scene:        sc,
		mesh:         mesh,
		camera:       cam,
		background:   renderer.NewBackgroundRenderer(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, base),
		hud:          ui.NewHUD(),
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}
	g.panel = ui.NewParamsPanel(g.screenWidth-panelWidth-10, 10, panelWidth, w.Store(), cam)
	g.perfPanel = ui.NewPerfPanel(10, 80)

	return g, nil
}

// panelWidth is the parameter panel width in pixels.
const panelWidth = 260

// Update handles input and advances the wing by one frame.
func (g *Game) Update() {
	g.handleInput()

	if !g.paused {
		g.clock.Advance(float64(rl.GetFrameTime()))
	}

	if err := g.wing.Update(g.clock.Elapsed()); err != nil && !errors.Is(err, wing.ErrGeometryUnavailable) {
		slog.Error("wing update failed", "error", err)
	}
}

// Draw renders the frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	g.background.Draw()

	rl.BeginMode3D(renderer.Camera3D(g.camera))
	g.scene.Draw()
	rl.EndMode3D()

	data := ui.HUDData{
		Title:     "Plumage",
		Mode:      g.wing.Mode().String(),
		Instances: g.wing.Len(),
		Frame:     g.wing.Frame(),
		FPS:       rl.GetFPS(),
	}
	if err := g.mesh.Err(); err != nil {
		data.MeshError = "Feather mesh unavailable: " + err.Error()
	}
	if g.paused {
		data.Title += " (paused)"
	}
	g.hud.Draw(data)
	g.hud.DrawControls(g.screenHeight, controlsText)

	g.panel.Draw()
	if g.showPerf {
		g.perfPanel.Draw(g.wing.Perf().Stats())
	}

	rl.EndDrawing()
	g.wing.Perf().RecordPresent()
}

// Unload releases GPU resources.
func (g *Game) Unload() {
	g.scene.Unload()
}

// Wing returns the wing being shown.
func (g *Game) Wing() *wing.Wing {
	return g.wing
}
