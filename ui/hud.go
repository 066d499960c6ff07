package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plumage/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Mode      string
	Instances int
	Frame     int32
	FPS       int32
	MeshError string // shown while the feather mesh is missing
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Mode: %s | Feathers: %d | Frame: %d | FPS: %d", data.Mode, data.Instances, data.Frame, data.FPS),
		10, 35, 16, rl.LightGray,
	)
	if data.MeshError != "" {
		rl.DrawText(data.MeshError, 10, 55, 16, h.renderer.Theme.WarnColor)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the frame phase breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x, y := p.x, p.y

	rl.DrawText("Frame Update", x, y, 16, rl.White)
	y += 20
	y = p.renderer.DrawLabelValue(x, y, "avg", fmt.Sprintf("%dus", stats.AvgUpdate.Microseconds()))
	y = p.renderer.DrawLabelValue(x, y, "max", fmt.Sprintf("%dus", stats.MaxUpdate.Microseconds()))
	y = p.renderer.DrawLabelValue(x, y, "updates/s", fmt.Sprintf("%.0f", stats.UpdatesPerSecond))

	for _, phase := range telemetry.Phases {
		pct, ok := stats.PhasePct[phase]
		if !ok {
			continue
		}
		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-10s %5.1f%%", phase, pct), x, y, 12, color)
		y += 14
	}
}
