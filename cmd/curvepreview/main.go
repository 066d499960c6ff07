// Wing curve preview tool - plots the two boundary curves and the feather
// slots in plan and side view, with sliders for the shape parameters.
//
// Usage: go run ./cmd/curvepreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/plumage/curve"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
	"github.com/pthm-cable/plumage/ui"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	plotWidth    = 700
	plotHeight   = 330
	panelWidth   = windowWidth - plotWidth - 30
	samples      = 120
)

// plot maps curve coordinates into a screen rectangle.
type plot struct {
	x, y, w, h   float32
	title        string
	minU, maxU   float64 // horizontal axis (curve Z)
	minV, maxV   float64 // vertical axis
	vertical     func(p r3.Vec) float64
	verticalName string
}

func (pl plot) toScreen(p r3.Vec) rl.Vector2 {
	u := (p.Z - pl.minU) / (pl.maxU - pl.minU)
	v := (pl.vertical(p) - pl.minV) / (pl.maxV - pl.minV)
	return rl.Vector2{
		X: pl.x + float32(u)*pl.w,
		Y: pl.y + pl.h - float32(v)*pl.h,
	}
}

func (pl plot) drawFrame() {
	rl.DrawRectangleLines(int32(pl.x), int32(pl.y), int32(pl.w), int32(pl.h), rl.DarkGray)
	rl.DrawText(pl.title, int32(pl.x)+6, int32(pl.y)+6, 16, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("horizontal: z  vertical: %s", pl.verticalName), int32(pl.x)+6, int32(pl.y+pl.h)-18, 12, rl.Gray)

	origin := pl.toScreen(r3.Vec{})
	rl.DrawLineV(rl.Vector2{X: pl.x, Y: origin.Y}, rl.Vector2{X: pl.x + pl.w, Y: origin.Y}, rl.LightGray)
}

func (pl plot) drawBezier(b curve.Bezier, color rl.Color) {
	prev := pl.toScreen(b.PointAt(0))
	for i := 1; i <= samples; i++ {
		next := pl.toScreen(b.PointAt(float64(i) / samples))
		rl.DrawLineEx(prev, next, 2, color)
		prev = next
	}
	for _, cp := range []r3.Vec{b.P0, b.P1, b.P2, b.P3} {
		s := pl.toScreen(cp)
		rl.DrawCircleLines(int32(s.X), int32(s.Y), 4, rl.Fade(color, 0.6))
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Wing Curve Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	store := params.NewStore(params.Defaults())
	constants := curve.DefaultConstants()
	planner, err := placement.NewPlanner([]float64{0, 0.5}, []placement.Side{placement.Right})
	if err != nil {
		panic(err)
	}

	widgets := ui.NewRenderer()
	var sliders []ui.SliderDescriptor
	for _, f := range []params.Field{params.Curvature, params.Distribution, params.Size, params.FlapSpeed, params.FlapMotion} {
		sliders = append(sliders, ui.FieldSlider(store, f))
	}

	planView := plot{
		x: 10, y: 10, w: plotWidth, h: plotHeight,
		title: "Plan", minU: -6, maxU: 6, minV: -4, maxV: 4,
		vertical: func(p r3.Vec) float64 { return p.X }, verticalName: "x",
	}
	sideView := plot{
		x: 10, y: plotHeight + 30, w: plotWidth, h: plotHeight,
		title: "Side", minU: -6, maxU: 6, minV: -3.5, maxV: 3.5,
		vertical: func(p r3.Vec) float64 { return p.Y }, verticalName: "y",
	}

	var elapsed float64
	animating := true
	showSlots := true

	for !rl.WindowShouldClose() {
		if animating {
			elapsed += float64(rl.GetFrameTime())
		}

		p := store.Vector()
		pair := curve.WingPair(p, elapsed, constants)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		for _, pl := range []plot{planView, sideView} {
			pl.drawFrame()
			pl.drawBezier(pair.Lower, rl.DarkBlue)
			pl.drawBezier(pair.Upper, rl.Maroon)

			if showSlots {
				for _, slot := range planner.Plan(p) {
					pos := pair.SurfacePoint(slot.Weight, slot.T)
					r := float32(1.5 + slot.Scale())
					c := rl.Fade(rl.DarkGreen, 0.4+0.6*float32(slot.Weight))
					rl.DrawCircleV(pl.toScreen(pos), r, c)
				}
			}
		}

		// Control panel
		panelX := int32(plotWidth + 20)
		panelY := int32(10)
		rl.DrawText("Wing Shape", panelX, panelY, 20, rl.DarkGray)
		panelY += 30
		for _, s := range sliders {
			panelY = widgets.DrawSlider(panelX, panelY, s, panelWidth)
		}
		panelY += 10

		rl.DrawText(fmt.Sprintf("t = %.2fs  flap = %+.2f", elapsed, curve.FlapOffset(p, elapsed, constants)), panelX, panelY, 14, rl.DarkGray)
		panelY += 20
		rl.DrawText(fmt.Sprintf("lower length %.2f  upper length %.2f", pair.Lower.Length(), pair.Upper.Length()), panelX, panelY, 14, rl.DarkGray)
		panelY += 20
		rl.DrawText(fmt.Sprintf("slots per side: %d", planner.Count(p)), panelX, panelY, 14, rl.DarkGray)
		panelY += 30

		if gui.Button(rl.Rectangle{X: float32(panelX), Y: float32(panelY), Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: float32(panelX + 130), Y: float32(panelY), Width: 120, Height: 30}, "Reset Time") {
			elapsed = 0
		}
		panelY += 40
		if gui.Button(rl.Rectangle{X: float32(panelX), Y: float32(panelY), Width: 120, Height: 30}, toggleText(showSlots, "Hide Slots", "Show Slots")) {
			showSlots = !showSlots
		}
		if gui.Button(rl.Rectangle{X: float32(panelX + 130), Y: float32(panelY), Width: 120, Height: 30}, "Reset All") {
			store.SetVector(params.Defaults())
			elapsed = 0
		}

		rl.DrawText("Press C to copy the parameters as YAML", panelX, windowHeight-30, 12, rl.Gray)
		if rl.IsKeyPressed(rl.KeyC) {
			out, err := yaml.Marshal(struct {
				Parameters params.Vector `yaml:"parameters"`
			}{p})
			if err == nil {
				rl.SetClipboardText(string(out))
			}
		}

		rl.EndDrawing()
	}
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
