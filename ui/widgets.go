package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 2
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawColorSwatch draws a label and a color swatch.
func (r *Renderer) DrawColorSwatch(x, y int32, label string, color rl.Color) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(x+r.Theme.LabelWidth, y+1, 12, 12, color)
	return y + r.Theme.LineHeight
}

// DrawSlider draws a labelled raygui slider. When the user moves it, the
// snapped value is passed to d.Set. It returns the new Y position.
func (r *Renderer) DrawSlider(x, y int32, d SliderDescriptor, width int32) int32 {
	cur := d.Get()
	rl.DrawText(d.Label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(fmt.Sprintf(d.Format, cur), x+width-40, y, r.Theme.FontSize, r.Theme.ValueColor)
	y += r.Theme.LineHeight

	bounds := rl.Rectangle{
		X:      float32(x + 24),
		Y:      float32(y),
		Width:  float32(width - 48),
		Height: float32(r.Theme.SliderHeight),
	}
	next := gui.SliderBar(bounds,
		fmt.Sprintf(d.Format, d.Min), fmt.Sprintf(d.Format, d.Max),
		cur, d.Min, d.Max,
	)
	if next != cur {
		if snapped := d.snap(next); snapped != cur {
			d.Set(snapped)
		}
	}
	return y + r.Theme.SliderHeight + 6
}
