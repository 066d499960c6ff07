package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plumage/camera"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
	"github.com/pthm-cable/plumage/scene"
)

// ParamsPanel renders one slider per wing parameter plus the camera field
// of view.
type ParamsPanel struct {
	renderer *Renderer
	store    *params.Store
	x, y     int32
	width    int32
	visible  bool
	height   int32 // as of the last Draw
	sliders  []SliderDescriptor
}

// NewParamsPanel creates a panel writing to store and cam.
func NewParamsPanel(x, y, width int32, store *params.Store, cam *camera.Camera) *ParamsPanel {
	p := &ParamsPanel{
		renderer: NewRenderer(),
		store:    store,
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}

	p.sliders = append(p.sliders, SliderDescriptor{
		Label:  "fov",
		Format: "%.0f",
		Min:    cam.MinFOV,
		Max:    cam.MaxFOV,
		Step:   1,
		Get:    func() float32 { return cam.FOV },
		Set:    cam.SetFOV,
	})
	for _, f := range params.Fields() {
		p.sliders = append(p.sliders, FieldSlider(store, f))
	}
	return p
}

// FieldSlider builds a slider bound to one store field.
func FieldSlider(store *params.Store, f params.Field) SliderDescriptor {
	r := f.Range()
	format := "%.1f"
	if r.Step >= 1 {
		format = "%.0f"
	}
	return SliderDescriptor{
		Label:  f.String(),
		Format: format,
		Min:    float32(r.Min),
		Max:    float32(r.Max),
		Step:   float32(r.Step),
		Get:    func() float32 { return float32(store.Get(f)) },
		Set: func(v float32) {
			// Snap in float64 so stored values land exactly on the grid.
			store.Set(f, r.Snap(float64(v)))
		},
	}
}

// SetPosition moves the panel.
func (p *ParamsPanel) SetPosition(x, y int32) {
	p.x, p.y = x, y
}

// Toggle switches panel visibility.
func (p *ParamsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Contains reports whether the screen point lies over the visible panel.
func (p *ParamsPanel) Contains(x, y float32) bool {
	if !p.visible {
		return false
	}
	return x >= float32(p.x) && x <= float32(p.x+p.width) &&
		y >= float32(p.y) && y <= float32(p.y+p.height)
}

// Draw renders the panel and applies slider edits. It returns the Y below
// the panel.
func (p *ParamsPanel) Draw() int32 {
	if !p.visible {
		return p.y
	}

	r := p.renderer
	padding := r.Theme.Padding
	rowHeight := r.Theme.LineHeight + r.Theme.SliderHeight + 6
	height := padding*2 + r.Theme.LineHeight + 2 + int32(len(p.sliders))*rowHeight + 2*r.Theme.LineHeight

	p.height = height
	r.DrawPanel(p.x, p.y, p.width, height)

	y := r.DrawSectionHeader(p.x+padding, p.y+padding, "Wing")
	for _, s := range p.sliders {
		y = r.DrawSlider(p.x+padding, y, s, p.width-padding*2)
	}

	v := p.store.Vector()
	y = r.DrawColorSwatch(p.x+padding, y, "base", swatch(placement.ProfileFor(v, 0).Color(v.ColorTint)))
	r.DrawColorSwatch(p.x+padding, y, "tip", swatch(placement.ProfileFor(v, 1).Color(v.ColorTint)))
	return p.y + height
}

func swatch(c scene.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.Color{R: r, G: g, B: b, A: a}
}
