// Package ui draws the parameter panel and heads-up display over the 3D view.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// SliderDescriptor defines one bounded, stepped slider.
type SliderDescriptor struct {
	Label  string
	Format string // Printf format for the value
	Min    float32
	Max    float32
	Step   float32 // 0 = continuous
	Get    func() float32
	Set    func(float32)
}

// snap rounds v to the nearest step from Min and clamps it to the range.
func (d SliderDescriptor) snap(v float32) float32 {
	if d.Step > 0 {
		n := float32(int32((v-d.Min)/d.Step + 0.5))
		v = d.Min + n*d.Step
	}
	if v < d.Min {
		v = d.Min
	}
	if v > d.Max {
		v = d.Max
	}
	return v
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	WarnColor      rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	SliderHeight   int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		WarnColor:      rl.Orange,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		SliderHeight:   16,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
