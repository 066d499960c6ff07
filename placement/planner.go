// Package placement enumerates the feather slots of a wing and their static
// attributes.
package placement

import (
	"fmt"
	"math"

	"github.com/pthm-cable/plumage/easing"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/scene"
)

// Layer profile endpoints. Index 0 applies at layer weight 0 (base), index 1
// at weight 1 (tip).
const (
	baseScaleBase   = 1.0
	tipScaleBase    = 0.5
	baseScaleFactor = 2.0
	tipScaleFactor  = 0.5
	baseDensity     = 0.04
	tipDensity      = 0.02
	baseDarkness    = 0.6
	tipDarkness     = 1.0
)

// stepEpsilon lets a final step that lands on 1.0 within rounding count.
const stepEpsilon = 1e-9

// Profile holds the visual parameters of one layer.
type Profile struct {
	ScaleBase   float64
	ScaleFactor float64
	Density     float64 // step in t between neighbouring slots
	Darkness    float64
}

// ProfileFor interpolates the layer profile for weight w in [0, 1].
func ProfileFor(p params.Vector, w float64) Profile {
	dist := p.DistributionFactor
	if dist <= 0 {
		dist = params.Distribution.Range().Min
	}
	return Profile{
		ScaleBase:   easing.Lerp(baseScaleBase, tipScaleBase, w),
		ScaleFactor: easing.Lerp(baseScaleFactor*p.SizeFactor, tipScaleFactor*p.SizeFactor, w),
		Density:     easing.Lerp(baseDensity/dist, tipDensity/dist, w),
		Darkness:    easing.Lerp(baseDarkness, tipDarkness, w),
	}
}

// Color returns the feather color for this profile.
func (pr Profile) Color(tint float64) scene.Color {
	v := easing.Clamp(pr.Darkness*tint, 0, 1)
	return scene.Color{R: v, G: v, B: v}
}

// Steps returns how many slots a layer with the given density holds: every
// t = i*density with t <= 1.
func Steps(density float64) int {
	if density <= 0 || math.IsNaN(density) {
		return 1
	}
	return int(math.Floor(1/density+stepEpsilon)) + 1
}

// Key identifies a slot.
type Key struct {
	Side  Side
	Layer int
	Step  int
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d/%d", k.Side, k.Layer, k.Step)
}

// Slot is one feather position in the layout.
type Slot struct {
	Key    Key
	Weight float64 // layer weight, 0 = base, 1 = tip
	T      float64 // arc-length fraction along the wing curves

	ScaleMin float64
	ScaleMax float64
	Color    scene.Color
}

// Scale returns the slot's uniform scale, eased along the curve.
func (s Slot) Scale() float64 {
	return easing.Lerp(s.ScaleMin, s.ScaleMax, easing.Gain(0.5, s.T))
}

// Planner enumerates slots for a fixed set of layers and sides.
type Planner struct {
	layers []float64
	sides  []Side
}

// NewPlanner creates a planner. Layer weights are clamped to [0, 1].
func NewPlanner(layers []float64, sides []Side) (*Planner, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("planner needs at least one layer")
	}
	if len(sides) == 0 {
		return nil, fmt.Errorf("planner needs at least one side")
	}
	pl := &Planner{
		layers: make([]float64, len(layers)),
		sides:  append([]Side(nil), sides...),
	}
	for i, w := range layers {
		pl.layers[i] = easing.Clamp(w, 0, 1)
	}
	for _, s := range sides {
		if s != Left && s != Right {
			return nil, fmt.Errorf("invalid side %d", s)
		}
	}
	return pl, nil
}

// Layers returns the layer weights.
func (pl *Planner) Layers() []float64 {
	return pl.layers
}

// Sides returns the planned sides.
func (pl *Planner) Sides() []Side {
	return pl.sides
}

// LayerCount returns the number of slots in one layer on one side.
func (pl *Planner) LayerCount(p params.Vector, layer int) int {
	if layer < 0 || layer >= len(pl.layers) {
		return 0
	}
	return Steps(ProfileFor(p, pl.layers[layer]).Density)
}

// Count returns the total number of slots Plan would produce.
func (pl *Planner) Count(p params.Vector) int {
	n := 0
	for i := range pl.layers {
		n += pl.LayerCount(p, i)
	}
	return n * len(pl.sides)
}

// Plan enumerates every slot, ordered by side, then layer, then step.
// The result depends only on p, so equal inputs give equal plans.
func (pl *Planner) Plan(p params.Vector) []Slot {
	slots := make([]Slot, 0, pl.Count(p))
	for _, side := range pl.sides {
		for li, w := range pl.layers {
			prof := ProfileFor(p, w)
			color := prof.Color(p.ColorTint)
			n := Steps(prof.Density)
			for i := 0; i < n; i++ {
				slots = append(slots, Slot{
					Key:      Key{Side: side, Layer: li, Step: i},
					Weight:   w,
					T:        math.Min(float64(i)*prof.Density, 1),
					ScaleMin: prof.ScaleBase,
					ScaleMax: prof.ScaleBase + prof.ScaleFactor,
					Color:    color,
				})
			}
		}
	}
	return slots
}
