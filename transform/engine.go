package transform

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plumage/components"
	"github.com/pthm-cable/plumage/curve"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
	"github.com/pthm-cable/plumage/scene"
)

// Engine owns one ECS entity per live feather and writes their transforms
// to the scene every frame.
type Engine struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Feather, components.Pose, components.Instance]
	filter *ecs.Filter3[components.Feather, components.Pose, components.Instance]

	// index finds a feather by slot key without scanning the scene.
	index map[placement.Key]ecs.Entity

	scene  scene.Scene
	motion Motion
	attach Attachment

	// attachment matrices per side, rebuilt when the attachment changes
	pivots map[placement.Side]*mat.Dense
}

// NewEngine creates an engine writing to sc.
func NewEngine(sc scene.Scene, motion Motion, attach Attachment) *Engine {
	world := ecs.NewWorld()
	e := &Engine{
		world:  world,
		mapper: ecs.NewMap3[components.Feather, components.Pose, components.Instance](world),
		filter: ecs.NewFilter3[components.Feather, components.Pose, components.Instance](world),
		index:  make(map[placement.Key]ecs.Entity),
		scene:  sc,
		motion: motion,
	}
	e.SetAttachment(attach)
	return e
}

// SetAttachment replaces the wing pivot placement.
func (e *Engine) SetAttachment(a Attachment) {
	e.attach = a
	e.pivots = map[placement.Side]*mat.Dense{
		placement.Left:  a.Matrix(placement.Left),
		placement.Right: a.Matrix(placement.Right),
	}
}

// Len returns the number of live feathers.
func (e *Engine) Len() int {
	return len(e.index)
}

// Install creates one scene instance per slot. Any existing feathers are
// destroyed first so the old and new sets never coexist.
func (e *Engine) Install(slots []placement.Slot, mesh scene.MeshHandle) {
	e.Clear()
	for _, slot := range slots {
		h := e.scene.AddInstance(mesh, scene.FeatherTag)
		e.scene.SetColor(h, slot.Color)

		feather := components.Feather{Slot: slot}
		pose := components.Pose{Applied: Identity()}
		inst := components.Instance{Handle: h, Mesh: mesh, Color: slot.Color}
		entity := e.mapper.NewEntity(&feather, &pose, &inst)
		e.index[slot.Key] = entity
	}
}

// Clear removes every feather from the scene and the arena, including any
// feather-tagged instances the arena lost track of. It returns the number of
// scene instances removed.
func (e *Engine) Clear() int {
	// Collect first; entities cannot be removed while a query is open.
	var toRemove []ecs.Entity
	removed := 0

	query := e.filter.Query()
	for query.Next() {
		_, _, inst := query.Get()
		e.scene.RemoveInstance(inst.Handle)
		removed++
		toRemove = append(toRemove, query.Entity())
	}
	for _, entity := range toRemove {
		e.world.RemoveEntity(entity)
	}
	clear(e.index)

	for _, h := range e.scene.Instances(scene.FeatherTag) {
		e.scene.RemoveInstance(h)
		removed++
	}
	return removed
}

// Lookup returns the slot, scene handle and last-applied transform of the
// feather at key.
func (e *Engine) Lookup(key placement.Key) (placement.Slot, scene.InstanceHandle, *mat.Dense, bool) {
	entity, ok := e.index[key]
	if !ok || !e.world.Alive(entity) {
		return placement.Slot{}, 0, nil, false
	}
	feather, pose, inst := e.mapper.Get(entity)
	return feather.Slot, inst.Handle, pose.Applied, true
}

// Update poses every feather for the given curves, parameters and time.
//
// In rebuild mode transforms are written absolutely. In continuous mode the
// scene receives next·prev⁻¹ so the instance transform is always the
// composition of deltas from its rest pose, and slot scale and color follow
// the live parameters. It returns the number of feathers posed.
func (e *Engine) Update(pair curve.Pair, p params.Vector, elapsed float64, mode params.Mode) int {
	live := mode == params.ModeContinuous
	var profiles map[float64]placement.Profile
	if live {
		profiles = make(map[float64]placement.Profile, 4)
	}

	posed := 0
	query := e.filter.Query()
	for query.Next() {
		feather, pose, inst := query.Get()
		slot := &feather.Slot

		if live {
			prof, ok := profiles[slot.Weight]
			if !ok {
				prof = placement.ProfileFor(p, slot.Weight)
				profiles[slot.Weight] = prof
			}
			slot.ScaleMin = prof.ScaleBase
			slot.ScaleMax = prof.ScaleBase + prof.ScaleFactor
			slot.Color = prof.Color(p.ColorTint)
			if slot.Color != inst.Color {
				e.scene.SetColor(inst.Handle, slot.Color)
				inst.Color = slot.Color
			}
		}

		pos := pair.SurfacePoint(slot.Weight, slot.T)
		var next mat.Dense
		next.Mul(e.pivots[slot.Key.Side], Local(*slot, pos, p, elapsed, e.motion))

		e.apply(inst.Handle, pose, &next, live)
		posed++
	}
	return posed
}

func (e *Engine) apply(h scene.InstanceHandle, pose *components.Pose, next *mat.Dense, incremental bool) {
	if incremental && pose.Applied != nil {
		if delta, err := Delta(pose.Applied, next); err == nil {
			e.scene.ApplyTransform(h, delta)
			pose.Applied = next
			pose.Frames++
			return
		}
	}
	e.scene.SetTransform(h, next)
	pose.Applied = next
	pose.Frames++
}

// Scales appends the current uniform scale of every feather to dst.
func (e *Engine) Scales(dst []float64) []float64 {
	query := e.filter.Query()
	for query.Next() {
		feather, _, _ := query.Get()
		dst = append(dst, feather.Slot.Scale())
	}
	return dst
}
