package transform

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/plumage/curve"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
	"github.com/pthm-cable/plumage/scene"
)

const testMesh scene.MeshHandle = 7

func newTestEngine(t *testing.T) (*Engine, *scene.Memory, []placement.Slot) {
	t.Helper()
	pl, err := placement.NewPlanner([]float64{0, 0.5}, placement.BothSides())
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}
	mem := scene.NewMemory()
	e := NewEngine(mem, DefaultMotion(), DefaultAttachment())
	slots := pl.Plan(params.Defaults())
	e.Install(slots, testMesh)
	return e, mem, slots
}

func TestInstallCreatesOneInstancePerSlot(t *testing.T) {
	e, mem, slots := newTestEngine(t)

	if e.Len() != len(slots) {
		t.Errorf("expected %d feathers, got %d", len(slots), e.Len())
	}
	if got := len(mem.Instances(scene.FeatherTag)); got != len(slots) {
		t.Errorf("expected %d scene instances, got %d", len(slots), got)
	}

	slot, h, applied, ok := e.Lookup(slots[0].Key)
	if !ok {
		t.Fatalf("lookup of %v failed", slots[0].Key)
	}
	if slot != slots[0] {
		t.Errorf("lookup returned %+v, expected %+v", slot, slots[0])
	}
	if !mat.Equal(applied, Identity()) {
		t.Error("fresh feather should start at identity")
	}
	if c, _ := mem.Color(h); c != slots[0].Color {
		t.Errorf("expected color %v, got %v", slots[0].Color, c)
	}
	if m, _ := mem.Mesh(h); m != testMesh {
		t.Errorf("expected mesh %d, got %d", testMesh, m)
	}
}

func TestReinstallLeavesNoStrays(t *testing.T) {
	e, mem, slots := newTestEngine(t)

	// A stray feather the arena never knew about.
	mem.AddInstance(testMesh, scene.FeatherTag)
	// Non-feather instances are left alone.
	other := mem.AddInstance(testMesh, "body")

	e.Install(slots[:10], testMesh)
	if got := len(mem.Instances(scene.FeatherTag)); got != 10 {
		t.Errorf("expected 10 feathers after reinstall, got %d", got)
	}
	if _, ok := mem.Color(other); !ok {
		t.Error("non-feather instance was removed")
	}

	removed := e.Clear()
	if removed != 10 {
		t.Errorf("expected Clear to remove 10, got %d", removed)
	}
	if e.Len() != 0 || len(mem.Instances(scene.FeatherTag)) != 0 {
		t.Errorf("expected no feathers, engine %d scene %d", e.Len(), len(mem.Instances(scene.FeatherTag)))
	}
	if _, _, _, ok := e.Lookup(slots[0].Key); ok {
		t.Error("lookup should fail after Clear")
	}
}

func TestRebuildModeWritesAbsoluteTransforms(t *testing.T) {
	e, mem, slots := newTestEngine(t)
	p := params.Defaults()
	k := curve.DefaultConstants()

	for _, elapsed := range []float64{0, 0.25, 1.5} {
		pair := curve.WingPair(p, elapsed, k)
		if n := e.Update(pair, p, elapsed, params.ModeRebuild); n != len(slots) {
			t.Fatalf("expected %d posed, got %d", len(slots), n)
		}
		for _, slot := range []placement.Slot{slots[0], slots[len(slots)/2], slots[len(slots)-1]} {
			_, h, _, _ := e.Lookup(slot.Key)
			expected := Compose(slot, pair.SurfacePoint(slot.Weight, slot.T), p, elapsed, DefaultMotion(), DefaultAttachment())
			if !mat.EqualApprox(mem.Transform(h), expected, 1e-12) {
				t.Errorf("elapsed %v slot %v: transform mismatch", elapsed, slot.Key)
			}
		}
	}
}

func TestContinuousModeMatchesAbsolute(t *testing.T) {
	e, mem, slots := newTestEngine(t)
	p := params.Defaults()
	k := curve.DefaultConstants()

	var pair curve.Pair
	elapsed := 0.0
	for i := 0; i < 30; i++ {
		elapsed = float64(i) / 30
		pair = curve.WingPair(p, elapsed, k)
		e.Update(pair, p, elapsed, params.ModeContinuous)
	}

	for _, slot := range slots {
		_, h, applied, _ := e.Lookup(slot.Key)
		expected := Compose(slot, pair.SurfacePoint(slot.Weight, slot.T), p, elapsed, DefaultMotion(), DefaultAttachment())
		if !mat.EqualApprox(mem.Transform(h), expected, 1e-9) {
			t.Fatalf("slot %v: accumulated deltas drifted from absolute transform", slot.Key)
		}
		if !mat.EqualApprox(applied, expected, 1e-12) {
			t.Fatalf("slot %v: pose does not hold the last transform", slot.Key)
		}
	}
}

func TestContinuousModeIdempotent(t *testing.T) {
	e, mem, slots := newTestEngine(t)
	p := params.Defaults()
	pair := curve.WingPair(p, 0.4, curve.DefaultConstants())

	e.Update(pair, p, 0.4, params.ModeContinuous)
	_, h, _, _ := e.Lookup(slots[5].Key)
	before := mat.DenseCopyOf(mem.Transform(h))

	e.Update(pair, p, 0.4, params.ModeContinuous)
	if !mat.EqualApprox(mem.Transform(h), before, 1e-12) {
		t.Error("reapplying identical inputs moved the feather")
	}
}

func TestContinuousModeFollowsLiveParameters(t *testing.T) {
	e, mem, slots := newTestEngine(t)
	k := curve.DefaultConstants()

	p := params.Defaults()
	e.Update(curve.WingPair(p, 0, k), p, 0, params.ModeContinuous)

	p = p.With(params.ColorTint, 0.9).With(params.Size, 2)
	pair := curve.WingPair(p, 0, k)
	e.Update(pair, p, 0, params.ModeContinuous)

	for _, slot := range []placement.Slot{slots[0], slots[len(slots)-1]} {
		live, h, _, _ := e.Lookup(slot.Key)
		prof := placement.ProfileFor(p, slot.Weight)

		if c, _ := mem.Color(h); c != prof.Color(0.9) {
			t.Errorf("slot %v: expected color %v, got %v", slot.Key, prof.Color(0.9), c)
		}
		if live.ScaleMax != prof.ScaleBase+prof.ScaleFactor {
			t.Errorf("slot %v: expected scale max %v, got %v", slot.Key, prof.ScaleBase+prof.ScaleFactor, live.ScaleMax)
		}
		expected := Compose(live, pair.SurfacePoint(live.Weight, live.T), p, 0, DefaultMotion(), DefaultAttachment())
		if !mat.EqualApprox(mem.Transform(h), expected, 1e-9) {
			t.Errorf("slot %v: transform does not reflect new size", slot.Key)
		}
	}

	// Continuous mode never changes the instance set.
	if added, removed := mem.Churn(); added != len(slots) || removed != 0 {
		t.Errorf("expected churn %d/0, got %d/%d", len(slots), added, removed)
	}
}

func TestSetAttachmentMovesWing(t *testing.T) {
	e, mem, slots := newTestEngine(t)
	p := params.Defaults()
	pair := curve.WingPair(p, 0, curve.DefaultConstants())

	a := DefaultAttachment()
	a.Pivot.X = 8
	e.SetAttachment(a)
	e.Update(pair, p, 0, params.ModeRebuild)

	slot := slots[0]
	_, h, _, _ := e.Lookup(slot.Key)
	expected := Compose(slot, pair.SurfacePoint(slot.Weight, slot.T), p, 0, DefaultMotion(), a)
	if !mat.EqualApprox(mem.Transform(h), expected, 1e-12) {
		t.Error("transform does not use the new attachment")
	}
}
