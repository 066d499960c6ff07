package scene

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

type memInstance struct {
	mesh      MeshHandle
	tag       string
	transform *mat.Dense
	color     Color
}

// Memory is a map-backed Scene. New instances start at the identity
// transform and white.
type Memory struct {
	next      InstanceHandle
	instances map[InstanceHandle]*memInstance

	added   int
	removed int
}

// NewMemory creates an empty scene.
func NewMemory() *Memory {
	return &Memory{instances: make(map[InstanceHandle]*memInstance)}
}

// AddInstance implements Scene.
func (m *Memory) AddInstance(mesh MeshHandle, tag string) InstanceHandle {
	m.next++
	h := m.next
	m.instances[h] = &memInstance{
		mesh:      mesh,
		tag:       tag,
		transform: identity(),
		color:     Color{R: 1, G: 1, B: 1},
	}
	m.added++
	return h
}

// RemoveInstance implements Scene.
func (m *Memory) RemoveInstance(h InstanceHandle) {
	if _, ok := m.instances[h]; !ok {
		return
	}
	delete(m.instances, h)
	m.removed++
}

// SetTransform implements Scene.
func (m *Memory) SetTransform(h InstanceHandle, t mat.Matrix) {
	inst, ok := m.instances[h]
	if !ok {
		return
	}
	inst.transform = mat.DenseCopyOf(t)
}

// ApplyTransform implements Scene.
func (m *Memory) ApplyTransform(h InstanceHandle, t mat.Matrix) {
	inst, ok := m.instances[h]
	if !ok {
		return
	}
	var out mat.Dense
	out.Mul(t, inst.transform)
	inst.transform = &out
}

// SetColor implements Scene.
func (m *Memory) SetColor(h InstanceHandle, c Color) {
	if inst, ok := m.instances[h]; ok {
		inst.color = c
	}
}

// Instances implements Scene. Handles are returned in creation order.
func (m *Memory) Instances(tag string) []InstanceHandle {
	out := make([]InstanceHandle, 0, len(m.instances))
	for h, inst := range m.instances {
		if inst.tag == tag {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transform returns the instance transform, or nil if h is not live.
func (m *Memory) Transform(h InstanceHandle) *mat.Dense {
	inst, ok := m.instances[h]
	if !ok {
		return nil
	}
	return inst.transform
}

// Color returns the instance color.
func (m *Memory) Color(h InstanceHandle) (Color, bool) {
	inst, ok := m.instances[h]
	if !ok {
		return Color{}, false
	}
	return inst.color, true
}

// Mesh returns the mesh an instance was created from.
func (m *Memory) Mesh(h InstanceHandle) (MeshHandle, bool) {
	inst, ok := m.instances[h]
	if !ok {
		return 0, false
	}
	return inst.mesh, true
}

// Len returns the number of live instances.
func (m *Memory) Len() int {
	return len(m.instances)
}

// Churn returns how many instances were ever added and removed.
func (m *Memory) Churn() (added, removed int) {
	return m.added, m.removed
}

// Each calls fn for every live instance in creation order.
func (m *Memory) Each(fn func(h InstanceHandle, mesh MeshHandle, transform *mat.Dense, c Color)) {
	handles := make([]InstanceHandle, 0, len(m.instances))
	for h := range m.instances {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		inst := m.instances[h]
		fn(h, inst.mesh, inst.transform, inst.color)
	}
}

func identity() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}
