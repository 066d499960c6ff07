package params

import "log/slog"

// ChangeFunc is called after a field's value changes.
type ChangeFunc func(f Field, prev, next float64)

// Store owns the current parameter vector. The UI writes to it; the frame
// loop reads it and consumes the dirty flag.
type Store struct {
	vec       Vector
	dirty     bool
	revision  uint64
	listeners []ChangeFunc
}

// NewStore creates a store holding v (clamped). The store starts dirty so
// the first frame builds the instance set.
func NewStore(v Vector) *Store {
	s := &Store{}
	for _, f := range Fields() {
		s.vec = s.vec.With(f, clampField(f, v.Get(f)))
	}
	s.dirty = true
	return s
}

// Vector returns a copy of the current values.
func (s *Store) Vector() Vector {
	return s.vec
}

// Get returns the current value of f.
func (s *Store) Get(f Field) float64 {
	return s.vec.Get(f)
}

// Set updates f, clamping out-of-range values. It reports whether the stored
// value changed.
func (s *Store) Set(f Field, x float64) bool {
	if f >= NumFields {
		return false
	}
	x = clampField(f, x)
	old := s.vec.Get(f)
	if old == x {
		return false
	}
	s.vec = s.vec.With(f, x)
	s.dirty = true
	s.revision++
	for _, fn := range s.listeners {
		fn(f, old, x)
	}
	return true
}

// SetVector applies every field of v. It reports whether anything changed.
func (s *Store) SetVector(v Vector) bool {
	changed := false
	for _, f := range Fields() {
		if s.Set(f, v.Get(f)) {
			changed = true
		}
	}
	return changed
}

// OnChange registers fn to run after every effective change.
func (s *Store) OnChange(fn ChangeFunc) {
	s.listeners = append(s.listeners, fn)
}

// Dirty reports whether anything changed since the last ClearDirty.
func (s *Store) Dirty() bool {
	return s.dirty
}

// ClearDirty resets the dirty flag after a rebuild.
func (s *Store) ClearDirty() {
	s.dirty = false
}

// Revision counts effective changes since creation.
func (s *Store) Revision() uint64 {
	return s.revision
}

func clampField(f Field, x float64) float64 {
	r := f.Range()
	if r.Contains(x) {
		return x
	}
	c := r.Clamp(x)
	slog.Warn("parameter out of range, clamping",
		"field", f.String(),
		"value", x,
		"min", r.Min,
		"max", r.Max,
		"clamped", c,
	)
	return c
}
