package form

import "github.com/zclconf/go-cty/cty"

// memo is a write-once, read-many store for evaluated line values. It is
// owned by a single form instance and is only ever discarded with it,
// never invalidated in place. The graph is evaluated single-threaded, so
// no locking is required.
type memo struct {
	cells    map[string]cty.Value
	inflight map[string]bool
}

// eval returns the cached value for a line, running fn exactly once per
// instance. Re-entering a line that is still evaluating means the
// dependency graph has a cycle; that is a construction defect and panics
// with a *Defect so the computation boundary can fail fast.
func (m *memo) eval(formID, name string, fn func() cty.Value) cty.Value {
	if v, ok := m.cells[name]; ok {
		return v
	}
	if m.inflight[name] {
		panic(&Defect{Form: formID, Line: name, Reason: "line accessors form a cycle"})
	}
	if m.cells == nil {
		m.cells = make(map[string]cty.Value)
		m.inflight = make(map[string]bool)
	}

	m.inflight[name] = true
	v := fn()
	delete(m.inflight, name)

	m.cells[name] = v
	return v
}
