package scenario

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vk/taxgridgo/internal/ctxlog"
	"github.com/vk/taxgridgo/internal/engine"
	"github.com/vk/taxgridgo/internal/model"
	"github.com/vk/taxgridgo/internal/params"
)

// maxSelected caps side-by-side comparison. Selecting beyond the cap
// evicts the oldest selection (FIFO, deliberately not LRU).
const maxSelected = 3

// Engine owns the scenarios derived from one base snapshot and the
// cache of their computation results.
type Engine struct {
	base *model.ValidatedInformation
	p    *params.Params

	// mu guards scenarios and selected. The result cache is a sync.Map
	// so calculations of distinct scenarios never contend on it.
	mu        sync.Mutex
	scenarios map[string]*Scenario
	selected  []string

	results   sync.Map // scenario id -> *engine.Result
	calcLocks sync.Map // scenario id -> *sync.Mutex
}

// New creates an engine for one base snapshot and parameter table.
func New(base *model.ValidatedInformation, p *params.Params) *Engine {
	return &Engine{
		base:      base,
		p:         p,
		scenarios: make(map[string]*Scenario),
	}
}

// Create registers a new named scenario in Draft state.
func (e *Engine) Create(name string) *Scenario {
	e.mu.Lock()
	defer e.mu.Unlock()

	sc := &Scenario{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	e.scenarios[sc.ID] = sc
	return sc
}

// Duplicate copies an existing scenario, modifications included, into a
// fresh Draft scenario.
func (e *Engine) Duplicate(id, name string) (*Scenario, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	src, ok := e.scenarios[id]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", id)
	}
	dup := &Scenario{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
		mods:      append([]Modification(nil), src.mods...),
	}
	e.scenarios[dup.ID] = dup
	return dup, nil
}

// Get returns a scenario by id.
func (e *Engine) Get(id string) (*Scenario, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	sc, ok := e.scenarios[id]
	return sc, ok
}

// Rename updates scenario metadata. Metadata edits invalidate the
// cached result like any other edit.
func (e *Engine) Rename(id, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sc, ok := e.scenarios[id]
	if !ok {
		return fmt.Errorf("unknown scenario %q", id)
	}
	sc.Name = name
	e.invalidateLocked(id)
	return nil
}

// AddModification appends a modification and returns its assigned id.
func (e *Engine) AddModification(id string, m Modification) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sc, ok := e.scenarios[id]
	if !ok {
		return "", fmt.Errorf("unknown scenario %q", id)
	}
	m.ID = uuid.NewString()
	sc.mods = append(sc.mods, m)
	e.invalidateLocked(id)
	return m.ID, nil
}

// UpdateModification replaces an existing modification in place,
// preserving its position in the ordered list.
func (e *Engine) UpdateModification(id, modID string, m Modification) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sc, ok := e.scenarios[id]
	if !ok {
		return fmt.Errorf("unknown scenario %q", id)
	}
	for i := range sc.mods {
		if sc.mods[i].ID == modID {
			m.ID = modID
			sc.mods[i] = m
			e.invalidateLocked(id)
			return nil
		}
	}
	return fmt.Errorf("unknown modification %q on scenario %q", modID, id)
}

// RemoveModification deletes one modification.
func (e *Engine) RemoveModification(id, modID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sc, ok := e.scenarios[id]
	if !ok {
		return fmt.Errorf("unknown scenario %q", id)
	}
	for i := range sc.mods {
		if sc.mods[i].ID == modID {
			sc.mods = append(sc.mods[:i], sc.mods[i+1:]...)
			e.invalidateLocked(id)
			return nil
		}
	}
	return fmt.Errorf("unknown modification %q on scenario %q", modID, id)
}

// ClearModifications removes every modification from a scenario.
func (e *Engine) ClearModifications(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sc, ok := e.scenarios[id]
	if !ok {
		return fmt.Errorf("unknown scenario %q", id)
	}
	sc.mods = nil
	e.invalidateLocked(id)
	return nil
}

// Delete removes a scenario, its cached result and its selection slot.
func (e *Engine) Delete(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.scenarios[id]; !ok {
		return fmt.Errorf("unknown scenario %q", id)
	}
	delete(e.scenarios, id)
	e.results.Delete(id)
	e.calcLocks.Delete(id)
	for i, sel := range e.selected {
		if sel == id {
			e.selected = append(e.selected[:i], e.selected[i+1:]...)
			break
		}
	}
	return nil
}

// Status reports where a scenario sits in its lifecycle.
func (e *Engine) Status(id string) (Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sc, ok := e.scenarios[id]
	if !ok {
		return "", fmt.Errorf("unknown scenario %q", id)
	}
	if _, cached := e.results.Load(id); cached {
		return StatusCalculated, nil
	}
	if sc.everCalculated {
		return StatusStale, nil
	}
	return StatusDraft, nil
}

// Calculate derives the scenario's snapshot, runs the full graph and
// caches the result. Concurrent calculations of the same scenario are
// serialized per id; distinct ids proceed independently.
func (e *Engine) Calculate(ctx context.Context, id string) (*engine.Result, error) {
	logger := ctxlog.FromContext(ctx)

	e.mu.Lock()
	sc, ok := e.scenarios[id]
	if !ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("unknown scenario %q", id)
	}
	mods := append([]Modification(nil), sc.mods...)
	e.mu.Unlock()

	lock := e.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	derived, err := Derive(e.base, mods)
	if err != nil {
		return nil, fmt.Errorf("failed to derive scenario snapshot: %w", err)
	}
	result, err := engine.Compute(ctx, derived, e.p)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	// The scenario may have been edited or deleted while computing; a
	// stale result must not resurrect in the cache.
	current, ok := e.scenarios[id]
	if ok && modificationsEqual(current.mods, mods) {
		current.everCalculated = true
		e.results.Store(id, result)
	}
	e.mu.Unlock()

	logger.Debug("Scenario calculated.", "scenario_id", id, "total_tax", result.TotalTax)
	return result, nil
}

// Result returns the cached result for a scenario, if it is current.
func (e *Engine) Result(id string) (*engine.Result, bool) {
	v, ok := e.results.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*engine.Result), true
}

// Select marks a scenario for side-by-side comparison. Selecting a
// fourth scenario evicts the first-selected of the current three.
func (e *Engine) Select(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.scenarios[id]; !ok {
		return fmt.Errorf("unknown scenario %q", id)
	}
	for _, sel := range e.selected {
		if sel == id {
			return nil
		}
	}
	if len(e.selected) == maxSelected {
		e.selected = e.selected[1:]
	}
	e.selected = append(e.selected, id)
	return nil
}

// Deselect removes a scenario from the comparison set.
func (e *Engine) Deselect(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, sel := range e.selected {
		if sel == id {
			e.selected = append(e.selected[:i], e.selected[i+1:]...)
			return
		}
	}
}

// Selected returns the comparison set in selection order.
func (e *Engine) Selected() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.selected...)
}

// invalidateLocked drops the cached result for a scenario. Callers hold
// e.mu. This is the single funnel every mutating operation goes
// through.
func (e *Engine) invalidateLocked(id string) {
	e.results.Delete(id)
}

func (e *Engine) lockFor(id string) *sync.Mutex {
	v, _ := e.calcLocks.LoadOrStore(id, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func modificationsEqual(a, b []Modification) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Op != b[i].Op {
			return false
		}
		if !a[i].Path.Equal(b[i].Path) {
			return false
		}
		if !a[i].Value.RawEquals(b[i].Value) {
			return false
		}
	}
	return true
}
