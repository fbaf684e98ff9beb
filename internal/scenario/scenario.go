package scenario

import (
	"time"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taxgridgo/internal/fieldpath"
)

// Status is the lifecycle state of a scenario.
type Status string

const (
	// StatusDraft means the scenario has never been calculated.
	StatusDraft Status = "draft"
	// StatusCalculated means a cached result exists and is current.
	StatusCalculated Status = "calculated"
	// StatusStale means the scenario changed since its last calculation
	// and the cached result was dropped. Staleness is not an error; it
	// is the internal "recompute required" state.
	StatusStale Status = "stale"
)

// Op selects how a modification combines with the field it addresses.
type Op string

const (
	// OpSet replaces the field value.
	OpSet Op = "set"
	// OpAdd adds a delta to a numeric field.
	OpAdd Op = "add"
)

// Modification is a single typed edit within a scenario: a snapshot
// field path plus a value or delta. Within one scenario, later
// modifications to the same path override earlier ones by virtue of
// ordered application.
type Modification struct {
	ID    string
	Path  *fieldpath.Path
	Op    Op
	Value cty.Value
}

// Scenario is a named, ordered collection of modifications. The zero
// value is not usable; scenarios are created through the Engine.
type Scenario struct {
	ID        string
	Name      string
	CreatedAt time.Time

	mods []Modification
	// everCalculated distinguishes Draft from Stale once the cached
	// result is gone.
	everCalculated bool
}

// Modifications returns a copy of the ordered modification list.
func (s *Scenario) Modifications() []Modification {
	out := make([]Modification, len(s.mods))
	copy(out, s.mods)
	return out
}
