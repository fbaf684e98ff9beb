package form

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Form is one occurrence of a form or schedule in the return.
type Form interface {
	// Tag is the stable form identifier, e.g. "1040" or "schedule_c".
	Tag() string

	// SequenceIndex is the attachment sequence number used purely for
	// final filing order, never for dependency resolution.
	SequenceIndex() int

	// CopyIndex distinguishes repeated occurrences of the same form.
	// The primary instance is copy 0.
	CopyIndex() int

	// IsNeeded reports whether this form belongs in the filing. It is a
	// pure predicate and may be evaluated more than once.
	IsNeeded() bool

	// Copies returns the additional occurrences beyond the primary
	// instance. It is only consulted when the primary instance is needed.
	Copies() []Form

	// Values returns the form's flat positional value list. Order and
	// count are a bit-exact contract with the external field template
	// the form is mapped onto.
	Values() []cty.Value
}

// Base carries the identity shared by every form implementation and the
// memoization cell behind its line accessors. Concrete forms embed it.
type Base struct {
	tag     string
	seq     int
	copyIdx int
	memo    memo
}

// NewBase constructs the identity for a primary form instance.
func NewBase(tag string, sequenceIndex int) Base {
	return NewCopyBase(tag, sequenceIndex, 0)
}

// NewCopyBase constructs the identity for a specific copy of a form.
func NewCopyBase(tag string, sequenceIndex, copyIndex int) Base {
	return Base{tag: tag, seq: sequenceIndex, copyIdx: copyIndex}
}

// Tag implements Form.
func (b *Base) Tag() string { return b.tag }

// SequenceIndex implements Form.
func (b *Base) SequenceIndex() int { return b.seq }

// CopyIndex implements Form.
func (b *Base) CopyIndex() int { return b.copyIdx }

// Copies implements Form for the common case of a form with a single
// occurrence. Forms with data-driven copies override it.
func (b *Base) Copies() []Form { return nil }

// ID renders the instance identity for logs and defect messages,
// e.g. "schedule_c[2]".
func (b *Base) ID() string {
	return fmt.Sprintf("%s[%d]", b.tag, b.copyIdx)
}

// Line evaluates the named accessor at most once per form instance. The
// first call runs fn and stores the result; later calls return the
// stored value. The snapshot behind fn never mutates, so re-evaluation
// could only ever produce the same value.
func (b *Base) Line(name string, fn func() cty.Value) cty.Value {
	return b.memo.eval(b.ID(), name, fn)
}
