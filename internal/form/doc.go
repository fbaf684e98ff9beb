// Package form defines the unit of the computation graph: one occurrence
// of a government form, bound to the taxpayer snapshot and to the sibling
// forms it reads from.
//
// Sibling references are typed pointers resolved once during graph
// construction, never looked up by name at evaluation time. A missing
// required sibling is therefore a construction-time error. Line values
// are produced by zero-argument accessors memoized in a write-once cell;
// re-entering an accessor that is still evaluating means two lines are
// defined in terms of each other, which is a programmer defect and fails
// fast (see Defect).
package form
