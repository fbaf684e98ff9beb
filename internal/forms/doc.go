// Package forms implements the form catalog: the concrete form nodes of
// the computation graph and the multi-pass construction that wires them
// together.
//
// Build works in three passes, mirroring how the graph stays a DAG by
// construction discipline rather than by static enforcement:
//
//  1. create every node (one per catalog entry, plus one Schedule C
//     occurrence per business on the snapshot),
//  2. link typed sibling references,
//  3. validate that every required reference was resolved.
//
// A reference that is still nil after pass 2 is a programming defect and
// fails construction; it is never discovered later as a nil dereference
// mid-evaluation.
package forms
