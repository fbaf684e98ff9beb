// Package fieldpath provides a structured, type-safe representation for
// addresses into the taxpayer snapshot, used by scenario modifications.
//
// The format is a dot-separated sequence of segments matching the
// snapshot's yaml field tags, with an optional index per segment,
// e.g. `wages[0].federal_withholding` or `itemized.state_local_taxes`.
//
// Centralizing parsing and formatting here keeps the modification layer
// free of ad-hoc string splitting.
package fieldpath
