// Package model defines the validated taxpayer snapshot consumed by the
// computation graph.
//
// A ValidatedInformation is pure data: it is produced by collaborators
// (intake, storage, the scenario engine) already validated and defaulted,
// and it is immutable for the duration of one computation pass. Form
// nodes hold a read-only reference to it and never write through it.
//
// Field names carry yaml tags for two reasons: snapshot files on disk
// are YAML, and scenario modifications address fields by the same tag
// names (see internal/fieldpath).
package model
