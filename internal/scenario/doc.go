// Package scenario implements what-if recomputation: named collections
// of field-path modifications applied against a base snapshot, with a
// per-scenario cache of computation results.
//
// Invalidation is centralized in one place (invalidateLocked), driven by the
// scenario state machine Draft → Calculated → Stale → Calculated → ...
// Every mutating operation funnels through it, so no edit path can
// forget to drop a stale result.
//
// Concurrency: calculations of different scenarios are independent and
// may run in parallel; the result cache is a sync.Map keyed by scenario
// id, and a per-id mutex keeps two calculations of the same scenario
// from interleaving their writes.
package scenario
