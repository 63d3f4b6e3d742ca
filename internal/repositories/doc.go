// Package repositories implements SQLite persistence for the video catalog.
//
// The console never writes to the catalog: [VideoRepository] is filled by `setup database` and read once at startup
// through [VideoRepository.List], which satisfies catalog.Source.
//
// Sequence numbers give videos a stable insertion order independent of their ids.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
