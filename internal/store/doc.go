// Package store provides the record store the query engine reads its
// snapshots from.
//
// The engine itself only consumes ListAll; the rest of the interface is
// plain CRUD for callers that own the data. Two implementations exist:
// an in-memory store for tests and the harness, and a SQLite-backed
// store for durable data. Both preserve insertion order in ListAll,
// which the engine's stable-sort tie-break depends on.
package store
