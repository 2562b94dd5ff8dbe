// Package query implements cursor-based connection pagination over an
// in-memory record sequence.
//
// A call to Query runs a fixed four-stage pipeline:
//
//	filter → sort → window (after/before trim, first/last slice) → edges
//
// The pipeline is stateless: every call starts from the caller's record
// snapshot and nothing survives between calls. Cursors issued in the
// result are opaque tokens that identify a record's position under the
// filter+order in effect when they were produced; reusing a cursor under
// a different order yields undefined positions.
package query
