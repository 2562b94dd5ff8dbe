package query

import (
	"sort"
	"strings"

	"github.com/roach88/pagekit/internal/record"
)

// applyOrder returns a copy of records in stable multi-key order.
//
// The single-key sorts run in reverse priority: least-significant spec
// first, primary spec last. Each pass is stable, so the final (primary)
// pass dominates while ties keep the relative order established by the
// earlier passes. Records equal under every key keep their input order.
//
// Per-key comparison is lexicographic over the field's string value;
// Desc swaps the operands. An empty order returns the input order
// unchanged.
func applyOrder(records []record.Record, order []OrderSpec) []record.Record {
	out := make([]record.Record, len(records))
	copy(out, records)
	if len(order) == 0 {
		return out
	}

	for i := len(order) - 1; i >= 0; i-- {
		spec := order[i]
		sort.SliceStable(out, func(a, b int) bool {
			return compareBySpec(out[a], out[b], spec) < 0
		})
	}
	return out
}

// compareBySpec compares two records under a single order key.
// A missing field sorts as the empty string.
func compareBySpec(a, b record.Record, spec OrderSpec) int {
	av, _ := a.Field(spec.Field)
	bv, _ := b.Field(spec.Field)
	if spec.Desc {
		return strings.Compare(bv, av)
	}
	return strings.Compare(av, bv)
}
