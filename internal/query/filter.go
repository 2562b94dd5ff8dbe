package query

import "github.com/roach88/pagekit/internal/record"

// applyFilter returns the subsequence of records satisfying all specs.
//
// Specs are applied sequentially (logical AND): each spec narrows the
// output of the previous one. Application order never changes the result
// set, only the intermediate sizes.
//
// Every spec's operator is resolved before any record is examined, so an
// unknown operator fails the whole query even against an empty sequence.
func applyFilter(records []record.Record, specs []FilterSpec) ([]record.Record, error) {
	out := records
	for _, spec := range specs {
		pred, err := predicateFor(spec)
		if err != nil {
			return nil, err
		}

		narrowed := make([]record.Record, 0, len(out))
		for _, r := range out {
			if pred(r) {
				narrowed = append(narrowed, r)
			}
		}
		out = narrowed
	}
	return out, nil
}

// predicateFor resolves a spec into a record predicate.
//
// A record whose field does not exist never matches; the spec cannot
// compare against a value that isn't there.
func predicateFor(spec FilterSpec) (func(record.Record) bool, error) {
	switch spec.Op {
	case OpLT:
		return orderedPredicate(spec, func(cmp int) bool { return cmp < 0 }), nil
	case OpLTE:
		return orderedPredicate(spec, func(cmp int) bool { return cmp <= 0 }), nil
	case OpGTE:
		return orderedPredicate(spec, func(cmp int) bool { return cmp >= 0 }), nil
	case OpGT:
		return orderedPredicate(spec, func(cmp int) bool { return cmp > 0 }), nil
	case OpEQ:
		return func(r record.Record) bool {
			field, ok := r.Field(spec.Field)
			return ok && record.LooseEqual(field, spec.Value)
		}, nil
	case OpContains:
		return containsPredicate(spec), nil
	default:
		return nil, NewInvalidFilterOperationError(spec.Op)
	}
}

// orderedPredicate builds a predicate for the ordering operators.
// CompareOrdered picks numeric or lexicographic comparison per operand.
func orderedPredicate(spec FilterSpec, accept func(int) bool) func(record.Record) bool {
	return func(r record.Record) bool {
		field, ok := r.Field(spec.Field)
		if !ok {
			return false
		}
		return accept(record.CompareOrdered(field, spec.Value))
	}
}

// containsPredicate matches when the field is a sequence holding an
// element loosely equal to the spec value, or, for scalar fields, when
// the field itself is loosely equal (fallback).
func containsPredicate(spec FilterSpec) func(record.Record) bool {
	return func(r record.Record) bool {
		field, ok := r.Field(spec.Field)
		if !ok {
			return false
		}
		if elems, isSeq := record.SequenceElements(field); isSeq {
			for _, e := range elems {
				if record.LooseEqual(e, spec.Value) {
					return true
				}
			}
			return false
		}
		return record.LooseEqual(field, spec.Value)
	}
}
