package query

import "github.com/roach88/pagekit/internal/record"

// applyWindow trims and slices the ordered, filtered sequence.
//
// The four stages run in fixed order:
//
//  1. After-trim: drop from the head until the dropped element matches
//     the decoded `after` position. Running at all sets hasPreviousPage,
//     whether or not a match is ever found.
//  2. Before-trim: the mirror image from the tail; sets hasNextPage.
//  3. First/last slicing with the tie-break described at applySlices.
//  4. The survivors plus the accumulated flags.
//
// Each dropped element is compared against the real decoded token. The
// engine this behavior was ported from compared the dropped element
// against itself, which made the trim drop the entire sequence whenever
// a cursor was supplied; that is treated as a defect and the documented
// contract is implemented instead.
func applyWindow(records []record.Record, args PageArgs) ([]record.Record, PageInfo, error) {
	var info PageInfo

	after, err := DecodeCursor(args.After)
	if err != nil {
		return nil, info, err
	}
	before, err := DecodeCursor(args.Before)
	if err != nil {
		return nil, info, err
	}

	out := records

	if after != nil && len(out) > 0 {
		info.HasPreviousPage = true
		for len(out) > 0 {
			head := out[0]
			out = out[1:]
			if MatchesCursor(head, args.Order, after) {
				break
			}
		}
	}

	if before != nil && len(out) > 0 {
		info.HasNextPage = true
		for len(out) > 0 {
			tail := out[len(out)-1]
			out = out[:len(out)-1]
			if MatchesCursor(tail, args.Order, before) {
				break
			}
		}
	}

	out = applySlices(out, args, &info)
	return out, info, nil
}

// applySlices bounds the trimmed sequence by first/last.
//
// With both given, the slice for the larger count runs first so the
// smaller one narrows within the wider window; equal counts collapse to
// the head slice alone. Neither flag is forced in this branch.
//
// With only one given, the corresponding flag is set only when the slice
// actually removes elements; a request covering the whole sequence is a
// no-op.
func applySlices(records []record.Record, args PageArgs, info *PageInfo) []record.Record {
	switch {
	case args.First != nil && args.Last != nil:
		first, last := *args.First, *args.Last
		if first >= last {
			records = headSlice(records, first)
			if first != last {
				records = tailSlice(records, last)
			}
		} else {
			records = tailSlice(records, last)
			records = headSlice(records, first)
		}
	case args.First != nil:
		if *args.First < len(records) {
			records = headSlice(records, *args.First)
			info.HasNextPage = true
		}
	case args.Last != nil:
		if *args.Last < len(records) {
			records = tailSlice(records, *args.Last)
			info.HasPreviousPage = true
		}
	}
	return records
}

// headSlice keeps the first n elements.
func headSlice(records []record.Record, n int) []record.Record {
	if n < 0 {
		n = 0
	}
	if n >= len(records) {
		return records
	}
	return records[:n]
}

// tailSlice keeps the last n elements.
func tailSlice(records []record.Record, n int) []record.Record {
	if n < 0 {
		n = 0
	}
	if n >= len(records) {
		return records
	}
	return records[len(records)-n:]
}
