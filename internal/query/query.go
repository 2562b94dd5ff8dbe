package query

import "github.com/roach88/pagekit/internal/record"

// Query runs the pagination pipeline over a record snapshot.
//
// The caller supplies the snapshot (typically store.ListAll) and the
// page arguments; the engine never touches the store itself. The input
// slice is not mutated.
//
// Errors (unknown filter operator, malformed cursor) surface before any
// page is produced; there is no partial result.
func Query(records []record.Record, args PageArgs) (*Page, error) {
	filtered, err := applyFilter(records, args.Filter)
	if err != nil {
		return nil, err
	}

	sorted := applyOrder(filtered, args.Order)

	windowed, info, err := applyWindow(sorted, args)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, len(windowed))
	for _, r := range windowed {
		cursor, err := EncodeCursor(r, args.Order)
		if err != nil {
			return nil, err
		}
		edges = append(edges, Edge{Node: r, Cursor: cursor})
	}

	return &Page{Edges: edges, PageInfo: info}, nil
}
