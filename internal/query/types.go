package query

import "github.com/roach88/pagekit/internal/record"

// Op identifies a filter comparison operator.
type Op string

// Filter operators. Ordering operators (LT/LTE/GTE/GT) compare
// numerically when both operands are numeric and lexicographically
// otherwise; EQ and CONTAINS use loose coercive equality.
const (
	OpLT       Op = "LT"
	OpLTE      Op = "LTE"
	OpEQ       Op = "EQ"
	OpGTE      Op = "GTE"
	OpGT       Op = "GT"
	OpContains Op = "CONTAINS"
)

// FilterSpec is a single field comparison. Multiple specs are ANDed:
// each spec narrows the sequence produced by the previous one.
type FilterSpec struct {
	Field string `json:"field"`
	Op    Op     `json:"op"`
	Value string `json:"value"`
}

// OrderSpec is one key of a multi-key sort. The first spec in a sequence
// is the primary sort key; later specs break ties.
type OrderSpec struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc,omitempty"`
}

// PageArgs are the arguments of a single query call.
//
// First and Last are pointers so that "absent" and "zero" stay distinct:
// first=0 slices to an empty page, while a nil First applies no head
// bound at all.
type PageArgs struct {
	Filter []FilterSpec `json:"filter,omitempty"`
	Order  []OrderSpec  `json:"order,omitempty"`
	First  *int         `json:"first,omitempty"`
	Last   *int         `json:"last,omitempty"`
	Before string       `json:"before,omitempty"`
	After  string       `json:"after,omitempty"`
}

// Edge pairs a surviving record with its opaque cursor.
type Edge struct {
	Node   record.Record `json:"node"`
	Cursor string        `json:"cursor"`
}

// PageInfo reports whether records were cut off on either side of the
// returned window.
type PageInfo struct {
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// Page is the result of a query call: the surviving edges in order,
// plus the window flags accumulated while trimming and slicing.
type Page struct {
	Edges    []Edge   `json:"edges"`
	PageInfo PageInfo `json:"pageInfo"`
}
