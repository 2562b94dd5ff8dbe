package record

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LooseEqual reports coercive equality between two field values.
//
// Two values are loosely equal if they are byte-identical, or if both
// parse as numbers and compare numerically equal ("5" == "5.0" == "05").
//
// This is a deliberate compatibility quirk carried over from the engine's
// original behavior, where EQ and CONTAINS compared with type-coercing
// equality. Callers that need strict comparison should compare strings
// directly instead.
func LooseEqual(a, b string) bool {
	if a == b {
		return true
	}
	na, aOK := parseNumber(a)
	nb, bOK := parseNumber(b)
	return aOK && bOK && na == nb
}

// CompareOrdered compares two field values for the ordering operators,
// returning -1, 0, or 1.
//
// When both values parse as numbers the comparison is numeric; otherwise
// it is lexicographic. This mirrors the ordering semantics of the filter
// ops LT/LTE/GTE/GT.
func CompareOrdered(a, b string) int {
	na, aOK := parseNumber(a)
	nb, bOK := parseNumber(b)
	if aOK && bOK {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// SequenceElements interprets a field value as a sequence for CONTAINS.
//
// A value that parses as a JSON array yields its elements, each
// stringified the way a cursor field would be. Any other value is not a
// sequence and the second return is false; CONTAINS then falls back to
// scalar loose equality.
func SequenceElements(value string) ([]string, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, false
	}

	elems := make([]string, len(raw))
	for i, e := range raw {
		elems[i] = stringifyElement(e)
	}
	return elems, true
}

// stringifyElement renders a decoded JSON value as the string the loose
// comparison operates on. Numbers keep their literal form (json.Number),
// so "5" and 5 still meet through LooseEqual's numeric path.
func stringifyElement(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return string(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		// Nested arrays/objects: re-serialize. These only ever meet the
		// exact-match path of LooseEqual.
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// parseNumber parses a value as a float for coercive comparison.
// Empty and whitespace-only strings are not numbers.
func parseNumber(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
