// Package record defines the key/value record type shared by the store
// and the query engine, plus the coercive comparison helpers the filter
// engine is built on.
package record

// Record is a single key/value entry.
//
// Keys are unique within a store and immutable once created. Both fields
// are plain strings; values that need structure (e.g. for CONTAINS
// filtering) carry it as JSON text.
type Record struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Field returns the named field of the record.
//
// Only "key" and "value" exist. The second return is false for any other
// name; filters treat a missing field as never matching, and sorts treat
// it as the empty string.
func (r Record) Field(name string) (string, bool) {
	switch name {
	case "key":
		return r.Key, true
	case "value":
		return r.Value, true
	default:
		return "", false
	}
}
