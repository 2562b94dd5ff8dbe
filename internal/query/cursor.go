package query

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pagekit/internal/record"
)

// Position is a decoded cursor payload: a record's position under the
// filter+order context the cursor was issued in.
//
// This is a sealed interface - only KeyPosition and FieldPosition
// implement it. A cursor encodes exactly one of the two forms:
//
//   - FieldPosition: the ordered tuple of the record's values for each
//     order key, when an order is in effect.
//   - KeyPosition: the bare record key, when no order is in effect.
type Position interface {
	position() // Marker method - seals interface to this package
}

// KeyPosition is the no-order cursor form: the record's key.
type KeyPosition string

func (KeyPosition) position() {}

// FieldPosition is the ordered cursor form: one stringified value per
// order spec, in spec order.
type FieldPosition []string

func (FieldPosition) position() {}

// EncodeCursor encodes a record's position under the given order into
// an opaque token.
//
// The payload is canonical JSON (strings NFC-normalized so that equal
// text always yields equal tokens) wrapped in base64. Callers must treat
// the token as opaque: no version tag is embedded, and a token is only
// meaningful under the order it was produced with.
func EncodeCursor(r record.Record, order []OrderSpec) (string, error) {
	var payload any
	if len(order) == 0 {
		payload = norm.NFC.String(r.Key)
	} else {
		fields := make([]string, len(order))
		for i, spec := range order {
			v, _ := r.Field(spec.Field)
			fields[i] = norm.NFC.String(v)
		}
		payload = fields
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeCursor decodes a token back into a Position.
//
// An empty token is an absent position: (nil, nil), not an error. A
// non-empty token that fails base64 decoding, fails JSON parsing, or
// parses into anything other than a string or an array of strings is
// rejected with INVALID_CURSOR.
func DecodeCursor(token string) (Position, error) {
	if token == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, NewInvalidCursorError(token, "not valid base64")
	}
	if len(data) == 0 {
		return nil, NewInvalidCursorError(token, "empty payload")
	}

	switch data[0] {
	case '"':
		var key string
		if err := json.Unmarshal(data, &key); err != nil {
			return nil, NewInvalidCursorError(token, "malformed key payload")
		}
		return KeyPosition(key), nil
	case '[':
		var fields []string
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, NewInvalidCursorError(token, "malformed field payload")
		}
		return FieldPosition(fields), nil
	default:
		return nil, NewInvalidCursorError(token, "payload is neither a key nor a field tuple")
	}
}

// MatchesCursor reports whether a record sits at the decoded position
// under the given order.
//
// With no order the position must be the bare-key form and equal the
// record's key. With an order the position must be a field tuple of the
// same length as the order, equal at every index to the record's value
// for that order key. A position of the wrong form never matches.
func MatchesCursor(r record.Record, order []OrderSpec, pos Position) bool {
	if len(order) == 0 {
		key, ok := pos.(KeyPosition)
		return ok && string(key) == norm.NFC.String(r.Key)
	}

	fields, ok := pos.(FieldPosition)
	if !ok || len(fields) != len(order) {
		return false
	}
	for i, spec := range order {
		v, _ := r.Field(spec.Field)
		if fields[i] != norm.NFC.String(v) {
			return false
		}
	}
	return true
}
