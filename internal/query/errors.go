package query

import (
	"errors"
	"fmt"
)

// Error represents a precondition violation detected before any page
// output is produced. There is no partial-success state: a query either
// returns a full Page or one of these.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Operator is the offending filter operator (for INVALID_FILTER_OPERATION).
	Operator string

	// Cursor is the offending token (for INVALID_CURSOR).
	Cursor string
}

// ErrorCode categorizes query errors.
type ErrorCode string

const (
	// ErrCodeInvalidFilterOperation indicates an unrecognized filter operator.
	ErrCodeInvalidFilterOperation ErrorCode = "INVALID_FILTER_OPERATION"

	// ErrCodeInvalidCursor indicates a before/after token that could not be
	// decoded back into a position payload.
	ErrCodeInvalidCursor ErrorCode = "INVALID_CURSOR"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Operator != "" {
		return fmt.Sprintf("%s: %s (op=%s)", e.Code, e.Message, e.Operator)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidFilterOperation returns true if the error is an unknown-operator
// error. Uses errors.As to handle wrapped errors.
func IsInvalidFilterOperation(err error) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code == ErrCodeInvalidFilterOperation
	}
	return false
}

// IsInvalidCursor returns true if the error is a malformed-cursor error.
// Uses errors.As to handle wrapped errors.
func IsInvalidCursor(err error) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code == ErrCodeInvalidCursor
	}
	return false
}

// NewInvalidFilterOperationError creates an Error naming the unrecognized
// operator.
func NewInvalidFilterOperationError(op Op) *Error {
	return &Error{
		Code:     ErrCodeInvalidFilterOperation,
		Message:  "unrecognized filter operator",
		Operator: string(op),
	}
}

// NewInvalidCursorError creates an Error for a token whose payload could
// not be parsed.
func NewInvalidCursorError(token, reason string) *Error {
	return &Error{
		Code:    ErrCodeInvalidCursor,
		Message: reason,
		Cursor:  token,
	}
}
