package store

import (
	"errors"
	"fmt"
)

// Error represents a store precondition failure.
//
// Conflicts (creating an existing key) and missing records (updating or
// deleting an absent key) are distinct categories; callers branch on
// them, so they must never collapse into one error.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Key is the record key the operation targeted.
	Key string

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeRecordConflict indicates a create for a key that already exists.
	ErrCodeRecordConflict ErrorCode = "RECORD_CONFLICT"

	// ErrCodeRecordNotFound indicates a find/update/delete for a missing key.
	ErrCodeRecordNotFound ErrorCode = "RECORD_NOT_FOUND"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (key=%s)", e.Code, e.Message, e.Key)
}

// IsConflict returns true if the error is a duplicate-key create error.
// Uses errors.As to handle wrapped errors.
func IsConflict(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeRecordConflict
	}
	return false
}

// IsNotFound returns true if the error is a missing-record error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeRecordNotFound
	}
	return false
}

// NewConflictError creates an Error for a create on an existing key.
func NewConflictError(key string) *Error {
	return &Error{
		Code:    ErrCodeRecordConflict,
		Key:     key,
		Message: "record already exists",
	}
}

// NewNotFoundError creates an Error for an operation on a missing key.
func NewNotFoundError(key string) *Error {
	return &Error{
		Code:    ErrCodeRecordNotFound,
		Key:     key,
		Message: "record not found",
	}
}
