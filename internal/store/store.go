package store

import (
	"context"

	"github.com/roach88/pagekit/internal/record"
)

// Store is the record store contract.
//
// Keys are unique and immutable once created. ListAll returns a snapshot
// in insertion order; callers paginating over it must treat the slice as
// their own copy.
type Store interface {
	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]record.Record, error)

	// Find returns the record for key, or a RECORD_NOT_FOUND error.
	Find(ctx context.Context, key string) (record.Record, error)

	// Create inserts a new record. Fails with RECORD_CONFLICT if the key
	// already exists.
	Create(ctx context.Context, key, value string) error

	// Upsert inserts the record or replaces the value of an existing key.
	Upsert(ctx context.Context, key, value string) error

	// Update replaces the value of an existing key. Fails with
	// RECORD_NOT_FOUND if the key does not exist.
	Update(ctx context.Context, key, value string) error

	// Delete removes the record for key. Fails with RECORD_NOT_FOUND if
	// the key does not exist.
	Delete(ctx context.Context, key string) error
}
