package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_OpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestSQLite_CRUD(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Create(ctx, "a", "1"))

	r, err := s.Find(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", r.Value)

	require.NoError(t, s.Update(ctx, "a", "9"))
	r, err = s.Find(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "9", r.Value)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Find(ctx, "a")
	assert.True(t, IsNotFound(err))
}

func TestSQLite_CreateConflict(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Create(ctx, "a", "1"))
	err := s.Create(ctx, "a", "2")
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestSQLite_UpdateMissing(t *testing.T) {
	s := openTestStore(t)

	err := s.Update(context.Background(), "nope", "v")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSQLite_DeleteMissing(t *testing.T) {
	s := openTestStore(t)

	err := s.Delete(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSQLite_Upsert(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Upsert(ctx, "a", "1"))
	require.NoError(t, s.Upsert(ctx, "a", "2"))

	r, err := s.Find(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", r.Value)
}

func TestSQLite_ListAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Create(ctx, "c", "3"))
	require.NoError(t, s.Create(ctx, "a", "1"))
	require.NoError(t, s.Create(ctx, "b", "2"))
	require.NoError(t, s.Upsert(ctx, "c", "30"))

	records, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].Key, "upsert keeps the original rowid position")
	assert.Equal(t, "30", records[0].Value)
	assert.Equal(t, "a", records[1].Key)
	assert.Equal(t, "b", records[2].Key)
}

func TestSQLite_ListAllEmpty(t *testing.T) {
	s := openTestStore(t)

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records, "empty store lists an empty slice, not nil")
	assert.Empty(t, records)
}

func TestSQLite_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Create(ctx, "a", "1"))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	r, err := s2.Find(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", r.Value)
}
