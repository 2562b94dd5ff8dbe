package queryfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pagekit/internal/query"
)

func TestParse_FullQuery(t *testing.T) {
	src := []byte(`
filter: [{field: "value", op: "GT", value: "1"}]
order: [{field: "value", desc: true}, {field: "key"}]
first: 10
after: "ImEi"
`)

	args, err := Parse("q.cue", src)
	require.NoError(t, err)

	require.Len(t, args.Filter, 1)
	assert.Equal(t, query.OpGT, args.Filter[0].Op)
	assert.Equal(t, "value", args.Filter[0].Field)
	assert.Equal(t, "1", args.Filter[0].Value)

	require.Len(t, args.Order, 2)
	assert.True(t, args.Order[0].Desc)
	assert.False(t, args.Order[1].Desc, "desc defaults to false")

	require.NotNil(t, args.First)
	assert.Equal(t, 10, *args.First)
	assert.Nil(t, args.Last)
	assert.Equal(t, "ImEi", args.After)
	assert.Equal(t, "", args.Before)
}

func TestParse_EmptyQuery(t *testing.T) {
	args, err := Parse("q.cue", []byte(``))
	require.NoError(t, err)
	assert.Empty(t, args.Filter)
	assert.Empty(t, args.Order)
	assert.Nil(t, args.First)
	assert.Nil(t, args.Last)
}

func TestParse_UnknownOperator(t *testing.T) {
	src := []byte(`filter: [{field: "value", op: "BETWEEN", value: "1"}]`)

	_, err := Parse("q.cue", src)
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeSchema, le.Code)
}

func TestParse_NegativePageSize(t *testing.T) {
	_, err := Parse("q.cue", []byte(`first: -1`))
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeSchema, le.Code)
}

func TestParse_StrayField(t *testing.T) {
	_, err := Parse("q.cue", []byte(`limit: 10`))
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeSchema, le.Code)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("q.cue", []byte(`filter: [{`))
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeParse, le.Code)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.cue")
	require.NoError(t, os.WriteFile(path, []byte(`last: 3`), 0o644))

	args, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, args.Last)
	assert.Equal(t, 3, *args.Last)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cue"))
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeNotFound, le.Code)
}
