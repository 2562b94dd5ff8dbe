package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pagekit/internal/store"
)

func intPtr(n int) *int { return &n }

func TestRun_SimpleQuery(t *testing.T) {
	h := New(nil)
	s := &Scenario{
		Name: "simple",
		Records: []RecordSeed{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
		},
		Query: QuerySpec{First: intPtr(1)},
	}

	result, err := h.Run(s)
	require.NoError(t, err)
	assert.Equal(t, "simple", result.ScenarioName)
	require.Len(t, result.Page.Edges, 1)
	assert.Equal(t, "a", result.Page.Edges[0].Node.Key)
	assert.True(t, result.Page.PageInfo.HasNextPage)
}

func TestRun_KeylessRecordsUseGenerator(t *testing.T) {
	h := New(store.NewFixedGenerator("k-1", "k-2"))
	s := &Scenario{
		Name: "keyless",
		Records: []RecordSeed{
			{Value: "x"},
			{Value: "y"},
		},
		Query: QuerySpec{},
	}

	result, err := h.Run(s)
	require.NoError(t, err)
	require.Len(t, result.Page.Edges, 2)
	assert.Equal(t, "k-1", result.Page.Edges[0].Node.Key)
	assert.Equal(t, "k-2", result.Page.Edges[1].Node.Key)
}

func TestRun_DuplicateSeedKey(t *testing.T) {
	h := New(nil)
	s := &Scenario{
		Name: "dup",
		Records: []RecordSeed{
			{Key: "a", Value: "1"},
			{Key: "a", Value: "2"},
		},
	}

	_, err := h.Run(s)
	require.Error(t, err)
	assert.True(t, store.IsConflict(err), "seed conflicts surface as store conflicts")
}

func TestRun_QueryErrorSurfaces(t *testing.T) {
	h := New(nil)
	s := &Scenario{
		Name:    "bad-op",
		Records: []RecordSeed{{Key: "a", Value: "1"}},
		Query: QuerySpec{
			Filter: []FilterSeed{{Field: "value", Op: "NEAR", Value: "1"}},
		},
	}

	_, err := h.Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEAR")
}
