package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Key(t *testing.T) {
	r := Record{Key: "user-1", Value: "alice"}

	v, ok := r.Field("key")
	assert.True(t, ok)
	assert.Equal(t, "user-1", v)
}

func TestField_Value(t *testing.T) {
	r := Record{Key: "user-1", Value: "alice"}

	v, ok := r.Field("value")
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestField_Unknown(t *testing.T) {
	r := Record{Key: "user-1", Value: "alice"}

	v, ok := r.Field("created_at")
	assert.False(t, ok, "unknown field should not resolve")
	assert.Equal(t, "", v)
}
