package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical strings", "alice", "alice", true},
		{"different strings", "alice", "bob", false},
		{"same numeric literal", "5", "5", true},
		{"integer vs decimal", "5", "5.0", true},
		{"leading zero", "05", "5", true},
		{"negative", "-3", "-3.00", true},
		{"numeric mismatch", "5", "6", false},
		{"number vs word", "5", "five", false},
		{"empty both", "", "", true},
		{"empty vs zero", "", "0", false},
		{"whitespace number", " 5", "5", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LooseEqual(tc.a, tc.b))
			assert.Equal(t, tc.want, LooseEqual(tc.b, tc.a), "loose equality must be symmetric")
		})
	}
}

func TestCompareOrdered_Numeric(t *testing.T) {
	assert.Equal(t, -1, CompareOrdered("2", "10"), "numeric comparison when both sides are numbers")
	assert.Equal(t, 1, CompareOrdered("10", "2"))
	assert.Equal(t, 0, CompareOrdered("2.0", "2"))
}

func TestCompareOrdered_Lexicographic(t *testing.T) {
	// "10" < "2" lexicographically; a non-numeric side forces string order.
	assert.Equal(t, -1, CompareOrdered("10", "2x"))
	assert.Equal(t, -1, CompareOrdered("apple", "banana"))
	assert.Equal(t, 0, CompareOrdered("apple", "apple"))
	assert.Equal(t, 1, CompareOrdered("banana", "apple"))
}

func TestSequenceElements_JSONArray(t *testing.T) {
	elems, ok := SequenceElements(`["a", "b", 5]`)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "5"}, elems)
}

func TestSequenceElements_NumberLiteralsPreserved(t *testing.T) {
	elems, ok := SequenceElements(`[5.0, 05]`)
	// 05 is invalid JSON, decode fails
	assert.False(t, ok)
	assert.Nil(t, elems)

	elems, ok = SequenceElements(`[5.0, 7]`)
	require.True(t, ok)
	assert.Equal(t, []string{"5.0", "7"}, elems)
	assert.True(t, LooseEqual(elems[0], "5"), "decimal literal still loose-matches the integer form")
}

func TestSequenceElements_MixedTypes(t *testing.T) {
	elems, ok := SequenceElements(`[true, null, {"k":1}]`)
	require.True(t, ok)
	assert.Equal(t, "true", elems[0])
	assert.Equal(t, "null", elems[1])
	assert.Equal(t, `{"k":1}`, elems[2])
}

func TestSequenceElements_NotASequence(t *testing.T) {
	for _, v := range []string{"plain", "5", "", "{not json", "[broken"} {
		_, ok := SequenceElements(v)
		assert.False(t, ok, "value %q should not be a sequence", v)
	}
}
