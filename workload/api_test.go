package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perflab/seqwork/fault"
)

func TestNewRejectsNonPositiveN(t *testing.T) {
	_, err := New(0, 1)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.ValidationError))

	_, err = New(-3, 1)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.ValidationError))
}

func TestValuesIsAPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 5, 100, 1000} {
		gen, err := New(n, 0x5eed)
		require.NoError(t, err)

		values := gen.Values()
		require.Len(t, values, n)

		seen := make(map[int]bool, n)
		for _, value := range values {
			assert.True(t, value >= 1, "value %v below range for n == %v", value, n)
			assert.True(t, value <= n, "value %v above range for n == %v", value, n)
			assert.False(t, seen[value], "value %v duplicated for n == %v", value, n)
			seen[value] = true
		}
		assert.Len(t, seen, n)
	}
}

func TestRemovalIndexesStayInShrinkingRange(t *testing.T) {
	for _, n := range []int{1, 2, 5, 100, 1000} {
		gen, err := New(n, 0xca5cade)
		require.NoError(t, err)

		removalIndexes := gen.RemovalIndexes()
		require.Len(t, removalIndexes, n)

		for i, removalIndex := range removalIndexes {
			assert.True(t, removalIndex >= 0, "index %v negative at step %v for n == %v", removalIndex, i, n)
			assert.True(t, removalIndex <= n-i-1, "index %v exceeds %v at step %v for n == %v", removalIndex, n-i-1, i, n)
		}
		assert.Equal(t, 0, removalIndexes[n-1], "final removal index must be 0 for n == %v", n)
	}
}

func TestFixedSeedIsReproducible(t *testing.T) {
	gen1, err := New(64, 42)
	require.NoError(t, err)
	gen2, err := New(64, 42)
	require.NoError(t, err)

	assert.Equal(t, gen1.Values(), gen2.Values())
	assert.Equal(t, gen1.RemovalIndexes(), gen2.RemovalIndexes())
}

func TestNewFromEntropy(t *testing.T) {
	gen, err := NewFromEntropy(16)
	require.NoError(t, err)
	assert.Equal(t, 16, gen.N())
	assert.Len(t, gen.Values(), 16)
}

func TestSingleItemWorkload(t *testing.T) {
	gen, err := New(1, 7)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, gen.Values())
	assert.Equal(t, []int{0}, gen.RemovalIndexes())
}
