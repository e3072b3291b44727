package bigbench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup(2)
	assert.False(t, ok, "empty registry should have no entries")

	alg := func(n int, rng *rand.Rand) int { return n * 2 }
	require.NoError(t, r.Register(2, alg))

	got, ok := r.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, 14, got(7, nil))
}

func TestRegistry_RegisterRejects(t *testing.T) {
	r := NewRegistry()
	alg := func(n int, rng *rand.Rand) int { return 0 }

	assert.ErrorIs(t, r.Register(0, alg), ErrInvalidAlgorithm)
	assert.ErrorIs(t, r.Register(7, alg), ErrInvalidAlgorithm)
	assert.Error(t, r.Register(1, nil))

	_, ok := r.Lookup(42)
	assert.False(t, ok)
}

func TestDefaultRegistry_HasAllAlgorithms(t *testing.T) {
	r := DefaultRegistry()
	for _, id := range Algorithms() {
		_, ok := r.Lookup(id)
		assert.True(t, ok, "%s missing from default registry", id)
	}
}

// TestSampleWorkloads_EmptyInput verifies every workload tolerates n ≤ 0.
func TestSampleWorkloads_EmptyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for id, alg := range sampleWorkloads {
		assert.Equal(t, 0, alg(0, rng), "%s with n=0", id)
		assert.Equal(t, 0, alg(-3, rng), "%s with n=-3", id)
	}
}

// TestSampleWorkloads_Reproducible verifies a seeded rng gives repeatable results.
func TestSampleWorkloads_Reproducible(t *testing.T) {
	for id, alg := range sampleWorkloads {
		a := alg(8, rand.New(rand.NewSource(7)))
		b := alg(8, rand.New(rand.NewSource(7)))
		assert.Equal(t, a, b, "%s not reproducible", id)
	}
}

func TestSelectionSortChecksum_Sorted(t *testing.T) {
	// Checksum of a sorted slice is maximal among its permutations, so it
	// must be at least the checksum of the unsorted draw.
	rng := rand.New(rand.NewSource(3))
	xs := randomInts(50, rand.New(rand.NewSource(3)), 1<<20)
	unsorted := 0
	for i, x := range xs {
		unsorted += i * x
	}

	assert.GreaterOrEqual(t, selectionSortChecksum(50, rng), unsorted)
}
