package bigbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrowth_Table verifies the fixed id → growth mapping.
func TestGrowth_Table(t *testing.T) {
	tests := []struct {
		id   AlgorithmID
		n    float64
		want float64
	}{
		{1, 10, 10},
		{2, 10, 1000},
		{3, 10, 100},
		{4, 10, 100},
		{5, 10, 100000},
		{6, 10, 10000},
		{3, 20, 400},
		{1, 0.5, 0.5},
	}

	for _, tt := range tests {
		got, err := Growth(tt.id, tt.n)
		require.NoError(t, err, "Growth(%d, %v)", tt.id, tt.n)
		assert.InDelta(t, tt.want, got, 1e-9, "Growth(%d, %v)", tt.id, tt.n)
	}
}

// TestGrowth_InvalidAlgorithm rejects ids outside 1..6.
func TestGrowth_InvalidAlgorithm(t *testing.T) {
	for _, id := range []AlgorithmID{-1, 0, 7, 99} {
		_, err := Growth(id, 50)
		assert.ErrorIs(t, err, ErrInvalidAlgorithm, "id=%d", id)
	}
}

// TestGrowth_InvalidSize rejects n ≤ 0 for every id, valid or not.
func TestGrowth_InvalidSize(t *testing.T) {
	_, err := Growth(3, -5)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Growth(3, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	// size is checked first
	_, err = Growth(99, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

// TestGrowth_PositiveAndIncreasing checks growth > 0 and strictly increasing in n.
func TestGrowth_PositiveAndIncreasing(t *testing.T) {
	sizes := []float64{0.25, 1, 2, 3, 10, 100, 1000}

	for _, id := range Algorithms() {
		prev := 0.0
		for _, n := range sizes {
			g, err := Growth(id, n)
			require.NoError(t, err)
			assert.Greater(t, g, 0.0, "%s n=%v", id, n)
			assert.Greater(t, g, prev, "%s not increasing at n=%v", id, n)
			prev = g
		}
	}
}

func TestAlgorithmID_Class(t *testing.T) {
	assert.Equal(t, "O(n)", AlgorithmID(1).Class())
	assert.Equal(t, "O(n^3)", AlgorithmID(2).Class())
	assert.Equal(t, "O(n^5)", AlgorithmID(5).Class())
	assert.Equal(t, "invalid", AlgorithmID(0).Class())
	assert.Equal(t, "alg4", AlgorithmID(4).String())
}

func TestMatchingAlgorithms(t *testing.T) {
	assert.Equal(t, []AlgorithmID{3, 4}, MatchingAlgorithms(2))
	assert.Equal(t, []AlgorithmID{6}, MatchingAlgorithms(4))
	assert.Empty(t, MatchingAlgorithms(7))
}
