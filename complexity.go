package bigbench

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned for input the model or harness cannot handle.
// Invalid input is reported as data, never as a panic.
var (
	ErrInvalidAlgorithm = errors.New("invalid algorithm id")
	ErrInvalidSize      = errors.New("invalid input size")
)

// AlgorithmID selects both a registry entry and its theoretical growth function.
type AlgorithmID int

const (
	MinAlgorithmID AlgorithmID = 1
	MaxAlgorithmID AlgorithmID = 6
)

// exponents maps each algorithm to k in growth(n) = n^k.
// Index 0 is unused so the table reads by id.
var exponents = [...]int{
	0,
	1, // 1: n
	3, // 2: n³
	2, // 3: n²
	2, // 4: n²
	5, // 5: n⁵
	4, // 6: n⁴
}

// Valid reports whether id names one of the six algorithms.
func (id AlgorithmID) Valid() bool {
	return id >= MinAlgorithmID && id <= MaxAlgorithmID
}

// Class returns the Big-O class of id, e.g. "O(n^2)", or "invalid".
func (id AlgorithmID) Class() string {
	k, err := Exponent(id)
	if err != nil {
		return "invalid"
	}
	if k == 1 {
		return "O(n)"
	}
	return fmt.Sprintf("O(n^%d)", k)
}

func (id AlgorithmID) String() string {
	return fmt.Sprintf("alg%d", int(id))
}

// Algorithms returns every valid id in ascending order.
func Algorithms() []AlgorithmID {
	ids := make([]AlgorithmID, 0, MaxAlgorithmID)
	for id := MinAlgorithmID; id <= MaxAlgorithmID; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Exponent returns k such that the theoretical growth of id is n^k.
func Exponent(id AlgorithmID) (int, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(id))
	}
	return exponents[id], nil
}

// Growth returns the theoretical relative cost of running id on input size n.
//
// The value has no unit. It is only meaningful as a ratio against another
// Growth value for the same algorithm:
//
//	t2 ≈ t1 · Growth(id, n2) / Growth(id, n1)
//
// Size is checked before the id, so Growth(99, -1) reports ErrInvalidSize.
func Growth(id AlgorithmID, n float64) (float64, error) {
	if n <= 0 || math.IsNaN(n) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, n)
	}

	k, err := Exponent(id)
	if err != nil {
		return 0, err
	}

	return math.Pow(n, float64(k)), nil
}

// MatchingAlgorithms returns the ids whose theoretical exponent equals k.
// Algorithms 3 and 4 share n², so k=2 yields both.
func MatchingAlgorithms(k int) []AlgorithmID {
	var ids []AlgorithmID
	for _, id := range Algorithms() {
		if exponents[id] == k {
			ids = append(ids, id)
		}
	}
	return ids
}
