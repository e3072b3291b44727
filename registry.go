package bigbench

import (
	"fmt"
	"math/rand"
)

// Algorithm is an opaque workload timed by the harness.
// It receives an input size and the harness's randomness source and
// returns an integer result the harness never interprets.
type Algorithm func(n int, rng *rand.Rand) int

// Registry holds one Algorithm per valid AlgorithmID.
type Registry struct {
	algs [MaxAlgorithmID + 1]Algorithm
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry filled with the built-in sample
// workloads, one per theoretical class.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for id, alg := range sampleWorkloads {
		// ids in sampleWorkloads are always valid
		_ = r.Register(id, alg)
	}
	return r
}

// Register installs alg under id, replacing any previous entry.
func (r *Registry) Register(id AlgorithmID, alg Algorithm) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(id))
	}
	if alg == nil {
		return fmt.Errorf("nil algorithm for %s", id)
	}
	r.algs[id] = alg
	return nil
}

// Lookup returns the algorithm registered under id.
func (r *Registry) Lookup(id AlgorithmID) (Algorithm, bool) {
	if !id.Valid() || r.algs[id] == nil {
		return nil, false
	}
	return r.algs[id], true
}
