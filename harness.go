package bigbench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"time"
)

// HarnessConfig controls how the harness times an algorithm.
type HarnessConfig struct {
	Trials         int          `yaml:"trials" envconfig:"TRIALS"`                   // Timed runs per measurement (minimum is kept)
	Warmup         int          `yaml:"warmup" envconfig:"WARMUP"`                   // Untimed runs before the trials
	CollectGarbage bool         `yaml:"collect_garbage" envconfig:"COLLECT_GARBAGE"` // runtime.GC() before each timed run
	Seed           int64        `yaml:"seed" envconfig:"SEED"`                       // Seed for a harness-owned rng (0 = wall clock)
	Logger         *slog.Logger `yaml:"-" ignored:"true"`
}

// DefaultHarnessConfig returns the reference settings: best of 5, no warmup,
// collector requested before every run.
func DefaultHarnessConfig() HarnessConfig {
	return HarnessConfig{
		Trials:         5,
		Warmup:         0,
		CollectGarbage: true,
	}
}

// Sample holds every trial of one best-of-N measurement.
type Sample struct {
	Algorithm AlgorithmID
	N         int
	Trials    []time.Duration
	Best      time.Duration // Minimum of Trials
}

// Stats summarizes the trials of s.
func (s Sample) Stats() Statistics {
	return Summarize(s.Trials)
}

// Harness times registry algorithms on a given input size.
//
// A Harness owns its randomness source and is not safe for concurrent use.
// Run independent experiments on independent harnesses.
type Harness struct {
	registry *Registry
	rng      *rand.Rand
	cfg      HarnessConfig
	logger   *slog.Logger

	now func() time.Time
	gc  func()
}

// NewHarness creates a harness. A nil registry means DefaultRegistry. A nil
// rng means a generator seeded from cfg.Seed, or from the wall clock when
// Seed is zero.
func NewHarness(reg *Registry, rng *rand.Rand, cfg HarnessConfig) *Harness {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Harness{
		registry: reg,
		rng:      rng,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		gc:       runtime.GC,
	}
}

// Config returns the settings the harness was built with.
func (h *Harness) Config() HarnessConfig {
	return h.cfg
}

// RunAlgorithm runs the algorithm registered under id once and returns its result.
// It advances the harness's randomness source.
func (h *Harness) RunAlgorithm(id AlgorithmID, n int) (int, error) {
	alg, ok := h.registry.Lookup(id)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(id))
	}
	return alg(n, h.rng), nil
}

// TimeOnce measures a single run of id on input size n.
//
// The collector request before the clock starts is advisory, so single
// timings are noisy. An invalid id is still "timed": the dispatch error is
// discarded and the result is a near-zero duration.
func (h *Harness) TimeOnce(id AlgorithmID, n int) time.Duration {
	if h.cfg.CollectGarbage {
		h.gc()
	}

	start := h.now()
	_, err := h.RunAlgorithm(id, n)
	end := h.now()

	if err != nil {
		h.logger.Debug("timed run did not dispatch", "algorithm", int(id), "n", n, "err", err)
	}

	return end.Sub(start)
}

// TimeBest returns the fastest of cfg.Trials sequential runs.
// System noise only ever adds delay, so the minimum is the best estimate
// of true cost.
func (h *Harness) TimeBest(id AlgorithmID, n int) time.Duration {
	return h.Sample(id, n, h.cfg.Trials).Best
}

// Sample runs cfg.Warmup untimed runs followed by trials timed runs, strictly
// in order, and records every duration. trials below 1 is treated as 1.
func (h *Harness) Sample(id AlgorithmID, n int, trials int) Sample {
	if trials < 1 {
		trials = 1
	}

	for i := 0; i < h.cfg.Warmup; i++ {
		_, _ = h.RunAlgorithm(id, n)
	}

	s := Sample{
		Algorithm: id,
		N:         n,
		Trials:    make([]time.Duration, 0, trials),
	}
	for i := 0; i < trials; i++ {
		lap := h.TimeOnce(id, n)
		s.Trials = append(s.Trials, lap)
		if i == 0 || lap < s.Best {
			s.Best = lap
		}
	}

	h.logger.Debug("sampled",
		"algorithm", int(id), "n", n, "trials", trials, "best", s.Best)

	return s
}

// Profile measures TimeBest of id at each size, in the given order.
// ctx is checked between sizes, never during a timed run.
func (h *Harness) Profile(ctx context.Context, id AlgorithmID, sizes []int) ([]Point, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(id))
	}

	points := make([]Point, 0, len(sizes))
	for _, n := range sizes {
		if err := ctx.Err(); err != nil {
			return points, err
		}
		if n <= 0 {
			return points, fmt.Errorf("profile %s: %w: %d", id, ErrInvalidSize, n)
		}

		best := h.TimeBest(id, n)
		points = append(points, Point{N: n, Seconds: best.Seconds()})
	}

	return points, nil
}
