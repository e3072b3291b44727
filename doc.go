// Package bigbench estimates the time complexity of algorithms empirically.
//
// # Overview
//
// bigbench times an algorithm at one input size, scales that time by the
// algorithm's theoretical growth ratio to predict the time at another size,
// then measures the second size independently and reports the percent error.
// A small error means the algorithm behaves like its assumed class; a large
// one refutes the assumption.
//
// # Architecture
//
//   - complexity - theoretical growth functions for algorithms 1..6
//   - registry   - the six timed algorithms (sample workloads by default)
//   - harness    - single-run and best-of-N wall-clock timing
//   - estimator  - scaling estimate, percent error, full evaluation
//   - fit        - log-log power-law fit over a size sweep
//   - plan       - YAML experiment batches with env overrides
//   - assertions - test helpers for growth-class properties
//
// # Quick Start
//
//	h := bigbench.NewHarness(nil, rand.New(rand.NewSource(1)), bigbench.DefaultHarnessConfig())
//	est := bigbench.NewEstimator(h, slog.Default())
//
//	ev, err := est.Evaluate(3, 500, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("predicted %.4fs, measured %.4fs, error %.1f%%\n",
//	    ev.Predicted, ev.T2, ev.PercentError*100)
//
// # Growth Model
//
//	id  growth(n)
//	1   n
//	2   n³
//	3   n²
//	4   n²
//	5   n⁵
//	6   n⁴
//
// Growth values have no unit. Only the ratio between two sizes of the same
// algorithm is used:
//
//	t2 ≈ t1 · growth(n2) / growth(n1)
//
// # Robust Timing
//
// Each timed run is preceded by a runtime.GC() request so a collection
// triggered by earlier garbage is less likely to land inside the measurement.
// The request is advisory. TimeBest keeps the minimum of N sequential runs:
// noise only ever adds delay, so the fastest run is closest to true cost.
//
// # Percent Error
//
//	err = (estimate - actual) / actual
//
// Positive means the estimate was high. A zero actual time (fast algorithm,
// tiny n) yields ErrUndetermined rather than an infinity.
//
// # Errors
//
// Invalid ids and sizes are returned as ErrInvalidAlgorithm and
// ErrInvalidSize, never as a magic value that could be mistaken for a result.
//
// # Concurrency
//
// A Harness owns one randomness source and is not safe for concurrent use.
// Trials always run sequentially.
package bigbench
