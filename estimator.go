package bigbench

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrUndetermined is returned by PercentError when the actual duration is
// zero, which happens for fast algorithms on small inputs.
var ErrUndetermined = errors.New("percent error undetermined: actual duration is zero")

// Evaluation is the outcome of one estimate-then-measure experiment.
// Durations are in seconds.
type Evaluation struct {
	Algorithm    AlgorithmID `json:"algorithm" yaml:"algorithm"`
	N1           int         `json:"n1" yaml:"n1"`
	N2           int         `json:"n2" yaml:"n2"`
	T1           float64     `json:"t1" yaml:"t1"`
	Predicted    float64     `json:"predicted" yaml:"predicted"`
	T2           float64     `json:"t2" yaml:"t2"`
	PercentError float64     `json:"percent_error" yaml:"percent_error"`
	Undetermined bool        `json:"undetermined,omitempty" yaml:"undetermined,omitempty"` // t2 measured as zero; PercentError is meaningless
}

// Estimator predicts running time at one size from a measurement at another
// and checks the prediction against a fresh measurement.
type Estimator struct {
	harness *Harness
	logger  *slog.Logger
}

// NewEstimator creates an estimator that measures with h.
// A nil logger means slog.Default().
func NewEstimator(h *Harness, logger *slog.Logger) *Estimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{harness: h, logger: logger}
}

// Estimate scales t1, measured at size n1, to size n2 using the theoretical
// growth ratio of id:
//
//	t2 = t1 · growth(n2) / growth(n1)
//
// Equal growth values are not an error: a notice is logged and t1 is
// returned unchanged.
func (e *Estimator) Estimate(id AlgorithmID, n1 int, t1 float64, n2 int) (float64, error) {
	growth1, err := Growth(id, float64(n1))
	if err != nil {
		return 0, fmt.Errorf("estimate n1=%d: %w", n1, err)
	}
	growth2, err := Growth(id, float64(n2))
	if err != nil {
		return 0, fmt.Errorf("estimate n2=%d: %w", n2, err)
	}

	if growth1 == growth2 {
		e.logger.Info("growth values are equal",
			"algorithm", int(id), "growth1", growth1, "growth2", growth2)
	}

	return t1 * (growth2 / growth1), nil
}

// PercentError returns (estimate - actual) / actual. A positive value means
// the estimate was higher than the measurement.
//
// A zero actual returns NaN and ErrUndetermined instead of ±Inf.
func PercentError(actual, estimate float64) (float64, error) {
	if actual == 0 {
		return math.NaN(), ErrUndetermined
	}
	return (estimate - actual) / actual, nil
}

// Evaluate runs the full experiment for id:
//
//  1. t1 = best-of-N time at n1
//  2. predicted = Estimate(id, n1, t1, n2)
//  3. t2 = best-of-N time at n2, measured independently
//  4. percent error of predicted against t2
//
// Invalid ids and sizes are rejected before anything is timed. When t2 is
// zero the filled-in Evaluation is returned with Undetermined set, together
// with ErrUndetermined.
func (e *Estimator) Evaluate(id AlgorithmID, n1, n2 int) (Evaluation, error) {
	ev := Evaluation{Algorithm: id, N1: n1, N2: n2}

	if !id.Valid() {
		return ev, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(id))
	}
	if n1 <= 0 || n2 <= 0 {
		return ev, fmt.Errorf("%w: n1=%d n2=%d", ErrInvalidSize, n1, n2)
	}

	ev.T1 = e.harness.TimeBest(id, n1).Seconds()

	predicted, err := e.Estimate(id, n1, ev.T1, n2)
	if err != nil {
		return ev, err
	}
	ev.Predicted = predicted

	ev.T2 = e.harness.TimeBest(id, n2).Seconds()

	pe, err := PercentError(ev.T2, ev.Predicted)
	if err != nil {
		ev.Undetermined = true
		e.logger.Warn("percent error undetermined",
			"algorithm", int(id), "n2", n2, "predicted", predicted)
		return ev, fmt.Errorf("evaluate %s n1=%d n2=%d: %w", id, n1, n2, err)
	}
	ev.PercentError = pe

	e.logger.Debug("evaluated",
		"algorithm", int(id),
		"n1", n1, "t1", ev.T1,
		"n2", n2, "t2", ev.T2,
		"predicted", ev.Predicted,
		"percent_error", ev.PercentError)

	return ev, nil
}
