package bigbench

import (
	"math"
	"testing"
)

// AssertionConfig contains thresholds for growth-class checks.
type AssertionConfig struct {
	// |fitted exponent - theoretical exponent| must stay below this
	ExponentTolerance float64

	// Minimum R² for model fit quality
	MinRSquared float64
}

// DefaultAssertionConfig returns forgiving thresholds suited to wall-clock noise.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		ExponentTolerance: 0.5,  // Half a class either way
		MinRSquared:       0.90, // 90% model fit
	}
}

// AssertGrowthClass verifies a measured profile grows like id's theoretical class.
//
// Mathematical property:
//
//	t(n) ≈ c · n^k, with k = Exponent(id)
func AssertGrowthClass(t *testing.T, id AlgorithmID, points []Point, cfg AssertionConfig) {
	t.Helper()

	want, err := Exponent(id)
	if err != nil {
		t.Fatalf("No theoretical class: %v", err)
	}

	fit, err := FitPowerLaw(points)
	if err != nil {
		t.Fatalf("Failed to fit power law: %v", err)
	}

	if diff := math.Abs(fit.Exponent - float64(want)); diff > cfg.ExponentTolerance {
		t.Errorf("Growth does not match %s: fitted k = %.3f (tolerance: ±%.2f)",
			id.Class(), fit.Exponent, cfg.ExponentTolerance)
	}

	if fit.RSquared < cfg.MinRSquared {
		t.Errorf("Poor model fit: R² = %.4f (min: %.4f)\n"+
			"Power law doesn't explain the data. Check for measurement noise.",
			fit.RSquared, cfg.MinRSquared)
	}

	t.Logf("✓ %s matches %s: k = %.3f", id, id.Class(), fit.Exponent)
	t.Logf("  Model fit: R² = %.4f", fit.RSquared)
}

// AssertPercentError verifies an evaluation's prediction is within maxAbs of
// the measured time (0.25 = 25%).
func AssertPercentError(t *testing.T, ev Evaluation, maxAbs float64) {
	t.Helper()

	if ev.Undetermined || math.Abs(ev.PercentError) > maxAbs {
		t.Errorf("Estimate off for %s n1=%d→n2=%d: error = %.2f%% (max: ±%.2f%%)\n"+
			"  predicted=%.6fs actual=%.6fs",
			ev.Algorithm, ev.N1, ev.N2, ev.PercentError*100, maxAbs*100,
			ev.Predicted, ev.T2)
		return
	}

	t.Logf("✓ %s n1=%d→n2=%d: error = %.2f%%", ev.Algorithm, ev.N1, ev.N2, ev.PercentError*100)
}

// PrintProfile outputs a profile and its fit to the test log.
func PrintProfile(t *testing.T, id AlgorithmID, points []Point) {
	t.Helper()

	fit, err := FitPowerLaw(points)
	if err != nil {
		t.Fatalf("Failed to fit power law: %v", err)
	}

	t.Logf("\n=== Growth Profile: %s (theory %s) ===", id, id.Class())
	t.Logf("  c = %.3e, k = %.3f, R² = %.4f", fit.Coefficient, fit.Exponent, fit.RSquared)

	t.Logf("\nMeasured vs Fitted:")
	t.Logf("  N         Measured       Fitted")
	t.Logf("  --------  -------------  -------------")
	for _, p := range points {
		t.Logf("  %-8d  %12.6fs  %12.6fs", p.N, p.Seconds, fit.Predict(p.N))
	}

	if ids := fit.Classify(); len(ids) > 0 {
		t.Logf("\nClosest class: O(n^%d) %v", fit.NearestExponent(), ids)
	} else {
		t.Logf("\nClosest class: O(n^%d) (no registered algorithm)", fit.NearestExponent())
	}
}
