package bigbench

import (
	"testing"
	"time"
)

// TestSummarize verifies order statistics on a known sample.
func TestSummarize(t *testing.T) {
	samples := []time.Duration{
		300 * time.Microsecond,
		100 * time.Microsecond,
		500 * time.Microsecond,
		200 * time.Microsecond,
		400 * time.Microsecond,
	}

	stats := Summarize(samples)

	if stats.Min != 100*time.Microsecond {
		t.Errorf("Min: expected 100µs, got %v", stats.Min)
	}
	if stats.Max != 500*time.Microsecond {
		t.Errorf("Max: expected 500µs, got %v", stats.Max)
	}
	// P50 should be 300µs (middle value)
	if stats.P50 != 300*time.Microsecond {
		t.Errorf("P50: expected 300µs, got %v", stats.P50)
	}
	if stats.Mean != 300*time.Microsecond {
		t.Errorf("Mean: expected 300µs, got %v", stats.Mean)
	}
	if got := stats.Spread(); got != 4 {
		t.Errorf("Spread: expected 4, got %v", got)
	}

	// input order must be preserved
	if samples[0] != 300*time.Microsecond {
		t.Errorf("Summarize reordered its input: %v", samples)
	}

	t.Logf("Stats: min=%v mean=%v stddev=%v p50=%v p95=%v",
		stats.Min, stats.Mean, stats.Stddev, stats.P50, stats.P95)
}

func TestSummarize_Empty(t *testing.T) {
	if stats := Summarize(nil); stats != (Statistics{}) {
		t.Errorf("expected zero Statistics, got %+v", stats)
	}
	if spread := (Statistics{}).Spread(); spread != 0 {
		t.Errorf("expected zero spread, got %v", spread)
	}
}

func TestSample_Stats(t *testing.T) {
	s := Sample{Trials: []time.Duration{2 * time.Millisecond, 2 * time.Millisecond}}
	stats := s.Stats()

	if stats.Stddev != 0 {
		t.Errorf("identical trials should have zero stddev, got %v", stats.Stddev)
	}
}
