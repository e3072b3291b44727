package bigbench

import (
	"math"
	"sort"
	"time"
)

// Statistics summarizes the trials of a Sample.
type Statistics struct {
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Stddev time.Duration
	P50    time.Duration
	P95    time.Duration
}

// Summarize computes order statistics and spread of samples.
// An empty slice yields the zero Statistics.
func Summarize(samples []time.Duration) Statistics {
	if len(samples) == 0 {
		return Statistics{}
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	mean := sum / time.Duration(len(sorted))

	var variance float64
	for _, d := range sorted {
		diff := float64(d - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(sorted))))

	return Statistics{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Stddev: stddev,
		P50:    sorted[len(sorted)*50/100],
		P95:    sorted[len(sorted)*95/100],
	}
}

// Spread is (Max - Min) / Min, a quick noise indicator for a best-of-N sample.
// It is zero when Min is zero.
func (s Statistics) Spread() float64 {
	if s.Min == 0 {
		return 0
	}
	return float64(s.Max-s.Min) / float64(s.Min)
}
