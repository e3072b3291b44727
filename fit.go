package bigbench

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientData is returned when a fit has too few usable points.
var ErrInsufficientData = errors.New("insufficient data for fit")

// Point is one measurement of a profile: best time in seconds at size N.
type Point struct {
	N       int     `json:"n" yaml:"n"`
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

// PowerLaw is the empirical model t(n) = Coefficient · n^Exponent.
type PowerLaw struct {
	Coefficient float64 `json:"coefficient"`
	Exponent    float64 `json:"exponent"`
	RSquared    float64 `json:"r_squared"` // Goodness of fit in log space (1.0 = perfect)
	Points      int     `json:"points"`    // Points used by the fit
}

// FitPowerLaw estimates the growth exponent of a profile.
//
// The model is linearized by taking logs of both sides:
//
//	ln t = ln c + k · ln n
//
// and solved by ordinary least squares. Points with a non-positive size or
// time are skipped: a zero time carries no information on a log scale.
func FitPowerLaw(points []Point) (PowerLaw, error) {
	var sumX, sumY, sumXX, sumXY, count float64
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))

	for _, p := range points {
		if p.N <= 0 || p.Seconds <= 0 {
			continue
		}
		x := math.Log(float64(p.N))
		y := math.Log(p.Seconds)

		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
		count++

		xs = append(xs, x)
		ys = append(ys, y)
	}

	if count < 2 {
		return PowerLaw{}, fmt.Errorf("%w: need at least 2 usable points, got %d",
			ErrInsufficientData, int(count))
	}

	det := count*sumXX - sumX*sumX
	if math.Abs(det) < 1e-12 {
		return PowerLaw{}, fmt.Errorf("%w: all usable points share one size", ErrInsufficientData)
	}

	slope := (count*sumXY - sumX*sumY) / det
	intercept := (sumY - slope*sumX) / count

	meanY := sumY / count
	var ssRes, ssTot float64
	for i := range xs {
		predicted := intercept + slope*xs[i]
		ssRes += (ys[i] - predicted) * (ys[i] - predicted)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}

	rSquared := 1.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return PowerLaw{
		Coefficient: math.Exp(intercept),
		Exponent:    slope,
		RSquared:    rSquared,
		Points:      int(count),
	}, nil
}

// Predict returns the modeled time in seconds at size n.
func (p PowerLaw) Predict(n int) float64 {
	return p.Coefficient * math.Pow(float64(n), p.Exponent)
}

// NearestExponent rounds the fitted exponent to the closest integer class.
func (p PowerLaw) NearestExponent() int {
	return int(math.Round(p.Exponent))
}

// Classify returns the algorithms whose theoretical class is closest to the fit.
func (p PowerLaw) Classify() []AlgorithmID {
	return MatchingAlgorithms(p.NearestExponent())
}
