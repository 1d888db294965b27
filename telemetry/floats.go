// Package telemetry accumulates per-generation statistics over a rise
// population and archives them for offline analysis, independent of
// the tick loop itself.
package telemetry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Floats provides descriptive statistics on a slice of float64 values,
// used for per-generation fitness and complexity distributions.
type Floats []float64

// Min returns the smallest value in the slice.
func (x Floats) Min() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Min(x)
}

// Max returns the greatest value in the slice.
func (x Floats) Max() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}

// Mean returns the average of the values in the slice.
func (x Floats) Mean() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// MeanVariance returns the sample mean and unbiased variance of the
// values in the slice, in that order.
func (x Floats) MeanVariance() []float64 {
	if len(x) == 0 {
		return []float64{math.NaN(), math.NaN()}
	}
	m, v := stat.MeanVariance(x, nil)
	return []float64{m, v}
}

// Median returns the middle value in the slice (50% quantile).
func (x Floats) Median() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Quantile(0.5, stat.Empirical, x, nil)
}

// Variance returns the variance of the values in the slice.
func (x Floats) Variance() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Variance(x, nil)
}
