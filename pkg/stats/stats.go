// Package stats implements sample statistics over a slice of observations.
// Variance and StdDev are sample (n-1) statistics, matching a dataset drawn
// from a larger population rather than the population itself.
package stats

import (
	"math"
	"sort"

	"github.com/dukaforge/fincalc/pkg/types"
)

// Mean returns the arithmetic mean. Returns ErrEmptySample on empty input.
func Mean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, types.ErrEmptySample
	}
	sum := 0.0
	for _, x := range sample {
		sum += x
	}
	return sum / float64(len(sample)), nil
}

// Median returns the middle observation, or the mean of the two middle
// observations for even-sized samples. The input slice is not modified.
// Returns ErrEmptySample on empty input.
func Median(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, types.ErrEmptySample
	}
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Variance returns the sample variance (division by n-1).
// Returns ErrSampleTooSmall for fewer than 2 observations.
func Variance(sample []float64) (float64, error) {
	if len(sample) < 2 {
		return 0, types.ErrSampleTooSmall
	}
	mean, err := Mean(sample)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, x := range sample {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(sample)-1), nil
}

// StdDev returns the sample standard deviation.
// Returns ErrSampleTooSmall for fewer than 2 observations.
func StdDev(sample []float64) (float64, error) {
	v, err := Variance(sample)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}
