package compute

import (
	"math"
	"sort"

	"github.com/GriffinCanCode/cloudapi/pkg/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CalculateStatistics computes mean, median, max, min and count over numbers.
// The input slice is left untouched.
func CalculateStatistics(numbers []float64) (types.StatsResult, error) {
	if len(numbers) == 0 {
		return types.StatsResult{}, ErrEmptyInput
	}

	if err := ValidateNumbers(numbers, "numbers"); err != nil {
		return types.StatsResult{}, err
	}

	mean, err := checkResult("mean", Mean(numbers))
	if err != nil {
		return types.StatsResult{}, err
	}

	return types.StatsResult{
		Mean:   mean,
		Median: Median(numbers),
		Max:    floats.Max(numbers),
		Min:    floats.Min(numbers),
		Count:  len(numbers),
	}, nil
}

// Mean returns the arithmetic mean of numbers. When the running sum
// overflows, the mean is taken over the values scaled by a power of two
// into [-1, 1] and scaled back, so any finite input has a finite mean.
func Mean(numbers []float64) float64 {
	mean := stat.Mean(numbers, nil)
	if !math.IsInf(mean, 0) {
		return mean
	}

	largest := math.Max(math.Abs(floats.Max(numbers)), math.Abs(floats.Min(numbers)))
	_, exp := math.Frexp(largest)

	scaled := make([]float64, len(numbers))
	copy(scaled, numbers)
	floats.Scale(math.Ldexp(1, -exp), scaled)
	return math.Ldexp(stat.Mean(scaled, nil), exp)
}

// Median returns the middle element of the sorted sequence, or the average of
// the two middle elements when the length is even. numbers must not be empty.
func Median(numbers []float64) float64 {
	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	// Halve before adding so two large middles cannot overflow
	return sorted[n/2-1]/2 + sorted[n/2]/2
}
