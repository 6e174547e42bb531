package compute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStatistics(t *testing.T) {
	t.Run("one to ten", func(t *testing.T) {
		stats, err := CalculateStatistics([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
		require.NoError(t, err)

		assert.Equal(t, 5.5, stats.Mean)
		assert.Equal(t, 5.5, stats.Median)
		assert.Equal(t, 10.0, stats.Max)
		assert.Equal(t, 1.0, stats.Min)
		assert.Equal(t, 10, stats.Count)
	})

	t.Run("odd length unsorted", func(t *testing.T) {
		stats, err := CalculateStatistics([]float64{9, -3, 4, 1, 7})
		require.NoError(t, err)

		assert.InDelta(t, 3.6, stats.Mean, 1e-12)
		assert.Equal(t, 4.0, stats.Median)
		assert.Equal(t, 9.0, stats.Max)
		assert.Equal(t, -3.0, stats.Min)
		assert.Equal(t, 5, stats.Count)
	})

	t.Run("single element", func(t *testing.T) {
		stats, err := CalculateStatistics([]float64{42})
		require.NoError(t, err)

		assert.Equal(t, 42.0, stats.Mean)
		assert.Equal(t, 42.0, stats.Median)
		assert.Equal(t, 42.0, stats.Max)
		assert.Equal(t, 42.0, stats.Min)
		assert.Equal(t, 1, stats.Count)
	})

	t.Run("input not mutated", func(t *testing.T) {
		input := []float64{3, 1, 2}
		_, err := CalculateStatistics(input)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 1, 2}, input)
	})
}

func TestCalculateStatisticsExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name       string
		numbers    []float64
		wantMean   float64
		wantMedian float64
	}{
		{name: "sum overflows", numbers: []float64{1e308, 1e308}, wantMean: 1e308, wantMedian: 1e308},
		{name: "max float pair", numbers: []float64{math.MaxFloat64, math.MaxFloat64}, wantMean: math.MaxFloat64, wantMedian: math.MaxFloat64},
		{name: "negative sum overflows", numbers: []float64{-1e308, -1e308, -1e308}, wantMean: -1e308, wantMedian: -1e308},
		{name: "mixed signs", numbers: []float64{1e308, 1e308, -1e308, 1e308}, wantMean: 5e307, wantMedian: 1e308},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := CalculateStatistics(tt.numbers)
			require.NoError(t, err)

			assert.InEpsilon(t, tt.wantMean, stats.Mean, 1e-12)
			assert.InEpsilon(t, tt.wantMedian, stats.Median, 1e-12)
			assert.Equal(t, len(tt.numbers), stats.Count)
		})
	}
}

func TestCalculateStatisticsEmpty(t *testing.T) {
	for name, input := range map[string][]float64{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			_, err := CalculateStatistics(input)
			assert.ErrorIs(t, err, ErrEmptyInput)
		})
	}
}

func TestCalculateStatisticsRejectsNonFinite(t *testing.T) {
	_, err := CalculateStatistics([]float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name    string
		numbers []float64
		want    float64
	}{
		{name: "odd", numbers: []float64{3, 1, 2}, want: 2},
		{name: "even", numbers: []float64{4, 1, 3, 2}, want: 2.5},
		{name: "duplicates", numbers: []float64{5, 5, 5, 1}, want: 5},
		{name: "negatives", numbers: []float64{-1, -10, -5}, want: -5},
		{name: "pair", numbers: []float64{1, 2}, want: 1.5},
		{name: "large middles", numbers: []float64{math.MaxFloat64, math.MaxFloat64}, want: math.MaxFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.numbers))
		})
	}
}

func TestHealthCheck(t *testing.T) {
	status := HealthCheck("cloud-api", "1.0.0")
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "cloud-api", status.Service)
	assert.Equal(t, "1.0.0", status.Version)
}

func TestCatalogue(t *testing.T) {
	ops := Catalogue()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
		assert.NotEmpty(t, op.Path)
		assert.NotEmpty(t, op.Method)
	}
	assert.Equal(t, []string{"add", "multiply", "power", "process_text", "calculate_statistics", "health_check"}, names)
}
