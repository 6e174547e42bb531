package compute

import (
	"fmt"
	gomath "math"
)

// Add returns a + b. A sum outside the int64 range fails with ErrOverflow
// instead of wrapping.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > gomath.MaxInt64-b) || (b < 0 && a < gomath.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// Multiply returns a * b
func Multiply(a, b float64) (float64, error) {
	if err := ValidateNumber(a, "a"); err != nil {
		return 0, err
	}
	if err := ValidateNumber(b, "b"); err != nil {
		return 0, err
	}
	return checkResult("multiply", a*b)
}

// Power raises base to exponent.
//
// Power(0, 0) is 1, as math.Pow defines it. A negative base with a
// fractional exponent (NaN) or a zero base with a negative exponent (Inf)
// fails with ErrNonFiniteResult instead of returning the raw value.
func Power(base, exponent float64) (float64, error) {
	if err := ValidateNumber(base, "base"); err != nil {
		return 0, err
	}
	if err := ValidateNumber(exponent, "exponent"); err != nil {
		return 0, err
	}
	return checkResult("power", gomath.Pow(base, exponent))
}
