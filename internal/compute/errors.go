package compute

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidOperation is returned for a text selector outside the enumerated set
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrEmptyInput is returned when statistics are requested for an empty sequence
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidNumber is returned for NaN or infinite inputs
	ErrInvalidNumber = errors.New("invalid number")
	// ErrNonFiniteResult is returned when a computation leaves the finite reals
	ErrNonFiniteResult = errors.New("result is not a finite number")
	// ErrOverflow is returned when an integer result does not fit in int64
	ErrOverflow = errors.New("integer overflow")
)

// ValidateNumber checks that x is finite
func ValidateNumber(x float64, name string) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%w: %s is NaN", ErrInvalidNumber, name)
	}
	if math.IsInf(x, 0) {
		return fmt.Errorf("%w: %s is infinite", ErrInvalidNumber, name)
	}
	return nil
}

// ValidateNumbers validates every element of nums
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

func checkResult(op string, x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, fmt.Errorf("%w: %s produced NaN", ErrNonFiniteResult, op)
	case math.IsInf(x, 0):
		return 0, fmt.Errorf("%w: %s produced %v", ErrNonFiniteResult, op, x)
	}
	return x, nil
}
