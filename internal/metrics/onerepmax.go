// Package metrics computes derived training metrics (estimated one-rep
// max, energy expenditure) as pure functions over raw set data. Nothing
// in this package touches storage.
package metrics

import (
	"errors"
	"math"
)

// ErrInvalidReps is returned when a repetition count is zero or negative.
var ErrInvalidReps = errors.New("reps must be a positive integer")

// ErrInvalidWeight is returned when a weight is negative.
var ErrInvalidWeight = errors.New("weight must be non-negative")

// EstimateOneRepMax returns the estimated one-repetition max for a set,
// using the Epley formula: weight * (1 + reps/30), rounded to the nearest
// kilogram. A single rep is an observed max, not an estimate, so it is
// returned exactly with calculated=false.
func EstimateOneRepMax(weightKg float64, reps int) (estimate float64, calculated bool, err error) {
	if reps <= 0 {
		return 0, false, ErrInvalidReps
	}
	if weightKg < 0 {
		return 0, false, ErrInvalidWeight
	}
	if reps == 1 {
		return weightKg, false, nil
	}
	return math.Round(weightKg * (1 + float64(reps)/30)), true, nil
}
