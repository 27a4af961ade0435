package metrics

import "math"

// ReferenceBodyWeightKg is the body weight the per-rep base costs are
// calibrated against.
const ReferenceBodyWeightKg = 70

// minCaloriesPerRep floors the estimate so zero-weight bodyweight work
// still registers nonzero expenditure.
const minCaloriesPerRep = 1

// Calculator estimates energy expenditure per set from an injected
// exercise profile table.
type Calculator struct {
	profiles ProfileTable
}

// NewCalculator returns a Calculator backed by the given profile table.
// A nil table uses the built-in defaults.
func NewCalculator(profiles ProfileTable) *Calculator {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	return &Calculator{profiles: profiles}
}

// Calories estimates the whole-calorie cost of one set. It sums MET-based
// metabolic energy for the time under load, a flat per-rep cost scaled by
// body weight against the 70 kg reference, and a cost proportional to the
// lifted weight, then applies the muscle, intensity, and exercise-type
// multipliers. The result is rounded and floored at one calorie per rep.
//
// bodyWeightKg <= 0 falls back to the 70 kg reference.
func (c *Calculator) Calories(exerciseName string, weightKg float64, reps int, bodyWeightKg float64) (int, error) {
	if reps <= 0 {
		return 0, ErrInvalidReps
	}
	if weightKg < 0 {
		return 0, ErrInvalidWeight
	}
	if bodyWeightKg <= 0 {
		bodyWeightKg = ReferenceBodyWeightKg
	}

	p := c.profiles.Lookup(exerciseName)
	r := float64(reps)

	hours := p.SecondsPerRep * r / 3600
	metabolic := p.MET * bodyWeightKg * hours
	base := p.BaseCaloriesPerRep * r * (bodyWeightKg / ReferenceBodyWeightKg)
	load := weightKg * p.WeightFactor * r

	total := (metabolic + base + load) * p.MuscleFactor * p.Intensity.Multiplier() * p.Type.Multiplier()

	cal := int(math.Round(total))
	if min := reps * minCaloriesPerRep; cal < min {
		cal = min
	}
	return cal, nil
}
