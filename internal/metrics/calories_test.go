package metrics

import (
	"errors"
	"testing"
)

// TestCaloriesFloor verifies the estimate never drops below one calorie
// per rep, even for zero-weight bodyweight work.
func TestCaloriesFloor(t *testing.T) {
	calc := NewCalculator(nil)
	for _, name := range []string{"Push-Up", "Plank", "Crunch", "Nonexistent Movement"} {
		for _, reps := range []int{1, 5, 12} {
			got, err := calc.Calories(name, 0, reps, 70)
			if err != nil {
				t.Fatalf("%s reps=%d: unexpected error: %v", name, reps, err)
			}
			if got < reps {
				t.Errorf("%s reps=%d: calories = %d, want >= %d", name, reps, got, reps)
			}
		}
	}
}

// TestCaloriesMonotonicInWeight verifies the estimate never decreases as
// lifted weight increases for fixed reps and body weight.
func TestCaloriesMonotonicInWeight(t *testing.T) {
	calc := NewCalculator(nil)
	prev := 0
	for weight := 0.0; weight <= 200; weight += 10 {
		got, err := calc.Calories("Bench Press", weight, 8, 80)
		if err != nil {
			t.Fatalf("weight=%g: unexpected error: %v", weight, err)
		}
		if got < prev {
			t.Errorf("calories decreased at weight=%g: %d < %d", weight, got, prev)
		}
		prev = got
	}
}

// TestCaloriesDefaultBodyWeight verifies the 70 kg reference is used when
// no body weight is supplied.
func TestCaloriesDefaultBodyWeight(t *testing.T) {
	calc := NewCalculator(nil)
	withDefault, err := calc.Calories("Squat", 100, 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withReference, err := calc.Calories("Squat", 100, 5, ReferenceBodyWeightKg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withDefault != withReference {
		t.Errorf("calories with bodyWeight=0 = %d, want %d (the 70 kg reference)", withDefault, withReference)
	}
}

// TestCaloriesUnknownExerciseFallback verifies exercises absent from the
// profile table use the default constants rather than failing.
func TestCaloriesUnknownExerciseFallback(t *testing.T) {
	calc := NewCalculator(ProfileTable{})
	got, err := calc.Calories("Made-Up Exercise", 40, 10, 75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got <= 0 {
		t.Errorf("calories = %d, want > 0", got)
	}
}

// TestCaloriesInjectedProfile verifies a custom table overrides the
// built-in constants, keeping the engine independently tunable.
func TestCaloriesInjectedProfile(t *testing.T) {
	hot := ProfileTable{
		"Test Lift": {MET: 20, BaseCaloriesPerRep: 5, WeightFactor: 0.5, MuscleFactor: 1.5, SecondsPerRep: 10, Type: TypeCompound, Intensity: IntensityVeryHigh},
	}
	calHot, err := NewCalculator(hot).Calories("Test Lift", 100, 5, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calDefault, err := NewCalculator(nil).Calories("Test Lift", 100, 5, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calHot <= calDefault {
		t.Errorf("injected profile calories = %d, want > default %d", calHot, calDefault)
	}
}

// TestCaloriesInvalidInput verifies validation failures are errors, not
// zero results.
func TestCaloriesInvalidInput(t *testing.T) {
	calc := NewCalculator(nil)
	if _, err := calc.Calories("Bench Press", 60, 0, 70); !errors.Is(err, ErrInvalidReps) {
		t.Errorf("reps=0: err = %v, want ErrInvalidReps", err)
	}
	if _, err := calc.Calories("Bench Press", -5, 5, 70); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("weight=-5: err = %v, want ErrInvalidWeight", err)
	}
}
