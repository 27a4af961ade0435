package metrics

// ExerciseType coarsely classifies how an exercise loads the body. Each
// type carries a fixed multiplier applied to the energy estimate.
type ExerciseType string

const (
	TypeCompound   ExerciseType = "compound"
	TypeIsolation  ExerciseType = "isolation"
	TypeBodyweight ExerciseType = "bodyweight"
	TypeCardio     ExerciseType = "cardio"
)

// Multiplier returns the energy multiplier for the exercise type.
func (t ExerciseType) Multiplier() float64 {
	switch t {
	case TypeCompound:
		return 1.2
	case TypeBodyweight:
		return 1.1
	case TypeCardio:
		return 1.3
	default:
		return 1.0
	}
}

// Intensity is a coarse effort tier with a fixed multiplier.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityVeryHigh Intensity = "very_high"
)

// Multiplier returns the energy multiplier for the intensity tier.
func (i Intensity) Multiplier() float64 {
	switch i {
	case IntensityLow:
		return 0.8
	case IntensityHigh:
		return 1.2
	case IntensityVeryHigh:
		return 1.4
	default:
		return 1.0
	}
}

// EnergyProfile holds the per-exercise physiological constants feeding
// the calorie heuristic. The values are tunable configuration, not
// metabolic ground truth.
type EnergyProfile struct {
	MET                float64      // metabolic equivalent of task
	BaseCaloriesPerRep float64      // flat per-rep cost at the 70 kg reference
	WeightFactor       float64      // kcal per kg lifted per rep
	MuscleFactor       float64      // muscle-mass involvement, 1.0 = whole-body average
	SecondsPerRep      float64      // average time under load per rep
	Type               ExerciseType
	Intensity          Intensity
}

// ProfileTable maps exercise display names to their energy profiles.
// Exercises absent from the table fall back to DefaultProfile.
type ProfileTable map[string]EnergyProfile

// DefaultProfile is used for exercises with no table entry.
var DefaultProfile = EnergyProfile{
	MET:                5.0,
	BaseCaloriesPerRep: 0.35,
	WeightFactor:       0.025,
	MuscleFactor:       1.0,
	SecondsPerRep:      4,
	Type:               TypeIsolation,
	Intensity:          IntensityModerate,
}

// Lookup returns the profile for an exercise name, falling back to
// DefaultProfile for unknown exercises.
func (t ProfileTable) Lookup(name string) EnergyProfile {
	if p, ok := t[name]; ok {
		return p
	}
	return DefaultProfile
}

// DefaultProfiles returns the built-in table covering the seed exercise
// catalogue.
func DefaultProfiles() ProfileTable {
	return ProfileTable{
		// Chest
		"Bench Press":    {MET: 6.0, BaseCaloriesPerRep: 0.45, WeightFactor: 0.032, MuscleFactor: 1.1, SecondsPerRep: 4, Type: TypeCompound, Intensity: IntensityHigh},
		"Push-Up":        {MET: 3.8, BaseCaloriesPerRep: 0.30, WeightFactor: 0.020, MuscleFactor: 1.0, SecondsPerRep: 3, Type: TypeBodyweight, Intensity: IntensityModerate},
		"Dumbbell Press": {MET: 5.5, BaseCaloriesPerRep: 0.42, WeightFactor: 0.030, MuscleFactor: 1.05, SecondsPerRep: 4, Type: TypeCompound, Intensity: IntensityHigh},

		// Back
		"Pull-Up":       {MET: 8.0, BaseCaloriesPerRep: 0.55, WeightFactor: 0.025, MuscleFactor: 1.15, SecondsPerRep: 4, Type: TypeBodyweight, Intensity: IntensityVeryHigh},
		"Deadlift":      {MET: 8.5, BaseCaloriesPerRep: 0.60, WeightFactor: 0.038, MuscleFactor: 1.3, SecondsPerRep: 5, Type: TypeCompound, Intensity: IntensityVeryHigh},
		"Bent-Over Row": {MET: 6.0, BaseCaloriesPerRep: 0.45, WeightFactor: 0.030, MuscleFactor: 1.1, SecondsPerRep: 4, Type: TypeCompound, Intensity: IntensityHigh},

		// Legs
		"Squat":     {MET: 8.0, BaseCaloriesPerRep: 0.58, WeightFactor: 0.036, MuscleFactor: 1.25, SecondsPerRep: 5, Type: TypeCompound, Intensity: IntensityVeryHigh},
		"Leg Press": {MET: 5.5, BaseCaloriesPerRep: 0.40, WeightFactor: 0.028, MuscleFactor: 1.15, SecondsPerRep: 4, Type: TypeCompound, Intensity: IntensityHigh},
		"Lunge":     {MET: 5.0, BaseCaloriesPerRep: 0.38, WeightFactor: 0.026, MuscleFactor: 1.15, SecondsPerRep: 4, Type: TypeBodyweight, Intensity: IntensityModerate},

		// Shoulders
		"Overhead Press": {MET: 5.5, BaseCaloriesPerRep: 0.42, WeightFactor: 0.030, MuscleFactor: 1.0, SecondsPerRep: 4, Type: TypeCompound, Intensity: IntensityHigh},
		"Lateral Raise":  {MET: 4.0, BaseCaloriesPerRep: 0.28, WeightFactor: 0.022, MuscleFactor: 0.85, SecondsPerRep: 3, Type: TypeIsolation, Intensity: IntensityModerate},

		// Arms
		"Bicep Curl": {MET: 3.8, BaseCaloriesPerRep: 0.25, WeightFactor: 0.020, MuscleFactor: 0.75, SecondsPerRep: 3, Type: TypeIsolation, Intensity: IntensityModerate},
		"Tricep Dip": {MET: 5.0, BaseCaloriesPerRep: 0.35, WeightFactor: 0.022, MuscleFactor: 0.85, SecondsPerRep: 3, Type: TypeBodyweight, Intensity: IntensityModerate},

		// Core
		"Plank":  {MET: 3.5, BaseCaloriesPerRep: 0.30, WeightFactor: 0.015, MuscleFactor: 0.9, SecondsPerRep: 30, Type: TypeBodyweight, Intensity: IntensityLow},
		"Crunch": {MET: 3.0, BaseCaloriesPerRep: 0.20, WeightFactor: 0.015, MuscleFactor: 0.7, SecondsPerRep: 2, Type: TypeBodyweight, Intensity: IntensityLow},
	}
}
