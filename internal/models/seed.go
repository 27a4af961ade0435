package models

// DefaultExercises is the catalogue seeded when the exercises table is
// empty (first run or after a reset). IDs are fixed slugs so seed data is
// stable across reinstalls.
func DefaultExercises() []Exercise {
	return []Exercise{
		// Chest
		{ID: "bench-press", Name: "Bench Press", MuscleGroup: MuscleChest, Equipment: "barbell"},
		{ID: "push-up", Name: "Push-Up", MuscleGroup: MuscleChest},
		{ID: "dumbbell-press", Name: "Dumbbell Press", MuscleGroup: MuscleChest, Equipment: "dumbbell"},

		// Back
		{ID: "pull-up", Name: "Pull-Up", MuscleGroup: MuscleBack},
		{ID: "deadlift", Name: "Deadlift", MuscleGroup: MuscleBack, Equipment: "barbell"},
		{ID: "bent-over-row", Name: "Bent-Over Row", MuscleGroup: MuscleBack, Equipment: "barbell"},

		// Legs
		{ID: "squat", Name: "Squat", MuscleGroup: MuscleLegs, Equipment: "barbell"},
		{ID: "leg-press", Name: "Leg Press", MuscleGroup: MuscleLegs, Equipment: "machine"},
		{ID: "lunge", Name: "Lunge", MuscleGroup: MuscleLegs},

		// Shoulders
		{ID: "overhead-press", Name: "Overhead Press", MuscleGroup: MuscleShoulders, Equipment: "barbell"},
		{ID: "lateral-raise", Name: "Lateral Raise", MuscleGroup: MuscleShoulders, Equipment: "dumbbell"},

		// Arms
		{ID: "bicep-curl", Name: "Bicep Curl", MuscleGroup: MuscleArms, Equipment: "dumbbell"},
		{ID: "tricep-dip", Name: "Tricep Dip", MuscleGroup: MuscleArms},

		// Core
		{ID: "plank", Name: "Plank", MuscleGroup: MuscleCore},
		{ID: "crunch", Name: "Crunch", MuscleGroup: MuscleCore},
	}
}
