// Package models defines the persisted entities of the workout engine.
package models

import "time"

// MuscleGroup classifies an exercise by the primary muscles it trains.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleLegs      MuscleGroup = "legs"
	MuscleCore      MuscleGroup = "core"
	MuscleFullBody  MuscleGroup = "full_body"
)

// MuscleGroups lists every valid muscle group in display order.
var MuscleGroups = []MuscleGroup{
	MuscleChest,
	MuscleBack,
	MuscleShoulders,
	MuscleArms,
	MuscleLegs,
	MuscleCore,
	MuscleFullBody,
}

// Valid reports whether g is one of the known muscle groups.
func (g MuscleGroup) Valid() bool {
	for _, known := range MuscleGroups {
		if g == known {
			return true
		}
	}
	return false
}

// Exercise is a movement that can be trained. Identity is immutable;
// name, muscle group, and equipment may change via explicit update.
type Exercise struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
	Equipment   string      `json:"equipment,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// WorkoutSet is a single completed set of an exercise. Once persisted it
// is immutable except for the session link, which is back-filled exactly
// once when the owning session finishes.
type WorkoutSet struct {
	ID         string      `json:"id"`
	ExerciseID string      `json:"exercise_id"`
	Session    SessionLink `json:"workout_session_id"`
	Reps       int         `json:"reps"`
	Weight     float64     `json:"weight"`
	Calories   int         `json:"calories"`
	Completed  bool        `json:"completed"`
	RestTime   *int        `json:"rest_time,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Volume returns the lifted volume for the set in kilograms.
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// WorkoutSession is one training session. Date is when the training took
// place; CreatedAt is when recording began (they diverge when a session
// is resumed). Sets is reconstituted by lookup, never stored embedded.
type WorkoutSession struct {
	ID            string       `json:"id"`
	Date          time.Time    `json:"date"`
	Duration      int          `json:"duration"` // minutes
	Notes         string       `json:"notes,omitempty"`
	Sets          []WorkoutSet `json:"sets"`
	TotalCalories int          `json:"total_calories"`
	CreatedAt     time.Time    `json:"created_at"`
}

// OneRepMax is one entry in the append-only per-exercise 1RM ledger.
// Calculated marks formula-derived estimates; a single-rep observation
// is recorded as-is with Calculated false.
type OneRepMax struct {
	ID         string    `json:"id"`
	ExerciseID string    `json:"exercise_id"`
	Weight     float64   `json:"weight"`
	Calculated bool      `json:"calculated"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// SettingsID is the fixed key of the single user_settings row.
const SettingsID = "default"

// DefaultBodyWeightKg is the physiological fallback used for calorie
// estimates when no user setting exists yet.
const DefaultBodyWeightKg = 70

// UserSettings holds per-user physiological parameters. A single row,
// created lazily on first access.
type UserSettings struct {
	ID           string    `json:"id"`
	BodyWeightKg float64   `json:"body_weight"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
