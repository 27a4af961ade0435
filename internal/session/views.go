package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/ironlog/internal/models"
	"github.com/meltforce/ironlog/internal/storage"
)

// ListExercises returns the exercise catalogue ordered by muscle group.
func (m *Manager) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return m.store.ListExercises(ctx)
}

// ExercisesByMuscleGroup returns the catalogue grouped by muscle group.
func (m *Manager) ExercisesByMuscleGroup(ctx context.Context) (map[models.MuscleGroup][]models.Exercise, error) {
	exercises, err := m.store.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[models.MuscleGroup][]models.Exercise)
	for _, ex := range exercises {
		grouped[ex.MuscleGroup] = append(grouped[ex.MuscleGroup], ex)
	}
	return grouped, nil
}

// AddExercise creates a new exercise in the catalogue.
func (m *Manager) AddExercise(ctx context.Context, name string, group models.MuscleGroup, equipment string) (*models.Exercise, error) {
	if name == "" {
		return nil, validationErrf("exercise name is required")
	}
	if !group.Valid() {
		return nil, validationErrf("unknown muscle group %q", group)
	}

	ex := models.Exercise{
		ID:          uuid.NewString(),
		Name:        name,
		MuscleGroup: group,
		Equipment:   equipment,
		CreatedAt:   time.Now(),
	}
	if err := m.store.InsertExercise(ctx, ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// UpdateExercise applies a partial update to an exercise's mutable
// fields. Identity is immutable.
func (m *Manager) UpdateExercise(ctx context.Context, id string, upd storage.ExerciseUpdate) error {
	if upd.Name != nil && *upd.Name == "" {
		return validationErrf("exercise name cannot be empty")
	}
	if upd.MuscleGroup != nil && !upd.MuscleGroup.Valid() {
		return validationErrf("unknown muscle group %q", *upd.MuscleGroup)
	}
	err := m.store.UpdateExercise(ctx, id, upd)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUnknownExercise
	}
	return err
}

// CurrentOneRepMax returns the most recent 1RM ledger row for an
// exercise, or nil when none exists.
func (m *Manager) CurrentOneRepMax(ctx context.Context, exerciseID string) (*models.OneRepMax, error) {
	return m.store.LatestOneRepMax(ctx, exerciseID)
}

// PersonalBest returns the all-time heaviest 1RM ledger row for an
// exercise, or nil when none exists.
func (m *Manager) PersonalBest(ctx context.Context, exerciseID string) (*models.OneRepMax, error) {
	return m.store.BestOneRepMax(ctx, exerciseID)
}

// OneRepMaxHistory returns the full 1RM ledger for an exercise, newest
// first.
func (m *Manager) OneRepMaxHistory(ctx context.Context, exerciseID string) ([]models.OneRepMax, error) {
	return m.store.OneRepMaxHistory(ctx, exerciseID)
}

// Settings returns the user settings, creating defaults on first access.
func (m *Manager) Settings(ctx context.Context) (*models.UserSettings, error) {
	return m.store.Settings(ctx)
}

// UpdateBodyWeight stores a new body weight in kilograms.
func (m *Manager) UpdateBodyWeight(ctx context.Context, kg float64) (*models.UserSettings, error) {
	if kg <= 0 {
		return nil, validationErrf("body weight must be positive, got %g", kg)
	}
	return m.store.UpdateBodyWeight(ctx, kg)
}

// ResetAllData wipes the store and reseeds defaults. Any active
// in-memory session is discarded as well.
func (m *Manager) ResetAllData(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Reset(ctx); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}
	m.active = nil
	return nil
}

// TodayStats summarizes the persisted sessions of the current local
// calendar day.
type TodayStats struct {
	Sessions      int     `json:"sessions"`
	Sets          int     `json:"sets"`
	TotalVolumeKg float64 `json:"total_volume_kg"`
	TotalCalories int     `json:"total_calories"`
}

// TodayStats computes session count, set count, lifted volume, and
// calories for sessions dated today (local calendar day).
func (m *Manager) TodayStats(ctx context.Context) (*TodayStats, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	sessions, err := m.store.SessionsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	stats := &TodayStats{}
	for _, sess := range sessions {
		stats.Sessions++
		stats.TotalCalories += sess.TotalCalories

		sets, err := m.store.SetsBySession(ctx, sess.ID)
		if err != nil {
			return nil, err
		}
		stats.Sets += len(sets)
		for _, set := range sets {
			stats.TotalVolumeKg += set.Volume()
		}
	}
	return stats, nil
}
