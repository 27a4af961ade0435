// Package session owns the workout session lifecycle: the single
// active-session slot, the transitions over it, and the aggregate views
// the shell reads. It coordinates the metric engine and the persistent
// store; a session becomes durable exactly once, at finish.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/ironlog/internal/metrics"
	"github.com/meltforce/ironlog/internal/models"
	"github.com/meltforce/ironlog/internal/storage"
)

// Manager is the state machine over the single active-session slot. At
// most one session is active at a time; starting another while one is
// active is an explicit error.
type Manager struct {
	store *storage.Store
	calc  *metrics.Calculator
	log   *slog.Logger

	mu     sync.Mutex
	active *activeSession
}

// activeSession is the in-memory working state between start/continue and
// finish. resumedFrom carries the original session id when continuing, so
// finish updates that row in place instead of duplicating it.
type activeSession struct {
	session         models.WorkoutSession
	resumedFrom     string
	resumedDuration int // minutes already recorded on the original session
}

// NewManager creates a Manager in the idle state.
func NewManager(store *storage.Store, calc *metrics.Calculator, log *slog.Logger) *Manager {
	return &Manager{store: store, calc: calc, log: log}
}

// Active returns a copy of the current in-memory session, or nil when
// idle.
func (m *Manager) Active() *models.WorkoutSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil
	}
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() *models.WorkoutSession {
	sess := m.active.session
	sess.Sets = append([]models.WorkoutSet(nil), m.active.session.Sets...)
	return &sess
}

// Start begins a brand-new session. Only valid when idle.
func (m *Manager) Start() (*models.WorkoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		return nil, ErrSessionActive
	}

	now := time.Now()
	m.active = &activeSession{
		session: models.WorkoutSession{
			ID:        uuid.NewString(),
			Date:      now,
			Sets:      []models.WorkoutSet{},
			CreatedAt: now,
		},
	}
	m.log.Info("session started", "session_id", m.active.session.ID)
	return m.snapshotLocked(), nil
}

// Continue resumes a previously finished session. The in-memory session
// gets a new identity and a fresh creation timestamp (used to compute
// only the additional elapsed duration) but copies the original's date,
// notes, duration, and sets; history stays untouched until finish, which
// updates the original row in place.
func (m *Manager) Continue(ctx context.Context, sessionID string) (*models.WorkoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		return nil, ErrSessionActive
	}

	orig, err := m.store.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, validationErrf("session %s not found", sessionID)
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	sets, err := m.store.SetsBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session sets: %w", err)
	}

	total := 0
	for _, set := range sets {
		total += set.Calories
	}

	m.active = &activeSession{
		session: models.WorkoutSession{
			ID:            uuid.NewString(),
			Date:          orig.Date,
			Notes:         orig.Notes,
			Sets:          sets,
			TotalCalories: total,
			CreatedAt:     time.Now(),
		},
		resumedFrom:     orig.ID,
		resumedDuration: orig.Duration,
	}
	m.log.Info("session resumed", "session_id", orig.ID, "sets", len(sets))
	return m.snapshotLocked(), nil
}

// Abandon discards the in-memory session without persisting anything.
func (m *Manager) Abandon() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return ErrNoActiveSession
	}
	m.log.Info("session abandoned", "session_id", m.active.session.ID,
		"sets_discarded", len(m.active.session.Sets))
	m.active = nil
	return nil
}

// AddSet records one completed set against the active session. The set's
// calorie cost is computed immediately from the current body-weight
// setting, and the per-exercise 1RM ledger gains a row when the set's
// estimate beats the most recent entry.
func (m *Manager) AddSet(ctx context.Context, exerciseID string, reps int, weightKg float64) (*models.WorkoutSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, ErrNoActiveSession
	}
	if reps <= 0 {
		return nil, validationErrf("reps must be positive, got %d", reps)
	}
	if weightKg < 0 {
		return nil, validationErrf("weight must be non-negative, got %g", weightKg)
	}

	ex, err := m.store.GetExercise(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnknownExercise
		}
		return nil, fmt.Errorf("resolving exercise: %w", err)
	}

	calories, err := m.calc.Calories(ex.Name, weightKg, reps, m.bodyWeight(ctx))
	if err != nil {
		return nil, validationErrf("computing calories: %v", err)
	}

	set := models.WorkoutSet{
		ID:         uuid.NewString(),
		ExerciseID: ex.ID,
		Session:    models.Unassigned(),
		Reps:       reps,
		Weight:     weightKg,
		Calories:   calories,
		Completed:  true,
		CreatedAt:  time.Now(),
	}
	m.active.session.Sets = append(m.active.session.Sets, set)
	m.active.session.TotalCalories += calories

	m.recordOneRepMax(ctx, ex.ID, weightKg, reps)

	return &set, nil
}

// recordOneRepMax appends a ledger row when the set's Epley estimate
// beats the most recent entry for the exercise. Best-effort: store
// failures are logged and do not fail the set addition.
func (m *Manager) recordOneRepMax(ctx context.Context, exerciseID string, weightKg float64, reps int) {
	estimate, calculated, err := metrics.EstimateOneRepMax(weightKg, reps)
	if err != nil {
		return
	}

	latest, err := m.store.LatestOneRepMax(ctx, exerciseID)
	if err != nil {
		m.log.Error("loading latest one-rep max", "exercise_id", exerciseID, "error", err)
		return
	}
	if latest != nil && estimate <= latest.Weight {
		return
	}

	now := time.Now()
	orm := models.OneRepMax{
		ID:         uuid.NewString(),
		ExerciseID: exerciseID,
		Weight:     estimate,
		Calculated: calculated,
		Date:       now,
		CreatedAt:  now,
	}
	if err := m.store.InsertOneRepMax(ctx, orm); err != nil {
		m.log.Error("recording one-rep max", "exercise_id", exerciseID, "error", err)
	}
}

// bodyWeight returns the configured body weight, falling back to the
// 70 kg reference when the settings read fails.
func (m *Manager) bodyWeight(ctx context.Context) float64 {
	settings, err := m.store.Settings(ctx)
	if err != nil {
		m.log.Warn("loading settings, using default body weight", "error", err)
		return models.DefaultBodyWeightKg
	}
	return settings.BodyWeightKg
}

// Finish makes the active session durable and returns to idle. The total
// calorie figure is recomputed from the sets (authoritative, guarding
// against drift in the incremental sum), every set is back-filled with
// its session id, and for a brand-new session each distinct exercise
// gains one 1RM ledger row derived from its heaviest set. On any
// persistence failure the in-memory session is kept so the caller can
// retry.
func (m *Manager) Finish(ctx context.Context, notes string) (*models.WorkoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, ErrNoActiveSession
	}

	a := m.active
	sess := a.session
	sess.Sets = append([]models.WorkoutSet(nil), a.session.Sets...)
	sess.Notes = notes

	elapsed := int(math.Round(time.Since(sess.CreatedAt).Minutes()))
	if a.resumedFrom != "" {
		sess.ID = a.resumedFrom
		sess.Duration = a.resumedDuration + elapsed
	} else {
		sess.Duration = elapsed
	}

	total := 0
	for i := range sess.Sets {
		sess.Sets[i].Session = models.AssignedTo(sess.ID)
		total += sess.Sets[i].Calories
	}
	sess.TotalCalories = total

	if a.resumedFrom != "" {
		// Replace-all of the session's sets avoids duplicating the rows
		// copied in by Continue.
		if _, err := m.store.DeleteSetsBySession(ctx, sess.ID); err != nil {
			return nil, fmt.Errorf("replacing session sets: %w", err)
		}
		if _, err := m.store.InsertWorkoutSets(ctx, sess.Sets); err != nil {
			return nil, fmt.Errorf("persisting session sets: %w", err)
		}
		upd := storage.SessionUpdate{
			Duration:      &sess.Duration,
			Notes:         &sess.Notes,
			TotalCalories: &sess.TotalCalories,
		}
		if err := m.store.UpdateSession(ctx, sess.ID, upd); err != nil {
			return nil, fmt.Errorf("updating session: %w", err)
		}
	} else {
		if err := m.store.InsertSession(ctx, sess); err != nil {
			return nil, fmt.Errorf("persisting session: %w", err)
		}
		if _, err := m.store.InsertWorkoutSets(ctx, sess.Sets); err != nil {
			return nil, fmt.Errorf("persisting session sets: %w", err)
		}
		if err := m.recordSessionMaxes(ctx, sess); err != nil {
			return nil, err
		}
	}

	m.log.Info("session finished", "session_id", sess.ID,
		"sets", len(sess.Sets), "duration_min", sess.Duration,
		"total_calories", sess.TotalCalories, "resumed", a.resumedFrom != "")
	m.active = nil
	return &sess, nil
}

// recordSessionMaxes appends one 1RM ledger row per distinct exercise in
// the finished session, derived from that exercise's heaviest set. Unlike
// the per-set update in AddSet this append is unconditional.
func (m *Manager) recordSessionMaxes(ctx context.Context, sess models.WorkoutSession) error {
	heaviest := make(map[string]models.WorkoutSet)
	var order []string
	for _, set := range sess.Sets {
		best, seen := heaviest[set.ExerciseID]
		if !seen {
			order = append(order, set.ExerciseID)
		}
		if !seen || set.Weight > best.Weight {
			heaviest[set.ExerciseID] = set
		}
	}

	now := time.Now()
	for _, exerciseID := range order {
		set := heaviest[exerciseID]
		estimate, calculated, err := metrics.EstimateOneRepMax(set.Weight, set.Reps)
		if err != nil {
			continue
		}
		orm := models.OneRepMax{
			ID:         uuid.NewString(),
			ExerciseID: exerciseID,
			Weight:     estimate,
			Calculated: calculated,
			Date:       now,
			CreatedAt:  now,
		}
		if err := m.store.InsertOneRepMax(ctx, orm); err != nil {
			return fmt.Errorf("recording session one-rep max: %w", err)
		}
	}
	return nil
}

// DeleteSession removes a persisted session and its sets. Operates on
// history, so it is valid in any state; 1RM ledger rows derived from the
// session are not retracted.
func (m *Manager) DeleteSession(ctx context.Context, id string) error {
	return m.store.DeleteSession(ctx, id)
}

// Sessions returns persisted history, newest first, with sets attached.
func (m *Manager) Sessions(ctx context.Context) ([]models.WorkoutSession, error) {
	sessions, err := m.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sets, err := m.store.SetsBySession(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Sets = sets
	}
	return sessions, nil
}
