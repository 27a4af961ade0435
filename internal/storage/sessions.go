package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/meltforce/ironlog/internal/models"
)

// InsertSession stores a session record. The set list is never embedded;
// sets reference the session by id and are persisted separately.
func (s *Store) InsertSession(ctx context.Context, sess models.WorkoutSession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workout_sessions (id, date, duration, notes, total_calories, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, encodeTime(sess.Date), sess.Duration, sess.Notes,
		sess.TotalCalories, encodeTime(sess.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// SessionUpdate holds the session fields a finish-in-place may change.
// Nil fields are left unchanged.
type SessionUpdate struct {
	Date          *time.Time
	Duration      *int
	Notes         *string
	TotalCalories *int
}

// UpdateSession applies a partial update to a persisted session. Returns
// ErrNotFound when no row has the given id.
func (s *Store) UpdateSession(ctx context.Context, id string, upd SessionUpdate) error {
	var sets []string
	var args []any
	if upd.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, encodeTime(*upd.Date))
	}
	if upd.Duration != nil {
		sets = append(sets, "duration = ?")
		args = append(args, *upd.Duration)
	}
	if upd.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *upd.Notes)
	}
	if upd.TotalCalories != nil {
		sets = append(sets, "total_calories = ?")
		args = append(args, *upd.TotalCalories)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE workout_sessions SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSession returns the session with the given id (without its sets), or
// ErrNotFound.
func (s *Store) GetSession(ctx context.Context, id string) (*models.WorkoutSession, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, date, duration, notes, total_calories, created_at
		 FROM workout_sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return sess, nil
}

// ListSessions returns all sessions ordered by date descending, without
// their sets.
func (s *Store) ListSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	return s.querySessions(ctx,
		`SELECT id, date, duration, notes, total_calories, created_at
		 FROM workout_sessions ORDER BY date DESC`)
}

// SessionsBetween returns sessions with start <= date < end, ordered by
// date descending.
func (s *Store) SessionsBetween(ctx context.Context, start, end time.Time) ([]models.WorkoutSession, error) {
	return s.querySessions(ctx,
		`SELECT id, date, duration, notes, total_calories, created_at
		 FROM workout_sessions WHERE date >= ? AND date < ? ORDER BY date DESC`,
		encodeTime(start), encodeTime(end))
}

func (s *Store) querySessions(ctx context.Context, query string, args ...any) ([]models.WorkoutSession, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		result = append(result, *sess)
	}
	return result, rows.Err()
}

// DeleteSession removes a session and cascades deletion of its sets. The
// 1RM ledger is deliberately left untouched.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM workout_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	if _, err := s.DeleteSetsBySession(ctx, id); err != nil {
		return err
	}
	return nil
}

func scanSession(r rowScanner) (*models.WorkoutSession, error) {
	var sess models.WorkoutSession
	var date, createdAt string
	if err := r.Scan(&sess.ID, &date, &sess.Duration, &sess.Notes,
		&sess.TotalCalories, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if sess.Date, err = decodeTime(date); err != nil {
		return nil, err
	}
	if sess.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	return &sess, nil
}
