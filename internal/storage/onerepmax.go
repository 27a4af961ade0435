package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meltforce/ironlog/internal/models"
)

// InsertOneRepMax appends a row to the 1RM ledger. Ledger rows are never
// updated or deleted outside of a full reset.
func (s *Store) InsertOneRepMax(ctx context.Context, orm models.OneRepMax) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO one_rep_maxes (id, exercise_id, weight, calculated, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		orm.ID, orm.ExerciseID, orm.Weight, orm.Calculated,
		encodeTime(orm.Date), encodeTime(orm.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting one-rep max: %w", err)
	}
	return nil
}

// LatestOneRepMax returns the most recent ledger row for an exercise, or
// nil when the exercise has no entries yet.
func (s *Store) LatestOneRepMax(ctx context.Context, exerciseID string) (*models.OneRepMax, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, exercise_id, weight, calculated, date, created_at
		 FROM one_rep_maxes WHERE exercise_id = ?
		 ORDER BY date DESC, created_at DESC LIMIT 1`, exerciseID)
	orm, err := scanOneRepMax(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting latest one-rep max: %w", err)
	}
	return orm, nil
}

// BestOneRepMax returns the all-time heaviest ledger row for an exercise,
// or nil when the exercise has no entries yet.
func (s *Store) BestOneRepMax(ctx context.Context, exerciseID string) (*models.OneRepMax, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, exercise_id, weight, calculated, date, created_at
		 FROM one_rep_maxes WHERE exercise_id = ?
		 ORDER BY weight DESC, date DESC LIMIT 1`, exerciseID)
	orm, err := scanOneRepMax(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting best one-rep max: %w", err)
	}
	return orm, nil
}

// OneRepMaxHistory returns the full ledger for an exercise, newest first.
func (s *Store) OneRepMaxHistory(ctx context.Context, exerciseID string) ([]models.OneRepMax, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, exercise_id, weight, calculated, date, created_at
		 FROM one_rep_maxes WHERE exercise_id = ?
		 ORDER BY date DESC, created_at DESC`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying one-rep max history: %w", err)
	}
	defer rows.Close()

	var result []models.OneRepMax
	for rows.Next() {
		orm, err := scanOneRepMax(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning one-rep max: %w", err)
		}
		result = append(result, *orm)
	}
	return result, rows.Err()
}

func scanOneRepMax(r rowScanner) (*models.OneRepMax, error) {
	var orm models.OneRepMax
	var date, createdAt string
	if err := r.Scan(&orm.ID, &orm.ExerciseID, &orm.Weight, &orm.Calculated,
		&date, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if orm.Date, err = decodeTime(date); err != nil {
		return nil, err
	}
	if orm.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	return &orm, nil
}
