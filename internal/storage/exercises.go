package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/meltforce/ironlog/internal/models"
)

// InsertExercise stores a single exercise.
func (s *Store) InsertExercise(ctx context.Context, ex models.Exercise) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exercises (id, name, muscle_group, equipment, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ex.ID, ex.Name, string(ex.MuscleGroup), ex.Equipment, encodeTime(ex.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting exercise: %w", err)
	}
	return nil
}

// InsertExercises bulk-inserts exercises in a single statement.
func (s *Store) InsertExercises(ctx context.Context, exercises []models.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}

	query := `INSERT INTO exercises (id, name, muscle_group, equipment, created_at) VALUES `
	args := make([]any, 0, len(exercises)*5)
	placeholders := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?)")
		args = append(args, ex.ID, ex.Name, string(ex.MuscleGroup), ex.Equipment, encodeTime(ex.CreatedAt))
	}
	query += strings.Join(placeholders, ",")

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting exercises: %w", err)
	}
	return nil
}

// GetExercise returns the exercise with the given id, or ErrNotFound.
func (s *Store) GetExercise(ctx context.Context, id string) (*models.Exercise, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, muscle_group, equipment, created_at FROM exercises WHERE id = ?`, id)
	ex, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting exercise: %w", err)
	}
	return ex, nil
}

// ExerciseUpdate holds the mutable exercise fields for a partial update.
// Nil fields are left unchanged.
type ExerciseUpdate struct {
	Name        *string
	MuscleGroup *models.MuscleGroup
	Equipment   *string
}

// UpdateExercise applies a partial update to an exercise. Returns
// ErrNotFound when no row has the given id.
func (s *Store) UpdateExercise(ctx context.Context, id string, upd ExerciseUpdate) error {
	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.MuscleGroup != nil {
		sets = append(sets, "muscle_group = ?")
		args = append(args, string(*upd.MuscleGroup))
	}
	if upd.Equipment != nil {
		sets = append(sets, "equipment = ?")
		args = append(args, *upd.Equipment)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE exercises SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating exercise: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListExercises returns all exercises ordered by muscle group, then name.
func (s *Store) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, muscle_group, equipment, created_at
		 FROM exercises ORDER BY muscle_group, name`)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, *ex)
	}
	return result, rows.Err()
}

// CountExercises returns the number of exercises in the catalogue.
func (s *Store) CountExercises(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting exercises: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(r rowScanner) (*models.Exercise, error) {
	var ex models.Exercise
	var group, createdAt string
	if err := r.Scan(&ex.ID, &ex.Name, &group, &ex.Equipment, &createdAt); err != nil {
		return nil, err
	}
	ex.MuscleGroup = models.MuscleGroup(group)
	t, err := decodeTime(createdAt)
	if err != nil {
		return nil, err
	}
	ex.CreatedAt = t
	return &ex, nil
}
