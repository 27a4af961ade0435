package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/meltforce/ironlog/internal/models"
)

// InsertWorkoutSets bulk-inserts sets in a single statement. Returns the
// number of rows inserted.
func (s *Store) InsertWorkoutSets(ctx context.Context, sets []models.WorkoutSet) (int64, error) {
	if len(sets) == 0 {
		return 0, nil
	}

	query := `INSERT INTO workout_sets (id, exercise_id, workout_session_id, reps,
		weight, calories, completed, rest_time, created_at) VALUES `
	args := make([]any, 0, len(sets)*9)
	placeholders := make([]string, 0, len(sets))

	for _, set := range sets {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		var sessionID any
		if id, ok := set.Session.SessionID(); ok {
			sessionID = id
		}
		var restTime any
		if set.RestTime != nil {
			restTime = *set.RestTime
		}
		args = append(args, set.ID, set.ExerciseID, sessionID, set.Reps,
			set.Weight, set.Calories, set.Completed, restTime, encodeTime(set.CreatedAt))
	}

	query += strings.Join(placeholders, ",")

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting workout sets: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// SetsBySession returns every set belonging to a session, in the order
// they were recorded.
func (s *Store) SetsBySession(ctx context.Context, sessionID string) ([]models.WorkoutSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, exercise_id, workout_session_id, reps, weight, calories,
		 completed, rest_time, created_at
		 FROM workout_sets WHERE workout_session_id = ?
		 ORDER BY created_at ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying workout sets: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutSet
	for rows.Next() {
		var set models.WorkoutSet
		var sessID sql.NullString
		var restTime sql.NullInt64
		var createdAt string
		if err := rows.Scan(&set.ID, &set.ExerciseID, &sessID, &set.Reps,
			&set.Weight, &set.Calories, &set.Completed, &restTime, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning workout set: %w", err)
		}
		if sessID.Valid {
			set.Session = models.AssignedTo(sessID.String)
		}
		if restTime.Valid {
			rt := int(restTime.Int64)
			set.RestTime = &rt
		}
		if set.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		result = append(result, set)
	}
	return result, rows.Err()
}

// DeleteSetsBySession removes every set belonging to a session. Returns
// the number of rows deleted.
func (s *Store) DeleteSetsBySession(ctx context.Context, sessionID string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM workout_sets WHERE workout_session_id = ?`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("deleting workout sets: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
