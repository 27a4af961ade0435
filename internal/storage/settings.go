package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/meltforce/ironlog/internal/models"
)

// Settings returns the single user-settings row, creating it with
// defaults on first access.
func (s *Store) Settings(ctx context.Context) (*models.UserSettings, error) {
	return s.ensureSettings(ctx)
}

// UpdateBodyWeight sets the stored body weight in kilograms and bumps the
// updated_at timestamp. Returns the updated settings.
func (s *Store) UpdateBodyWeight(ctx context.Context, kg float64) (*models.UserSettings, error) {
	if _, err := s.ensureSettings(ctx); err != nil {
		return nil, err
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_settings SET body_weight = ?, updated_at = ? WHERE id = ?`,
		kg, encodeTime(time.Now()), models.SettingsID)
	if err != nil {
		return nil, fmt.Errorf("updating body weight: %w", err)
	}
	return s.getSettings(ctx)
}

func (s *Store) ensureSettings(ctx context.Context) (*models.UserSettings, error) {
	settings, err := s.getSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	now := encodeTime(time.Now())
	_, err = s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO user_settings (id, body_weight, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		models.SettingsID, float64(models.DefaultBodyWeightKg), now, now)
	if err != nil {
		return nil, fmt.Errorf("seeding settings: %w", err)
	}
	return s.getSettings(ctx)
}

func (s *Store) getSettings(ctx context.Context) (*models.UserSettings, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, body_weight, created_at, updated_at FROM user_settings WHERE id = ?`,
		models.SettingsID)

	var settings models.UserSettings
	var createdAt, updatedAt string
	if err := row.Scan(&settings.ID, &settings.BodyWeightKg, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if settings.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if settings.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &settings, nil
}
