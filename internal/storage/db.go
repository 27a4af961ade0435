// Package storage is the persistent store: a schema-versioned local
// SQLite database holding exercises, sessions, sets, the 1RM ledger, and
// user settings. Migrations are embedded and run in order on open.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/meltforce/ironlog/internal/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when a row with the requested id does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the SQLite database and provides typed repository methods.
type Store struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// Open opens (or creates) the store at path and migrates it to the latest
// schema version, seeding the default exercise catalogue when the table
// is empty.
//
// If open or migration fails, the database file is destructively removed
// and recreated so the application stays usable; the returned recovered
// flag is true in that case and the caller must treat it as a lossy
// recovery.
func Open(ctx context.Context, path string, log *slog.Logger) (store *Store, recovered bool, err error) {
	store, err = open(ctx, path, log)
	if err == nil {
		return store, false, nil
	}

	log.Error("store open failed, removing database file and reinitializing",
		"path", path, "error", err)
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		os.Remove(p)
	}

	store, err = open(ctx, path, log)
	if err != nil {
		return nil, false, fmt.Errorf("reinitializing store: %w", err)
	}
	return store, true, nil
}

func open(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{db: db, path: path, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seedExercises(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate applies all pending schema migrations from the embedded set.
func (s *Store) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	driver, err := sqlitemigrate.WithInstance(s.db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// seedExercises inserts the default catalogue when the exercises table is
// empty (first run or post-reset).
func (s *Store) seedExercises(ctx context.Context) error {
	count, err := s.CountExercises(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := models.DefaultExercises()
	now := time.Now()
	for i := range seed {
		seed[i].CreatedAt = now
	}
	if err := s.InsertExercises(ctx, seed); err != nil {
		return fmt.Errorf("seeding default exercises: %w", err)
	}
	s.log.Info("seeded default exercise catalogue", "count", len(seed))
	return nil
}

// Reset wipes every table and reseeds the default exercises and the
// default settings row. Used both as the open-failure recovery path and
// as an explicit user action.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{
		"workout_sets", "one_rep_maxes", "workout_sessions", "exercises", "user_settings",
	} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	if err := s.seedExercises(ctx); err != nil {
		return err
	}
	if _, err := s.ensureSettings(ctx); err != nil {
		return err
	}
	s.log.Info("store reset")
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Timestamps are stored as RFC 3339 UTC strings so lexical index order is
// chronological order. The fractional part is fixed-width; RFC3339Nano
// trims trailing zeros, which breaks lexical comparison against values
// with no fraction at all.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	// Rows written by SQL defaults or strftime use sqlite's own formats.
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q", s)
}
