package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meltforce/ironlog/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ironlog.db")
	store, recovered, err := Open(context.Background(), path, testLogger())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if recovered {
		t.Fatal("fresh store reported a lossy recovery")
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// TestOpenSeedsDefaultExercises verifies a fresh store contains exactly
// the seed catalogue, spanning all six core muscle groups.
func TestOpenSeedsDefaultExercises(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	exercises, err := store.ListExercises(ctx)
	if err != nil {
		t.Fatalf("listing exercises: %v", err)
	}
	want := len(models.DefaultExercises())
	if len(exercises) != want {
		t.Fatalf("seeded %d exercises, want %d", len(exercises), want)
	}

	groups := make(map[models.MuscleGroup]bool)
	for _, ex := range exercises {
		groups[ex.MuscleGroup] = true
	}
	for _, g := range []models.MuscleGroup{
		models.MuscleChest, models.MuscleBack, models.MuscleShoulders,
		models.MuscleArms, models.MuscleLegs, models.MuscleCore,
	} {
		if !groups[g] {
			t.Errorf("seed catalogue missing muscle group %q", g)
		}
	}
}

// TestReopenKeepsData verifies reopening an existing store re-runs
// migrations idempotently and does not reseed over user data.
func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ironlog.db")
	ctx := context.Background()

	store, _, err := Open(ctx, path, testLogger())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	ex := models.Exercise{ID: "cable-fly", Name: "Cable Fly", MuscleGroup: models.MuscleChest, Equipment: "cable", CreatedAt: time.Now()}
	if err := store.InsertExercise(ctx, ex); err != nil {
		t.Fatalf("inserting exercise: %v", err)
	}
	store.Close()

	store, recovered, err := Open(ctx, path, testLogger())
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer store.Close()
	if recovered {
		t.Fatal("reopen reported a lossy recovery")
	}

	got, err := store.GetExercise(ctx, "cable-fly")
	if err != nil {
		t.Fatalf("getting exercise after reopen: %v", err)
	}
	if got.Name != "Cable Fly" {
		t.Errorf("name = %q, want %q", got.Name, "Cable Fly")
	}
	count, err := store.CountExercises(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(len(models.DefaultExercises()) + 1); count != want {
		t.Errorf("exercise count after reopen = %d, want %d (no reseed)", count, want)
	}
}

// TestOpenRecoversFromCorruptFile verifies the destructive
// reset-and-reinitialize fallback: a damaged database file is replaced
// and the caller is told the recovery was lossy.
func TestOpenRecoversFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ironlog.db")
	if err := os.WriteFile(path, []byte("this is not a sqlite database"), 0644); err != nil {
		t.Fatal(err)
	}

	store, recovered, err := Open(context.Background(), path, testLogger())
	if err != nil {
		t.Fatalf("open did not recover: %v", err)
	}
	defer store.Close()
	if !recovered {
		t.Error("recovered = false, want true for a corrupt database file")
	}

	exercises, err := store.ListExercises(context.Background())
	if err != nil {
		t.Fatalf("listing exercises after recovery: %v", err)
	}
	if len(exercises) != len(models.DefaultExercises()) {
		t.Errorf("recovered store has %d exercises, want the seed catalogue (%d)",
			len(exercises), len(models.DefaultExercises()))
	}
}

// TestExerciseRoundTrip verifies insert-then-list returns identical field
// values.
func TestExerciseRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	ex := models.Exercise{
		ID:          "front-squat",
		Name:        "Front Squat",
		MuscleGroup: models.MuscleLegs,
		Equipment:   "barbell",
		CreatedAt:   time.Now(),
	}
	if err := store.InsertExercise(ctx, ex); err != nil {
		t.Fatalf("inserting exercise: %v", err)
	}

	exercises, err := store.ListExercises(ctx)
	if err != nil {
		t.Fatalf("listing exercises: %v", err)
	}
	var found *models.Exercise
	for i := range exercises {
		if exercises[i].ID == ex.ID {
			found = &exercises[i]
			break
		}
	}
	if found == nil {
		t.Fatal("inserted exercise not returned by list")
	}
	if found.Name != ex.Name || found.MuscleGroup != ex.MuscleGroup || found.Equipment != ex.Equipment {
		t.Errorf("round-trip mismatch: got %+v, want %+v", *found, ex)
	}
	if !found.CreatedAt.Equal(ex.CreatedAt) {
		t.Errorf("created_at = %v, want %v", found.CreatedAt, ex.CreatedAt)
	}
}

// TestUpdateExercisePartial verifies nil fields are left unchanged and
// unknown ids are reported.
func TestUpdateExercisePartial(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	name := "Incline Bench Press"
	if err := store.UpdateExercise(ctx, "bench-press", ExerciseUpdate{Name: &name}); err != nil {
		t.Fatalf("updating exercise: %v", err)
	}
	got, err := store.GetExercise(ctx, "bench-press")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != name {
		t.Errorf("name = %q, want %q", got.Name, name)
	}
	if got.MuscleGroup != models.MuscleChest {
		t.Errorf("muscle_group changed to %q, want unchanged %q", got.MuscleGroup, models.MuscleChest)
	}

	if err := store.UpdateExercise(ctx, "no-such-id", ExerciseUpdate{Name: &name}); err != ErrNotFound {
		t.Errorf("updating unknown id: err = %v, want ErrNotFound", err)
	}
}

// TestSessionSetCascade verifies deleting a session removes its sets but
// leaves exercises and the 1RM ledger intact.
func TestSessionSetCascade(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	sess := models.WorkoutSession{ID: "sess-1", Date: now, Duration: 45, TotalCalories: 120, CreatedAt: now}
	if err := store.InsertSession(ctx, sess); err != nil {
		t.Fatalf("inserting session: %v", err)
	}
	sets := []models.WorkoutSet{
		{ID: "set-1", ExerciseID: "squat", Session: models.AssignedTo("sess-1"), Reps: 5, Weight: 100, Calories: 60, Completed: true, CreatedAt: now},
		{ID: "set-2", ExerciseID: "squat", Session: models.AssignedTo("sess-1"), Reps: 5, Weight: 110, Calories: 60, Completed: true, CreatedAt: now.Add(time.Minute)},
	}
	if n, err := store.InsertWorkoutSets(ctx, sets); err != nil || n != 2 {
		t.Fatalf("inserting sets: n=%d err=%v", n, err)
	}
	orm := models.OneRepMax{ID: "orm-1", ExerciseID: "squat", Weight: 128, Calculated: true, Date: now, CreatedAt: now}
	if err := store.InsertOneRepMax(ctx, orm); err != nil {
		t.Fatalf("inserting one-rep max: %v", err)
	}

	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("deleting session: %v", err)
	}

	if _, err := store.GetSession(ctx, "sess-1"); err != ErrNotFound {
		t.Errorf("session still present after delete: err = %v", err)
	}
	remaining, err := store.SetsBySession(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 0 {
		t.Errorf("%d sets remain after cascade delete, want 0", len(remaining))
	}
	if _, err := store.GetExercise(ctx, "squat"); err != nil {
		t.Errorf("exercise removed by session delete: %v", err)
	}
	history, err := store.OneRepMaxHistory(ctx, "squat")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Errorf("1RM ledger has %d rows after session delete, want 1 (no retraction)", len(history))
	}
}

// TestSessionsBetween verifies the date-range scan and descending order.
func TestSessionsBetween(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		sess := models.WorkoutSession{ID: id, Date: base.AddDate(0, 0, i), CreatedAt: base}
		if err := store.InsertSession(ctx, sess); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.SessionsBetween(ctx, base, base.AddDate(0, 0, 2))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("order = [%s %s], want [b a] (date descending)", got[0].ID, got[1].ID)
	}
}

// TestOneRepMaxQueries verifies latest/best/history over an append-only
// ledger.
func TestOneRepMaxQueries(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	rows := []models.OneRepMax{
		{ID: "r1", ExerciseID: "deadlift", Weight: 140, Calculated: true, Date: base, CreatedAt: base},
		{ID: "r2", ExerciseID: "deadlift", Weight: 155, Calculated: true, Date: base.AddDate(0, 0, 7), CreatedAt: base.AddDate(0, 0, 7)},
		{ID: "r3", ExerciseID: "deadlift", Weight: 150, Calculated: false, Date: base.AddDate(0, 0, 14), CreatedAt: base.AddDate(0, 0, 14)},
	}
	for _, r := range rows {
		if err := store.InsertOneRepMax(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := store.LatestOneRepMax(ctx, "deadlift")
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.ID != "r3" {
		t.Errorf("latest = %+v, want r3 (most recent by date)", latest)
	}

	best, err := store.BestOneRepMax(ctx, "deadlift")
	if err != nil {
		t.Fatal(err)
	}
	if best == nil || best.ID != "r2" {
		t.Errorf("best = %+v, want r2 (heaviest)", best)
	}

	history, err := store.OneRepMaxHistory(ctx, "deadlift")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 3 || history[0].ID != "r3" || history[2].ID != "r1" {
		t.Errorf("history order wrong: %+v", history)
	}

	none, err := store.LatestOneRepMax(ctx, "bench-press")
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Errorf("latest for empty ledger = %+v, want nil", none)
	}
}

// TestSettingsLazyCreation verifies the settings row is created with the
// 70 kg default on first access and mutated in place by updates.
func TestSettingsLazyCreation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	settings, err := store.Settings(ctx)
	if err != nil {
		t.Fatalf("getting settings: %v", err)
	}
	if settings.BodyWeightKg != models.DefaultBodyWeightKg {
		t.Errorf("body_weight = %g, want %d", settings.BodyWeightKg, models.DefaultBodyWeightKg)
	}

	updated, err := store.UpdateBodyWeight(ctx, 82.5)
	if err != nil {
		t.Fatalf("updating body weight: %v", err)
	}
	if updated.BodyWeightKg != 82.5 {
		t.Errorf("body_weight = %g, want 82.5", updated.BodyWeightKg)
	}
	if updated.ID != settings.ID {
		t.Errorf("settings id changed: %q -> %q", settings.ID, updated.ID)
	}
}

// TestReset verifies reset wipes history and reseeds exactly the
// defaults.
func TestReset(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	if err := store.InsertSession(ctx, models.WorkoutSession{ID: "s", Date: now, CreatedAt: now}); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertOneRepMax(ctx, models.OneRepMax{ID: "o", ExerciseID: "squat", Weight: 100, Date: now, CreatedAt: now}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.UpdateBodyWeight(ctx, 90); err != nil {
		t.Fatal(err)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	exercises, err := store.ListExercises(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != len(models.DefaultExercises()) {
		t.Errorf("exercises after reset = %d, want seed catalogue (%d)", len(exercises), len(models.DefaultExercises()))
	}
	sessions, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 0 {
		t.Errorf("%d sessions remain after reset, want 0", len(sessions))
	}
	history, err := store.OneRepMaxHistory(ctx, "squat")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 0 {
		t.Errorf("%d 1RM rows remain after reset, want 0", len(history))
	}
	settings, err := store.Settings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if settings.BodyWeightKg != models.DefaultBodyWeightKg {
		t.Errorf("body_weight after reset = %g, want %d", settings.BodyWeightKg, models.DefaultBodyWeightKg)
	}
}

// TestSetSessionLinkRoundTrip verifies the unassigned/assigned link
// survives storage.
func TestSetSessionLinkRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	sets := []models.WorkoutSet{
		{ID: "s1", ExerciseID: "plank", Session: models.AssignedTo("sess-x"), Reps: 1, Weight: 0, Calories: 2, Completed: true, CreatedAt: now},
	}
	if _, err := store.InsertWorkoutSets(ctx, sets); err != nil {
		t.Fatal(err)
	}

	got, err := store.SetsBySession(ctx, "sess-x")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d sets, want 1", len(got))
	}
	id, ok := got[0].Session.SessionID()
	if !ok || id != "sess-x" {
		t.Errorf("session link = (%q, %v), want (\"sess-x\", true)", id, ok)
	}
}
