package service_test

import (
	"strings"
	"testing"

	"github.com/alpine-labs/my-pace/internal/db"
	"github.com/alpine-labs/my-pace/internal/model"
	"github.com/alpine-labs/my-pace/internal/service"
)

func TestCatalogSeededOnFirstRun(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	items, err := service.Exercises(sqldb)
	if err != nil {
		t.Fatalf("list catalog: %v", err)
	}
	if len(items) != 15 {
		t.Fatalf("expected 15 seeded exercises, got %d", len(items))
	}
	for _, ex := range items {
		if ex.Source != service.SourceDefault {
			t.Fatalf("expected default source for seeded exercise, got: %+v", ex)
		}
	}

	squats, err := service.ExerciseByID(sqldb, "ex-chair-squats")
	if err != nil {
		t.Fatalf("read seeded exercise: %v", err)
	}
	if squats == nil || squats.Name != "Chair Squats" || squats.Category != "strength" {
		t.Fatalf("unexpected seeded exercise: %+v", squats)
	}
}

func TestCatalogSeedRespectsUserEdits(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if err := service.DeleteExercise(sqldb, "ex-chair-squats"); err != nil {
		t.Fatalf("delete seeded exercise: %v", err)
	}

	// Seeding again must not resurrect the deleted row: the catalog is
	// non-empty, so the seed is skipped.
	if err := db.SeedDefaultExercises(sqldb); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	items, err := service.Exercises(sqldb)
	if err != nil {
		t.Fatalf("list catalog: %v", err)
	}
	if len(items) != 14 {
		t.Fatalf("expected 14 exercises after delete and re-seed, got %d", len(items))
	}
	gone, err := service.ExerciseByID(sqldb, "ex-chair-squats")
	if err != nil {
		t.Fatalf("read deleted exercise: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected deleted exercise to stay deleted, got: %+v", gone)
	}
}

func TestCreateCustomExercise(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id, err := service.CreateCustomExercise(sqldb, service.CreateCustomExerciseInput{
		Name:        "Resistance Band Rows",
		Description: "Back exercise using a resistance band.",
		Category:    "Strength",
	})
	if err != nil {
		t.Fatalf("create custom exercise: %v", err)
	}
	if id != "custom-resistance-band-rows" {
		t.Fatalf("expected slug id, got %q", id)
	}

	ex, err := service.ExerciseByID(sqldb, id)
	if err != nil {
		t.Fatalf("read custom exercise: %v", err)
	}
	if ex == nil || ex.Source != service.SourceCustom || ex.Category != "strength" || ex.DifficultyLevel != "beginner" {
		t.Fatalf("unexpected custom exercise: %+v", ex)
	}

	_, err = service.CreateCustomExercise(sqldb, service.CreateCustomExerciseInput{
		Name: "Resistance Band Rows",
	})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate error, got: %v", err)
	}

	_, err = service.CreateCustomExercise(sqldb, service.CreateCustomExerciseInput{Name: "  "})
	if err == nil || !strings.Contains(err.Error(), "exercise name is required") {
		t.Fatalf("expected missing name error, got: %v", err)
	}
}

func TestExercisesByCategory(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	flexibility, err := service.ExercisesByCategory(sqldb, "Flexibility")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	for _, ex := range flexibility {
		if ex.Category != "flexibility" {
			t.Fatalf("category filter leaked: %+v", ex)
		}
	}
	if len(flexibility) == 0 {
		t.Fatalf("expected seeded flexibility exercises")
	}

	if _, err := service.ExercisesByCategory(sqldb, ""); err == nil {
		t.Fatalf("expected category required error, got nil")
	}
}

func TestUpdateExercisePartialFields(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	difficulty := "Intermediate"
	if err := service.UpdateExercise(sqldb, "ex-heel-raises", service.UpdateExerciseInput{
		DifficultyLevel: &difficulty,
	}); err != nil {
		t.Fatalf("update exercise: %v", err)
	}
	ex, err := service.ExerciseByID(sqldb, "ex-heel-raises")
	if err != nil {
		t.Fatalf("read updated exercise: %v", err)
	}
	if ex.DifficultyLevel != "intermediate" {
		t.Fatalf("expected normalized difficulty, got: %+v", ex)
	}
	if ex.Name != "Heel Raises" {
		t.Fatalf("partial update disturbed the name: %+v", ex)
	}

	// No fields set is a no-op.
	if err := service.UpdateExercise(sqldb, "ex-heel-raises", service.UpdateExerciseInput{}); err != nil {
		t.Fatalf("empty update: %v", err)
	}
}

func TestUpsertExerciseReplacesByID(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if err := service.UpsertExercise(sqldb, model.Exercise{
		ID:       "wger-345",
		Name:     "Jumping Jacks",
		Category: "cardio",
		Source:   service.SourceWger,
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := service.UpsertExercise(sqldb, model.Exercise{
		ID:       "wger-345",
		Name:     "Jumping Jacks (updated)",
		Category: "cardio",
		Source:   service.SourceWger,
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	ex, err := service.ExerciseByID(sqldb, "wger-345")
	if err != nil {
		t.Fatalf("read upserted exercise: %v", err)
	}
	if ex == nil || ex.Name != "Jumping Jacks (updated)" {
		t.Fatalf("expected replaced row, got: %+v", ex)
	}
}
