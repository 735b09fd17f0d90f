package service_test

import (
	"strings"
	"testing"

	"github.com/alpine-labs/my-pace/internal/service"
)

func TestGetOrCreateUserDefaults(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	user, err := service.GetOrCreateUser(db)
	if err != nil {
		t.Fatalf("get or create user: %v", err)
	}
	if user.CalorieGoal != service.DefaultCalorieGoal {
		t.Fatalf("expected calorie goal %d, got %d", service.DefaultCalorieGoal, user.CalorieGoal)
	}
	if user.ProteinGoal != service.DefaultProteinGoal {
		t.Fatalf("expected protein goal %d, got %d", service.DefaultProteinGoal, user.ProteinGoal)
	}
	if user.SodiumGoal != service.DefaultSodiumGoal {
		t.Fatalf("expected sodium goal %d, got %d", service.DefaultSodiumGoal, user.SodiumGoal)
	}
	if user.ThemePreference != "light" {
		t.Fatalf("expected light theme, got %q", user.ThemePreference)
	}
	if !user.NotificationsEnabled {
		t.Fatalf("expected notifications enabled by default")
	}
	if user.WalkingProgramStartDate != "" {
		t.Fatalf("expected no program start date, got %q", user.WalkingProgramStartDate)
	}

	again, err := service.GetOrCreateUser(db)
	if err != nil {
		t.Fatalf("second get or create user: %v", err)
	}
	if again.ID != user.ID {
		t.Fatalf("expected singleton user %d, got %d", user.ID, again.ID)
	}
}

func TestUpdateUserPartialFields(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	calories := 1800
	name := "Sam"
	if err := service.UpdateUser(db, user.ID, service.UpdateUserInput{
		Name:        &name,
		CalorieGoal: &calories,
	}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	updated, err := service.GetOrCreateUser(db)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if updated.Name != "Sam" || updated.CalorieGoal != 1800 {
		t.Fatalf("unexpected row after update: %+v", updated)
	}
	// Untouched fields keep their values.
	if updated.ProteinGoal != service.DefaultProteinGoal || updated.ThemePreference != "light" {
		t.Fatalf("partial update disturbed unrelated fields: %+v", updated)
	}

	// An input with no fields set is a no-op.
	if err := service.UpdateUser(db, user.ID, service.UpdateUserInput{}); err != nil {
		t.Fatalf("empty update: %v", err)
	}
	same, err := service.GetOrCreateUser(db)
	if err != nil {
		t.Fatalf("reload after empty update: %v", err)
	}
	if same.Name != "Sam" || same.CalorieGoal != 1800 {
		t.Fatalf("empty update changed the row: %+v", same)
	}
}

func TestUpdateUserValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	negative := -1
	err := service.UpdateUser(db, user.ID, service.UpdateUserInput{CalorieGoal: &negative})
	if err == nil || !strings.Contains(err.Error(), "calorie goal") {
		t.Fatalf("expected negative goal error, got: %v", err)
	}

	theme := "sepia"
	err = service.UpdateUser(db, user.ID, service.UpdateUserInput{ThemePreference: &theme})
	if err == nil || !strings.Contains(err.Error(), "theme must be light or dark") {
		t.Fatalf("expected theme error, got: %v", err)
	}

	badDate := "03/15/2026"
	err = service.UpdateUser(db, user.ID, service.UpdateUserInput{WalkingProgramStartDate: &badDate})
	if err == nil {
		t.Fatalf("expected date format error, got nil")
	}
}

func TestResetWalkingProgram(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	start := "2026-01-05"
	week := 9
	if err := service.UpdateUser(db, user.ID, service.UpdateUserInput{
		WalkingProgramStartDate: &start,
		WalkingProgramWeek:      &week,
	}); err != nil {
		t.Fatalf("seed program state: %v", err)
	}

	if err := service.ResetWalkingProgram(db, user.ID, "2026-08-31"); err != nil {
		t.Fatalf("reset program: %v", err)
	}
	updated, err := service.GetOrCreateUser(db)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if updated.WalkingProgramStartDate != "2026-08-31" || updated.WalkingProgramWeek != 1 {
		t.Fatalf("expected fresh program at 2026-08-31 week 1, got: %+v", updated)
	}

	if err := service.ResetWalkingProgram(db, user.ID, "yesterday"); err == nil {
		t.Fatalf("expected invalid date error, got nil")
	}
}
