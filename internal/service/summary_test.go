package service_test

import (
	"testing"

	"github.com/alpine-labs/my-pace/internal/service"
)

func TestDailySummaryEmptyDay(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	newTestUser(t, db)

	summary, err := service.DailySummary(db, "2026-07-04")
	if err != nil {
		t.Fatalf("daily summary: %v", err)
	}
	if summary.TotalCalories != 0 || summary.TotalProtein != 0 || summary.TotalSodium != 0 {
		t.Fatalf("expected zero food totals, got: %+v", summary)
	}
	if summary.ExerciseCount != 0 || summary.TotalWalkSeconds != 0 {
		t.Fatalf("expected zero activity totals, got: %+v", summary)
	}
}

func TestDailySummaryAggregates(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	for _, f := range []struct {
		name     string
		calories float64
		protein  float64
		sodium   float64
	}{
		{"Eggs", 500, 30, 400},
		{"Toast", 300, 8, 250},
	} {
		if _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
			UserID:   user.ID,
			Date:     "2026-07-04",
			MealType: "breakfast",
			FoodName: f.name,
			Calories: f.calories,
			ProteinG: f.protein,
			SodiumMg: f.sodium,
		}); err != nil {
			t.Fatalf("create food %s: %v", f.name, err)
		}
	}
	// A different date must not leak into the summary.
	if _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "2026-07-05",
		MealType: "lunch",
		FoodName: "Salad",
		Calories: 220,
	}); err != nil {
		t.Fatalf("create off-date food: %v", err)
	}

	sets := 3
	reps := 10
	if _, err := service.CreateExerciseLog(db, service.CreateExerciseLogInput{
		UserID:       user.ID,
		Date:         "2026-07-04",
		ExerciseName: "Chair Squats",
		Sets:         &sets,
		Reps:         &reps,
	}); err != nil {
		t.Fatalf("create exercise log: %v", err)
	}

	if _, err := service.CreateWalkLog(db, service.CreateWalkLogInput{
		UserID:              user.ID,
		Date:                "2026-07-04",
		DurationSeconds:     900,
		ProgramWeek:         3,
		GoalDurationSeconds: 600,
	}); err != nil {
		t.Fatalf("create walk log: %v", err)
	}

	summary, err := service.DailySummary(db, "2026-07-04")
	if err != nil {
		t.Fatalf("daily summary: %v", err)
	}
	if summary.TotalCalories != 800 {
		t.Fatalf("expected 800 calories, got %v", summary.TotalCalories)
	}
	if summary.TotalProtein != 38 {
		t.Fatalf("expected 38g protein, got %v", summary.TotalProtein)
	}
	if summary.TotalSodium != 650 {
		t.Fatalf("expected 650mg sodium, got %v", summary.TotalSodium)
	}
	if summary.ExerciseCount != 1 {
		t.Fatalf("expected 1 exercise, got %d", summary.ExerciseCount)
	}
	if summary.TotalWalkSeconds != 900 {
		t.Fatalf("expected 900 walk seconds, got %d", summary.TotalWalkSeconds)
	}
}

func TestWeeklyTrendWindow(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	// Anchor on a Wednesday so the window crosses a month boundary:
	// 2026-07-01 back to 2026-06-25.
	if _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "2026-06-25",
		MealType: "dinner",
		FoodName: "Pasta",
		Calories: 600,
	}); err != nil {
		t.Fatalf("create food: %v", err)
	}
	if _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "2026-07-01",
		MealType: "lunch",
		FoodName: "Sandwich",
		Calories: 450,
	}); err != nil {
		t.Fatalf("create food: %v", err)
	}
	// One day before the window; must not appear.
	if _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "2026-06-24",
		MealType: "dinner",
		FoodName: "Pizza",
		Calories: 900,
	}); err != nil {
		t.Fatalf("create food: %v", err)
	}
	// 90 seconds rounds to 2 walk minutes.
	if _, err := service.CreateWalkLog(db, service.CreateWalkLogInput{
		UserID:              user.ID,
		Date:                "2026-06-28",
		DurationSeconds:     90,
		ProgramWeek:         1,
		GoalDurationSeconds: 300,
	}); err != nil {
		t.Fatalf("create walk: %v", err)
	}

	trend, err := service.WeeklyTrend(db, "2026-07-01")
	if err != nil {
		t.Fatalf("weekly trend: %v", err)
	}
	if len(trend.Labels) != 7 || len(trend.Calories) != 7 || len(trend.WalkMinutes) != 7 {
		t.Fatalf("expected 7-day series, got: %+v", trend)
	}

	wantLabels := []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"}
	for i, want := range wantLabels {
		if trend.Labels[i] != want {
			t.Fatalf("label %d: expected %s, got %s", i, want, trend.Labels[i])
		}
	}
	if trend.Calories[0] != 600 {
		t.Fatalf("expected 600 calories on the window's first day, got %v", trend.Calories[0])
	}
	if trend.Calories[6] != 450 {
		t.Fatalf("expected 450 calories on the anchor day, got %v", trend.Calories[6])
	}
	for i := 1; i < 6; i++ {
		if trend.Calories[i] != 0 {
			t.Fatalf("expected zero calories on day %d, got %v", i, trend.Calories[i])
		}
	}
	if trend.WalkMinutes[3] != 2 {
		t.Fatalf("expected 2 walk minutes on 2026-06-28, got %d", trend.WalkMinutes[3])
	}
}
