package service_test

import (
	"strings"
	"testing"

	"github.com/alpine-labs/my-pace/internal/service"
)

func TestFoodLogCRUD(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	id, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:      user.ID,
		Date:        "2026-03-10",
		MealType:    "Breakfast",
		FoodName:    "  Oatmeal  ",
		ServingSize: 40,
		ServingUnit: "g",
		Calories:    150,
		ProteinG:    5,
		SodiumMg:    2,
	})
	if err != nil {
		t.Fatalf("create food log: %v", err)
	}

	items, err := service.FoodLogsByDate(db, "2026-03-10")
	if err != nil {
		t.Fatalf("list food logs: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 food log, got %d", len(items))
	}
	if items[0].FoodName != "Oatmeal" || items[0].MealType != "breakfast" {
		t.Fatalf("expected trimmed name and normalized meal, got: %+v", items[0])
	}

	calories := 180.0
	meal := "lunch"
	if err := service.UpdateFoodLog(db, id, service.UpdateFoodLogInput{
		Calories: &calories,
		MealType: &meal,
	}); err != nil {
		t.Fatalf("update food log: %v", err)
	}
	items, err = service.FoodLogsByDate(db, "2026-03-10")
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if items[0].Calories != 180 || items[0].MealType != "lunch" {
		t.Fatalf("expected updated calories and meal, got: %+v", items[0])
	}
	// Untouched fields survive the partial update.
	if items[0].FoodName != "Oatmeal" || items[0].ProteinG != 5 {
		t.Fatalf("partial update disturbed unrelated fields: %+v", items[0])
	}

	if err := service.DeleteFoodLog(db, id); err != nil {
		t.Fatalf("delete food log: %v", err)
	}
	items, err = service.FoodLogsByDate(db, "2026-03-10")
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no food logs after delete, got %d", len(items))
	}
}

func TestFoodLogDeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	id, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "2026-03-10",
		MealType: "snack",
		FoodName: "Apple",
		Calories: 95,
	})
	if err != nil {
		t.Fatalf("create food log: %v", err)
	}
	if err := service.DeleteFoodLog(db, id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := service.DeleteFoodLog(db, id); err != nil {
		t.Fatalf("second delete of same id should be a no-op: %v", err)
	}
	if err := service.DeleteFoodLog(db, 99999); err != nil {
		t.Fatalf("delete of absent id should be a no-op: %v", err)
	}
}

func TestFoodLogOrderingNewestFirst(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		if _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
			UserID:   user.ID,
			Date:     "2026-03-10",
			MealType: "snack",
			FoodName: name,
			Calories: 100,
		}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	items, err := service.FoodLogsByDate(db, "2026-03-10")
	if err != nil {
		t.Fatalf("list food logs: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 food logs, got %d", len(items))
	}
	if items[0].FoodName != "Third" || items[2].FoodName != "First" {
		t.Fatalf("expected newest-first ordering, got: %v %v %v",
			items[0].FoodName, items[1].FoodName, items[2].FoodName)
	}
}

func TestFoodLogValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	_, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "2026-03-10",
		MealType: "lunch",
		FoodName: "   ",
	})
	if err == nil || !strings.Contains(err.Error(), "food name is required") {
		t.Fatalf("expected missing name error, got: %v", err)
	}

	_, err = service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "10-03-2026",
		MealType: "lunch",
		FoodName: "Soup",
	})
	if err == nil {
		t.Fatalf("expected invalid date error, got nil")
	}

	_, err = service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "2026-03-10",
		MealType: "lunch",
		FoodName: "Soup",
		Calories: -10,
	})
	if err == nil || !strings.Contains(err.Error(), "calories") {
		t.Fatalf("expected negative calories error, got: %v", err)
	}

	// Zero-calorie entries are legal.
	if _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID:   user.ID,
		Date:     "2026-03-10",
		MealType: "snack",
		FoodName: "Water",
	}); err != nil {
		t.Fatalf("zero-calorie entry should be accepted: %v", err)
	}
}
