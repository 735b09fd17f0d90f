package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alpine-labs/my-pace/internal/provider/usda"
	"github.com/alpine-labs/my-pace/internal/provider/wger"
	"github.com/alpine-labs/my-pace/internal/service"
)

func TestSearchFoodsFailureReturnsEmptyAndTypedError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &usda.Client{APIKey: "key", BaseURL: server.URL}
	if _, err := client.SearchFoods(context.Background(), "apple", 5); err == nil {
		t.Fatalf("expected provider error on 500")
	}

	results, err := service.SearchFoods(context.Background(), "", "apple", server.Client())
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}
	if !service.IsExternalServiceError(err) {
		t.Fatalf("expected ExternalServiceError, got: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty non-nil result set, got: %+v", results)
	}
}

func TestSearchExercisesFailureReturnsEmptyAndTypedError(t *testing.T) {
	t.Parallel()

	results, err := service.SearchExercises(context.Background(), "", nil)
	if err == nil {
		t.Fatalf("expected error for empty term")
	}
	if !service.IsExternalServiceError(err) {
		t.Fatalf("expected ExternalServiceError, got: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty non-nil result set, got: %+v", results)
	}
}

func TestLogAndSaveFoodSearchResult(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	user := newTestUser(t, db)

	result := usda.FoodResult{
		FDCID:       "171284",
		Description: "Yogurt, Greek, plain",
		Calories:    100,
		ProteinG:    17,
		SodiumMg:    60,
		ServingSize: 170,
		ServingUnit: "g",
	}

	logID, err := service.LogFoodSearchResult(db, user.ID, result, "2026-07-10", "breakfast")
	if err != nil {
		t.Fatalf("log search result: %v", err)
	}
	items, err := service.FoodLogsByDate(db, "2026-07-10")
	if err != nil {
		t.Fatalf("list food logs: %v", err)
	}
	if len(items) != 1 || items[0].ID != logID {
		t.Fatalf("expected the logged result, got: %+v", items)
	}
	if items[0].FoodName != "Yogurt, Greek, plain" || items[0].USDAFDCID != "171284" || items[0].Calories != 100 {
		t.Fatalf("search result mapped incorrectly: %+v", items[0])
	}

	favID, err := service.SaveFoodSearchResult(db, user.ID, result)
	if err != nil {
		t.Fatalf("save search result: %v", err)
	}
	fav, err := service.FavoriteFoodByID(db, favID)
	if err != nil {
		t.Fatalf("read saved favorite: %v", err)
	}
	if fav == nil || fav.FoodName != "Yogurt, Greek, plain" || fav.ProteinG != 17 {
		t.Fatalf("favorite mapped incorrectly: %+v", fav)
	}
}

func TestImportExerciseSearchResult(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.ImportExerciseSearchResult(db, wger.ExerciseResult{
		ExternalID: 345,
		Name:       "Jumping Jacks",
		Category:   "cardio",
		ImageURL:   "https://wger.de/media/exercise-images/345/jj.png",
	})
	if err != nil {
		t.Fatalf("import search result: %v", err)
	}
	if id != "wger-345" {
		t.Fatalf("expected wger-345 id, got %q", id)
	}

	ex, err := service.ExerciseByID(db, id)
	if err != nil {
		t.Fatalf("read imported exercise: %v", err)
	}
	if ex == nil || ex.Source != service.SourceWger || ex.Category != "cardio" || ex.DifficultyLevel != "beginner" {
		t.Fatalf("imported exercise mapped incorrectly: %+v", ex)
	}

	// Importing the same result twice replaces rather than duplicates.
	if _, err := service.ImportExerciseSearchResult(db, wger.ExerciseResult{
		ExternalID: 345,
		Name:       "Jumping Jacks",
		Category:   "cardio",
	}); err != nil {
		t.Fatalf("second import: %v", err)
	}
	all, err := service.Exercises(db)
	if err != nil {
		t.Fatalf("list catalog: %v", err)
	}
	count := 0
	for _, e := range all {
		if e.ID == "wger-345" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one wger-345 row, got %d", count)
	}
}
