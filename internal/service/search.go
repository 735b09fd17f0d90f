package service

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/alpine-labs/my-pace/internal/model"
	"github.com/alpine-labs/my-pace/internal/provider/usda"
	"github.com/alpine-labs/my-pace/internal/provider/wger"
)

// SearchFoods runs a USDA food search. On any provider failure the
// caller receives an empty slice and an ExternalServiceError; partial
// results are never fabricated.
func SearchFoods(ctx context.Context, apiKey, query string, httpClient *http.Client) ([]usda.FoodResult, error) {
	client := &usda.Client{APIKey: apiKey, HTTPClient: httpClient}
	results, err := client.SearchFoods(ctx, query, 25)
	if err != nil {
		return []usda.FoodResult{}, &ExternalServiceError{Service: "usda", Err: err}
	}
	return results, nil
}

// SearchExercises runs a wger exercise search with the same empty-plus-
// error contract as SearchFoods.
func SearchExercises(ctx context.Context, term string, httpClient *http.Client) ([]wger.ExerciseResult, error) {
	client := &wger.Client{HTTPClient: httpClient}
	results, err := client.SearchExercises(ctx, term)
	if err != nil {
		return []wger.ExerciseResult{}, &ExternalServiceError{Service: "wger", Err: err}
	}
	return results, nil
}

// FoodDetails fetches the full USDA record for one search result, with
// the same error contract as the searches.
func FoodDetails(ctx context.Context, apiKey, fdcID string, httpClient *http.Client) (usda.FoodResult, error) {
	client := &usda.Client{APIKey: apiKey, HTTPClient: httpClient}
	result, err := client.FoodDetails(ctx, fdcID)
	if err != nil {
		return usda.FoodResult{}, &ExternalServiceError{Service: "usda", Err: err}
	}
	return result, nil
}

// ExerciseDetails fetches the English description and images for a wger
// base exercise, with the same error contract as the searches.
func ExerciseDetails(ctx context.Context, baseID int64, httpClient *http.Client) (wger.ExerciseDetail, error) {
	client := &wger.Client{HTTPClient: httpClient}
	detail, err := client.ExerciseDetails(ctx, baseID)
	if err != nil {
		return wger.ExerciseDetail{}, &ExternalServiceError{Service: "wger", Err: err}
	}
	return detail, nil
}

// LogFoodSearchResult maps an accepted USDA search result into a food
// log entry for a date and meal.
func LogFoodSearchResult(db *sql.DB, userID int64, result usda.FoodResult, date, mealType string) (int64, error) {
	return CreateFoodLog(db, CreateFoodLogInput{
		UserID:      userID,
		Date:        date,
		MealType:    mealType,
		FoodName:    result.Description,
		USDAFDCID:   result.FDCID,
		ServingSize: result.ServingSize,
		ServingUnit: result.ServingUnit,
		Calories:    result.Calories,
		ProteinG:    result.ProteinG,
		SodiumMg:    result.SodiumMg,
	})
}

// SaveFoodSearchResult saves an accepted USDA search result as a
// favorite template instead of logging it.
func SaveFoodSearchResult(db *sql.DB, userID int64, result usda.FoodResult) (int64, error) {
	return CreateFavoriteFood(db, CreateFavoriteFoodInput{
		UserID:      userID,
		FoodName:    result.Description,
		USDAFDCID:   result.FDCID,
		ServingSize: result.ServingSize,
		ServingUnit: result.ServingUnit,
		Calories:    result.Calories,
		ProteinG:    result.ProteinG,
		SodiumMg:    result.SodiumMg,
	})
}

// ImportExerciseSearchResult upserts an accepted wger search result into
// the catalog under a wger-<baseID> id and returns that id.
func ImportExerciseSearchResult(db *sql.DB, result wger.ExerciseResult) (string, error) {
	id := fmt.Sprintf("wger-%d", result.ExternalID)
	err := UpsertExercise(db, model.Exercise{
		ID:              id,
		Name:            result.Name,
		Category:        result.Category,
		ImageURI:        result.ImageURL,
		DifficultyLevel: "beginner",
		Source:          SourceWger,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
