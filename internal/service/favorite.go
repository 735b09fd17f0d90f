package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alpine-labs/my-pace/internal/model"
)

type CreateFavoriteFoodInput struct {
	UserID      int64
	FoodName    string
	USDAFDCID   string
	ServingSize float64
	ServingUnit string
	Calories    float64
	ProteinG    float64
	SodiumMg    float64
}

// CreateFavoriteFood saves a food template for quick re-adding. The
// nutrient snapshot is frozen at save time; favorites are never applied
// automatically.
func CreateFavoriteFood(db *sql.DB, in CreateFavoriteFoodInput) (int64, error) {
	in.FoodName = strings.TrimSpace(in.FoodName)
	if in.FoodName == "" {
		return 0, fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("protein", in.ProteinG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("sodium", in.SodiumMg); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("serving size", in.ServingSize); err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO favorite_foods(user_id, food_name, usda_fdc_id, serving_size, serving_unit, calories, protein_g, sodium_mg)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, in.UserID, in.FoodName, strings.TrimSpace(in.USDAFDCID), in.ServingSize,
		strings.TrimSpace(in.ServingUnit), in.Calories, in.ProteinG, in.SodiumMg)
	if err != nil {
		return 0, storageErr("insert favorite food", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("resolve favorite food id", err)
	}
	return id, nil
}

// FavoriteFoods lists a user's saved templates, name ascending.
func FavoriteFoods(db *sql.DB, userID int64) ([]model.FavoriteFood, error) {
	rows, err := db.Query(`
SELECT id, user_id, food_name, usda_fdc_id, serving_size, serving_unit, calories, protein_g, sodium_mg
FROM favorite_foods
WHERE user_id = ?
ORDER BY food_name ASC
`, userID)
	if err != nil {
		return nil, storageErr("query favorite foods", err)
	}
	defer rows.Close()

	items := make([]model.FavoriteFood, 0)
	for rows.Next() {
		var f model.FavoriteFood
		if err := rows.Scan(&f.ID, &f.UserID, &f.FoodName, &f.USDAFDCID,
			&f.ServingSize, &f.ServingUnit, &f.Calories, &f.ProteinG, &f.SodiumMg); err != nil {
			return nil, storageErr("scan favorite food", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate favorite foods", err)
	}
	return items, nil
}

// FavoriteFoodByID reads one template; (nil, nil) when absent.
func FavoriteFoodByID(db *sql.DB, id int64) (*model.FavoriteFood, error) {
	var f model.FavoriteFood
	err := db.QueryRow(`
SELECT id, user_id, food_name, usda_fdc_id, serving_size, serving_unit, calories, protein_g, sodium_mg
FROM favorite_foods
WHERE id = ?
`, id).Scan(&f.ID, &f.UserID, &f.FoodName, &f.USDAFDCID,
		&f.ServingSize, &f.ServingUnit, &f.Calories, &f.ProteinG, &f.SodiumMg)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(fmt.Sprintf("read favorite food %d", id), err)
	}
	return &f, nil
}

// DeleteFavoriteFood removes a template; absent ids are a no-op.
func DeleteFavoriteFood(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("favorite food id must be > 0")
	}
	if _, err := db.Exec(`DELETE FROM favorite_foods WHERE id = ?`, id); err != nil {
		return storageErr(fmt.Sprintf("delete favorite food %d", id), err)
	}
	return nil
}

// LogFavoriteFood re-adds a saved template as a food log entry for a
// date and meal, copying the frozen nutrient snapshot.
func LogFavoriteFood(db *sql.DB, favoriteID int64, date, mealType string) (int64, error) {
	fav, err := FavoriteFoodByID(db, favoriteID)
	if err != nil {
		return 0, err
	}
	if fav == nil {
		return 0, fmt.Errorf("favorite food %d not found", favoriteID)
	}
	return CreateFoodLog(db, CreateFoodLogInput{
		UserID:      fav.UserID,
		Date:        date,
		MealType:    mealType,
		FoodName:    fav.FoodName,
		USDAFDCID:   fav.USDAFDCID,
		ServingSize: fav.ServingSize,
		ServingUnit: fav.ServingUnit,
		Calories:    fav.Calories,
		ProteinG:    fav.ProteinG,
		SodiumMg:    fav.SodiumMg,
	})
}
