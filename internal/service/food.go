package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alpine-labs/my-pace/internal/model"
)

type CreateFoodLogInput struct {
	UserID      int64
	Date        string
	MealType    string
	FoodName    string
	USDAFDCID   string
	ServingSize float64
	ServingUnit string
	Calories    float64
	ProteinG    float64
	SodiumMg    float64
}

// UpdateFoodLogInput patches only non-nil fields. The entry date is
// immutable and deliberately absent.
type UpdateFoodLogInput struct {
	MealType    *string
	FoodName    *string
	ServingSize *float64
	ServingUnit *string
	Calories    *float64
	ProteinG    *float64
	SodiumMg    *float64
}

func CreateFoodLog(db *sql.DB, in CreateFoodLogInput) (int64, error) {
	date, err := validateDate(in.Date)
	if err != nil {
		return 0, err
	}
	in.FoodName = strings.TrimSpace(in.FoodName)
	if in.FoodName == "" {
		return 0, fmt.Errorf("food name is required")
	}
	in.MealType = normalizeName(in.MealType)
	if in.MealType == "" {
		return 0, fmt.Errorf("meal type is required")
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
INSERT INTO food_log(user_id, date, meal_type, food_name, usda_fdc_id, serving_size, serving_unit, calories, protein_g, sodium_mg)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, in.UserID, date, in.MealType, in.FoodName, strings.TrimSpace(in.USDAFDCID),
		in.ServingSize, strings.TrimSpace(in.ServingUnit), in.Calories, in.ProteinG, in.SodiumMg)
	if err != nil {
		return 0, storageErr("insert food log", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("resolve food log id", err)
	}
	return id, nil
}

// FoodLogsByDate returns the day's entries, newest-created first.
func FoodLogsByDate(db *sql.DB, date string) ([]model.FoodLogEntry, error) {
	date, err := validateDate(date)
	if err != nil {
		return nil, err
	}
	return queryFoodLogs(db, `WHERE date = ? ORDER BY created_at DESC, id DESC`, date)
}

// AllFoodLogs returns every entry, date descending then creation
// descending.
func AllFoodLogs(db *sql.DB) ([]model.FoodLogEntry, error) {
	return queryFoodLogs(db, `ORDER BY date DESC, created_at DESC, id DESC`)
}

// DeleteFoodLog removes an entry by id. Deleting an absent id is a
// no-op.
func DeleteFoodLog(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("food log id must be > 0")
	}
	if _, err := db.Exec(`DELETE FROM food_log WHERE id = ?`, id); err != nil {
		return storageErr(fmt.Sprintf("delete food log %d", id), err)
	}
	return nil
}

func UpdateFoodLog(db *sql.DB, id int64, in UpdateFoodLogInput) error {
	if id <= 0 {
		return fmt.Errorf("food log id must be > 0")
	}

	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	appendSet := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if in.MealType != nil {
		meal := normalizeName(*in.MealType)
		if meal == "" {
			return fmt.Errorf("meal type is required")
		}
		appendSet("meal_type", meal)
	}
	if in.FoodName != nil {
		name := strings.TrimSpace(*in.FoodName)
		if name == "" {
			return fmt.Errorf("food name is required")
		}
		appendSet("food_name", name)
	}
	if in.ServingSize != nil {
		if err := validateNonNegativeFloat("serving size", *in.ServingSize); err != nil {
			return err
		}
		appendSet("serving_size", *in.ServingSize)
	}
	if in.ServingUnit != nil {
		appendSet("serving_unit", strings.TrimSpace(*in.ServingUnit))
	}
	if in.Calories != nil {
		if err := validateNonNegativeFloat("calories", *in.Calories); err != nil {
			return err
		}
		appendSet("calories", *in.Calories)
	}
	if in.ProteinG != nil {
		if err := validateNonNegativeFloat("protein", *in.ProteinG); err != nil {
			return err
		}
		appendSet("protein_g", *in.ProteinG)
	}
	if in.SodiumMg != nil {
		if err := validateNonNegativeFloat("sodium", *in.SodiumMg); err != nil {
			return err
		}
		appendSet("sodium_mg", *in.SodiumMg)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE food_log SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := db.Exec(query, args...); err != nil {
		return storageErr(fmt.Sprintf("update food log %d", id), err)
	}
	return nil
}

func queryFoodLogs(db *sql.DB, clause string, args ...any) ([]model.FoodLogEntry, error) {
	rows, err := db.Query(`
SELECT id, user_id, date, meal_type, food_name, usda_fdc_id, serving_size, serving_unit, calories, protein_g, sodium_mg, created_at
FROM food_log `+clause, args...)
	if err != nil {
		return nil, storageErr("query food log", err)
	}
	defer rows.Close()

	entries := make([]model.FoodLogEntry, 0)
	for rows.Next() {
		var e model.FoodLogEntry
		var createdAtRaw string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.MealType, &e.FoodName, &e.USDAFDCID,
			&e.ServingSize, &e.ServingUnit, &e.Calories, &e.ProteinG, &e.SodiumMg, &createdAtRaw); err != nil {
			return nil, storageErr("scan food log", err)
		}
		createdAt, err := scanTimestamp(createdAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for food log %d: %w", e.ID, err)
		}
		e.CreatedAt = createdAt
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate food log", err)
	}
	return entries, nil
}
