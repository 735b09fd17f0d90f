package service

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/alpine-labs/my-pace/internal/model"
)

// DailySummary derives the day's totals from the three logs without
// touching them: food calories/protein/sodium sums, exercise count, and
// walked seconds. A date with no rows anywhere yields all zeros. The
// computation is a pure read-then-reduce; identical inputs give
// identical results.
func DailySummary(db *sql.DB, date string) (*model.DailySummary, error) {
	date, err := validateDate(date)
	if err != nil {
		return nil, err
	}

	summary := &model.DailySummary{Date: date}
	if err := db.QueryRow(`
SELECT COALESCE(SUM(calories), 0), COALESCE(SUM(protein_g), 0), COALESCE(SUM(sodium_mg), 0)
FROM food_log WHERE date = ?
`, date).Scan(&summary.TotalCalories, &summary.TotalProtein, &summary.TotalSodium); err != nil {
		return nil, storageErr("sum food log", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM exercise_log WHERE date = ?`, date).Scan(&summary.ExerciseCount); err != nil {
		return nil, storageErr("count exercise log", err)
	}
	if err := db.QueryRow(`
SELECT COALESCE(SUM(duration_seconds), 0) FROM walk_log WHERE date = ?
`, date).Scan(&summary.TotalWalkSeconds); err != nil {
		return nil, storageErr("sum walk log", err)
	}
	return summary, nil
}

// WeeklyTrend builds the 7-day series ending at the anchor date
// inclusive, oldest first: per-day calorie totals and per-day walk
// minutes (seconds rounded to whole minutes). Labels are each day's
// real abbreviated weekday; the window may cross month or year
// boundaries, so all stepping goes through calendar-aware arithmetic.
func WeeklyTrend(db *sql.DB, anchorDate string) (*model.WeeklyTrend, error) {
	anchorDate, err := validateDate(anchorDate)
	if err != nil {
		return nil, err
	}
	anchor, err := time.ParseInLocation(dateLayout, anchorDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse anchor date %q: %w", anchorDate, err)
	}

	trend := &model.WeeklyTrend{
		AnchorDate:  anchorDate,
		Labels:      make([]string, 0, 7),
		Calories:    make([]float64, 0, 7),
		WalkMinutes: make([]int, 0, 7),
	}

	for offset := -6; offset <= 0; offset++ {
		day := anchor.AddDate(0, 0, offset)
		date := day.Format(dateLayout)
		trend.Labels = append(trend.Labels, day.Weekday().String()[:3])

		var calories float64
		if err := db.QueryRow(`
SELECT COALESCE(SUM(calories), 0) FROM food_log WHERE date = ?
`, date).Scan(&calories); err != nil {
			return nil, storageErr("sum trend calories", err)
		}
		trend.Calories = append(trend.Calories, calories)

		var walkSeconds int
		if err := db.QueryRow(`
SELECT COALESCE(SUM(duration_seconds), 0) FROM walk_log WHERE date = ?
`, date).Scan(&walkSeconds); err != nil {
			return nil, storageErr("sum trend walk seconds", err)
		}
		trend.WalkMinutes = append(trend.WalkMinutes, int(math.Round(float64(walkSeconds)/60)))
	}

	return trend, nil
}
