package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alpine-labs/my-pace/internal/model"
)

// Profile defaults applied when the singleton user row is created.
const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 50
	DefaultSodiumGoal  = 2300
	DefaultTheme       = "light"
)

// UpdateUserInput patches only the fields whose pointers are non-nil.
// An input with no fields set is a no-op.
type UpdateUserInput struct {
	Name                    *string
	CalorieGoal             *int
	ProteinGoal             *int
	SodiumGoal              *int
	WalkingProgramStartDate *string
	WalkingProgramWeek      *int
	ThemePreference         *string
	NotificationsEnabled    *bool
	USDAAPIKey              *string
}

// GetOrCreateUser reads the singleton profile row, inserting it with
// defaults on first call.
func GetOrCreateUser(db *sql.DB) (*model.User, error) {
	user, err := readUser(db)
	if err == nil {
		return user, nil
	}
	if err != sql.ErrNoRows {
		return nil, storageErr("read user", err)
	}

	if _, err := db.Exec(`
INSERT INTO users(name, calorie_goal, protein_goal, sodium_goal, theme_preference, notifications_enabled)
VALUES('', ?, ?, ?, ?, 1)
`, DefaultCalorieGoal, DefaultProteinGoal, DefaultSodiumGoal, DefaultTheme); err != nil {
		return nil, storageErr("create user", err)
	}

	user, err = readUser(db)
	if err != nil {
		return nil, storageErr("read created user", err)
	}
	return user, nil
}

// UpdateUser applies the supplied fields to the singleton profile row.
func UpdateUser(db *sql.DB, id int64, in UpdateUserInput) error {
	if id <= 0 {
		return fmt.Errorf("user id must be > 0")
	}

	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)
	appendSet := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if in.Name != nil {
		appendSet("name", strings.TrimSpace(*in.Name))
	}
	if in.CalorieGoal != nil {
		if err := validateNonNegativeInt("calorie goal", *in.CalorieGoal); err != nil {
			return err
		}
		appendSet("calorie_goal", *in.CalorieGoal)
	}
	if in.ProteinGoal != nil {
		if err := validateNonNegativeInt("protein goal", *in.ProteinGoal); err != nil {
			return err
		}
		appendSet("protein_goal", *in.ProteinGoal)
	}
	if in.SodiumGoal != nil {
		if err := validateNonNegativeInt("sodium goal", *in.SodiumGoal); err != nil {
			return err
		}
		appendSet("sodium_goal", *in.SodiumGoal)
	}
	if in.WalkingProgramStartDate != nil {
		date, err := validateDate(*in.WalkingProgramStartDate)
		if err != nil {
			return err
		}
		appendSet("walking_program_start_date", date)
	}
	if in.WalkingProgramWeek != nil {
		appendSet("walking_program_week", *in.WalkingProgramWeek)
	}
	if in.ThemePreference != nil {
		theme := normalizeName(*in.ThemePreference)
		if theme != "light" && theme != "dark" {
			return fmt.Errorf("theme must be light or dark")
		}
		appendSet("theme_preference", theme)
	}
	if in.NotificationsEnabled != nil {
		enabled := 0
		if *in.NotificationsEnabled {
			enabled = 1
		}
		appendSet("notifications_enabled", enabled)
	}
	if in.USDAAPIKey != nil {
		appendSet("usda_api_key", strings.TrimSpace(*in.USDAAPIKey))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := db.Exec(query, args...); err != nil {
		return storageErr(fmt.Sprintf("update user %d", id), err)
	}
	return nil
}

// ResetWalkingProgram moves the program start date to today (week 1).
// Historical walk logs keep their frozen week snapshots.
func ResetWalkingProgram(db *sql.DB, id int64, today string) error {
	date, err := validateDate(today)
	if err != nil {
		return err
	}
	week := 1
	return UpdateUser(db, id, UpdateUserInput{
		WalkingProgramStartDate: &date,
		WalkingProgramWeek:      &week,
	})
}

func readUser(db *sql.DB) (*model.User, error) {
	var u model.User
	var startDate sql.NullString
	var notifications int
	var createdAtRaw string
	err := db.QueryRow(`
SELECT id, name, calorie_goal, protein_goal, sodium_goal,
       walking_program_start_date, walking_program_week,
       theme_preference, notifications_enabled, usda_api_key, created_at
FROM users
ORDER BY id ASC
LIMIT 1
`).Scan(&u.ID, &u.Name, &u.CalorieGoal, &u.ProteinGoal, &u.SodiumGoal,
		&startDate, &u.WalkingProgramWeek,
		&u.ThemePreference, &notifications, &u.USDAAPIKey, &createdAtRaw)
	if err != nil {
		return nil, err
	}
	if startDate.Valid {
		u.WalkingProgramStartDate = startDate.String
	}
	u.NotificationsEnabled = notifications != 0
	createdAt, err := scanTimestamp(createdAtRaw)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for user %d: %w", u.ID, err)
	}
	u.CreatedAt = createdAt
	return &u, nil
}
