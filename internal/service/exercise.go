package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alpine-labs/my-pace/internal/model"
)

type CreateExerciseLogInput struct {
	UserID          int64
	Date            string
	ExerciseID      string
	ExerciseName    string
	Sets            *int
	Reps            *int
	DurationSeconds *int
	Notes           string
}

// UpdateExerciseLogInput patches only non-nil fields; the date stays
// immutable.
type UpdateExerciseLogInput struct {
	ExerciseName    *string
	Sets            *int
	Reps            *int
	DurationSeconds *int
	Notes           *string
}

// CreateExerciseLog records one performed exercise. The exercise name is
// a denormalized copy so the log survives catalog edits and deletions.
func CreateExerciseLog(db *sql.DB, in CreateExerciseLogInput) (int64, error) {
	date, err := validateDate(in.Date)
	if err != nil {
		return 0, err
	}
	in.ExerciseName = strings.TrimSpace(in.ExerciseName)
	if in.ExerciseName == "" {
		return 0, fmt.Errorf("exercise name is required")
	}
	if in.Sets != nil && *in.Sets <= 0 {
		return 0, fmt.Errorf("sets must be > 0")
	}
	if in.Reps != nil && *in.Reps <= 0 {
		return 0, fmt.Errorf("reps must be > 0")
	}
	if in.DurationSeconds != nil && *in.DurationSeconds <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}

	res, err := db.Exec(`
INSERT INTO exercise_log(user_id, date, exercise_id, exercise_name, sets, reps, duration_seconds, notes)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, in.UserID, date, strings.TrimSpace(in.ExerciseID), in.ExerciseName,
		nullableInt(in.Sets), nullableInt(in.Reps), nullableInt(in.DurationSeconds), nullableString(in.Notes))
	if err != nil {
		return 0, storageErr("insert exercise log", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("resolve exercise log id", err)
	}
	return id, nil
}

// ExerciseLogsByDate returns the day's entries, newest-created first.
func ExerciseLogsByDate(db *sql.DB, date string) ([]model.ExerciseLogEntry, error) {
	date, err := validateDate(date)
	if err != nil {
		return nil, err
	}
	return queryExerciseLogs(db, `WHERE date = ? ORDER BY created_at DESC, id DESC`, date)
}

func AllExerciseLogs(db *sql.DB) ([]model.ExerciseLogEntry, error) {
	return queryExerciseLogs(db, `ORDER BY date DESC, created_at DESC, id DESC`)
}

// DeleteExerciseLog removes an entry by id; absent ids are a no-op.
func DeleteExerciseLog(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("exercise log id must be > 0")
	}
	if _, err := db.Exec(`DELETE FROM exercise_log WHERE id = ?`, id); err != nil {
		return storageErr(fmt.Sprintf("delete exercise log %d", id), err)
	}
	return nil
}

func UpdateExerciseLog(db *sql.DB, id int64, in UpdateExerciseLogInput) error {
	if id <= 0 {
		return fmt.Errorf("exercise log id must be > 0")
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	appendSet := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if in.ExerciseName != nil {
		name := strings.TrimSpace(*in.ExerciseName)
		if name == "" {
			return fmt.Errorf("exercise name is required")
		}
		appendSet("exercise_name", name)
	}
	if in.Sets != nil {
		if *in.Sets <= 0 {
			return fmt.Errorf("sets must be > 0")
		}
		appendSet("sets", *in.Sets)
	}
	if in.Reps != nil {
		if *in.Reps <= 0 {
			return fmt.Errorf("reps must be > 0")
		}
		appendSet("reps", *in.Reps)
	}
	if in.DurationSeconds != nil {
		if *in.DurationSeconds <= 0 {
			return fmt.Errorf("duration must be > 0")
		}
		appendSet("duration_seconds", *in.DurationSeconds)
	}
	if in.Notes != nil {
		appendSet("notes", nullableString(*in.Notes))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE exercise_log SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := db.Exec(query, args...); err != nil {
		return storageErr(fmt.Sprintf("update exercise log %d", id), err)
	}
	return nil
}

func queryExerciseLogs(db *sql.DB, clause string, args ...any) ([]model.ExerciseLogEntry, error) {
	rows, err := db.Query(`
SELECT id, user_id, date, exercise_id, exercise_name, sets, reps, duration_seconds, IFNULL(notes, ''), created_at
FROM exercise_log `+clause, args...)
	if err != nil {
		return nil, storageErr("query exercise log", err)
	}
	defer rows.Close()

	entries := make([]model.ExerciseLogEntry, 0)
	for rows.Next() {
		var e model.ExerciseLogEntry
		var sets, reps, duration sql.NullInt64
		var createdAtRaw string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.ExerciseID, &e.ExerciseName,
			&sets, &reps, &duration, &e.Notes, &createdAtRaw); err != nil {
			return nil, storageErr("scan exercise log", err)
		}
		e.Sets = scanNullInt(sets)
		e.Reps = scanNullInt(reps)
		e.DurationSeconds = scanNullInt(duration)
		createdAt, err := scanTimestamp(createdAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for exercise log %d: %w", e.ID, err)
		}
		e.CreatedAt = createdAt
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate exercise log", err)
	}
	return entries, nil
}
