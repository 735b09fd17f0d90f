package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alpine-labs/my-pace/internal/model"
	"github.com/alpine-labs/my-pace/internal/program"
)

type CreateWalkLogInput struct {
	UserID              int64
	Date                string
	DurationSeconds     int
	ProgramWeek         int
	GoalDurationSeconds int
	Notes               string
}

type UpdateWalkLogInput struct {
	DurationSeconds *int
	Notes           *string
}

// CreateWalkLog records one completed walk. ProgramWeek is a frozen
// snapshot of the program position at recording time, not a live
// reference, and must already be within the program bounds.
func CreateWalkLog(db *sql.DB, in CreateWalkLogInput) (int64, error) {
	date, err := validateDate(in.Date)
	if err != nil {
		return 0, err
	}
	if in.DurationSeconds <= 0 {
		return 0, fmt.Errorf("walk duration must be > 0 seconds")
	}
	if in.ProgramWeek < 1 || in.ProgramWeek > program.TotalWeeks {
		return 0, fmt.Errorf("program week must be within [1, %d]", program.TotalWeeks)
	}
	if err := validateNonNegativeInt("goal duration", in.GoalDurationSeconds); err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO walk_log(user_id, date, duration_seconds, program_week, goal_duration_seconds, notes)
VALUES(?, ?, ?, ?, ?, ?)
`, in.UserID, date, in.DurationSeconds, in.ProgramWeek, in.GoalDurationSeconds, nullableString(in.Notes))
	if err != nil {
		return 0, storageErr("insert walk log", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("resolve walk log id", err)
	}
	return id, nil
}

// RecordFinishedWalk persists a stopped walk timer: it resolves the
// user's current program week and that week's goal, then inserts the
// log row dated at now's calendar date. A zero duration records nothing
// and returns 0.
func RecordFinishedWalk(db *sql.DB, user *model.User, durationSeconds int, now time.Time) (int64, error) {
	if durationSeconds <= 0 {
		return 0, nil
	}
	week := 1
	if user.WalkingProgramStartDate != "" {
		w, err := program.CurrentWeek(user.WalkingProgramStartDate, now)
		if err != nil {
			return 0, err
		}
		week = w
	}
	goalSeconds := program.DailyGoalMinutes(week) * 60
	return CreateWalkLog(db, CreateWalkLogInput{
		UserID:              user.ID,
		Date:                now.Format(dateLayout),
		DurationSeconds:     durationSeconds,
		ProgramWeek:         week,
		GoalDurationSeconds: goalSeconds,
	})
}

// WalkLogsByDate returns the day's walks, newest-created first.
func WalkLogsByDate(db *sql.DB, date string) ([]model.WalkLogEntry, error) {
	date, err := validateDate(date)
	if err != nil {
		return nil, err
	}
	return queryWalkLogs(db, `WHERE date = ? ORDER BY created_at DESC, id DESC`, date)
}

func AllWalkLogs(db *sql.DB) ([]model.WalkLogEntry, error) {
	return queryWalkLogs(db, `ORDER BY date DESC, created_at DESC, id DESC`)
}

// WalkLogsByProgramWeek returns walks whose frozen week snapshot equals
// week, for progress reporting.
func WalkLogsByProgramWeek(db *sql.DB, week int) ([]model.WalkLogEntry, error) {
	return queryWalkLogs(db, `WHERE program_week = ? ORDER BY date ASC, id ASC`, week)
}

// DeleteWalkLog removes a walk by id; absent ids are a no-op.
func DeleteWalkLog(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("walk log id must be > 0")
	}
	if _, err := db.Exec(`DELETE FROM walk_log WHERE id = ?`, id); err != nil {
		return storageErr(fmt.Sprintf("delete walk log %d", id), err)
	}
	return nil
}

func UpdateWalkLog(db *sql.DB, id int64, in UpdateWalkLogInput) error {
	if id <= 0 {
		return fmt.Errorf("walk log id must be > 0")
	}

	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if in.DurationSeconds != nil {
		if *in.DurationSeconds <= 0 {
			return fmt.Errorf("walk duration must be > 0 seconds")
		}
		sets = append(sets, "duration_seconds = ?")
		args = append(args, *in.DurationSeconds)
	}
	if in.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, nullableString(*in.Notes))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE walk_log SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := db.Exec(query, args...); err != nil {
		return storageErr(fmt.Sprintf("update walk log %d", id), err)
	}
	return nil
}

func queryWalkLogs(db *sql.DB, clause string, args ...any) ([]model.WalkLogEntry, error) {
	rows, err := db.Query(`
SELECT id, user_id, date, duration_seconds, program_week, goal_duration_seconds, IFNULL(notes, ''), created_at
FROM walk_log `+clause, args...)
	if err != nil {
		return nil, storageErr("query walk log", err)
	}
	defer rows.Close()

	entries := make([]model.WalkLogEntry, 0)
	for rows.Next() {
		var e model.WalkLogEntry
		var createdAtRaw string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.DurationSeconds, &e.ProgramWeek,
			&e.GoalDurationSeconds, &e.Notes, &createdAtRaw); err != nil {
			return nil, storageErr("scan walk log", err)
		}
		createdAt, err := scanTimestamp(createdAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for walk log %d: %w", e.ID, err)
		}
		e.CreatedAt = createdAt
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate walk log", err)
	}
	return entries, nil
}
