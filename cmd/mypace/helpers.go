package mypace

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alpine-labs/my-pace/internal/app"
	"github.com/alpine-labs/my-pace/internal/db"
)

const dateLayout = "2006-01-02"

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// resolveDate defaults an empty flag to today's local calendar date.
func resolveDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.ParseInLocation(dateLayout, value, time.Local); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

// parseGoalValue implements the soft-fail policy for goal input:
// non-numeric or negative text keeps the previous value and warns
// rather than blocking the save.
func parseGoalValue(name, value string, previous int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return previous
	}
	v, err := strconv.Atoi(value)
	if err != nil || v < 0 {
		customLog.Warnf("Invalid %s %q, keeping %d", name, value, previous)
		return previous
	}
	return v
}
