package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

// validateDate checks the immutable calendar-date form used by every
// log row: YYYY-MM-DD, no time, no zone.
func validateDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if _, err := time.ParseInLocation(dateLayout, value, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return value, nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func scanTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q", raw)
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func scanNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
