package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL DEFAULT '',
  calorie_goal INTEGER NOT NULL DEFAULT 2000 CHECK(calorie_goal >= 0),
  protein_goal INTEGER NOT NULL DEFAULT 50 CHECK(protein_goal >= 0),
  sodium_goal INTEGER NOT NULL DEFAULT 2300 CHECK(sodium_goal >= 0),
  walking_program_start_date TEXT,
  walking_program_week INTEGER NOT NULL DEFAULT 1,
  theme_preference TEXT NOT NULL DEFAULT 'light',
  notifications_enabled INTEGER NOT NULL DEFAULT 1,
  usda_api_key TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS food_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL DEFAULT 0,
  date TEXT NOT NULL,
  meal_type TEXT NOT NULL,
  food_name TEXT NOT NULL,
  usda_fdc_id TEXT NOT NULL DEFAULT '',
  serving_size REAL NOT NULL DEFAULT 0 CHECK(serving_size >= 0),
  serving_unit TEXT NOT NULL DEFAULT '',
  calories REAL NOT NULL DEFAULT 0 CHECK(calories >= 0),
  protein_g REAL NOT NULL DEFAULT 0 CHECK(protein_g >= 0),
  sodium_mg REAL NOT NULL DEFAULT 0 CHECK(sodium_mg >= 0),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_food_log_date ON food_log(date);

CREATE TABLE IF NOT EXISTS exercise_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL DEFAULT 0,
  date TEXT NOT NULL,
  exercise_id TEXT NOT NULL DEFAULT '',
  exercise_name TEXT NOT NULL,
  sets INTEGER CHECK(sets > 0),
  reps INTEGER CHECK(reps > 0),
  duration_seconds INTEGER CHECK(duration_seconds > 0),
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_exercise_log_date ON exercise_log(date);

CREATE TABLE IF NOT EXISTS walk_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL DEFAULT 0,
  date TEXT NOT NULL,
  duration_seconds INTEGER NOT NULL CHECK(duration_seconds > 0),
  program_week INTEGER NOT NULL CHECK(program_week >= 1 AND program_week <= 12),
  goal_duration_seconds INTEGER NOT NULL DEFAULT 0 CHECK(goal_duration_seconds >= 0),
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_walk_log_date ON walk_log(date);
CREATE INDEX IF NOT EXISTS idx_walk_log_program_week ON walk_log(program_week);

CREATE TABLE IF NOT EXISTS exercise_catalog (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  instructions TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT 'strength',
  image_uri TEXT NOT NULL DEFAULT '',
  difficulty_level TEXT NOT NULL DEFAULT 'beginner',
  source TEXT NOT NULL DEFAULT 'custom'
);

CREATE TABLE IF NOT EXISTS favorite_foods (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL DEFAULT 0,
  food_name TEXT NOT NULL,
  usda_fdc_id TEXT NOT NULL DEFAULT '',
  serving_size REAL NOT NULL DEFAULT 0 CHECK(serving_size >= 0),
  serving_unit TEXT NOT NULL DEFAULT '',
  calories REAL NOT NULL DEFAULT 0 CHECK(calories >= 0),
  protein_g REAL NOT NULL DEFAULT 0 CHECK(protein_g >= 0),
  sodium_mg REAL NOT NULL DEFAULT 0 CHECK(sodium_mg >= 0)
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return SeedDefaultExercises(db)
}
