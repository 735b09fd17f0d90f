package service

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/alpine-labs/my-pace/internal/model"
)

// Catalog source tags.
const (
	SourceDefault = "default"
	SourceCustom  = "custom"
	SourceWger    = "wger"
)

type CreateCustomExerciseInput struct {
	Name            string
	Description     string
	Instructions    string
	Category        string
	DifficultyLevel string
}

type UpdateExerciseInput struct {
	Name            *string
	Description     *string
	Instructions    *string
	Category        *string
	ImageURI        *string
	DifficultyLevel *string
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// UpsertExercise inserts or replaces a catalog row by id. Used for
// seeding replacements and for importing accepted wger search results.
func UpsertExercise(db *sql.DB, ex model.Exercise) error {
	ex.ID = strings.TrimSpace(ex.ID)
	if ex.ID == "" {
		return fmt.Errorf("exercise id is required")
	}
	ex.Name = strings.TrimSpace(ex.Name)
	if ex.Name == "" {
		return fmt.Errorf("exercise name is required")
	}
	if strings.TrimSpace(ex.Source) == "" {
		ex.Source = SourceCustom
	}
	if _, err := db.Exec(`
INSERT OR REPLACE INTO exercise_catalog(id, name, description, instructions, category, image_uri, difficulty_level, source)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, ex.ID, ex.Name, ex.Description, ex.Instructions, normalizeName(ex.Category),
		strings.TrimSpace(ex.ImageURI), normalizeName(ex.DifficultyLevel), ex.Source); err != nil {
		return storageErr(fmt.Sprintf("upsert exercise %s", ex.ID), err)
	}
	return nil
}

// CreateCustomExercise adds a user-defined exercise under a generated
// custom-* id and returns that id.
func CreateCustomExercise(db *sql.DB, in CreateCustomExerciseInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", fmt.Errorf("exercise name is required")
	}
	id := "custom-" + slugify(name)
	var exists int
	err := db.QueryRow(`SELECT 1 FROM exercise_catalog WHERE id = ?`, id).Scan(&exists)
	if err == nil {
		return "", fmt.Errorf("exercise %q already exists in the catalog", id)
	}
	if err != sql.ErrNoRows {
		return "", storageErr(fmt.Sprintf("check exercise %s", id), err)
	}

	category := normalizeName(in.Category)
	if category == "" {
		category = "strength"
	}
	difficulty := normalizeName(in.DifficultyLevel)
	if difficulty == "" {
		difficulty = "beginner"
	}
	if err := UpsertExercise(db, model.Exercise{
		ID:              id,
		Name:            name,
		Description:     strings.TrimSpace(in.Description),
		Instructions:    strings.TrimSpace(in.Instructions),
		Category:        category,
		DifficultyLevel: difficulty,
		Source:          SourceCustom,
	}); err != nil {
		return "", err
	}
	return id, nil
}

// Exercises returns the whole catalog, name ascending.
func Exercises(db *sql.DB) ([]model.Exercise, error) {
	return queryExercises(db, `ORDER BY name ASC`)
}

// ExercisesByCategory filters the catalog by category, name ascending.
func ExercisesByCategory(db *sql.DB, category string) ([]model.Exercise, error) {
	category = normalizeName(category)
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	return queryExercises(db, `WHERE category = ? ORDER BY name ASC`, category)
}

// ExerciseByID reads one catalog row; (nil, nil) when absent.
func ExerciseByID(db *sql.DB, id string) (*model.Exercise, error) {
	items, err := queryExercises(db, `WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// DeleteExercise removes a catalog row; absent ids are a no-op.
// Exercise logs keep their denormalized names.
func DeleteExercise(db *sql.DB, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("exercise id is required")
	}
	if _, err := db.Exec(`DELETE FROM exercise_catalog WHERE id = ?`, id); err != nil {
		return storageErr(fmt.Sprintf("delete exercise %s", id), err)
	}
	return nil
}

func UpdateExercise(db *sql.DB, id string, in UpdateExerciseInput) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("exercise id is required")
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	appendSet := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fmt.Errorf("exercise name is required")
		}
		appendSet("name", name)
	}
	if in.Description != nil {
		appendSet("description", strings.TrimSpace(*in.Description))
	}
	if in.Instructions != nil {
		appendSet("instructions", strings.TrimSpace(*in.Instructions))
	}
	if in.Category != nil {
		appendSet("category", normalizeName(*in.Category))
	}
	if in.ImageURI != nil {
		appendSet("image_uri", strings.TrimSpace(*in.ImageURI))
	}
	if in.DifficultyLevel != nil {
		appendSet("difficulty_level", normalizeName(*in.DifficultyLevel))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE exercise_catalog SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := db.Exec(query, args...); err != nil {
		return storageErr(fmt.Sprintf("update exercise %s", id), err)
	}
	return nil
}

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		// Names with no sluggable characters still need a stable id.
		slug = uuid.NewString()[:8]
	}
	return slug
}

func queryExercises(db *sql.DB, clause string, args ...any) ([]model.Exercise, error) {
	rows, err := db.Query(`
SELECT id, name, description, instructions, category, image_uri, difficulty_level, source
FROM exercise_catalog `+clause, args...)
	if err != nil {
		return nil, storageErr("query exercise catalog", err)
	}
	defer rows.Close()

	items := make([]model.Exercise, 0)
	for rows.Next() {
		var ex model.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.Instructions,
			&ex.Category, &ex.ImageURI, &ex.DifficultyLevel, &ex.Source); err != nil {
			return nil, storageErr("scan exercise catalog", err)
		}
		items = append(items, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate exercise catalog", err)
	}
	return items, nil
}
