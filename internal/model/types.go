package model

import "time"

// User is the singleton profile row. Exactly one exists per installation;
// it is created lazily on first use and updated in place afterwards.
type User struct {
	ID                      int64
	Name                    string
	CalorieGoal             int
	ProteinGoal             int
	SodiumGoal              int
	WalkingProgramStartDate string
	WalkingProgramWeek      int
	ThemePreference         string
	NotificationsEnabled    bool
	USDAAPIKey              string
	CreatedAt               time.Time
}

type FoodLogEntry struct {
	ID          int64
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
	CreatedAt   time.Time
}

type ExerciseLogEntry struct {
	ID              int64
	UserID          int64
	Date            string
	ExerciseID      string
	ExerciseName    string
	Sets            *int
	Reps            *int
	DurationSeconds *int
	Notes           string
	CreatedAt       time.Time
}

type WalkLogEntry struct {
	ID                  int64
	UserID              int64
	Date                string
	DurationSeconds     int
	ProgramWeek         int
	GoalDurationSeconds int
	Notes               string
	CreatedAt           time.Time
}

// Exercise is a catalog row. The id is a string: an ex-* slug for seeded
// defaults, a custom-* slug for user entries, or wger-<baseID> for
// exercises imported from the wger search.
type Exercise struct {
	ID              string
	Name            string
	Description     string
	Instructions    string
	Category        string
	ImageURI        string
	DifficultyLevel string
	Source          string
}

type FavoriteFood struct {
	ID          int64
	UserID      int64
	FoodName    string
	USDAFDCID   string
	ServingSize float64
	ServingUnit string
	Calories    float64
	ProteinG    float64
	SodiumMg    float64
}

type DailySummary struct {
	Date             string  `json:"date"`
	TotalCalories    float64 `json:"total_calories"`
	TotalProtein     float64 `json:"total_protein_g"`
	TotalSodium      float64 `json:"total_sodium_mg"`
	ExerciseCount    int     `json:"exercise_count"`
	TotalWalkSeconds int     `json:"total_walk_seconds"`
}

// WeeklyTrend holds the 7-day window ending at the anchor date, oldest
// day first. Labels carry each day's real abbreviated weekday.
type WeeklyTrend struct {
	AnchorDate  string    `json:"anchor_date"`
	Labels      []string  `json:"labels"`
	Calories    []float64 `json:"calories"`
	WalkMinutes []int     `json:"walk_minutes"`
}
