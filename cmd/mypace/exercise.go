package mypace

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/model"
	"github.com/alpine-labs/my-pace/internal/service"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log exercises and manage the catalog",
}

var (
	exerciseDate     string
	exerciseSets     int
	exerciseReps     int
	exerciseDuration int
	exerciseNotes    string
	exerciseCategory string
)

var exerciseLogCmd = &cobra.Command{
	Use:   "log <catalog-id>",
	Short: "Record a performed exercise for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(exerciseDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			ex, err := service.ExerciseByID(sqldb, args[0])
			if err != nil {
				return err
			}
			if ex == nil {
				return fmt.Errorf("exercise %q not found in the catalog", args[0])
			}

			in := service.CreateExerciseLogInput{
				UserID:       user.ID,
				Date:         date,
				ExerciseID:   ex.ID,
				ExerciseName: ex.Name,
				Notes:        exerciseNotes,
			}
			if cmd.Flags().Changed("sets") {
				in.Sets = &exerciseSets
			}
			if cmd.Flags().Changed("reps") {
				in.Reps = &exerciseReps
			}
			if cmd.Flags().Changed("duration") {
				seconds := exerciseDuration * 60
				in.DurationSeconds = &seconds
			}

			id, err := service.CreateExerciseLog(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (entry %d) for %s\n", ex.Name, id, date)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise entries for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(exerciseDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ExerciseLogsByDate(sqldb, date)
			if err != nil {
				if service.IsStorageError(err) {
					customLog.Warnf("Listing exercise log failed: %v", err)
					entries = nil
				} else {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No exercises logged for %s\n", date)
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%d  %s", e.ID, e.ExerciseName)
				if e.Sets != nil && e.Reps != nil {
					line += fmt.Sprintf("  %dx%d", *e.Sets, *e.Reps)
				}
				if e.DurationSeconds != nil {
					line += fmt.Sprintf("  %d min", *e.DurationSeconds/60)
				}
				if e.Notes != "" {
					line += "  (" + e.Notes + ")"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteExerciseLog(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise entry %d\n", id)
			return nil
		})
	},
}

var exerciseCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			var items []model.Exercise
			var err error
			if exerciseCategory != "" {
				items, err = service.ExercisesByCategory(sqldb, exerciseCategory)
			} else {
				items, err = service.Exercises(sqldb)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Catalog is empty")
				return nil
			}
			for _, ex := range items {
				fmt.Fprintf(out, "%-24s %-12s %-12s %s\n", ex.ID, ex.Category, ex.DifficultyLevel, ex.Name)
			}
			return nil
		})
	},
}

var (
	customDescription  string
	customInstructions string
	customCategory     string
	customDifficulty   string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateCustomExercise(sqldb, service.CreateCustomExerciseInput{
				Name:            args[0],
				Description:     customDescription,
				Instructions:    customInstructions,
				Category:        customCategory,
				DifficultyLevel: customDifficulty,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to the catalog as %s\n", args[0], id)
			return nil
		})
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <catalog-id>",
	Short: "Show one catalog exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ex, err := service.ExerciseByID(sqldb, args[0])
			if err != nil {
				return err
			}
			if ex == nil {
				return fmt.Errorf("exercise %q not found in the catalog", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", ex.Name, ex.ID)
			fmt.Fprintf(out, "Category: %s  Difficulty: %s  Source: %s\n", ex.Category, ex.DifficultyLevel, ex.Source)
			if ex.Description != "" {
				fmt.Fprintf(out, "\n%s\n", ex.Description)
			}
			if ex.Instructions != "" {
				fmt.Fprintf(out, "\nInstructions: %s\n", ex.Instructions)
			}
			if ex.ImageURI != "" {
				fmt.Fprintf(out, "\nImage: %s\n", ex.ImageURI)
			}
			return nil
		})
	},
}

func init() {
	exerciseLogCmd.Flags().StringVar(&exerciseDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	exerciseLogCmd.Flags().IntVar(&exerciseSets, "sets", 0, "Number of sets")
	exerciseLogCmd.Flags().IntVar(&exerciseReps, "reps", 0, "Reps per set")
	exerciseLogCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
	exerciseLogCmd.Flags().StringVar(&exerciseNotes, "notes", "", "Notes")

	exerciseListCmd.Flags().StringVar(&exerciseDate, "date", "", "Date (YYYY-MM-DD), defaults to today")

	exerciseCatalogCmd.Flags().StringVar(&exerciseCategory, "category", "", "Filter by category")

	exerciseAddCmd.Flags().StringVar(&customCategory, "category", "strength", "Category (strength, cardio, flexibility, balance)")
	exerciseAddCmd.Flags().StringVar(&customDescription, "description", "", "Short description")
	exerciseAddCmd.Flags().StringVar(&customInstructions, "instructions", "", "How to perform the exercise")
	exerciseAddCmd.Flags().StringVar(&customDifficulty, "difficulty", "beginner", "Difficulty (beginner, intermediate, advanced)")

	exerciseCmd.AddCommand(exerciseLogCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	exerciseCmd.AddCommand(exerciseCatalogCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	rootCmd.AddCommand(exerciseCmd)
}
