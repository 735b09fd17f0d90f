package mypace

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/config"
	"github.com/alpine-labs/my-pace/internal/service"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the external food and exercise databases",
}

var (
	searchAdd    int
	searchSave   int
	searchShow   int
	searchImport int
	searchDate   string
	searchMeal   string
	searchAPIKey string
)

const searchTimeout = 15 * time.Second

var searchFoodCmd = &cobra.Command{
	Use:   "food <query>",
	Short: "Search USDA FoodData Central",
	Long:  "Searches the USDA FoodData Central database. Use --add N to log result N for a date, or --save N to keep it as a favorite template.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			apiKey := searchAPIKey
			if apiKey == "" {
				apiKey = config.ResolveUSDAAPIKey(user.USDAAPIKey)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), searchTimeout)
			defer cancel()

			results, err := service.SearchFoods(ctx, apiKey, query, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No foods found for %q\n", query)
				return nil
			}

			for i, r := range results {
				brand := ""
				if r.BrandOwner != "" {
					brand = "  (" + r.BrandOwner + ")"
				}
				fmt.Fprintf(out, "%2d  %s%s  %.0f kcal  %.1fg protein  %.0fmg sodium\n",
					i+1, r.Description, brand, r.Calories, r.ProteinG, r.SodiumMg)
			}

			if searchShow > 0 {
				if searchShow > len(results) {
					return fmt.Errorf("--show %d is out of range (%d results)", searchShow, len(results))
				}
				detail, err := service.FoodDetails(ctx, apiKey, results[searchShow-1].FDCID, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s (FDC %s)\n", detail.Description, detail.FDCID)
				if detail.ServingSize > 0 {
					fmt.Fprintf(out, "Serving: %.0f %s\n", detail.ServingSize, detail.ServingUnit)
				}
				fmt.Fprintf(out, "Calories: %.0f kcal\nProtein: %.1f g\nSodium: %.0f mg\n",
					detail.Calories, detail.ProteinG, detail.SodiumMg)
			}

			if searchAdd > 0 {
				if searchAdd > len(results) {
					return fmt.Errorf("--add %d is out of range (%d results)", searchAdd, len(results))
				}
				date, err := resolveDate(searchDate)
				if err != nil {
					return err
				}
				id, err := service.LogFoodSearchResult(sqldb, user.ID, results[searchAdd-1], date, searchMeal)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Logged food entry %d for %s\n", id, date)
				return printDayTotals(cmd, sqldb, date)
			}
			if searchSave > 0 {
				if searchSave > len(results) {
					return fmt.Errorf("--save %d is out of range (%d results)", searchSave, len(results))
				}
				id, err := service.SaveFoodSearchResult(sqldb, user.ID, results[searchSave-1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved favorite %d\n", id)
			}
			return nil
		})
	},
}

var searchExerciseCmd = &cobra.Command{
	Use:   "exercise <term>",
	Short: "Search the wger exercise database",
	Long:  "Searches wger.de for exercises. Use --import N to add result N to the local catalog.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), searchTimeout)
			defer cancel()

			results, err := service.SearchExercises(ctx, term, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No exercises found for %q\n", term)
				return nil
			}

			for i, r := range results {
				fmt.Fprintf(out, "%2d  %-32s %s\n", i+1, r.Name, r.Category)
			}

			if searchImport > 0 {
				if searchImport > len(results) {
					return fmt.Errorf("--import %d is out of range (%d results)", searchImport, len(results))
				}
				chosen := results[searchImport-1]
				id, err := service.ImportExerciseSearchResult(sqldb, chosen)
				if err != nil {
					return err
				}
				// The description lives on a separate endpoint; a failed
				// fetch still leaves a usable catalog entry.
				detail, derr := service.ExerciseDetails(ctx, chosen.ExternalID, nil)
				if derr != nil {
					customLog.Warnf("Fetching exercise description failed: %v", derr)
				} else if detail.Description != "" {
					desc := detail.Description
					if err := service.UpdateExercise(sqldb, id, service.UpdateExerciseInput{Description: &desc}); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "Imported into the catalog as %s\n", id)
			}
			return nil
		})
	},
}

func init() {
	searchFoodCmd.Flags().IntVar(&searchAdd, "add", 0, "Log result N as a food entry")
	searchFoodCmd.Flags().IntVar(&searchSave, "save", 0, "Save result N as a favorite")
	searchFoodCmd.Flags().IntVar(&searchShow, "show", 0, "Show the full record for result N")
	searchFoodCmd.Flags().StringVar(&searchDate, "date", "", "Date for --add (YYYY-MM-DD), defaults to today")
	searchFoodCmd.Flags().StringVar(&searchMeal, "meal", "snack", "Meal type for --add")
	searchFoodCmd.Flags().StringVar(&searchAPIKey, "api-key", "", "Override the USDA API key")

	searchExerciseCmd.Flags().IntVar(&searchImport, "import", 0, "Import result N into the catalog")

	searchCmd.AddCommand(searchFoodCmd)
	searchCmd.AddCommand(searchExerciseCmd)
	rootCmd.AddCommand(searchCmd)
}
