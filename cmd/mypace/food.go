package mypace

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and review food intake",
}

var (
	foodDate    string
	foodMeal    string
	foodKcal    float64
	foodProtein float64
	foodSodium  float64
	foodServing float64
	foodUnit    string
)

var foodAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Log a food item for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(foodDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			id, err := service.CreateFoodLog(sqldb, service.CreateFoodLogInput{
				UserID:      user.ID,
				Date:        date,
				MealType:    foodMeal,
				FoodName:    args[0],
				ServingSize: foodServing,
				ServingUnit: foodUnit,
				Calories:    foodKcal,
				ProteinG:    foodProtein,
				SodiumMg:    foodSodium,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged food entry %d for %s\n", id, date)
			return printDayTotals(cmd, sqldb, date)
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food entries for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(foodDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.FoodLogsByDate(sqldb, date)
			if err != nil {
				// A failed read degrades to an empty listing; the user
				// can retry, nothing is lost.
				if service.IsStorageError(err) {
					customLog.Warnf("Listing food log failed: %v", err)
					entries = nil
				} else {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No food logged for %s\n", date)
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%d  [%s]  %s  %.0f kcal  %.1fg protein  %.0fmg sodium\n",
					e.ID, e.MealType, e.FoodName, e.Calories, e.ProteinG, e.SodiumMg)
			}
			return printDayTotals(cmd, sqldb, date)
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("food entry id", args[0])
		if err != nil {
			return err
		}
		date, err := resolveDate(foodDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteFoodLog(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food entry %d\n", id)
			return printDayTotals(cmd, sqldb, date)
		})
	},
}

// printDayTotals renders the running totals bar shown after every
// food insert or delete for the working date.
func printDayTotals(cmd *cobra.Command, sqldb *sql.DB, date string) error {
	summary, err := service.DailySummary(sqldb, date)
	if err != nil {
		if service.IsStorageError(err) {
			customLog.Warnf("Computing day totals failed: %v", err)
			return nil
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Totals for %s: %.0f kcal, %.1fg protein, %.0fmg sodium\n",
		date, summary.TotalCalories, summary.TotalProtein, summary.TotalSodium)
	return nil
}

func init() {
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	foodAddCmd.Flags().StringVar(&foodMeal, "meal", "snack", "Meal type (breakfast, lunch, dinner, snack)")
	foodAddCmd.Flags().Float64Var(&foodKcal, "calories", 0, "Calories (kcal)")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein (g)")
	foodAddCmd.Flags().Float64Var(&foodSodium, "sodium", 0, "Sodium (mg)")
	foodAddCmd.Flags().Float64Var(&foodServing, "serving", 0, "Serving size")
	foodAddCmd.Flags().StringVar(&foodUnit, "unit", "", "Serving unit")

	foodListCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	foodDeleteCmd.Flags().StringVar(&foodDate, "date", "", "Date whose totals to print after deleting")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	rootCmd.AddCommand(foodCmd)
}
