package mypace

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/service"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage saved food templates",
}

var (
	favoriteDate    string
	favoriteMeal    string
	favoriteKcal    float64
	favoriteProtein float64
	favoriteSodium  float64
	favoriteServing float64
	favoriteUnit    string
)

var favoriteAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Save a food template for quick re-adding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			id, err := service.CreateFavoriteFood(sqldb, service.CreateFavoriteFoodInput{
				UserID:      user.ID,
				FoodName:    args[0],
				ServingSize: favoriteServing,
				ServingUnit: favoriteUnit,
				Calories:    favoriteKcal,
				ProteinG:    favoriteProtein,
				SodiumMg:    favoriteSodium,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved favorite %d: %s\n", id, args[0])
			return nil
		})
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved food templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			items, err := service.FavoriteFoods(sqldb, user.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No favorites saved")
				return nil
			}
			for _, f := range items {
				fmt.Fprintf(out, "%d  %s  %.0f kcal  %.1fg protein  %.0fmg sodium\n",
					f.ID, f.FoodName, f.Calories, f.ProteinG, f.SodiumMg)
			}
			return nil
		})
	},
}

var favoriteLogCmd = &cobra.Command{
	Use:   "log <id>",
	Short: "Log a saved template as today's food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("favorite id", args[0])
		if err != nil {
			return err
		}
		date, err := resolveDate(favoriteDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			entryID, err := service.LogFavoriteFood(sqldb, id, date, favoriteMeal)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged food entry %d for %s\n", entryID, date)
			return printDayTotals(cmd, sqldb, date)
		})
	},
}

var favoriteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved template by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("favorite id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteFavoriteFood(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted favorite %d\n", id)
			return nil
		})
	},
}

func init() {
	favoriteAddCmd.Flags().Float64Var(&favoriteKcal, "calories", 0, "Calories (kcal)")
	favoriteAddCmd.Flags().Float64Var(&favoriteProtein, "protein", 0, "Protein (g)")
	favoriteAddCmd.Flags().Float64Var(&favoriteSodium, "sodium", 0, "Sodium (mg)")
	favoriteAddCmd.Flags().Float64Var(&favoriteServing, "serving", 0, "Serving size")
	favoriteAddCmd.Flags().StringVar(&favoriteUnit, "unit", "", "Serving unit")

	favoriteLogCmd.Flags().StringVar(&favoriteDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	favoriteLogCmd.Flags().StringVar(&favoriteMeal, "meal", "snack", "Meal type")

	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
	favoriteCmd.AddCommand(favoriteLogCmd)
	favoriteCmd.AddCommand(favoriteDeleteCmd)
	rootCmd.AddCommand(favoriteCmd)
}
