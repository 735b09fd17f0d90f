package mypace

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/program"
	"github.com/alpine-labs/my-pace/internal/service"
)

var (
	summaryDate string
	summaryJSON bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show daily totals for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(summaryDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			summary, err := service.DailySummary(sqldb, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if summaryJSON {
				b, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal summary json: %w", err)
				}
				fmt.Fprintln(out, string(b))
				return nil
			}
			fmt.Fprintf(out, "Summary for %s\n", date)
			fmt.Fprintf(out, "Calories: %.0f kcal\n", summary.TotalCalories)
			fmt.Fprintf(out, "Protein: %.1f g\n", summary.TotalProtein)
			fmt.Fprintf(out, "Sodium: %.0f mg\n", summary.TotalSodium)
			fmt.Fprintf(out, "Exercises: %d\n", summary.ExerciseCount)
			fmt.Fprintf(out, "Walked: %s\n", program.FormatDuration(summary.TotalWalkSeconds))
			return nil
		})
	},
}

var trendDate string

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the 7-day calorie and walking trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(trendDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			trend, err := service.WeeklyTrend(sqldb, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Week ending %s\n", trend.AnchorDate)
			for i, label := range trend.Labels {
				fmt.Fprintf(out, "%s  %6.0f kcal  %3d walk min\n", label, trend.Calories[i], trend.WalkMinutes[i])
			}
			return nil
		})
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output as JSON")
	trendCmd.Flags().StringVar(&trendDate, "date", "", "Anchor date (YYYY-MM-DD), defaults to today")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(trendCmd)
}
