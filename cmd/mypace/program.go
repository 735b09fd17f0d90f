package mypace

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/program"
	"github.com/alpine-labs/my-pace/internal/service"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Walking program status and controls",
}

var programStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current program week and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if user.WalkingProgramStartDate == "" {
				fmt.Fprintln(out, "Walking program not started. Run: mypace program reset")
				return nil
			}

			week, err := program.CurrentWeek(user.WalkingProgramStartDate, time.Now())
			if err != nil {
				return err
			}
			entry := program.WeekByNumber(week)

			walks, err := service.WalkLogsByProgramWeek(sqldb, week)
			if err != nil {
				return err
			}
			progress := program.WeekProgress(walks, week)

			fmt.Fprintf(out, "Week %d of %d: %s\n", week, program.TotalWeeks, entry.Description)
			fmt.Fprintf(out, "Daily goal: %d minutes\n", entry.DailyGoalMinutes)
			fmt.Fprintf(out, "Week progress: %d%%\n", progress)
			fmt.Fprintf(out, "Tip: %s\n", entry.Tips)
			return nil
		})
	},
}

var programResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restart the program at week 1 from today",
	Long:  "Sets the program start date to today and the week back to 1. Historical walk logs are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			today := time.Now().Format(dateLayout)
			if err := service.ResetWalkingProgram(sqldb, user.ID, today); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Walking program reset to week 1, starting %s\n", today)
			return nil
		})
	},
}

var programPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the full 12-week plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, w := range program.Weeks {
			fmt.Fprintf(out, "Week %2d  %2d min/day  %s\n", w.Number, w.DailyGoalMinutes, w.Description)
		}
		return nil
	},
}

func init() {
	programCmd.AddCommand(programStatusCmd)
	programCmd.AddCommand(programResetCmd)
	programCmd.AddCommand(programPlanCmd)
	rootCmd.AddCommand(programCmd)
}
