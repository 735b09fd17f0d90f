package mypace

import (
	"bufio"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/program"
	"github.com/alpine-labs/my-pace/internal/service"
	"github.com/alpine-labs/my-pace/internal/walktimer"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Track walks against the 12-week program",
}

var (
	walkDate    string
	walkMinutes int
	walkSeconds int
	walkNotes   string
)

var walkSessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run a timed walk, saved when you stop it",
	Long:  "Starts the walk stopwatch and shows elapsed time until you press Enter. The finished walk is recorded against the current program week; stopping at zero elapsed time records nothing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			timer := walktimer.New()
			timer.Start()
			fmt.Fprintln(out, "Walk started. Press Enter to stop.")

			// The display tick recomputes elapsed from the wall clock;
			// it is torn down as soon as the walk stops.
			ticker := time.NewTicker(time.Second)
			done := make(chan struct{})
			go func() {
				reader := bufio.NewReader(cmd.InOrStdin())
				_, _ = reader.ReadString('\n')
				close(done)
			}()
		loop:
			for {
				select {
				case <-ticker.C:
					fmt.Fprintf(out, "\rElapsed: %s ", program.FormatDuration(timer.Elapsed()))
				case <-done:
					ticker.Stop()
					break loop
				}
			}

			elapsed := timer.Stop()
			fmt.Fprintf(out, "\rWalk stopped at %s\n", program.FormatDuration(elapsed))

			id, err := service.RecordFinishedWalk(sqldb, user, elapsed, time.Now())
			if err != nil {
				return err
			}
			if id == 0 {
				fmt.Fprintln(out, "Nothing recorded (zero elapsed time)")
				return nil
			}
			fmt.Fprintf(out, "Recorded walk %d\n", id)
			return nil
		})
	},
}

var walkLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a finished walk manually",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(walkDate)
		if err != nil {
			return err
		}
		duration := walkMinutes*60 + walkSeconds
		if duration <= 0 {
			return fmt.Errorf("walk duration must be > 0 (set --minutes and/or --seconds)")
		}
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			week := 1
			if user.WalkingProgramStartDate != "" {
				week, err = program.CurrentWeek(user.WalkingProgramStartDate, time.Now())
				if err != nil {
					return err
				}
			}
			id, err := service.CreateWalkLog(sqldb, service.CreateWalkLogInput{
				UserID:              user.ID,
				Date:                date,
				DurationSeconds:     duration,
				ProgramWeek:         week,
				GoalDurationSeconds: program.DailyGoalMinutes(week) * 60,
				Notes:               walkNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded walk %d: %s on %s (week %d)\n",
				id, program.FormatDuration(duration), date, week)
			return nil
		})
	},
}

var walkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List walks for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(walkDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			walks, err := service.WalkLogsByDate(sqldb, date)
			if err != nil {
				if service.IsStorageError(err) {
					customLog.Warnf("Listing walk log failed: %v", err)
					walks = nil
				} else {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if len(walks) == 0 {
				fmt.Fprintf(out, "No walks logged for %s\n", date)
				return nil
			}
			for _, w := range walks {
				fmt.Fprintf(out, "%d  %s  week %d (goal %s/day)\n",
					w.ID, program.FormatDuration(w.DurationSeconds), w.ProgramWeek,
					program.FormatDuration(w.GoalDurationSeconds))
			}
			return nil
		})
	},
}

var walkDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a walk by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("walk id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteWalkLog(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted walk %d\n", id)
			return nil
		})
	},
}

func init() {
	walkLogCmd.Flags().StringVar(&walkDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	walkLogCmd.Flags().IntVar(&walkMinutes, "minutes", 0, "Walk duration, minutes part")
	walkLogCmd.Flags().IntVar(&walkSeconds, "seconds", 0, "Walk duration, seconds part")
	walkLogCmd.Flags().StringVar(&walkNotes, "notes", "", "Notes")

	walkListCmd.Flags().StringVar(&walkDate, "date", "", "Date (YYYY-MM-DD), defaults to today")

	walkCmd.AddCommand(walkSessionCmd)
	walkCmd.AddCommand(walkLogCmd)
	walkCmd.AddCommand(walkListCmd)
	walkCmd.AddCommand(walkDeleteCmd)
	rootCmd.AddCommand(walkCmd)
}
