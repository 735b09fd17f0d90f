package mypace

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/reminder"
	"github.com/alpine-labs/my-pace/internal/service"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show the daily reminder schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !user.NotificationsEnabled {
				fmt.Fprintln(out, "Notifications are disabled. Enable with: mypace profile set --notifications true")
				return nil
			}
			now := time.Now()
			for _, r := range reminder.Defaults {
				next := r.NextOccurrence(now)
				fmt.Fprintf(out, "%02d:%02d  %-20s next: %s\n", r.Hour, r.Minute, r.Title, next.Format("Mon Jan 2 15:04"))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(remindersCmd)
}
