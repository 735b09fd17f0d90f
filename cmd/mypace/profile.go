package mypace

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the local profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			name := user.Name
			if name == "" {
				name = "(not set)"
			}
			fmt.Fprintf(out, "Name: %s\n", name)
			fmt.Fprintf(out, "Calorie goal: %d kcal\n", user.CalorieGoal)
			fmt.Fprintf(out, "Protein goal: %d g\n", user.ProteinGoal)
			fmt.Fprintf(out, "Sodium goal: %d mg\n", user.SodiumGoal)
			fmt.Fprintf(out, "Theme: %s\n", user.ThemePreference)
			fmt.Fprintf(out, "Notifications: %s\n", onOff(user.NotificationsEnabled))
			if user.WalkingProgramStartDate != "" {
				fmt.Fprintf(out, "Walking program started: %s\n", user.WalkingProgramStartDate)
			} else {
				fmt.Fprintln(out, "Walking program: not started")
			}
			if user.USDAAPIKey != "" {
				fmt.Fprintln(out, "USDA API key: set")
			} else {
				fmt.Fprintln(out, "USDA API key: not set (demo key in use)")
			}
			return nil
		})
	},
}

var (
	profileName          string
	profileCalories      string
	profileProtein       string
	profileSodium        string
	profileTheme         string
	profileNotifications string
	profileAPIKey        string
	profileProgramStart  string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields and goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.GetOrCreateUser(sqldb)
			if err != nil {
				return err
			}

			in := service.UpdateUserInput{}
			if cmd.Flags().Changed("name") {
				in.Name = &profileName
			}
			if cmd.Flags().Changed("calories") {
				v := parseGoalValue("calorie goal", profileCalories, user.CalorieGoal)
				in.CalorieGoal = &v
			}
			if cmd.Flags().Changed("protein") {
				v := parseGoalValue("protein goal", profileProtein, user.ProteinGoal)
				in.ProteinGoal = &v
			}
			if cmd.Flags().Changed("sodium") {
				v := parseGoalValue("sodium goal", profileSodium, user.SodiumGoal)
				in.SodiumGoal = &v
			}
			if cmd.Flags().Changed("theme") {
				in.ThemePreference = &profileTheme
			}
			if cmd.Flags().Changed("notifications") {
				enabled, err := strconv.ParseBool(strings.TrimSpace(profileNotifications))
				if err != nil {
					return fmt.Errorf("invalid --notifications %q (expected true or false)", profileNotifications)
				}
				in.NotificationsEnabled = &enabled
			}
			if cmd.Flags().Changed("api-key") {
				in.USDAAPIKey = &profileAPIKey
			}
			if cmd.Flags().Changed("program-start") {
				in.WalkingProgramStartDate = &profileProgramStart
			}

			if err := service.UpdateUser(sqldb, user.ID, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().StringVar(&profileCalories, "calories", "", "Daily calorie goal (kcal)")
	profileSetCmd.Flags().StringVar(&profileProtein, "protein", "", "Daily protein goal (g)")
	profileSetCmd.Flags().StringVar(&profileSodium, "sodium", "", "Daily sodium goal (mg)")
	profileSetCmd.Flags().StringVar(&profileTheme, "theme", "", "Theme preference (light or dark)")
	profileSetCmd.Flags().StringVar(&profileNotifications, "notifications", "", "Enable daily reminders (true or false)")
	profileSetCmd.Flags().StringVar(&profileAPIKey, "api-key", "", "USDA FoodData Central API key")
	profileSetCmd.Flags().StringVar(&profileProgramStart, "program-start", "", "Walking program start date (YYYY-MM-DD)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
