package mypace

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/config"
	"github.com/alpine-labs/my-pace/internal/logger"
)

var dbPath string

var customLog = logger.NewLogger()

var rootCmd = &cobra.Command{
	Use:   "mypace",
	Short: "mypace tracks food, exercise, and a 12-week walking program",
	Long:  "mypace is a local-first health tracker: it logs food intake, exercise sessions, and walks against a structured 12-week walking program, all in a local SQLite database.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
