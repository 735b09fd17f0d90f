package mypace

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpine-labs/my-pace/internal/app"
	"github.com/alpine-labs/my-pace/internal/db"
	"github.com/alpine-labs/my-pace/internal/service"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local mypace database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}
		if _, err := service.GetOrCreateUser(sqldb); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized mypace database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
