// Command roster prints the students of one house, ordered by last then first name.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia/internal/config"
	"github.com/aretw0/encyclopedia/pkg/roster"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "roster <house>",
	Short: "Print the students of a house",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dsn := dbPath
		if !cmd.Flags().Changed("db") {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			dsn = cfg.DB
		}

		db, err := roster.Open(dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		return roster.Report(cmd.Context(), roster.NewStore(db), args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "students.db", "SQLite database file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
