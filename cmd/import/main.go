// Command import loads a students CSV (name, house, birth) into SQLite.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia/internal/config"
	"github.com/aretw0/encyclopedia/pkg/roster"
)

var (
	dbPath     string
	initSchema bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "import <characters.csv>",
	Short: "Import students from a CSV file",
	Long: `Read a CSV with the header columns name, house and birth and insert one student per row.
Names must have two or three words; other rows are skipped with a warning.`,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		dsn, err := resolveDB(cmd)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()

		db, err := roster.Open(dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		store := roster.NewStore(db)
		if initSchema {
			if err := store.CreateSchema(cmd.Context()); err != nil {
				return err
			}
		}

		res, err := roster.NewImporter(store, logger).Import(cmd.Context(), f)
		if err != nil {
			return err
		}
		logger.Info("import finished", "db", dsn, "inserted", res.Inserted, "skipped", res.Skipped)
		return nil
	},
}

// resolveDB prefers --db, then ENCYCLOPEDIA_DB or .env, then the default file.
func resolveDB(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("db") {
		return dbPath, nil
	}
	cfg, err := config.Load("")
	if err != nil {
		return "", err
	}
	return cfg.DB, nil
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "students.db", "SQLite database file")
	rootCmd.Flags().BoolVar(&initSchema, "init", false, "Create the students table if missing")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
