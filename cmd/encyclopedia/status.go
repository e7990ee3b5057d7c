package main

import (
	"encoding/json"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia"
)

type statusReport struct {
	Version    string `json:"version"`
	Root       string `json:"root"`
	Service    any    `json:"service"`
	Repository any    `json:"repository,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of the entry store as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(encyclopedia.WithMustExist(true))
		if err != nil {
			fatal("Failed to open encyclopedia", err)
		}

		// Populate the listing counters before reporting.
		if _, err := service.ListEntries(cmd.Context()); err != nil {
			fatal("Failed to list entries", err)
		}

		report := statusReport{
			Version: encyclopedia.Version,
			Root:    cfg.Dir,
			Service: service.State(),
		}
		if intro, ok := service.Repository().(introspection.Introspectable); ok {
			report.Repository = intro.State()
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			fatal("Failed to encode JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
