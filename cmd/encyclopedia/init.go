package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/encyclopedia/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a wiki root",
	Long:  `Create the entries directory and a default encyclopedia.yaml in the wiki root, leaving an existing config untouched.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.ReadOnly {
			fatal("Cannot initialize", errors.New("read-only mode is enabled"))
		}

		if _, err := openService(); err != nil {
			fatal("Failed to initialize entries", err)
		}

		path := filepath.Join(cfg.Dir, "encyclopedia.yaml")
		if _, err := os.Stat(path); err == nil {
			fmt.Println("Entries ready in", cfg.Dir)
			return
		}

		defaults := config.Default()
		defaults.Dir = "."
		data, err := yaml.Marshal(defaults)
		if err != nil {
			fatal("Failed to encode config", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			fatal("Failed to write config", err)
		}

		fmt.Println("Initialized empty encyclopedia in", cfg.Dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
