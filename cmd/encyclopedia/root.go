package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia"
	"github.com/aretw0/encyclopedia/internal/config"
	"github.com/aretw0/encyclopedia/pkg/core"
)

var (
	verbose    bool
	configPath string
	rootDir    string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "encyclopedia",
	Short: "A tiny Markdown wiki backed by plain files",
	Long: `Encyclopedia stores one Markdown file per entry under <root>/entries.
It serves the entries as a small wiki and offers the same operations from the shell.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		path, base := resolveConfigPath()
		loaded, err := config.Load(path)
		if err != nil {
			fatal("Failed to load config", err)
		}
		switch {
		case rootDir != "":
			loaded.Dir = rootDir
		case base != "" && !filepath.IsAbs(loaded.Dir):
			loaded.Dir = filepath.Join(base, loaded.Dir)
		}
		if err := loaded.Validate(); err != nil {
			fatal("Invalid config", err)
		}
		cfg = loaded

		level, _ := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to encyclopedia.yaml")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "Wiki root directory (overrides config)")
}

// resolveConfigPath prefers --config, then encyclopedia.yaml in the
// nearest wiki root above the working directory. It also returns the
// directory relative config paths are resolved against.
func resolveConfigPath() (path, base string) {
	if configPath != "" {
		return configPath, filepath.Dir(configPath)
	}
	start := rootDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", ""
		}
		start = wd
	}
	root, err := encyclopedia.FindRoot(start)
	if err != nil {
		return "", ""
	}
	return filepath.Join(root, "encyclopedia.yaml"), root
}

// openService builds the entry service for the configured root.
func openService(opts ...encyclopedia.Option) (*core.Service, error) {
	base := []encyclopedia.Option{
		encyclopedia.WithLogger(slog.Default()),
		encyclopedia.WithReadOnly(cfg.ReadOnly),
	}
	return encyclopedia.New(cfg.Dir, append(base, opts...)...)
}
