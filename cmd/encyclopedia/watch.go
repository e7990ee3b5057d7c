package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia"
	"github.com/aretw0/encyclopedia/pkg/adapters/fs"
	entrylifecycle "github.com/aretw0/encyclopedia/pkg/adapters/lifecycle"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print entry changes as they happen",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		service, err := openService(encyclopedia.WithMustExist(true))
		if err != nil {
			fatal("Failed to open encyclopedia", err)
		}

		events, err := service.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to watch entries", err)
		}

		source := entrylifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		slog.Info("watching entries", "dir", cfg.Dir, "pattern", watchPattern)
		for e := range source.Events() {
			fmt.Println(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", fs.DefaultPattern, "Glob of entry files to watch")
}
