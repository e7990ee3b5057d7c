package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia"
	"github.com/aretw0/encyclopedia/pkg/core"
	"github.com/aretw0/encyclopedia/pkg/markdown"
)

var (
	readRender bool
	readWidth  int
)

var readCmd = &cobra.Command{
	Use:   "read [title]",
	Short: "Print an entry",
	Long:  `Print an entry by its exact title. Outputs raw Markdown by default, or styled terminal text with --render.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(encyclopedia.WithMustExist(true))
		if err != nil {
			fatal("Failed to open encyclopedia", err)
		}

		entry, err := service.GetEntry(context.Background(), args[0])
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "No entry titled %q\n", args[0])
			os.Exit(1)
		}
		if err != nil {
			fatal("Failed to read entry", err)
		}

		if !readRender {
			fmt.Print(entry.Content)
			return
		}

		out, err := markdown.Terminal(entry.Content, readWidth)
		if err != nil {
			fatal("Failed to render entry", err)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVarP(&readRender, "render", "r", false, "Render Markdown for the terminal")
	readCmd.Flags().IntVar(&readWidth, "width", 80, "Word wrap width for --render")
}
