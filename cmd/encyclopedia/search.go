package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "List titles matching a query",
	Long:  `List titles matching query case-insensitively. The query is tried as a regular expression first, then as literal text.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(encyclopedia.WithMustExist(true))
		if err != nil {
			fatal("Failed to open encyclopedia", err)
		}

		matches, err := service.FindMatches(context.Background(), args[0])
		if err != nil {
			fatal("Failed to search entries", err)
		}
		for _, title := range matches {
			fmt.Println(title)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
