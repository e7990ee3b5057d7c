package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia"
)

var randomExclude string

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random entry title",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(encyclopedia.WithMustExist(true))
		if err != nil {
			fatal("Failed to open encyclopedia", err)
		}

		title, err := service.PickRandomEntry(context.Background(), randomExclude)
		if err != nil {
			fatal("Failed to pick an entry", err)
		}
		fmt.Println(title)
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().StringVar(&randomExclude, "exclude", "", "Title to avoid when another entry exists")
}
