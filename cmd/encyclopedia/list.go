package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entry titles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(encyclopedia.WithMustExist(true))
		if err != nil {
			fatal("Failed to open encyclopedia", err)
		}

		titles, err := service.ListEntries(context.Background())
		if err != nil {
			fatal("Failed to list entries", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if titles == nil {
				titles = []string{}
			}
			if err := encoder.Encode(titles); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, title := range titles {
			fmt.Println(title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
