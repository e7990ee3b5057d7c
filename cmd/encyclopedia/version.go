package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of encyclopedia",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("encyclopedia version %s\n", strings.TrimSpace(encyclopedia.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
