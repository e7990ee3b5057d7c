package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	writeTitle   string
	writeContent string
	writeFile    string
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Create or overwrite an entry",
	Long: `Create or overwrite the entry with the given title. The previous content, if any, is lost.
Content comes from --content or from --file ("-" reads standard input).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if writeContent != "" && writeFile != "" {
			fatal("Invalid flags", fmt.Errorf("--content and --file are mutually exclusive"))
		}

		content := writeContent
		if writeFile != "" {
			data, err := readSource(writeFile)
			if err != nil {
				fatal("Failed to read content", err)
			}
			content = string(data)
		}

		service, err := openService()
		if err != nil {
			fatal("Failed to open encyclopedia", err)
		}

		if err := service.SaveEntry(context.Background(), writeTitle, content); err != nil {
			fatal("Failed to save entry", err)
		}

		fmt.Printf("Entry '%s' saved.\n", writeTitle)
	},
}

func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeTitle, "title", "", "Entry title (filename without .md)")
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Entry content")
	writeCmd.Flags().StringVarP(&writeFile, "file", "f", "", "Read content from a file, or - for stdin")
	writeCmd.MarkFlagRequired("title")
}
