package cmd

import (
	"fmt"
	"strings"

	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <content.json>",
	Short: "Export content to a CMS-friendly CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportKeywords string
	exportOut      string
	exportCategory string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportKeywords, "keywords", "k", "", "Comma-separated target keywords (required)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "output/article.csv", "CSV output path")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "Category/tag column value")
	exportCmd.MarkFlagRequired("keywords")
}

func runExport(cmd *cobra.Command, args []string) error {
	loaded, err := content.LoadFile(args[0])
	if err != nil {
		return err
	}

	written, err := export.ContentCSV(loaded, strings.Split(exportKeywords, ","), exportOut, exportCategory)
	if err != nil {
		return err
	}

	fmt.Printf("Exported CSV to %s\n", written)
	return nil
}
