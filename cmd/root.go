package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seopipe",
	Short: "Generate, score, and export SEO content",
	Long: `Seopipe extracts SEO keywords from a website description, generates
article content through an LLM, scores it against SEO heuristics, and
exports it to a CMS-friendly CSV.

Pipeline: extract → generate → evaluate → export`,
}

func init() {
	rootCmd.Version = "0.1.0"
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
