package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/keyword"
	"github.com/seopipe/seopipe/internal/site"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [description]",
	Short: "Extract SEO keywords from a website description",
	Long: `Asks the LLM for the top SEO keywords for a website. The description is
either given as an argument or distilled from a live page with --url.`,
	RunE: runExtractKeywords,
}

var (
	extractURL  string
	extractMax  int
	extractJSON string
)

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractURL, "url", "", "Fetch and summarize this page as the description")
	extractCmd.Flags().IntVar(&extractMax, "max", 0, "Maximum keywords to request (default from config)")
	extractCmd.Flags().StringVar(&extractJSON, "json", "", "Write the keywords to this JSON file")
}

func runExtractKeywords(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	description := strings.TrimSpace(strings.Join(args, " "))
	if extractURL != "" {
		fetcher := site.NewFetcher(30 * time.Second)
		described, err := fetcher.Describe(extractURL)
		if err != nil {
			return err
		}
		description = described
		fmt.Printf("Distilled description from %s (%d chars)\n", extractURL, len(description))
	}
	if description == "" {
		return fmt.Errorf("provide a description argument or --url")
	}

	maxKeywords := extractMax
	if maxKeywords <= 0 {
		maxKeywords = cfg.Defaults.MaxKeywords
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	keywords, err := keyword.Extract(ctx, client, description, maxKeywords)
	if err != nil {
		return err
	}

	fmt.Println("Extracted keywords:")
	for _, kw := range keywords {
		fmt.Printf("  - %s\n", kw)
	}

	if extractJSON != "" {
		data, err := json.MarshalIndent(keywords, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(extractJSON, data, 0644); err != nil {
			return fmt.Errorf("failed to write keywords file: %w", err)
		}
		fmt.Printf("\nSaved keywords to %s\n", extractJSON)
	}

	return nil
}
