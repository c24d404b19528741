package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/feed"
	"github.com/seopipe/seopipe/internal/seo"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit <feed-or-site-url>",
	Short: "Score existing blog posts from an RSS feed",
	Long: `Fetches posts from an RSS/Atom feed (discovering the feed when given a
site URL) and evaluates each post against the target keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

var (
	auditKeywords string
	auditLimit    int
)

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().StringVarP(&auditKeywords, "keywords", "k", "", "Comma-separated target keywords (default from config audit.keywords)")
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "l", 10, "Maximum posts to audit")
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	keywords := cfg.Audit.Keywords
	if auditKeywords != "" {
		keywords = strings.Split(auditKeywords, ",")
	}
	if len(keywords) == 0 {
		return fmt.Errorf("no audit keywords: pass --keywords or set audit.keywords in config.yaml")
	}

	fetcher := feed.NewFetcher(30 * time.Second)

	feedURL := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	posts, err := fetcher.Fetch(ctx, feedURL, auditLimit)
	if err != nil {
		// Maybe a site URL rather than a feed URL.
		discovered, derr := fetcher.DiscoverFeed(feedURL)
		if derr != nil {
			return err
		}
		fmt.Printf("Discovered feed: %s\n", discovered)
		posts, err = fetcher.Fetch(ctx, discovered, auditLimit)
		if err != nil {
			return err
		}
	}

	if len(posts) == 0 {
		fmt.Println("Feed contains no posts.")
		return nil
	}

	fmt.Printf("Auditing %d posts against: %s\n\n", len(posts), strings.Join(keywords, ", "))

	for _, post := range posts {
		c := content.Content{
			Title: post.Title,
			Body:  post.Content,
		}
		evaluation, err := seo.Evaluate(c, keywords, "")
		if err != nil {
			return err
		}

		score := scoreStyle(evaluation.TotalScore).Render(fmt.Sprintf("%3d", evaluation.TotalScore))
		fmt.Printf("%s  %s\n", score, headerStyle.Render(post.Title))
		fmt.Printf("      %s\n", labelStyle.Render(post.URL))
		fmt.Printf("      density %.2f%%  coverage %d  headings %d  readability %d\n",
			evaluation.KeywordDensity*100, evaluation.KeywordCoverageScore,
			evaluation.HeadingsScore, evaluation.ReadabilityScore)
	}

	return nil
}
