package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seopipe/seopipe/internal/article"
	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/database"
	"github.com/seopipe/seopipe/internal/report"
	"github.com/seopipe/seopipe/internal/seo"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [content.json]",
	Short: "Score content against SEO heuristics",
	Long: `Evaluates a content JSON file (or a stored article with --article)
against target keywords: keyword density and coverage, first-paragraph
placement, heading structure, readability, and meta description quality.`,
	RunE: runEvaluate,
}

var (
	evaluateKeywords string
	evaluatePrimary  string
	evaluateReport   string
	evaluateArticle  int64
	evaluateSave     bool
)

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringVarP(&evaluateKeywords, "keywords", "k", "", "Comma-separated target keywords")
	evaluateCmd.Flags().StringVar(&evaluatePrimary, "primary", "", "Primary keyword (defaults to the first keyword)")
	evaluateCmd.Flags().StringVar(&evaluateReport, "report", "", "Write the evaluation report JSON to this path")
	evaluateCmd.Flags().Int64Var(&evaluateArticle, "article", 0, "Evaluate a stored article by ID")
	evaluateCmd.Flags().BoolVar(&evaluateSave, "save", false, "Store the report for the article (requires --article)")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	var (
		c        content.Content
		keywords []string
		title    string
	)

	if evaluateArticle > 0 {
		db, err := database.New(config.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		stored, err := article.NewRepository(db).Get(evaluateArticle)
		if err != nil {
			return err
		}
		c = stored.Content()
		keywords = stored.Keywords
		title = fmt.Sprintf("Article #%d: %s", stored.ID, stored.Title)

		if evaluateKeywords != "" {
			keywords = strings.Split(evaluateKeywords, ",")
		}

		evaluation, err := seo.Evaluate(c, keywords, evaluatePrimary)
		if err != nil {
			return err
		}
		renderEvaluation(title, evaluation)

		if evaluateSave {
			rep, err := report.NewRepository(db).Add(stored.ID, evaluation)
			if err != nil {
				return err
			}
			fmt.Printf("\nStored report #%d\n", rep.ID)
		}
		return writeReportFile(evaluation, keywords)
	}

	if len(args) != 1 {
		return fmt.Errorf("provide a content JSON path or --article <id>")
	}
	loaded, err := content.LoadFile(args[0])
	if err != nil {
		return err
	}
	c = *loaded
	title = c.Title

	if evaluateKeywords == "" {
		return fmt.Errorf("--keywords is required when evaluating a content file")
	}
	keywords = strings.Split(evaluateKeywords, ",")

	evaluation, err := seo.Evaluate(c, keywords, evaluatePrimary)
	if err != nil {
		return err
	}
	renderEvaluation(title, evaluation)

	return writeReportFile(evaluation, keywords)
}

// writeReportFile writes the flat report JSON (scores plus the keyword list)
// when --report was given.
func writeReportFile(evaluation *seo.Evaluation, keywords []string) error {
	if evaluateReport == "" {
		return nil
	}

	data, err := json.Marshal(evaluation)
	if err != nil {
		return err
	}
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	flat["keywords"] = cleaned

	out, err := json.MarshalIndent(flat, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(evaluateReport), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(evaluateReport, out, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("\nSaved report to %s\n", evaluateReport)
	return nil
}
