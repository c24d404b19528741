package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/seopipe/seopipe/internal/article"
	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/database"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an SEO article from keywords",
	Long: `Generates an SEO-optimized markdown article through the LLM, either from
a comma-separated keyword list or from a project config.json.`,
	RunE: runGenerate,
}

var (
	generateKeywords string
	generateProject  string
	generateContext  string
	generateTone     string
	generateLength   string
	generateOut      string
	generateSave     bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateKeywords, "keywords", "k", "", "Comma-separated target keywords")
	generateCmd.Flags().StringVarP(&generateProject, "project", "p", "", "Project config.json to take keywords and settings from")
	generateCmd.Flags().StringVar(&generateContext, "context", "", "Additional topic context")
	generateCmd.Flags().StringVar(&generateTone, "tone", "", "Writing tone (default from config)")
	generateCmd.Flags().StringVar(&generateLength, "length", "", "Target length guidance in words")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "content.json", "Content JSON output path")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Store the article in the local history database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := content.GenerateOptions{
		TopicContext: generateContext,
		Tone:         generateTone,
		Length:       generateLength,
	}
	category := ""

	if generateProject != "" {
		project, err := config.LoadProject(generateProject)
		if err != nil {
			return err
		}
		opts.Keywords = project.SEOPreferences.Keywords
		opts.Description = project.WebsiteDescription
		category = project.ContentCategory
		if opts.TopicContext == "" {
			opts.TopicContext = project.ContentCategory
		}
		if opts.Tone == "" {
			opts.Tone = project.ContentSettings.Tone
		}
		if opts.Length == "" {
			opts.Length = fmt.Sprint(project.ContentSettings.Length)
		}
	}

	if generateKeywords != "" {
		opts.Keywords = strings.Split(generateKeywords, ",")
	}
	if len(opts.Keywords) == 0 {
		return fmt.Errorf("provide --keywords or --project")
	}
	if opts.Tone == "" {
		opts.Tone = cfg.Defaults.Tone
	}
	if opts.Length == "" && cfg.Defaults.Length > 0 {
		opts.Length = fmt.Sprint(cfg.Defaults.Length)
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	generated, err := content.Generate(ctx, client, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Generated: %s\n", generated.Title)

	if err := generated.WriteFile(generateOut); err != nil {
		return err
	}
	fmt.Printf("Saved content to %s\n", generateOut)

	if generateSave {
		db, err := database.New(config.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		stored, err := article.NewRepository(db).Add(generated, opts.Keywords, category)
		if err != nil {
			return err
		}
		fmt.Printf("Stored as article #%d\n", stored.ID)
	}

	return nil
}
