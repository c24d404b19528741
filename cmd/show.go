package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seopipe/seopipe/internal/article"
	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/database"
	"github.com/seopipe/seopipe/internal/report"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <article-id>",
	Short: "Show a stored article and its latest SEO report",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid article ID: %s", args[0])
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := article.NewRepository(db).Get(id)
	if err != nil {
		return fmt.Errorf("article not found: %d", id)
	}

	fmt.Println(divider())
	fmt.Println(headerStyle.Render(a.Title))
	fmt.Println(divider())

	if a.Category != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Category:"), valueStyle.Render(a.Category))
	}
	if len(a.Keywords) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("Keywords:"), valueStyle.Render(strings.Join(a.Keywords, ", ")))
	}
	fmt.Printf("%s %s\n", labelStyle.Render("Created:"), valueStyle.Render(a.CreatedAt.Format("2006-01-02 15:04")))

	if a.Summary != "" {
		fmt.Printf("\n%s\n%s\n", labelStyle.Render("SUMMARY:"), valueStyle.Render(a.Summary))
	}
	if a.MetaDesc != "" {
		fmt.Printf("\n%s\n%s\n", labelStyle.Render("META DESCRIPTION:"), valueStyle.Render(a.MetaDesc))
	}

	latest, err := report.NewRepository(db).GetLatest(id)
	if err != nil {
		return err
	}
	if latest != nil {
		fmt.Println()
		renderEvaluation("Latest SEO report", &latest.Evaluation)
	}

	body := a.Body
	if len(body) > 500 {
		body = body[:500] + "..."
	}
	if body != "" {
		fmt.Printf("\n%s\n%s\n", labelStyle.Render("PREVIEW:"), valueStyle.Render(body))
	}

	return nil
}
