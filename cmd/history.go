package cmd

import (
	"fmt"
	"strings"

	"github.com/seopipe/seopipe/internal/article"
	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/database"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored articles and their latest scores",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum articles to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	articles, err := article.NewRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		fmt.Println("No stored articles. Generate one with: seopipe generate --save")
		return nil
	}

	fmt.Println(divider())
	fmt.Printf("%s\n", headerStyle.Render(fmt.Sprintf("%-5s %-8s %-12s %s", "ID", "SCORE", "DATE", "TITLE")))
	fmt.Println(divider())

	for _, a := range articles {
		score := labelStyle.Render(fmt.Sprintf("%-8s", "-"))
		if a.LatestScore != nil {
			score = scoreStyle(*a.LatestScore).Render(fmt.Sprintf("%-8d", *a.LatestScore))
		}
		title := a.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Printf("%-5d %s %-12s %s\n", a.ID, score, a.CreatedAt.Format("2006-01-02"), valueStyle.Render(title))
		if len(a.Keywords) > 0 {
			fmt.Printf("      %s\n", labelStyle.Render(strings.Join(a.Keywords, ", ")))
		}
	}

	return nil
}
