package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/seopipe/seopipe/internal/seo"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func divider() string {
	return labelStyle.Render(strings.Repeat("━", 60))
}

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return goodStyle
	case score >= 50:
		return warnStyle
	default:
		return badStyle
	}
}

// renderEvaluation prints the score report for one evaluation.
func renderEvaluation(title string, e *seo.Evaluation) {
	fmt.Println(divider())
	fmt.Println(headerStyle.Render(title))
	fmt.Println(divider())

	fmt.Printf("%s %s\n", labelStyle.Render("Total score:"),
		scoreStyle(e.TotalScore).Render(fmt.Sprintf("%d/100", e.TotalScore)))
	fmt.Println()

	rows := []struct {
		label string
		score int
	}{
		{"Keyword density", e.KeywordDensityScore},
		{"Keyword coverage", e.KeywordCoverageScore},
		{"First paragraph", e.FirstParagraphScore},
		{"Headings", e.HeadingsScore},
		{"Readability", e.ReadabilityScore},
		{"Meta description", e.MetaDescriptionScore},
	}
	// Pad before styling so the ANSI codes don't skew the columns.
	for _, row := range rows {
		fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-18s", row.label)),
			scoreStyle(row.score).Render(fmt.Sprintf("%3d", row.score)))
	}
	fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-18s", "Density ratio")),
		valueStyle.Render(fmt.Sprintf("%.2f%%", e.KeywordDensity*100)))

	if len(e.Notes) > 0 {
		fmt.Printf("\n%s\n", labelStyle.Render("RECOMMENDATIONS:"))
		for _, note := range e.Notes {
			fmt.Printf("  • %s\n", note)
		}
	} else {
		fmt.Printf("\n%s\n", goodStyle.Render("Content meets all key SEO checks."))
	}
}
