package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seopipe/seopipe/internal/content"
)

// ContentCSV writes content and its target keywords to a CMS-importable CSV
// file and returns the path written.
func ContentCSV(c *content.Content, keywords []string, outputPath, category string) (string, error) {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return "", fmt.Errorf("at least one keyword is required to export content")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Title", "Content", "Meta Description", "Keywords", "Category/Tag"}); err != nil {
		return "", err
	}
	record := []string{
		c.Title,
		c.Body,
		c.MetaDescription,
		strings.Join(cleaned, ", "),
		category,
	}
	if err := writer.Write(record); err != nil {
		return "", err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}

	return outputPath, nil
}
