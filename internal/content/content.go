package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Content is one generated article: a markdown body plus the metadata a CMS
// needs. The JSON field names are the interchange format shared with the
// evaluate and export commands.
type Content struct {
	Title           string `json:"title"`
	Body            string `json:"body"`
	Summary         string `json:"summary"`
	MetaDescription string `json:"meta_description"`
}

// LoadFile reads a content JSON file produced by a previous generate run.
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content JSON: %w", err)
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"title", c.Title},
		{"body", c.Body},
		{"summary", c.Summary},
		{"meta_description", c.MetaDescription},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("content JSON missing required fields: %s", strings.Join(missing, ", "))
	}

	return &c, nil
}

// WriteFile persists content as indented JSON, creating parent directories.
func (c *Content) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
