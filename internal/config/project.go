package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Project is the per-site pipeline configuration (config.json). The field
// names match the JSON contract consumed by existing pipelines.
type Project struct {
	WebsiteDescription string          `json:"website_description"`
	ContentCategory    string          `json:"content_category"`
	ContentType        string          `json:"content_type"`
	SEOPreferences     SEOPreferences  `json:"seo_preferences"`
	ContentSettings    ContentSettings `json:"content_settings"`
}

type SEOPreferences struct {
	Keywords []string `json:"keywords"`
}

type ContentSettings struct {
	Tone   string `json:"tone"`
	Length int    `json:"length"`
}

// LoadProject reads and validates a project configuration file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("root of configuration file must be a JSON object: %w", err)
	}

	expected := []string{
		"website_description",
		"content_category",
		"content_type",
		"seo_preferences",
		"content_settings",
	}
	var missing []string
	for _, field := range expected {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing configuration fields: %s", strings.Join(missing, ", "))
	}

	var project Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if project.SEOPreferences.Keywords == nil {
		return nil, fmt.Errorf("seo_preferences.keywords must be a list of strings")
	}
	if project.ContentSettings.Tone == "" {
		return nil, fmt.Errorf("content_settings.tone must be a string")
	}
	if project.ContentSettings.Length <= 0 {
		return nil, fmt.Errorf("content_settings.length must be a positive integer")
	}

	return &project, nil
}
