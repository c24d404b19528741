package pipeline

import (
	"strings"

	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/seo"
)

// State maps step output names to the values those steps produced. Only the
// runner mutates it; handlers receive it read-only and hand back a Result.
type State struct {
	values map[string]any
}

func newState() *State {
	return &State{values: make(map[string]any)}
}

// Value returns the raw value a previous step stored under key.
func (s *State) Value(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *State) put(key string, value any) {
	if key != "" {
		s.values[key] = value
	}
}

// Project returns the loaded project configuration, if any.
func (s *State) Project() *config.Project {
	p, _ := s.values["config"].(*config.Project)
	return p
}

// Keywords returns the extracted keyword list, if any.
func (s *State) Keywords() []string {
	kw, _ := s.values["keywords"].([]string)
	return kw
}

// Content returns the generated content, if any.
func (s *State) Content() *content.Content {
	c, _ := s.values["content"].(*content.Content)
	return c
}

// Resolve walks a dot-path descriptor ("config.website_description",
// "content.title") through prior step outputs. It returns fallback when the
// descriptor is empty or any segment is missing.
func (s *State) Resolve(descriptor string, fallback any) any {
	if descriptor == "" {
		return fallback
	}
	parts := strings.Split(descriptor, ".")
	current, ok := s.values[parts[0]]
	if !ok {
		return fallback
	}
	for _, part := range parts[1:] {
		current, ok = fieldOf(current, part)
		if !ok || current == nil {
			return fallback
		}
	}
	if current == nil {
		return fallback
	}
	return current
}

// fieldOf resolves one path segment against the known step output types.
func fieldOf(value any, name string) (any, bool) {
	switch v := value.(type) {
	case map[string]any:
		out, ok := v[name]
		return out, ok
	case *config.Project:
		switch name {
		case "website_description":
			return v.WebsiteDescription, true
		case "content_category":
			return v.ContentCategory, true
		case "content_type":
			return v.ContentType, true
		case "seo_preferences":
			return v.SEOPreferences, true
		case "content_settings":
			return v.ContentSettings, true
		}
	case config.SEOPreferences:
		if name == "keywords" {
			return v.Keywords, true
		}
	case config.ContentSettings:
		switch name {
		case "tone":
			return v.Tone, true
		case "length":
			return v.Length, true
		}
	case *content.Content:
		switch name {
		case "title":
			return v.Title, true
		case "body":
			return v.Body, true
		case "summary":
			return v.Summary, true
		case "meta_description":
			return v.MetaDescription, true
		}
	case *seo.Evaluation:
		switch name {
		case "total_score":
			return v.TotalScore, true
		case "keyword_density":
			return v.KeywordDensity, true
		case "notes":
			return v.Notes, true
		}
	}
	return nil, false
}
