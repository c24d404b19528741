package pipeline

import (
	"reflect"
	"testing"

	"github.com/seopipe/seopipe/internal/config"
	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/seo"
)

func testState() *State {
	state := newState()
	state.put("config", &config.Project{
		WebsiteDescription: "A blog about Go.",
		ContentCategory:    "Programming",
		ContentType:        "article",
		SEOPreferences:     config.SEOPreferences{Keywords: []string{"go", "testing"}},
		ContentSettings:    config.ContentSettings{Tone: "Casual", Length: 500},
	})
	state.put("keywords", []string{"go", "testing"})
	state.put("content", &content.Content{Title: "Go Tips", Body: "body"})
	state.put("evaluation", &seo.Evaluation{TotalScore: 87})
	return state
}

func TestResolveDotPaths(t *testing.T) {
	state := testState()

	cases := []struct {
		descriptor string
		want       any
	}{
		{"config.website_description", "A blog about Go."},
		{"config.content_settings.tone", "Casual"},
		{"config.content_settings.length", 500},
		{"config.seo_preferences.keywords", []string{"go", "testing"}},
		{"content.title", "Go Tips"},
		{"evaluation.total_score", 87},
		{"keywords", []string{"go", "testing"}},
	}
	for _, tc := range cases {
		got := state.Resolve(tc.descriptor, nil)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tc.descriptor, got, tc.want)
		}
	}
}

func TestResolveFallbacks(t *testing.T) {
	state := testState()

	if got := state.Resolve("", "fallback"); got != "fallback" {
		t.Errorf("empty descriptor should return fallback, got %v", got)
	}
	if got := state.Resolve("missing.path", "fallback"); got != "fallback" {
		t.Errorf("unknown root should return fallback, got %v", got)
	}
	if got := state.Resolve("config.no_such_field", "fallback"); got != "fallback" {
		t.Errorf("unknown field should return fallback, got %v", got)
	}
}

func TestStateAccessors(t *testing.T) {
	state := testState()

	if state.Project() == nil {
		t.Error("expected project")
	}
	if got := state.Keywords(); len(got) != 2 {
		t.Errorf("expected 2 keywords, got %v", got)
	}
	if state.Content() == nil {
		t.Error("expected content")
	}

	empty := newState()
	if empty.Project() != nil || empty.Content() != nil || empty.Keywords() != nil {
		t.Error("empty state should return zero values")
	}
}
