package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validProject = `{
	"website_description": "A blog about Go.",
	"content_category": "Programming",
	"content_type": "article",
	"seo_preferences": {"keywords": ["go", "testing"]},
	"content_settings": {"tone": "Professional", "length": 800}
}`

func TestLoadProject(t *testing.T) {
	project, err := LoadProject(writeProject(t, validProject))
	if err != nil {
		t.Fatal(err)
	}
	if project.WebsiteDescription != "A blog about Go." {
		t.Errorf("unexpected description: %s", project.WebsiteDescription)
	}
	if len(project.SEOPreferences.Keywords) != 2 {
		t.Errorf("unexpected keywords: %v", project.SEOPreferences.Keywords)
	}
	if project.ContentSettings.Length != 800 {
		t.Errorf("unexpected length: %d", project.ContentSettings.Length)
	}
}

func TestLoadProjectMissingFields(t *testing.T) {
	_, err := LoadProject(writeProject(t, `{"website_description": "x"}`))
	if err == nil {
		t.Fatal("expected error for missing fields")
	}
	for _, field := range []string{"content_category", "content_settings", "content_type", "seo_preferences"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should list %s, got: %v", field, err)
		}
	}
}

func TestLoadProjectBadLength(t *testing.T) {
	bad := strings.Replace(validProject, `"length": 800`, `"length": 0`, 1)
	if _, err := LoadProject(writeProject(t, bad)); err == nil {
		t.Fatal("expected error for non-positive length")
	}
}

func TestLoadProjectMissingKeywords(t *testing.T) {
	bad := strings.Replace(validProject, `{"keywords": ["go", "testing"]}`, `{}`, 1)
	if _, err := LoadProject(writeProject(t, bad)); err == nil {
		t.Fatal("expected error when keywords list is absent")
	}
}

func TestLoadProjectNotFound(t *testing.T) {
	if _, err := LoadProject(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
