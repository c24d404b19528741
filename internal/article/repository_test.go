package article

import (
	"path/filepath"
	"testing"

	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/database"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testContent() *content.Content {
	return &content.Content{
		Title:           "Go Tips",
		Body:            "# Go Tips\n\nBody.",
		Summary:         "Summary.",
		MetaDescription: "Meta.",
	}
}

func TestAddAndGet(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	stored, err := repo.Add(testContent(), []string{"go", "testing"}, "Programming")
	if err != nil {
		t.Fatalf("failed to add article: %v", err)
	}
	if stored.ID == 0 {
		t.Error("expected non-zero ID")
	}

	loaded, err := repo.Get(stored.ID)
	if err != nil {
		t.Fatalf("failed to get article: %v", err)
	}
	if loaded.Title != "Go Tips" || loaded.Category != "Programming" {
		t.Errorf("unexpected article: %+v", loaded)
	}
	if len(loaded.Keywords) != 2 || loaded.Keywords[0] != "go" {
		t.Errorf("keywords did not round-trip: %v", loaded.Keywords)
	}

	rebuilt := loaded.Content()
	if rebuilt.Body != "# Go Tips\n\nBody." {
		t.Errorf("content rebuild mismatch: %q", rebuilt.Body)
	}
}

func TestList(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	if _, err := repo.Add(testContent(), []string{"go"}, ""); err != nil {
		t.Fatal(err)
	}
	second := testContent()
	second.Title = "Second Article"
	if _, err := repo.Add(second, []string{"seo"}, ""); err != nil {
		t.Fatal(err)
	}

	articles, err := repo.List(10)
	if err != nil {
		t.Fatalf("failed to list articles: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	// Unevaluated articles carry no score.
	if articles[0].LatestScore != nil {
		t.Errorf("expected nil score, got %v", *articles[0].LatestScore)
	}
}

func TestGetMissing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	if _, err := repo.Get(42); err == nil {
		t.Fatal("expected error for missing article")
	}
}
