package article

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/seopipe/seopipe/internal/content"
	"github.com/seopipe/seopipe/internal/database"
)

// Article is a stored generated article together with the keywords it was
// written for.
type Article struct {
	ID          int64
	Title       string
	Body        string
	Summary     string
	MetaDesc    string
	Category    string
	Keywords    []string
	CreatedAt   time.Time
	LatestScore *int
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(c *content.Content, keywords []string, category string) (*Article, error) {
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(
		`INSERT INTO articles (title, body, summary, meta_description, category, keywords) VALUES (?, ?, ?, ?, ?, ?)`,
		c.Title, c.Body, c.Summary, c.MetaDescription, category, string(keywordsJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Article{
		ID:       id,
		Title:    c.Title,
		Body:     c.Body,
		Summary:  c.Summary,
		MetaDesc: c.MetaDescription,
		Category: category,
		Keywords: keywords,
	}, nil
}

func (r *Repository) Get(id int64) (*Article, error) {
	row := r.db.QueryRow(`
		SELECT id, title, body, summary, meta_description, category, keywords, created_at
		FROM articles WHERE id = ?
	`, id)

	var a Article
	var keywordsJSON string
	if err := row.Scan(&a.ID, &a.Title, &a.Body, &a.Summary, &a.MetaDesc, &a.Category, &keywordsJSON, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to load article %d: %w", id, err)
	}
	if keywordsJSON != "" {
		if err := json.Unmarshal([]byte(keywordsJSON), &a.Keywords); err != nil {
			return nil, fmt.Errorf("corrupt keywords for article %d: %w", id, err)
		}
	}
	return &a, nil
}

// List returns the most recent articles with their latest total score, if
// they have been evaluated.
func (r *Repository) List(limit int) ([]Article, error) {
	rows, err := r.db.Query(`
		SELECT a.id, a.title, a.category, a.keywords, a.created_at,
		       (SELECT total_score FROM reports rp WHERE rp.article_id = a.id ORDER BY rp.created_at DESC, rp.id DESC LIMIT 1)
		FROM articles a
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		var keywordsJSON string
		var score sql.NullInt64
		if err := rows.Scan(&a.ID, &a.Title, &a.Category, &keywordsJSON, &a.CreatedAt, &score); err != nil {
			return nil, err
		}
		if keywordsJSON != "" {
			if err := json.Unmarshal([]byte(keywordsJSON), &a.Keywords); err != nil {
				return nil, fmt.Errorf("corrupt keywords for article %d: %w", a.ID, err)
			}
		}
		if score.Valid {
			v := int(score.Int64)
			a.LatestScore = &v
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Content rebuilds the content record from a stored article.
func (a *Article) Content() content.Content {
	return content.Content{
		Title:           a.Title,
		Body:            a.Body,
		Summary:         a.Summary,
		MetaDescription: a.MetaDesc,
	}
}
