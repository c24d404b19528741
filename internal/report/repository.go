package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/seopipe/seopipe/internal/database"
	"github.com/seopipe/seopipe/internal/seo"
)

// Report is a stored evaluation of one article.
type Report struct {
	ID        int64
	ArticleID int64
	seo.Evaluation
	CreatedAt time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(articleID int64, e *seo.Evaluation) (*Report, error) {
	notesJSON, err := json.Marshal(e.Notes)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(`
		INSERT INTO reports (
			article_id, total_score, keyword_density, keyword_density_score,
			keyword_coverage_score, first_paragraph_score, headings_score,
			readability_score, meta_description_score, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		articleID, e.TotalScore, e.KeywordDensity, e.KeywordDensityScore,
		e.KeywordCoverageScore, e.FirstParagraphScore, e.HeadingsScore,
		e.ReadabilityScore, e.MetaDescriptionScore, string(notesJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Report{ID: id, ArticleID: articleID, Evaluation: *e}, nil
}

// GetLatest returns the most recent report for an article, or nil when the
// article has never been evaluated.
func (r *Repository) GetLatest(articleID int64) (*Report, error) {
	rows, err := r.db.Query(`
		SELECT id, article_id, total_score, keyword_density, keyword_density_score,
		       keyword_coverage_score, first_paragraph_score, headings_score,
		       readability_score, meta_description_score, notes, created_at
		FROM reports
		WHERE article_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanReport(rows)
}

// ListForArticle returns all reports for an article, newest first.
func (r *Repository) ListForArticle(articleID int64) ([]Report, error) {
	rows, err := r.db.Query(`
		SELECT id, article_id, total_score, keyword_density, keyword_density_score,
		       keyword_coverage_score, first_paragraph_score, headings_score,
		       readability_score, meta_description_score, notes, created_at
		FROM reports
		WHERE article_id = ?
		ORDER BY created_at DESC, id DESC
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}
	return reports, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*Report, error) {
	var rep Report
	var notesJSON string
	if err := row.Scan(
		&rep.ID, &rep.ArticleID, &rep.TotalScore, &rep.KeywordDensity,
		&rep.KeywordDensityScore, &rep.KeywordCoverageScore, &rep.FirstParagraphScore,
		&rep.HeadingsScore, &rep.ReadabilityScore, &rep.MetaDescriptionScore,
		&notesJSON, &rep.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}
	if notesJSON != "" {
		if err := json.Unmarshal([]byte(notesJSON), &rep.Notes); err != nil {
			return nil, fmt.Errorf("corrupt notes for report %d: %w", rep.ID, err)
		}
	}
	return &rep, nil
}
