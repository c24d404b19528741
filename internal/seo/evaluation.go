package seo

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/seopipe/seopipe/internal/content"
)

// Evaluation holds the composite SEO score for one piece of content along
// with the per-check sub-scores. Field names follow the report JSON that
// downstream consumers already parse.
type Evaluation struct {
	TotalScore           int      `json:"total_score"`
	KeywordDensity       float64  `json:"keyword_density"`
	KeywordDensityScore  int      `json:"keyword_density_score"`
	KeywordCoverageScore int      `json:"keyword_coverage_score"`
	FirstParagraphScore  int      `json:"first_paragraph_score"`
	HeadingsScore        int      `json:"headings_score"`
	ReadabilityScore     int      `json:"readability_score"`
	MetaDescriptionScore int      `json:"meta_description_score"`
	Notes                []string `json:"notes"`
}

// EvaluationError reports unusable evaluation input (no keywords, or an
// empty primary keyword).
type EvaluationError struct {
	Reason string
}

func (e *EvaluationError) Error() string { return e.Reason }

// Composite weights. They sum to 1.0.
const (
	weightDensity        = 0.20
	weightCoverage       = 0.15
	weightFirstParagraph = 0.10
	weightHeadings       = 0.20
	weightReadability    = 0.20
	weightMeta           = 0.15
)

// scoreRange maps a raw metric into [0,100] against a target band.
// Zero always fails. Undershoot is dampened to 80% of the linear ratio;
// overshoot falls off at 120% of the relative distance past high, so
// keyword stuffing is punished harder than under-optimization.
func scoreRange(value, low, high float64) int {
	if value == 0 {
		return 0
	}
	if low <= value && value <= high {
		return 100
	}
	if value < low {
		score := int(value / low * 80)
		if score < 0 {
			score = 0
		}
		return score
	}
	divisor := high
	if divisor < 1e-9 {
		divisor = 1e-9
	}
	overshoot := (value - high) / divisor
	score := int(100 - overshoot*120)
	if score < 0 {
		score = 0
	}
	return score
}

// clampScore rounds to the nearest integer and clamps into [0,100].
func clampScore(score float64) int {
	v := int(math.Round(score))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// wholeWordPattern builds a case-sensitive whole-word matcher for an
// already lower-cased term. The term itself is matched literally.
func wholeWordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
}

// Evaluate scores content against a set of target keywords using Yoast-style
// heuristics. The primary keyword defaults to the first keyword when the
// override is empty. Pure and deterministic: identical inputs always produce
// identical results, and it is safe to call from multiple goroutines.
func Evaluate(c content.Content, keywords []string, primaryKeyword string) (*Evaluation, error) {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, &EvaluationError{Reason: "at least one keyword is required for SEO evaluation"}
	}

	primary := primaryKeyword
	if primary == "" {
		primary = cleaned[0]
	}
	primary = strings.TrimSpace(primary)
	if primary == "" {
		return nil, &EvaluationError{Reason: "primary keyword cannot be empty"}
	}
	primaryLower := strings.ToLower(primary)

	bodyLower := strings.ToLower(c.Body)
	words := wordPattern.FindAllString(bodyLower, -1)
	totalWords := len(words)

	// Keyword density: whole-word occurrences of the primary keyword per word.
	primaryMatches := wholeWordPattern(primaryLower).FindAllString(bodyLower, -1)
	var density float64
	if totalWords > 0 {
		density = float64(len(primaryMatches)) / float64(totalWords)
	}
	densityScore := clampScore(float64(scoreRange(density, 0.007, 0.03)))

	// Coverage: how many of the target keywords appear at least once.
	coverageHits := 0
	for _, term := range cleaned {
		if wholeWordPattern(strings.ToLower(term)).MatchString(bodyLower) {
			coverageHits++
		}
	}
	coverageScore := clampScore(float64(coverageHits) / float64(len(cleaned)) * 100)

	// First paragraph: substring check over the first 100 words, not a
	// whole-word match. Downstream scores depend on this looser check.
	firstWords := words
	if len(firstWords) > 100 {
		firstWords = firstWords[:100]
	}
	firstParagraphScore := 0
	if strings.Contains(strings.Join(firstWords, " "), primaryLower) {
		firstParagraphScore = 100
	}

	// Headings: one H1 is worth 40, each H2 is worth 20 up to three.
	hasH1 := false
	h2Count := 0
	for _, line := range strings.Split(c.Body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			hasH1 = true
		}
		if strings.HasPrefix(line, "## ") {
			h2Count++
		}
	}
	headingsScore := 0
	if hasH1 {
		headingsScore += 40
	}
	if h2Count > 3 {
		h2Count = 3
	}
	headingsScore += h2Count * 20
	if headingsScore > 100 {
		headingsScore = 100
	}

	readabilityScore := clampScore(float64(scoreRange(fleschReadingEase(c.Body), 50, 70)))

	// Meta description: full credit for 120-160 chars, partial for the
	// near-miss bands, plus a bonus when the primary keyword appears.
	meta := strings.TrimSpace(c.MetaDescription)
	metaLen := utf8.RuneCountInString(meta)
	metaScore := 0
	switch {
	case metaLen >= 120 && metaLen <= 160:
		metaScore += 70
	case (metaLen >= 90 && metaLen < 120) || (metaLen > 160 && metaLen <= 180):
		metaScore += 40
	}
	if strings.Contains(strings.ToLower(meta), primaryLower) {
		metaScore += 30
	}
	if metaScore > 100 {
		metaScore = 100
	}

	total := clampScore(
		float64(densityScore)*weightDensity +
			float64(coverageScore)*weightCoverage +
			float64(firstParagraphScore)*weightFirstParagraph +
			float64(headingsScore)*weightHeadings +
			float64(readabilityScore)*weightReadability +
			float64(metaScore)*weightMeta,
	)

	var notes []string
	if densityScore < 60 {
		notes = append(notes, "Adjust keyword density to stay within 0.7% - 3%.")
	}
	if coverageScore < 80 {
		notes = append(notes, "Ensure all target keywords appear at least once.")
	}
	if firstParagraphScore == 0 {
		notes = append(notes, "Include the primary keyword within the first 100 words.")
	}
	if headingsScore < 80 {
		notes = append(notes, "Use clear H1 and multiple H2 headings for structure.")
	}
	if readabilityScore < 65 {
		notes = append(notes, "Simplify language to improve readability (Flesch 50-70 target).")
	}
	if metaScore < 90 {
		notes = append(notes, "Optimize meta description length and include the primary keyword.")
	}

	return &Evaluation{
		TotalScore:           total,
		KeywordDensity:       density,
		KeywordDensityScore:  densityScore,
		KeywordCoverageScore: coverageScore,
		FirstParagraphScore:  firstParagraphScore,
		HeadingsScore:        headingsScore,
		ReadabilityScore:     readabilityScore,
		MetaDescriptionScore: metaScore,
		Notes:                notes,
	}, nil
}
