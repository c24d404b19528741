package site

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxBodyExcerpt = 1200

// Fetcher downloads a page and distills it into a short description
// suitable as keyword-extraction input.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Describe fetches pageURL and condenses its title, meta description,
// headings, and leading paragraph text into one description string.
func (f *Fetcher) Describe(pageURL string) (string, error) {
	resp, err := f.client.Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s returned status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var parts []string
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		parts = append(parts, title)
	}
	if meta, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		if meta = strings.TrimSpace(meta); meta != "" {
			parts = append(parts, meta)
		}
	}

	var headings []string
	doc.Find("h1, h2").Each(func(_ int, sel *goquery.Selection) {
		if text := normalizeSpace(sel.Text()); text != "" {
			headings = append(headings, text)
		}
	})
	if len(headings) > 0 {
		parts = append(parts, "Topics: "+strings.Join(headings, "; "))
	}

	var excerpt strings.Builder
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := normalizeSpace(sel.Text())
		if text == "" {
			return true
		}
		if excerpt.Len() > 0 {
			excerpt.WriteString(" ")
		}
		excerpt.WriteString(text)
		return excerpt.Len() < maxBodyExcerpt
	})
	if excerpt.Len() > 0 {
		text := excerpt.String()
		if len(text) > maxBodyExcerpt {
			text = text[:maxBodyExcerpt]
		}
		parts = append(parts, text)
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no describable content found at %s", pageURL)
	}

	return strings.Join(parts, ". "), nil
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
