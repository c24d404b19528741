package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// Post is one published article pulled from an RSS/Atom feed, with its
// content reduced to plain text for scoring.
type Post struct {
	URL         string
	Title       string
	PublishedAt time.Time
	Content     string
}

type Fetcher struct {
	parser *gofeed.Parser
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		parser: gofeed.NewParser(),
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and parses a feed, returning up to limit posts.
// A limit of 0 means all posts.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, limit int) ([]Post, error) {
	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	var posts []Post
	for _, item := range parsed.Items {
		if limit > 0 && len(posts) >= limit {
			break
		}

		post := Post{
			URL:   item.Link,
			Title: item.Title,
		}
		if item.PublishedParsed != nil {
			post.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			post.PublishedAt = *item.UpdatedParsed
		}

		raw := item.Content
		if raw == "" {
			raw = item.Description
		}
		post.Content = htmlToText(raw)

		posts = append(posts, post)
	}

	return posts, nil
}

// DiscoverFeed finds the feed URL advertised by a site's HTML, falling back
// to well-known feed paths.
func (f *Fetcher) DiscoverFeed(siteURL string) (string, error) {
	resp, err := f.client.Get(siteURL)
	if err == nil {
		defer resp.Body.Close()
		if doc, derr := goquery.NewDocumentFromReader(resp.Body); derr == nil {
			href, ok := doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).Attr("href")
			if ok && href != "" {
				if !strings.HasPrefix(href, "http") {
					href = strings.TrimSuffix(siteURL, "/") + "/" + strings.TrimPrefix(href, "/")
				}
				return href, nil
			}
		}
	}

	base := strings.TrimSuffix(siteURL, "/")
	for _, path := range []string{"/feed", "/feed.xml", "/atom.xml", "/rss.xml", "/rss", "/index.xml"} {
		candidate := base + path
		resp, err := f.client.Head(candidate)
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not discover feed for %s", siteURL)
}

// htmlToText strips markup and collapses whitespace.
func htmlToText(raw string) string {
	if raw == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
