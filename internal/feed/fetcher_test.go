package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Example Blog</title>
	<link>https://example.com</link>
	<item>
		<title>First Post</title>
		<link>https://example.com/first</link>
		<pubDate>Mon, 02 Jan 2023 15:04:05 GMT</pubDate>
		<description>&lt;p&gt;Hello &lt;b&gt;world&lt;/b&gt; from the first post.&lt;/p&gt;</description>
	</item>
	<item>
		<title>Second Post</title>
		<link>https://example.com/second</link>
		<description>Plain text body.</description>
	</item>
</channel>
</rss>`

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	posts, err := fetcher.Fetch(context.Background(), server.URL, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}

	first := posts[0]
	if first.Title != "First Post" {
		t.Errorf("unexpected title: %s", first.Title)
	}
	if first.Content != "Hello world from the first post." {
		t.Errorf("HTML should be stripped, got %q", first.Content)
	}
	if first.PublishedAt.IsZero() {
		t.Error("expected a parsed publish date")
	}
}

func TestFetchLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	posts, err := fetcher.Fetch(context.Background(), server.URL, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Errorf("expected limit of 1 post, got %d", len(posts))
	}
}

func TestDiscoverFeedFromLinkTag(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<link rel="alternate" type="application/rss+xml" href="` + server.URL + `/custom-feed.xml">
		</head><body></body></html>`))
	})

	fetcher := NewFetcher(5 * time.Second)
	feedURL, err := fetcher.DiscoverFeed(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if feedURL != server.URL+"/custom-feed.xml" {
		t.Errorf("unexpected feed URL: %s", feedURL)
	}
}

func TestDiscoverFeedFallbackPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<html><head></head><body></body></html>"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	feedURL, err := fetcher.DiscoverFeed(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if feedURL != server.URL+"/feed" {
		t.Errorf("unexpected feed URL: %s", feedURL)
	}
}

func TestHTMLToText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"plain", "plain"},
		{"", ""},
		{"<div>\n  spaced \n  out  </div>", "spaced out"},
	}
	for _, tc := range cases {
		if got := htmlToText(tc.in); got != tc.want {
			t.Errorf("htmlToText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
