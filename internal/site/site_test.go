package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
	<title>Acme Roasters</title>
	<meta name="description" content="Small-batch coffee roasted weekly.">
</head>
<body>
	<h1>Fresh Coffee, Delivered</h1>
	<h2>Our   Beans</h2>
	<p>We roast single-origin beans every Monday.</p>
	<p>Subscriptions ship worldwide.</p>
</body>
</html>`

func TestDescribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPage))
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	description, err := fetcher.Describe(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Acme Roasters",
		"Small-batch coffee roasted weekly.",
		"Fresh Coffee, Delivered",
		"Our Beans", // whitespace collapsed
		"We roast single-origin beans every Monday.",
	} {
		if !strings.Contains(description, want) {
			t.Errorf("description missing %q:\n%s", want, description)
		}
	}
}

func TestDescribeNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	if _, err := fetcher.Describe(server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestDescribeEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head></head><body></body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	if _, err := fetcher.Describe(server.URL); err == nil {
		t.Fatal("expected error for page with no describable content")
	}
}
