package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Turing Award - Wikipedia</title></head>
<body>
<h1 id="firstHeading">Turing Award</h1>
<div id="mw-content-text">
	<p>The Turing Award is an annual prize given by the ACM.<sup>[1]</sup></p>
	<table class="infobox"><tr><td>Should not appear</td></tr></table>
	<p>It is generally recognized as the highest distinction in computer science.<sup>[2]</sup></p>
	<p>   </p>
</div>
</body>
</html>`

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestScrapeExtractsTitleAndParagraphs(t *testing.T) {
	srv := serveHTML(t, articleHTML)
	s := NewWikipediaScraper("wiki-quiz-test/1.0")

	article, err := s.Scrape(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.NotNil(t, article)
	assert.Equal(t, srv.URL, article.URL)
	assert.Equal(t, "Turing Award", article.Title)
	assert.Contains(t, article.Content, "annual prize given by the ACM")
	assert.Contains(t, article.Content, "highest distinction in computer science")
}

func TestScrapeStripsReferenceMarkersAndTables(t *testing.T) {
	srv := serveHTML(t, articleHTML)
	s := NewWikipediaScraper("wiki-quiz-test/1.0")

	article, err := s.Scrape(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.NotContains(t, article.Content, "[1]")
	assert.NotContains(t, article.Content, "[2]")
	assert.NotContains(t, article.Content, "Should not appear")
}

func TestScrapeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	s := NewWikipediaScraper("wiki-quiz-test/1.0")

	article, err := s.Scrape(context.Background(), srv.URL+"/wiki/Missing")
	assert.Error(t, err)
	assert.Nil(t, article)
}

func TestScrapeMissingTitle(t *testing.T) {
	srv := serveHTML(t, `<html><body><div id="mw-content-text"><p>Body only.</p></div></body></html>`)
	s := NewWikipediaScraper("wiki-quiz-test/1.0")

	article, err := s.Scrape(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Nil(t, article)
	assert.Contains(t, err.Error(), "title")
}

func TestScrapeMissingContentArea(t *testing.T) {
	srv := serveHTML(t, `<html><body><h1>Orphan Heading</h1><p>No content container.</p></body></html>`)
	s := NewWikipediaScraper("wiki-quiz-test/1.0")

	article, err := s.Scrape(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Nil(t, article)
	assert.Contains(t, err.Error(), "main content area")
}

func TestScrapeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewWikipediaScraper("wiki-quiz-test/1.0")
	article, err := s.Scrape(ctx, "https://en.wikipedia.org/wiki/Turing_Award")
	assert.Error(t, err)
	assert.Nil(t, article)
}
