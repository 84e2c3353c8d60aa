package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const requestTimeout = 20 * time.Second

// WikipediaScraper implements domain.ArticleScraper with a colly collector.
// The article title is the first h1 element; the body is the concatenated
// paragraph text of the mw-content-text container, with reference markers
// and tables stripped.
type WikipediaScraper struct {
	userAgent string
}

// NewWikipediaScraper creates a new scraper using the given User-Agent
func NewWikipediaScraper(userAgent string) domain.ArticleScraper {
	return &WikipediaScraper{userAgent: userAgent}
}

// Scrape fetches the page and extracts (title, plain-text body)
func (s *WikipediaScraper) Scrape(ctx context.Context, pageURL string) (*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// One collector per call; scrapes share no state between requests
	c := colly.NewCollector(colly.UserAgent(s.userAgent))
	c.SetRequestTimeout(requestTimeout)

	var (
		title        string
		paragraphs   []string
		foundContent bool
		fetchErr     error
	)

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if title == "" {
			title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("div#mw-content-text", func(e *colly.HTMLElement) {
		foundContent = true
		// Reference markers and tables are noise, not prose
		e.DOM.Find("sup").Remove()
		e.DOM.Find("table").Remove()
		e.DOM.Find("p").Each(func(_ int, p *goquery.Selection) {
			if text := strings.TrimSpace(p.Text()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("failed to fetch page (status %d): %w", r.StatusCode, err)
	})

	if err := c.Visit(pageURL); err != nil && fetchErr == nil {
		fetchErr = fmt.Errorf("failed to fetch page: %w", err)
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if title == "" {
		return nil, fmt.Errorf("could not find article title")
	}
	if !foundContent {
		return nil, fmt.Errorf("could not find main content area")
	}

	article := &domain.Article{
		URL:     pageURL,
		Title:   title,
		Content: strings.Join(paragraphs, " "),
	}

	logger.Get().Info("Scraped article",
		zap.String("url", pageURL),
		zap.String("title", title),
		zap.Int("content_length", len(article.Content)),
	)

	return article, nil
}

var _ domain.ArticleScraper = (*WikipediaScraper)(nil)
