package domain

import "context"

// ArticleScraper fetches a Wikipedia article and extracts its title and
// plain-text body. It fails on a non-success fetch status or when the
// expected structural elements are missing.
type ArticleScraper interface {
	Scrape(ctx context.Context, url string) (*Article, error)
}
