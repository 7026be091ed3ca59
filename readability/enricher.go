// Package readability recovers article metadata with go-readability.
package readability

import (
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/webml"
	"github.com/go-shiori/go-readability"
)

// Ensure Enricher implements webml.Enricher at compile time.
var _ webml.Enricher = (*Enricher)(nil)

// Enricher wraps go-readability to read the byline, excerpt, site name and
// publication date of a page. Content extraction itself stays with the
// normalizer; only the metadata is used here.
type Enricher struct{}

// NewEnricher creates a new Enricher.
func NewEnricher() *Enricher {
	return &Enricher{}
}

// Enrich parses raw HTML fetched from pageURL.
func (e *Enricher) Enrich(rawHTML string, pageURL string) (*webml.Enrichment, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webml.Errorf(webml.EINVALID, "empty HTML input")
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, webml.Errorf(webml.EINVALID, "invalid page url %q: %v", pageURL, err)
	}

	// Parser keeps per-document state, so each call gets its own.
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}

	enrichment := &webml.Enrichment{
		Byline:   strings.TrimSpace(article.Byline),
		Excerpt:  strings.TrimSpace(article.Excerpt),
		SiteName: strings.TrimSpace(article.SiteName),
	}
	if article.PublishedTime != nil {
		enrichment.PublishedTime = article.PublishedTime.UTC().Format(time.RFC3339)
	}
	return enrichment, nil
}
