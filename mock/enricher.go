package mock

import "github.com/fwojciec/webml"

var _ webml.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of webml.Enricher.
type Enricher struct {
	EnrichFn func(html, pageURL string) (*webml.Enrichment, error)
}

func (e *Enricher) Enrich(html, pageURL string) (*webml.Enrichment, error) {
	return e.EnrichFn(html, pageURL)
}
