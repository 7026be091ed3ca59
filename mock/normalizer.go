package mock

import "github.com/fwojciec/webml"

var _ webml.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of webml.Normalizer.
type Normalizer struct {
	NormalizeFn func(html, baseURL string) (*webml.NormalizedPage, error)
}

func (n *Normalizer) Normalize(html, baseURL string) (*webml.NormalizedPage, error) {
	return n.NormalizeFn(html, baseURL)
}
