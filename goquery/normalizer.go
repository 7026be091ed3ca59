// Package goquery implements HTML normalization with goquery: DOM loading,
// noise filtering, content root selection, block segmentation, and link
// and form extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webml"
)

// Ensure Normalizer implements webml.Normalizer at compile time.
var _ webml.Normalizer = (*Normalizer)(nil)

// Normalizer builds a webml.NormalizedPage from raw HTML.
//
// The page is parsed once. Page-scope links, forms, title and language
// come from the untouched tree; blocks, content text and content-scope
// links come from a filtered clone of the content root, so the two scopes
// never interfere.
type Normalizer struct {
	registry         *Registry
	blockOrder       webml.BlockOrder
	pageLinkLimit    int
	contentLinkLimit int
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithBlockOrder sets how text blocks are sequenced.
// Defaults to webml.BlockOrderGrouped.
func WithBlockOrder(order webml.BlockOrder) Option {
	return func(n *Normalizer) {
		n.blockOrder = order
	}
}

// WithPageLinkLimit caps the page-scope links.
// Values outside 1..webml.MaxPageLinks are ignored.
func WithPageLinkLimit(limit int) Option {
	return func(n *Normalizer) {
		if limit > 0 && limit <= webml.MaxPageLinks {
			n.pageLinkLimit = limit
		}
	}
}

// NewNormalizer creates a Normalizer. A nil registry uses DefaultProfiles.
func NewNormalizer(registry *Registry, opts ...Option) *Normalizer {
	if registry == nil {
		registry = NewRegistry(DefaultProfiles()...)
	}
	n := &Normalizer{
		registry:         registry,
		blockOrder:       webml.BlockOrderGrouped,
		pageLinkLimit:    webml.MaxPageLinks,
		contentLinkLimit: webml.MaxContentLinks,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize parses the HTML and extracts the page structure.
// It never fails on malformed markup.
func (n *Normalizer) Normalize(html string, baseURL string) (*webml.NormalizedPage, error) {
	doc := load(html)
	base := parseBase(baseURL)

	page := &webml.NormalizedPage{
		Title:    cleanText(doc.Find("title").First().Text()),
		Language: strings.TrimSpace(doc.Find("html").First().AttrOr("lang", "")),
		Links:    ExtractLinks(doc.Selection, base, n.pageLinkLimit),
		Forms:    ExtractForms(doc.Selection, base, baseURL),
	}

	root, profile := n.registry.SelectRoot(doc, base)
	var noise []string
	if profile != nil {
		page.Profile = profile.Name
		noise = profile.NoiseSelectors
	}
	content := filterNoise(root, noise)

	page.Blocks = SegmentBlocks(content, n.blockOrder)
	page.ContentLinks = ExtractLinks(content, base, n.contentLinkLimit)
	page.Content = truncateRunes(cleanText(content.Text()), webml.MaxContentLength)
	if contentHTML, err := goquery.OuterHtml(content); err == nil {
		page.ContentHTML = contentHTML
	}

	return page, nil
}
