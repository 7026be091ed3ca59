// Package pipeline assembles WebML documents. It wires retrieval,
// normalization, semantic extraction and the optional enrichers into a
// single sequential run per request.
package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webml"
)

// Ensure Generator implements webml.Generator at compile time.
var _ webml.Generator = (*Generator)(nil)

// Generator turns a URL into a webml.Document.
//
// Fetcher and Normalizer are required. Enricher, Converter and
// LanguageDetector are optional; when nil, or when they fail, the fields
// they would fill stay null.
type Generator struct {
	Fetcher          webml.Fetcher
	Normalizer       webml.Normalizer
	Enricher         webml.Enricher
	Converter        webml.Converter
	LanguageDetector webml.LanguageDetector
	Policy           webml.PageEntityPolicy

	// Now returns the retrieval timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Generate validates the input, retrieves the URL and assembles the
// document. Validation failures return EINVALID without touching the
// network; retrieval failures are returned unchanged.
func (g *Generator) Generate(ctx context.Context, rawURL string, method webml.RetrievalMethod) (*webml.Document, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}
	if method != webml.RetrievalHTTP {
		return nil, webml.Errorf(webml.EINVALID, "unsupported retrieval method %q", method)
	}

	retrieved, err := g.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return g.Assemble(retrieved, method)
}

// Assemble builds the document for an already retrieved page.
// Non-HTML content bypasses extraction entirely.
func (g *Generator) Assemble(retrieved *webml.RetrievedDocument, method webml.RetrievalMethod) (*webml.Document, error) {
	kind := webml.ClassifyContentType(retrieved.ContentType)

	doc := &webml.Document{
		Kind:    webml.Kind,
		Version: webml.Version,
		Source: webml.Source{
			URL:             retrieved.URL,
			RetrievedAt:     g.now().UTC(),
			ContentType:     kind,
			RetrievalMethod: method,
			Status:          retrieved.Status,
			ContentHash:     ContentHash(retrieved.Text),
		},
		TextBlocks:   []webml.TextBlock{},
		Links:        []webml.Link{},
		ContentLinks: []webml.Link{},
		Entities:     []webml.Entity{},
		Relations:    []webml.Relation{},
		Actions:      []webml.Action{},
	}

	if kind != webml.ContentHTML {
		doc.Content = strings.TrimSpace(retrieved.Text)
		doc.Metadata.Confidence = webml.NonHTMLConfidence
		return doc, nil
	}

	page, err := g.Normalizer.Normalize(retrieved.Text, retrieved.URL)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", retrieved.URL, err)
	}
	sem := webml.ExtractSemantics(page, retrieved.URL, g.Policy)

	doc.Title = optional(page.Title)
	doc.Text = webml.Summarize(page.Blocks)
	doc.Content = page.Content
	doc.Markdown = g.markdown(page)
	doc.TextBlocks = page.Blocks
	doc.Links = page.Links
	doc.ContentLinks = page.ContentLinks
	doc.Entities = sem.Entities
	doc.Relations = sem.Relations
	doc.Actions = sem.Actions
	doc.Metadata = webml.Metadata{
		Title:      optional(page.Title),
		Language:   g.language(page),
		Confidence: sem.Confidence,
	}
	g.enrich(&doc.Metadata, retrieved)

	return doc, nil
}

// language prefers the declared document language and falls back to
// detection on the content text.
func (g *Generator) language(page *webml.NormalizedPage) *string {
	if page.Language != "" {
		return optional(page.Language)
	}
	if g.LanguageDetector == nil || page.Content == "" {
		return nil
	}
	if code, ok := g.LanguageDetector.DetectLanguage(page.Content); ok {
		return optional(code)
	}
	return nil
}

func (g *Generator) markdown(page *webml.NormalizedPage) *string {
	if g.Converter == nil || page.ContentHTML == "" {
		return nil
	}
	md, err := g.Converter.Convert(page.ContentHTML)
	if err != nil {
		return nil
	}
	return optional(md)
}

func (g *Generator) enrich(meta *webml.Metadata, retrieved *webml.RetrievedDocument) {
	if g.Enricher == nil {
		return
	}
	e, err := g.Enricher.Enrich(retrieved.Text, retrieved.URL)
	if err != nil || e == nil {
		return
	}
	meta.Byline = optional(e.Byline)
	meta.Excerpt = optional(e.Excerpt)
	meta.SiteName = optional(e.SiteName)
	meta.PublishedTime = optional(e.PublishedTime)
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// ContentHash fingerprints a retrieved body as hex-encoded xxhash64.
func ContentHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// validateURL accepts absolute http and https URLs with a host.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return webml.Errorf(webml.EINVALID, "url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return webml.Errorf(webml.EINVALID, "invalid url %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return webml.Errorf(webml.EINVALID, "unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return webml.Errorf(webml.EINVALID, "url %q has no host", rawURL)
	}
	return nil
}

// optional returns nil for blank strings so they serialize as null.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
