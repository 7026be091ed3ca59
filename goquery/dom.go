package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed from every content root regardless of site.
// They carry no article text: code, styling, embedded media and page chrome.
const noiseSelectors = "script, style, noscript, svg, canvas, iframe, object, embed, header, footer, nav, aside"

// load parses HTML into a document. The HTML5 parser recovers from any
// malformed markup, so the only failure is a reader error, which cannot
// happen on a string reader; an empty document is used just in case.
func load(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return doc
}

// filterNoise returns a detached copy of root with noise elements and the
// given site-specific selectors removed. The original tree is untouched.
func filterNoise(root *goquery.Selection, extra []string) *goquery.Selection {
	clone := root.Clone()
	clone.Find(noiseSelectors).Remove()
	for _, sel := range extra {
		clone.Find(sel).Remove()
	}
	return clone
}

// cleanText collapses every whitespace run (including non-breaking spaces)
// into a single space and trims the ends.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// optionalText returns nil for empty text so it serializes as null.
func optionalText(s string) *string {
	s = cleanText(s)
	if s == "" {
		return nil
	}
	return &s
}

// truncateRunes cuts s to at most n characters.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// parseBase parses an absolute base URL. Returns nil when the URL is not
// absolute, in which case hrefs are kept verbatim.
func parseBase(raw string) *url.URL {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// resolveURL resolves href against base. When base is nil or href cannot
// be parsed, the raw href is returned unchanged.
func resolveURL(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
