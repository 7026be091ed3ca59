package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webml"
)

// ExtractLinks collects the anchors below scope. Fragment-only hrefs and
// javascript:, mailto: and tel: links are skipped. Hrefs are resolved
// against base (kept verbatim when that fails) and deduplicated by the
// resolved value; the first occurrence wins, text included. A limit of
// zero or less means no limit.
func ExtractLinks(scope *goquery.Selection, base *url.URL, limit int) []webml.Link {
	links := []webml.Link{}
	seen := make(map[string]struct{})

	scope.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || isNonNavigable(href) {
			return true
		}

		resolved := resolveURL(base, href)
		if _, ok := seen[resolved]; ok {
			return true
		}
		seen[resolved] = struct{}{}

		links = append(links, webml.Link{
			Href: resolved,
			Text: optionalText(sel.Text()),
		})
		return limit <= 0 || len(links) < limit
	})

	return links
}

// isNonNavigable checks if a href points inside the page or at a
// non-navigable scheme.
func isNonNavigable(href string) bool {
	if strings.HasPrefix(href, "#") {
		return true
	}
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:")
}
