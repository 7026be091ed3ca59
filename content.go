package webml

import "strings"

// ContentKind is the closed set of document kinds the pipeline knows about.
type ContentKind string

// Content kinds.
const (
	ContentHTML ContentKind = "html"
	ContentJSON ContentKind = "json"
	ContentText ContentKind = "text"
	ContentPDF  ContentKind = "pdf"
)

// contentTypeRules is checked in order; the first substring match wins.
var contentTypeRules = []struct {
	substr string
	kind   ContentKind
}{
	{"text/html", ContentHTML},
	{"application/json", ContentJSON},
	{"text/plain", ContentText},
	{"application/pdf", ContentPDF},
}

// ClassifyContentType maps a content-type header to a ContentKind.
// Matching is case-insensitive and ignores parameters such as charset.
// Unknown types fall back to ContentText.
func ClassifyContentType(header string) ContentKind {
	ct := strings.ToLower(header)
	for _, rule := range contentTypeRules {
		if strings.Contains(ct, rule.substr) {
			return rule.kind
		}
	}
	return ContentText
}
