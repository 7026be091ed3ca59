package webml

// Enrichment holds optional descriptive metadata recovered from a page.
// Empty fields mean the value was not found.
type Enrichment struct {
	Byline        string
	Excerpt       string
	SiteName      string
	PublishedTime string // ISO-8601 date
}

// Enricher recovers descriptive metadata (author, summary, site name,
// publication date) that the structural extraction does not cover.
type Enricher interface {
	// Enrich processes raw HTML fetched from pageURL.
	Enrich(html string, pageURL string) (*Enrichment, error)
}
