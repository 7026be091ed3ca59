package webml

// Extraction limits.
const (
	MaxTextBlocks      = 200
	MaxPageLinks       = 400
	MaxContentLinks    = 200
	MinParagraphLength = 40
	MinListItemLength  = 30
	MaxContentLength   = 20000
)

// BlockKind classifies a TextBlock.
type BlockKind string

// Block kinds.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockListItem  BlockKind = "list_item"
)

// BlockOrder controls how text blocks are sequenced.
type BlockOrder int

const (
	// BlockOrderGrouped emits all headings, then all paragraphs, then all
	// list items, each group in document order.
	BlockOrderGrouped BlockOrder = iota

	// BlockOrderDocument emits blocks in reading order.
	BlockOrderDocument
)

// ParseBlockOrder parses "grouped" or "document". The empty string parses
// as BlockOrderGrouped.
func ParseBlockOrder(s string) (BlockOrder, error) {
	switch s {
	case "", "grouped":
		return BlockOrderGrouped, nil
	case "document":
		return BlockOrderDocument, nil
	}
	return BlockOrderGrouped, Errorf(EINVALID, "unknown block order %q", s)
}

// TextBlock is a classified unit of extracted text.
type TextBlock struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// Link is a navigable anchor target. Href is absolute whenever the base
// URL allowed resolution. Text is nil when the anchor had no text.
type Link struct {
	Href string  `json:"href"`
	Text *string `json:"text"`
}

// FormField is a named form control as found in the markup.
// Type is the raw input type ("text", "checkbox", ...) or the tag name
// for select and textarea.
type FormField struct {
	Name     string
	Type     string
	Required bool
}

// Form is an HTML form with its resolved action and normalized method.
type Form struct {
	Action string
	Method Method
	Fields []FormField
}

// NormalizedPage is the structured view of an HTML page produced by a
// Normalizer. It is built once per document and read-only afterwards.
type NormalizedPage struct {
	// Title is the cleaned <title> text; empty when absent.
	Title string

	// Language is the <html lang> attribute; empty when absent.
	Language string

	// Content is the flattened text of the filtered content root.
	Content string

	// ContentHTML is the filtered content root rendered back to HTML.
	ContentHTML string

	// Profile names the site profile that selected the content root,
	// or is empty when the generic candidates were used.
	Profile string

	// Blocks are the typed text blocks of the content root.
	Blocks []TextBlock

	// Links are the deduplicated page-scope links.
	Links []Link

	// ContentLinks are the deduplicated content-root links.
	ContentLinks []Link

	// Forms are all forms of the page in document order.
	Forms []Form
}

// Normalizer turns raw HTML into a NormalizedPage.
type Normalizer interface {
	// Normalize parses the HTML and extracts the page structure.
	// The baseURL is used to resolve relative links and form actions.
	// Malformed HTML is never an error; extraction degrades to empty
	// selections instead.
	Normalize(html string, baseURL string) (*NormalizedPage, error)
}
