package webml

import "strings"

// SummaryParagraphs is the number of paragraph blocks joined into the
// document summary.
const SummaryParagraphs = 8

// Summarize joins the first SummaryParagraphs paragraph blocks with blank
// lines. Returns nil when there are no paragraph blocks.
func Summarize(blocks []TextBlock) *string {
	parts := make([]string, 0, SummaryParagraphs)
	for _, b := range blocks {
		if b.Kind != BlockParagraph {
			continue
		}
		parts = append(parts, b.Text)
		if len(parts) == SummaryParagraphs {
			break
		}
	}

	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, "\n\n")
	return &s
}
