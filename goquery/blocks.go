package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webml"
)

// SegmentBlocks walks root and returns its typed text blocks.
//
// With BlockOrderGrouped, headings (h1-h3) come first, then paragraphs,
// then list items, each group in document order. With BlockOrderDocument
// a single pass yields blocks in reading order. Paragraphs shorter than
// webml.MinParagraphLength and list items shorter than
// webml.MinListItemLength are dropped, and the result is capped at
// webml.MaxTextBlocks.
func SegmentBlocks(root *goquery.Selection, order webml.BlockOrder) []webml.TextBlock {
	blocks := []webml.TextBlock{}

	collect := func(selector string) {
		// The root itself may be a block element.
		root.Filter(selector).AddSelection(root.Find(selector)).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if len(blocks) >= webml.MaxTextBlocks {
				return false
			}
			if block, ok := classifyBlock(sel); ok {
				blocks = append(blocks, block)
			}
			return true
		})
	}

	if order == webml.BlockOrderDocument {
		collect("h1, h2, h3, p, li")
		return blocks
	}

	collect("h1, h2, h3")
	collect("p")
	collect("li")
	return blocks
}

// classifyBlock maps an element onto a block, applying the length filters.
func classifyBlock(sel *goquery.Selection) (webml.TextBlock, bool) {
	text := cleanText(sel.Text())
	if text == "" {
		return webml.TextBlock{}, false
	}

	switch goquery.NodeName(sel) {
	case "h1", "h2", "h3":
		return webml.TextBlock{Kind: webml.BlockHeading, Text: text}, true
	case "p":
		if utf8.RuneCountInString(text) < webml.MinParagraphLength {
			return webml.TextBlock{}, false
		}
		return webml.TextBlock{Kind: webml.BlockParagraph, Text: text}, true
	case "li":
		if utf8.RuneCountInString(text) < webml.MinListItemLength {
			return webml.TextBlock{}, false
		}
		return webml.TextBlock{Kind: webml.BlockListItem, Text: text}, true
	}
	return webml.TextBlock{}, false
}
