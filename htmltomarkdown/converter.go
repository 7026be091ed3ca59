// Package htmltomarkdown renders sanitized HTML fragments as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/webml"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Converter implements webml.Converter at compile time.
var _ webml.Converter = (*Converter)(nil)

// Converter sanitizes HTML with bluemonday's UGC policy and converts the
// result to Markdown with html-to-markdown. Both are safe for concurrent
// use once built.
type Converter struct {
	policy *bluemonday.Policy
	conv   *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{
		policy: bluemonday.UGCPolicy(),
		conv:   conv,
	}
}

// Convert transforms an HTML fragment into Markdown. Scripts, event
// handlers and other active content are dropped before conversion.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webml.Errorf(webml.EINVALID, "empty HTML input")
	}

	clean := c.policy.Sanitize(html)

	result, err := c.conv.ConvertString(clean)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
