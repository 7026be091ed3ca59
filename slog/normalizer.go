package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webml"
)

// Ensure LoggingNormalizer implements webml.Normalizer.
var _ webml.Normalizer = (*LoggingNormalizer)(nil)

// LoggingNormalizer wraps a Normalizer with debug logging of the selected
// profile and the extracted counts.
type LoggingNormalizer struct {
	next   webml.Normalizer
	logger *slog.Logger
}

// NewLoggingNormalizer creates a new LoggingNormalizer.
func NewLoggingNormalizer(next webml.Normalizer, logger *slog.Logger) *LoggingNormalizer {
	return &LoggingNormalizer{next: next, logger: logger}
}

// Normalize delegates to the wrapped normalizer and logs the result.
func (n *LoggingNormalizer) Normalize(html, baseURL string) (page *webml.NormalizedPage, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", baseURL}
		if page != nil {
			profile := page.Profile
			if profile == "" {
				profile = "(generic)"
			}
			attrs = append(attrs,
				"profile", profile,
				"blocks", len(page.Blocks),
				"links", len(page.Links),
				"content_links", len(page.ContentLinks),
				"forms", len(page.Forms))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		n.logger.Debug("normalize", attrs...)
	}(time.Now())
	return n.next.Normalize(html, baseURL)
}
