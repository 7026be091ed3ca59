package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webml"
)

// Ensure LoggingGenerator implements webml.Generator.
var _ webml.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   webml.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next webml.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, url string, method webml.RetrievalMethod) (doc *webml.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "method", string(method)}
		if doc != nil {
			attrs = append(attrs,
				"content_type", string(doc.Source.ContentType),
				"blocks", len(doc.TextBlocks),
				"links", len(doc.Links),
				"actions", len(doc.Actions),
				"confidence", doc.Metadata.Confidence)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		g.logger.Info("generate", attrs...)
	}(time.Now())
	return g.next.Generate(ctx, url, method)
}
