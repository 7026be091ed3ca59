// Package slog provides log/slog decorators for the webml services.
// Each decorator logs one line per call with its inputs, result counts,
// duration and error.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webml"
)

// Ensure LoggingFetcher implements webml.Fetcher.
var _ webml.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   webml.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webml.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *webml.RetrievedDocument, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if doc != nil {
			attrs = append(attrs,
				"final_url", doc.URL,
				"status", doc.Status,
				"content_type", doc.ContentType,
				"bytes", len(doc.Text))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
