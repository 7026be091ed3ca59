package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/webml"
	"github.com/fwojciec/webml/mock"
	webmlslog "github.com/fwojciec/webml/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("logs profile and counts at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Normalizer{
			NormalizeFn: func(html, baseURL string) (*webml.NormalizedPage, error) {
				return &webml.NormalizedPage{
					Profile: "wikipedia",
					Blocks:  []webml.TextBlock{{Kind: webml.BlockHeading, Text: "H"}},
					Links:   []webml.Link{{Href: "https://a"}, {Href: "https://b"}},
				}, nil
			},
		}

		page, err := webmlslog.NewLoggingNormalizer(inner, logger).Normalize("<html></html>", "https://en.wikipedia.org/wiki/Go")

		require.NoError(t, err)
		assert.Equal(t, "wikipedia", page.Profile)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=normalize")
		assert.Contains(t, output, "profile=wikipedia")
		assert.Contains(t, output, "blocks=1")
		assert.Contains(t, output, "links=2")
	})

	t.Run("names generic pages", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Normalizer{
			NormalizeFn: func(html, baseURL string) (*webml.NormalizedPage, error) {
				return &webml.NormalizedPage{}, nil
			},
		}

		_, err := webmlslog.NewLoggingNormalizer(inner, logger).Normalize("", "https://ex.com/")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "profile=(generic)")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Normalizer{
			NormalizeFn: func(html, baseURL string) (*webml.NormalizedPage, error) {
				return &webml.NormalizedPage{}, nil
			},
		}

		_, err := webmlslog.NewLoggingNormalizer(inner, logger).Normalize("", "https://ex.com/")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
