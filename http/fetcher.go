// Package http provides the HTTP side of webml: a static-page Fetcher
// implementing webml.Fetcher, a per-host rate limiter, and the JSON API
// handler and server around a webml.Generator.
package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/webml"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize is the default cap on bytes read from a response.
const DefaultMaxBodySize = 10 << 20

// DefaultContentType is reported when the server sends no content type.
const DefaultContentType = "text/plain"

// Ensure Fetcher implements webml.Fetcher at compile time.
var _ webml.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents using plain HTTP GET requests. It follows
// redirects, reports the final URL, and decodes the body to UTF-8 using
// the declared charset. It does not execute JavaScript and never retries.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
	limiter     *DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the identifying client string.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of body bytes read. Longer bodies are
// truncated, not rejected.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBodySize = n
		}
	}
}

// WithRateLimit limits requests to rps per host. Zero disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = NewDomainLimiter(rps)
		} else {
			f.limiter = nil
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   UserAgent(),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// UserAgent returns the default identifying client string.
func UserAgent() string {
	return "webml/" + webml.Version
}

// Fetch retrieves the document at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*webml.RetrievedDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, webml.Errorf(webml.EINVALID, "invalid url %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Hostname()); err != nil {
			return nil, webml.Errorf(webml.EFETCH, "rate limit wait for %s: %v", rawURL, err)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, webml.Errorf(webml.EFETCH, "fetching %s: %v", rawURL, unwrapURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, webml.Errorf(webml.EFETCH, "HTTP %d %s while fetching: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), rawURL)
	}

	contentType := strings.TrimSpace(resp.Header.Get("Content-Type"))
	if contentType == "" {
		contentType = DefaultContentType
	}

	body, err := f.readBody(resp.Body, contentType)
	if err != nil {
		return nil, webml.Errorf(webml.EFETCH, "reading %s: %v", rawURL, err)
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &webml.RetrievedDocument{
		URL:         finalURL,
		Status:      resp.StatusCode,
		ContentType: contentType,
		Text:        body,
	}, nil
}

// readBody reads at most maxBodySize bytes and decodes them to UTF-8.
// Unknown charsets fall back to the raw bytes.
func (f *Fetcher) readBody(r io.Reader, contentType string) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, f.maxBodySize))
	if err != nil {
		return "", err
	}

	decoded, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return string(raw), nil
	}
	text, err := io.ReadAll(decoded)
	if err != nil {
		return string(raw), nil
	}
	return string(text), nil
}

// unwrapURLError strips the "Get \"...\": " prefix net/http adds, since
// the caller already names the URL.
func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
