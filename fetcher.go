package webml

import "context"

// RetrievalMethod identifies how a document was retrieved.
type RetrievalMethod string

// Supported retrieval methods.
const (
	RetrievalHTTP RetrievalMethod = "http"
)

// RetrievedDocument is the raw result of a single retrieval.
type RetrievedDocument struct {
	// URL is the final URL after redirects.
	URL string

	// Status is the HTTP status code of the final response.
	Status int

	// ContentType is the declared content-type header.
	ContentType string

	// Text is the response body decoded to UTF-8.
	Text string
}

// Fetcher retrieves raw documents from URLs.
// Implementations do a single attempt and never retry.
type Fetcher interface {
	// Fetch retrieves the URL, following redirects.
	// Network failures and non-2xx responses return an EFETCH error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*RetrievedDocument, error)
}
