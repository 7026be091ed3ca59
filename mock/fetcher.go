package mock

import (
	"context"

	"github.com/fwojciec/webml"
)

var _ webml.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webml.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*webml.RetrievedDocument, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*webml.RetrievedDocument, error) {
	return f.FetchFn(ctx, url)
}
