package mock

import (
	"context"

	"github.com/fwojciec/webml"
)

var _ webml.Generator = (*Generator)(nil)

// Generator is a mock implementation of webml.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, url string, method webml.RetrievalMethod) (*webml.Document, error)
}

func (g *Generator) Generate(ctx context.Context, url string, method webml.RetrievalMethod) (*webml.Document, error) {
	return g.GenerateFn(ctx, url, method)
}
