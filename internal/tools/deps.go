package tools

import (
	"context"

	"ariadne/internal/kg"
	"ariadne/internal/search"
	"ariadne/internal/web"
)

// Generator produces a text completion for a prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string, model string) (string, error)
}

// Searcher returns ranked results for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

// Fetcher retrieves a webpage as markdown text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*web.Page, error)
}

// TableSink receives extracted triples for console display. It is a pure
// side channel: whatever the sink does must not influence tool results.
type TableSink interface {
	RenderTriples(topic string, triples []kg.Triple)
}
