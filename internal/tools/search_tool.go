package tools

import (
	"context"
	"fmt"
	"strings"

	"ariadne/internal/search"
)

// WebSearchTool queries Wikipedia and DuckDuckGo and merges the results into
// a single text report. Failures are reported in the result text rather than
// as errors, so the assistant always has something to relay.
type WebSearchTool struct {
	*BaseTool
	wikipedia  Searcher
	duckduckgo Searcher
}

// NewWebSearchTool creates the web_search tool.
func NewWebSearchTool(wikipedia, duckduckgo Searcher) *WebSearchTool {
	return &WebSearchTool{
		BaseTool: NewBaseTool(
			"web_search",
			"Search the web for information about a topic or question.",
			[]Parameter{
				{Name: "query", Type: "string", Required: true, Description: "Topic or question to search for"},
			},
		),
		wikipedia:  wikipedia,
		duckduckgo: duckduckgo,
	}
}

// Execute runs both search providers and formats the combined report.
func (t *WebSearchTool) Execute(ctx context.Context, args map[string]any) (ToolResult, error) {
	query := GetString(args, "query", "")

	wikiResults, err := t.wikipedia.Search(ctx, query)
	if err != nil {
		return ToolResult{Success: true, Data: fmt.Sprintf("Search error: %v", err)}, nil
	}

	ddgResults, err := t.duckduckgo.Search(ctx, query)
	if err != nil {
		return ToolResult{Success: true, Data: fmt.Sprintf("Search error: %v", err)}, nil
	}

	report := fmt.Sprintf("### Wikipedia:\n%s\n\n### DuckDuckGo:\n%s",
		formatWikipedia(wikiResults), formatDuckDuckGo(ddgResults))

	return ToolResult{
		Success: true,
		Data:    report,
		Meta: map[string]any{
			"wikipedia_results":  len(wikiResults),
			"duckduckgo_results": len(ddgResults),
		},
	}, nil
}

func formatWikipedia(results []search.Result) string {
	if len(results) == 0 {
		return "No good Wikipedia Search Result was found"
	}
	sections := make([]string, 0, len(results))
	for _, r := range results {
		sections = append(sections, fmt.Sprintf("Page: %s\nSummary: %s", r.Title, r.Snippet))
	}
	return strings.Join(sections, "\n\n")
}

func formatDuckDuckGo(results []search.Result) string {
	if len(results) == 0 {
		return "No good DuckDuckGo Search Result was found"
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		line := fmt.Sprintf("- %s (%s)", r.Title, r.URL)
		if r.Snippet != "" {
			line += ": " + r.Snippet
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
