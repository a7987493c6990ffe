package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ariadne/internal/search"
	"ariadne/internal/web"
)

type fakeSearcher struct {
	results []search.Result
	err     error
}

func (f fakeSearcher) Search(_ context.Context, _ string) ([]search.Result, error) {
	return f.results, f.err
}

type fakeFetcher struct {
	page *web.Page
	err  error
}

func (f fakeFetcher) Fetch(_ context.Context, _ string) (*web.Page, error) {
	return f.page, f.err
}

func TestWebSearchToolMergesProviders(t *testing.T) {
	wiki := fakeSearcher{results: []search.Result{{Title: "Quantum computing", Snippet: "Uses qubits."}}}
	ddg := fakeSearcher{results: []search.Result{{Title: "Intro to QC", URL: "https://example.com", Snippet: "A primer."}}}
	tool := NewWebSearchTool(wiki, ddg)

	result, err := tool.Execute(context.Background(), map[string]any{"query": "quantum computing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Text()
	if !strings.Contains(text, "### Wikipedia:\nPage: Quantum computing\nSummary: Uses qubits.") {
		t.Errorf("wikipedia section malformed:\n%s", text)
	}
	if !strings.Contains(text, "### DuckDuckGo:\n- Intro to QC (https://example.com): A primer.") {
		t.Errorf("duckduckgo section malformed:\n%s", text)
	}
}

func TestWebSearchToolProviderFailure(t *testing.T) {
	tool := NewWebSearchTool(fakeSearcher{err: errors.New("rate limited")}, fakeSearcher{})

	result, err := tool.Execute(context.Background(), map[string]any{"query": "q"})
	if err != nil {
		t.Fatalf("tool must not propagate errors, got %v", err)
	}
	if result.Text() != "Search error: rate limited" {
		t.Fatalf("unexpected result: %q", result.Text())
	}
}

func TestWebSearchToolNoResults(t *testing.T) {
	tool := NewWebSearchTool(fakeSearcher{}, fakeSearcher{})

	result, _ := tool.Execute(context.Background(), map[string]any{"query": "q"})
	text := result.Text()
	if !strings.Contains(text, "No good Wikipedia Search Result was found") ||
		!strings.Contains(text, "No good DuckDuckGo Search Result was found") {
		t.Fatalf("missing empty-result notices:\n%s", text)
	}
}

func TestProcessWebpageToolSummarizes(t *testing.T) {
	fetcher := fakeFetcher{page: &web.Page{URL: "https://example.com", Title: "Example", Content: "page text"}}
	gen := &fakeGenerator{response: "A short summary."}
	tool := NewProcessWebpageTool(fetcher, gen, "")

	result, err := tool.Execute(context.Background(), map[string]any{"url": "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text() != "### Summary of https://example.com\n\nA short summary." {
		t.Fatalf("unexpected result: %q", result.Text())
	}
	if !strings.Contains(gen.lastPrompt, "page text") {
		t.Errorf("content not passed to summarizer: %s", gen.lastPrompt)
	}
}

func TestProcessWebpageToolTruncatesLongPages(t *testing.T) {
	long := strings.Repeat("a", maxPageChars+500)
	fetcher := fakeFetcher{page: &web.Page{URL: "u", Content: long}}
	gen := &fakeGenerator{response: "ok"}
	tool := NewProcessWebpageTool(fetcher, gen, "")

	if _, err := tool.Execute(context.Background(), map[string]any{"url": "u"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, strings.Repeat("a", maxPageChars)+"...") {
		t.Error("content not truncated to the page limit")
	}
	if strings.Contains(gen.lastPrompt, strings.Repeat("a", maxPageChars+1)) {
		t.Error("prompt contains more than the page limit")
	}
}

func TestProcessWebpageToolEmptyContent(t *testing.T) {
	fetcher := fakeFetcher{page: &web.Page{URL: "https://example.com", Content: ""}}
	tool := NewProcessWebpageTool(fetcher, &fakeGenerator{}, "")

	result, _ := tool.Execute(context.Background(), map[string]any{"url": "https://example.com"})
	if result.Text() != "Could not extract content from https://example.com" {
		t.Fatalf("unexpected result: %q", result.Text())
	}
}

func TestProcessWebpageToolFetchFailure(t *testing.T) {
	fetcher := fakeFetcher{err: errors.New("connection refused")}
	tool := NewProcessWebpageTool(fetcher, &fakeGenerator{}, "")

	result, err := tool.Execute(context.Background(), map[string]any{"url": "u"})
	if err != nil {
		t.Fatalf("tool must not propagate errors, got %v", err)
	}
	if !strings.Contains(result.Text(), "Error processing webpage: connection refused") {
		t.Fatalf("unexpected result: %q", result.Text())
	}
}

func TestResearchNotesTool(t *testing.T) {
	gen := &fakeGenerator{response: "1. Overview\n..."}
	tool := NewResearchNotesTool(gen, "")

	result, err := tool.Execute(context.Background(), map[string]any{"topic": "climate change"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.Text(), "### Research Notes: climate change\n\n") {
		t.Fatalf("unexpected result: %q", result.Text())
	}
	if !strings.Contains(gen.lastPrompt, "climate change") {
		t.Errorf("topic not substituted in prompt")
	}
}

func TestResearchNotesToolFailure(t *testing.T) {
	tool := NewResearchNotesTool(&fakeGenerator{err: errors.New("boom")}, "")

	result, err := tool.Execute(context.Background(), map[string]any{"topic": "t"})
	if err != nil {
		t.Fatalf("tool must not propagate errors, got %v", err)
	}
	if result.Text() != "Error generating research notes: boom" {
		t.Fatalf("unexpected result: %q", result.Text())
	}
}

func TestManagerRegistersStandardTools(t *testing.T) {
	m := NewManager(Deps{Generator: &fakeGenerator{}, Wikipedia: fakeSearcher{}, DuckDuckGo: fakeSearcher{}, Fetcher: fakeFetcher{}})

	names := make([]string, 0, 4)
	for _, tool := range m.GetAllTools() {
		names = append(names, tool.Name())
	}
	want := []string{"web_search", "process_webpage", "generate_research_notes", "generate_knowledge_graph"}
	if len(names) != len(want) {
		t.Fatalf("expected %d tools, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("tool %d: got %s, want %s", i, names[i], name)
		}
	}
}

func TestRegistryValidatesArgs(t *testing.T) {
	m := NewManager(Deps{Generator: &fakeGenerator{}, Wikipedia: fakeSearcher{}, DuckDuckGo: fakeSearcher{}, Fetcher: fakeFetcher{}})

	if _, err := m.Execute(context.Background(), "web_search", map[string]any{}); err == nil {
		t.Error("expected error for missing required parameter")
	}
	if _, err := m.Execute(context.Background(), "web_search", map[string]any{"query": "q", "bogus": true}); err == nil {
		t.Error("expected error for unknown parameter")
	}
	if _, err := m.Execute(context.Background(), "no_such_tool", map[string]any{}); err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestManagerSchemas(t *testing.T) {
	m := NewManager(Deps{Generator: &fakeGenerator{}, Wikipedia: fakeSearcher{}, DuckDuckGo: fakeSearcher{}, Fetcher: fakeFetcher{}})

	schemas := m.Schemas()
	if len(schemas) != 4 {
		t.Fatalf("expected 4 schemas, got %d", len(schemas))
	}
	first := schemas[0]
	if first.Name != "web_search" {
		t.Errorf("unexpected first schema: %s", first.Name)
	}
	props, ok := first.Parameters["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema missing properties: %#v", first.Parameters)
	}
	if _, ok := props["query"]; !ok {
		t.Errorf("web_search schema missing query property")
	}
	required, _ := first.Parameters["required"].([]string)
	if len(required) != 1 || required[0] != "query" {
		t.Errorf("unexpected required list: %v", required)
	}
}
