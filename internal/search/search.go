// Package search provides the web search providers behind the web_search tool.
package search

// Result is a single search hit.
type Result struct {
	Title   string
	URL     string
	Snippet string
}
