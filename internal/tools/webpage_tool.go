package tools

import (
	"context"
	"fmt"
)

// maxPageChars bounds how much page text is handed to the summarizer.
const maxPageChars = 8000

const summaryPromptTemplate = "Summarize the following webpage content:\n\n%s\n\nProvide a concise summary with key points."

// ProcessWebpageTool fetches a URL, strips it to text, and asks the LLM for
// a summary.
type ProcessWebpageTool struct {
	*BaseTool
	fetcher   Fetcher
	generator Generator
	model     string
}

// NewProcessWebpageTool creates the process_webpage tool.
func NewProcessWebpageTool(fetcher Fetcher, generator Generator, model string) *ProcessWebpageTool {
	return &ProcessWebpageTool{
		BaseTool: NewBaseTool(
			"process_webpage",
			"Process a webpage URL and extract key information.",
			[]Parameter{
				{Name: "url", Type: "string", Required: true, Description: "URL of the webpage to summarize"},
			},
		),
		fetcher:   fetcher,
		generator: generator,
		model:     model,
	}
}

// Execute fetches and summarizes the page. All failures become readable
// result text.
func (t *ProcessWebpageTool) Execute(ctx context.Context, args map[string]any) (ToolResult, error) {
	pageURL := GetString(args, "url", "")

	page, err := t.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return ToolResult{Success: true, Data: fmt.Sprintf("Error processing webpage: %v", err)}, nil
	}

	content := page.Content
	if content == "" {
		return ToolResult{Success: true, Data: fmt.Sprintf("Could not extract content from %s", pageURL)}, nil
	}
	if len(content) > maxPageChars {
		content = content[:maxPageChars] + "..."
	}

	summary, err := t.generator.Complete(ctx, fmt.Sprintf(summaryPromptTemplate, content), t.model)
	if err != nil {
		return ToolResult{Success: true, Data: fmt.Sprintf("Error processing webpage: %v", err)}, nil
	}

	return ToolResult{
		Success: true,
		Data:    fmt.Sprintf("### Summary of %s\n\n%s", pageURL, summary),
		Meta:    map[string]any{"title": page.Title, "content_chars": len(content)},
	}, nil
}
