package tools

import (
	"context"
	"fmt"
)

const notesPromptTemplate = `Generate comprehensive research notes on the topic: %s

Structure your notes with the following sections:
1. Overview
2. Key Concepts
3. Important Facts
4. Applications or Implications
5. Open Questions

Make your notes detailed and educational.`

// ResearchNotesTool asks the LLM for structured research notes on a topic.
type ResearchNotesTool struct {
	*BaseTool
	generator Generator
	model     string
}

// NewResearchNotesTool creates the generate_research_notes tool.
func NewResearchNotesTool(generator Generator, model string) *ResearchNotesTool {
	return &ResearchNotesTool{
		BaseTool: NewBaseTool(
			"generate_research_notes",
			"Generate structured research notes on a specific topic.",
			[]Parameter{
				{Name: "topic", Type: "string", Required: true, Description: "Topic to write research notes about"},
			},
		),
		generator: generator,
		model:     model,
	}
}

// Execute generates the notes, reporting failures in the result text.
func (t *ResearchNotesTool) Execute(ctx context.Context, args map[string]any) (ToolResult, error) {
	topic := GetString(args, "topic", "")

	notes, err := t.generator.Complete(ctx, fmt.Sprintf(notesPromptTemplate, topic), t.model)
	if err != nil {
		return ToolResult{Success: true, Data: fmt.Sprintf("Error generating research notes: %v", err)}, nil
	}

	return ToolResult{
		Success: true,
		Data:    fmt.Sprintf("### Research Notes: %s\n\n%s", topic, notes),
	}, nil
}
