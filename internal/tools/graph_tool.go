package tools

import (
	"context"
	"fmt"

	"ariadne/internal/kg"
)

const graphPromptTemplate = `From the topic %s, identify key entities (people, places, organizations, concepts)
and their relationships. Format as a list of triples with the format:

entity1 | relationship | entity2

For example:
Albert Einstein | developed | Theory of Relativity

Return at least 7 and at most 12 triples that form a coherent knowledge graph about %s.`

// KnowledgeGraphTool asks the LLM for triples about a topic, parses them, and
// renders a mermaid diagram report. It never returns an error: an upstream
// generation failure becomes an error report string, and no partial diagram
// is ever produced.
type KnowledgeGraphTool struct {
	*BaseTool
	generator Generator
	model     string
	sink      TableSink
}

// NewKnowledgeGraphTool creates the generate_knowledge_graph tool. The sink
// may be nil when no console display is wanted.
func NewKnowledgeGraphTool(generator Generator, model string, sink TableSink) *KnowledgeGraphTool {
	return &KnowledgeGraphTool{
		BaseTool: NewBaseTool(
			"generate_knowledge_graph",
			"Create a visual knowledge graph about a topic showing relationships between key concepts.",
			[]Parameter{
				{Name: "topic", Type: "string", Required: true, Description: "Topic to build a knowledge graph for"},
			},
		),
		generator: generator,
		model:     model,
		sink:      sink,
	}
}

// Execute runs the extraction pipeline. The returned result always carries a
// string, whether the generation succeeded, produced no usable triples, or
// failed outright.
func (t *KnowledgeGraphTool) Execute(ctx context.Context, args map[string]any) (ToolResult, error) {
	topic := GetString(args, "topic", "")

	raw, err := t.generator.Complete(ctx, fmt.Sprintf(graphPromptTemplate, topic, topic), t.model)
	if err != nil {
		return ToolResult{
			Success: true,
			Data:    fmt.Sprintf("Error generating knowledge graph: %v", err),
		}, nil
	}

	triples := kg.ParseTriples(raw)
	report := kg.BuildReport(topic, triples)
	stats := kg.Summarize(triples)

	t.renderTable(topic, triples)

	return ToolResult{
		Success: true,
		Data:    report,
		Meta: map[string]any{
			"entities":    stats.Entities,
			"relations":   stats.RelationTypes,
			"connections": stats.Connections,
		},
	}, nil
}

// renderTable feeds the triples to the display sink. A misbehaving sink must
// not cost the caller its report, so panics stop here.
func (t *KnowledgeGraphTool) renderTable(topic string, triples []kg.Triple) {
	if t.sink == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	t.sink.RenderTriples(topic, triples)
}
