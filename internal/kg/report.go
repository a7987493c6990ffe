package kg

import (
	"fmt"
	"strings"
)

// Stats summarizes a triple set.
type Stats struct {
	Entities      int // distinct entity labels
	RelationTypes int // distinct relation labels
	Connections   int // total triples, duplicates included
}

// Summarize counts distinct entities, distinct relation labels, and triples.
func Summarize(triples []Triple) Stats {
	entities := make(map[string]struct{})
	relations := make(map[string]struct{})
	for _, t := range triples {
		entities[t.Head] = struct{}{}
		entities[t.Tail] = struct{}{}
		relations[t.Relation] = struct{}{}
	}
	return Stats{
		Entities:      len(entities),
		RelationTypes: len(relations),
		Connections:   len(triples),
	}
}

// BuildReport assembles the markdown report for a topic: a heading, the
// mermaid diagram in a fenced block, and the summary counts. Zero triples is
// valid and yields a diagram with no nodes or edges.
func BuildReport(topic string, triples []Triple) string {
	reg := BuildRegistry(triples)
	stats := Summarize(triples)

	var b strings.Builder
	b.WriteString("### Knowledge Graph: " + topic + "\n\n")
	b.WriteString("```mermaid\n")
	b.WriteString(RenderMermaid(reg, triples))
	b.WriteString("```\n\n")
	fmt.Fprintf(&b, "**Entities:** %d\n", stats.Entities)
	fmt.Fprintf(&b, "**Relationship Types:** %d\n", stats.RelationTypes)
	fmt.Fprintf(&b, "**Connections:** %d\n", stats.Connections)
	return b.String()
}
