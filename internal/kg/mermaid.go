package kg

import (
	"fmt"
	"strings"
)

// personIndicators mark an entity label as a person. The list is a fixed
// lexical heuristic with no internationalization.
var personIndicators = []string{"dr.", "professor", "mr.", "mrs.", "ms."}

const (
	classDefDefault = "    classDef default fill:#f9f9f9,stroke:#333,stroke-width:1px;\n"
	classDefConcept = "    classDef concept fill:#d4f1f9,stroke:#0096c7,stroke-width:2px;\n"
	classDefPerson  = "    classDef person fill:#ffea00,stroke:#e6a700,stroke-width:2px;\n"
)

// RenderMermaid produces a top-down mermaid flowchart: one node declaration
// per registry entry in registry order, one labeled edge per triple in input
// order, the fixed style classes, then a class assignment per node. The
// output is purely a function of the registry and triples.
func RenderMermaid(reg *Registry, triples []Triple) string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	for _, label := range reg.Entities() {
		id, _ := reg.NodeID(label)
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", id, escapeQuotes(label))
	}
	for _, t := range triples {
		headID, _ := reg.NodeID(t.Head)
		tailID, _ := reg.NodeID(t.Tail)
		fmt.Fprintf(&b, "    %s -->|\"%s\"| %s\n", headID, escapeQuotes(t.Relation), tailID)
	}
	b.WriteString(classDefDefault)
	b.WriteString(classDefConcept)
	b.WriteString(classDefPerson)
	for _, label := range reg.Entities() {
		id, _ := reg.NodeID(label)
		fmt.Fprintf(&b, "    class %s %s;\n", id, Classify(label))
	}
	return b.String()
}

// Classify tags an entity as "person" when its lowercased label contains one
// of the honorific markers, otherwise as "concept".
func Classify(label string) string {
	lower := strings.ToLower(label)
	for _, indicator := range personIndicators {
		if strings.Contains(lower, indicator) {
			return "person"
		}
	}
	return "concept"
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
