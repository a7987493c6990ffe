// Package kg turns the semi-structured triple lists an LLM produces into a
// validated graph structure and a deterministic mermaid diagram.
package kg

import "strings"

// Triple is a single (head, relation, tail) fact extracted from generated text.
type Triple struct {
	Head     string
	Relation string
	Tail     string
}

// ParseTriples extracts triples from raw multi-line text. A line is accepted
// only when splitting it on the literal " | " separator yields exactly three
// segments, each non-empty after trimming; every other line is skipped
// silently. Input order is preserved and duplicate triples are kept.
func ParseTriples(raw string) []Triple {
	var triples []Triple
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		parts := strings.Split(line, " | ")
		if len(parts) != 3 {
			continue
		}
		head := strings.TrimSpace(parts[0])
		relation := strings.TrimSpace(parts[1])
		tail := strings.TrimSpace(parts[2])
		if head == "" || relation == "" || tail == "" {
			continue
		}
		triples = append(triples, Triple{Head: head, Relation: relation, Tail: tail})
	}
	return triples
}
