package cli

import (
	"bytes"
	"strings"
	"testing"

	"ariadne/internal/kg"
)

func TestTripleTableRenders(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTripleTableWriter(&buf)

	tbl.RenderTriples("physics", []kg.Triple{
		{Head: "Albert Einstein", Relation: "developed", Tail: "Theory of Relativity"},
		{Head: "Marie Curie", Relation: "discovered", Tail: "Radium"},
	})

	out := buf.String()
	for _, want := range []string{
		"Knowledge Graph: physics",
		"Entity", "Relationship", "Connected Entity",
		"Albert Einstein", "developed", "Theory of Relativity",
		"Marie Curie", "discovered", "Radium",
		"Knowledge graph generated!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in table output:\n%s", want, out)
		}
	}
}

func TestTripleTableSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTripleTableWriter(&buf).RenderTriples("nothing", nil)

	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty triples, got %q", buf.String())
	}
}
