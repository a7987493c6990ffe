package kg

import (
	"strings"
	"testing"
)

func TestBuildReportExample(t *testing.T) {
	raw := "Albert Einstein | developed | Theory of Relativity\n" +
		"Marie Curie | discovered | Radium\n" +
		"not a valid line"
	triples := ParseTriples(raw)
	report := BuildReport("physics", triples)

	if !strings.HasPrefix(report, "### Knowledge Graph: physics\n\n") {
		t.Errorf("missing heading:\n%s", report)
	}
	if !strings.Contains(report, "```mermaid\ngraph TD\n") {
		t.Errorf("missing mermaid fence:\n%s", report)
	}
	for _, want := range []string{"**Entities:** 4", "**Relationship Types:** 2", "**Connections:** 2"} {
		if !strings.Contains(report, want) {
			t.Errorf("missing %q in report:\n%s", want, report)
		}
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport("nothing", ParseTriples(""))
	for _, want := range []string{"**Entities:** 0", "**Relationship Types:** 0", "**Connections:** 0"} {
		if !strings.Contains(report, want) {
			t.Errorf("missing %q in report:\n%s", want, report)
		}
	}
	if !strings.Contains(report, "```mermaid\ngraph TD\n    classDef default") {
		t.Errorf("expected header with no node or edge lines:\n%s", report)
	}
}

func TestSummarizeCountsDuplicates(t *testing.T) {
	triples := ParseTriples("a | r | b\na | r | b")
	stats := Summarize(triples)
	if stats.Entities != 2 || stats.RelationTypes != 1 || stats.Connections != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
