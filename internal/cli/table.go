package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"ariadne/internal/kg"
)

var tableBorderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240"))

var tableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("99")).
	Padding(0, 1)

var tableCellStyle = lipgloss.NewStyle().
	Padding(0, 1)

// TripleTable prints extracted knowledge-graph triples as a bordered console
// table. It satisfies the display sink the graph tool expects; printing is a
// side effect and never alters the tool's report.
type TripleTable struct {
	out io.Writer
}

// NewTripleTable creates a table that writes to stdout.
func NewTripleTable() *TripleTable {
	return &TripleTable{out: os.Stdout}
}

// NewTripleTableWriter creates a table that writes to the given writer.
func NewTripleTableWriter(out io.Writer) *TripleTable {
	return &TripleTable{out: out}
}

// RenderTriples prints the triples for a topic.
func (t *TripleTable) RenderTriples(topic string, triples []kg.Triple) {
	if len(triples) == 0 {
		return
	}

	rows := make([][]string, len(triples))
	for i, triple := range triples {
		rows[i] = []string{triple.Head, triple.Relation, triple.Tail}
	}

	tbl := table.New().
		Headers("Entity", "Relationship", "Connected Entity").
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if col != 1 {
				label := rows[row][col]
				if kg.Classify(label) == "person" {
					return tableCellStyle.Foreground(PersonStyle.GetForeground())
				}
				return tableCellStyle.Foreground(ConceptStyle.GetForeground())
			}
			return tableCellStyle
		})

	fmt.Fprintln(t.out, HeaderStyle.Render(fmt.Sprintf("Knowledge Graph: %s", topic)))
	fmt.Fprintln(t.out, tbl)
	fmt.Fprintln(t.out, FormatSuccess("Knowledge graph generated! A visual representation would be shown in a web interface."))
}
