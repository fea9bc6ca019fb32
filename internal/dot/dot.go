// Package dot renders a generated lexergen.Table as Graphviz source, the
// direct descendant of regexlib's single-DFA exporter generalized to a
// table holding a main DFA, an independent whitespace DFA, and symbols
// instead of a single compiled regex's accept flag.
package dot

import (
	"fmt"
	"io"

	"lexforge/lexergen"
)

// Export writes a Graphviz digraph for table to w: the main DFA as
// cluster "main", and, if the table declares one, the whitespace DFA as
// cluster "whitespace". Accepting states are drawn doublecircle and
// labelled with their symbol.
func Export(w io.Writer, table *lexergen.Table) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	exportCluster(w, "main", table.States, table.StartIndex)
	if len(table.WhitespaceStates) > 0 {
		exportCluster(w, "whitespace", table.WhitespaceStates, table.WhitespaceStartIndex)
	}

	fmt.Fprintln(w, "}")
}

func exportCluster(w io.Writer, name string, states []lexergen.StateRecord, start int) {
	fmt.Fprintf(w, "    subgraph cluster_%s {\n", name)
	fmt.Fprintf(w, "        label=%q;\n", name)

	for _, s := range states {
		shape := "circle"
		label := fmt.Sprintf("%d", s.Index)
		if s.Symbol != nil {
			shape = "doublecircle"
			label = fmt.Sprintf("%d\\n%v", s.Index, s.Symbol)
		}
		fmt.Fprintf(w, "        %s [shape=%s, label=%q];\n", nodeID(name, s.Index), shape, label)
		for _, tr := range s.Transitions {
			fmt.Fprintf(w, "        %s -> %s [label=%q];\n",
				nodeID(name, s.Index), nodeID(name, tr.Target.Index()), rangeLabel(tr.Begin, tr.End))
		}
	}

	fmt.Fprintf(w, "        %s_start [shape=point]; %s_start -> %s;\n", name, name, nodeID(name, start))
	fmt.Fprintln(w, "    }")
}

func nodeID(cluster string, index int) string {
	return fmt.Sprintf("%s_q%d", cluster, index)
}

func rangeLabel(begin, end int32) string {
	if end-begin == 1 {
		return printableRune(begin)
	}
	return fmt.Sprintf("%s-%s", printableRune(begin), printableRune(end-1))
}

func printableRune(r int32) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	if r < 0x20 || r > 0x7e {
		return fmt.Sprintf("U+%04X", r)
	}
	return string(rune(r))
}
