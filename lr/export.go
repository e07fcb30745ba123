package lr

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"
)

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.states {
		fmt.Fprintf(bw, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.Items()))
	}
	for _, e := range c.Edges() {
		fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, escapeDot(e.Label.Name))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(items []Item) string {
	var b strings.Builder
	for _, i := range items {
		b.WriteString(escapeDot(i.String()))
		b.WriteString("\\l")
	}
	return b.String()
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

// TableAsHTML exports the transition table of a CFSM in HTML-format.
func TableAsHTML(c *CFSM, w io.Writer) error {
	table := c.TransitionTable()
	symvec := make([]*Symbol, 0, c.g.Size())
	for _, A := range c.g.symbols {
		if !A.IsEpsilon() {
			symvec = append(symvec, A)
		}
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("<html><body>\n")
	fmt.Fprintf(bw, "<p>CFSM transitions for grammar %s: %d states, %d entries</p>\n",
		html.EscapeString(c.g.Name), c.Size(), table.Count())
	bw.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	bw.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range symvec {
		fmt.Fprintf(bw, "<td>%s</td>", html.EscapeString(A.Name))
	}
	bw.WriteString("</tr>\n")
	for _, s := range c.states {
		fmt.Fprintf(bw, "<tr><td>state %d</td>\n", s.ID)
		for _, A := range symvec {
			td := valstring(table.Value(s.ID, A))
			if td == "" {
				td = "&nbsp;"
			}
			fmt.Fprintf(bw, "<td>%s</td>\n", td)
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</table></body></html>\n")
	return bw.Flush()
}
