package export

import (
	"fmt"
	"strings"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

func ToDOT(g *domain.Graph, title string) string {
	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n  node [shape=box, style=rounded];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, title))
		b.WriteString("\n")
	}

	for _, id := range g.Order {
		n := g.Nodes[id]
		if n == nil {
			continue
		}
		style := `shape=box,style="rounded,filled",fillcolor="#fdecea"`
		if n.Role == domain.RoleMessage {
			style = `shape=note,style="filled",fillcolor="#eaf2fd"`
		}
		b.WriteString(fmt.Sprintf(`  "%s" [label="%s", %s];`+"\n", n.ID, n.Label, style))
	}

	for i, e := range g.Edges {
		if e == nil {
			continue
		}
		lbl := e.Kind
		if e.Label != "" {
			lbl = fmt.Sprintf("%s: %s", e.Kind, e.Label)
		}
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s", color="%s", tooltip="edge#%d"];`+"\n",
			e.From, e.To, lbl, e.Color, i))
	}

	b.WriteString("}\n")
	return b.String()
}
