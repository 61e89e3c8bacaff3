package mapper

import (
	"fmt"
	"strings"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

// messagePrefix marks auto-generated message node ids; everything else is
// treated as a capability unless the registry says otherwise.
const messagePrefix = "message_"

// maxLabelLen bounds display labels. Shortening is purely cosmetic and never
// affects node identity or edge resolution.
const maxLabelLen = 30

func roleFor(id string) domain.NodeRole {
	if strings.HasPrefix(id, messagePrefix) {
		return domain.RoleMessage
	}
	return domain.RoleCapability
}

func displayLabel(name string, role domain.NodeRole) string {
	if role == domain.RoleCapability {
		if i := strings.LastIndex(name, "/"); i >= 0 {
			return name[i+1:]
		}
		return name
	}
	if len(name) > maxLabelLen {
		return name[:maxLabelLen-3] + "..."
	}
	return name
}

func ensureNode(g *domain.Graph, id string) {
	if g.HasNode(id) {
		return
	}
	role := roleFor(id)
	g.AddNode(&domain.Node{
		ID:    id,
		Label: displayLabel(id, role),
		Role:  role,
	})
}

func registeredNode(rn domain.RegisteredNode) *domain.Node {
	role := domain.RoleMessage
	if rn.IsCapability {
		role = domain.RoleCapability
	}
	name := rn.Name
	if name == "" {
		name = rn.ID
	}
	return &domain.Node{
		ID:    rn.ID,
		Label: displayLabel(name, role),
		Role:  role,
	}
}

func edgeTitle(kind, topic string, ts float64) string {
	title := kind
	if topic != "" {
		tail := topic
		if i := strings.LastIndex(topic, "/"); i >= 0 {
			tail = topic[i+1:]
		}
		title += " - " + tail
	}
	if ts != 0 {
		title += fmt.Sprintf(" (%.2fs)", ts)
	}
	return title
}

// ToGraph converts a document into the directed interaction graph. Nodes are
// the union of all event endpoints plus any pre-registered ids; events missing
// an endpoint contribute no edge and no implied node. Duplicate (source,
// target) pairs overwrite the existing edge's label and style, last write
// wins. The input document is never mutated.
func ToGraph(d *domain.Document) *domain.Graph {
	g := domain.NewGraph()
	if d == nil {
		return g
	}

	if d.NodePaths != nil {
		for _, rn := range d.NodePaths.Nodes {
			if rn.ID == "" {
				continue
			}
			g.AddNode(registeredNode(rn))
		}
	}

	for _, ev := range d.Events {
		if !ev.HasEdge() {
			continue
		}
		src, dst := ev.SourceID(), ev.TargetID()
		ensureNode(g, src)
		ensureNode(g, dst)

		cls := domain.Classify(ev.Event)
		g.AddEdge(&domain.Edge{
			From:  src,
			To:    dst,
			Label: ev.Text,
			Kind:  cls.Label,
			Color: cls.Color,
			Title: edgeTitle(cls.Label, ev.Topic, ev.Timestamp()),
			Time:  ev.Timestamp(),
		})
	}

	return g
}
