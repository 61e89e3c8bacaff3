package export

import (
	"encoding/json"
	"os"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

// NodeDTO and EdgeDTO are the render-adapter facing shapes: plain node and
// edge lists with display attributes, no layout or physics concerns.
type NodeDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Role  string `json:"role"`
	Color string `json:"color"`
}

type EdgeDTO struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Label string  `json:"label"`
	Kind  string  `json:"kind"`
	Color string  `json:"color"`
	Title string  `json:"title"`
	Time  float64 `json:"time"`
}

type GraphPayload struct {
	Nodes []NodeDTO `json:"nodes"`
	Edges []EdgeDTO `json:"edges"`
}

// BuildPayload flattens a graph into the render payload. Nodes follow
// insertion order and edges file order, so equal graphs serialize equally.
func BuildPayload(g *domain.Graph) GraphPayload {
	p := GraphPayload{Nodes: []NodeDTO{}, Edges: []EdgeDTO{}}
	if g == nil {
		return p
	}
	for _, id := range g.Order {
		n := g.Nodes[id]
		if n == nil {
			continue
		}
		p.Nodes = append(p.Nodes, NodeDTO{
			ID:    n.ID,
			Label: n.Label,
			Role:  string(n.Role),
			Color: domain.RoleColor(n.Role),
		})
	}
	for _, e := range g.Edges {
		if e == nil {
			continue
		}
		p.Edges = append(p.Edges, EdgeDTO{
			From:  e.From,
			To:    e.To,
			Label: e.Label,
			Kind:  e.Kind,
			Color: e.Color,
			Title: e.Title,
			Time:  e.Time,
		})
	}
	return p
}

func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
