package analysis

import (
	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

// ShortestPath computes the unweighted shortest directed path from start to
// end. Edges are traversed only in their stored direction. Ties break on the
// graph's edge insertion order, so equal inputs always return the same path.
//
// start == end yields the degenerate single-node path. Unknown endpoints or
// no directed route yield an empty path; neither is an error.
func ShortestPath(g *domain.Graph, start, end string) domain.Path {
	if g == nil || !g.HasNode(start) || !g.HasNode(end) {
		return nil
	}
	if start == end {
		return domain.Path{start}
	}

	prev := map[string]string{start: ""}
	queue := []string{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.Out[v] {
			if _, seen := prev[e.To]; seen {
				continue
			}
			prev[e.To] = v
			if e.To == end {
				return assemble(prev, start, end)
			}
			queue = append(queue, e.To)
		}
	}
	return nil
}

func assemble(prev map[string]string, start, end string) domain.Path {
	var rev []string
	for v := end; v != ""; v = prev[v] {
		rev = append(rev, v)
		if v == start {
			break
		}
	}
	path := make(domain.Path, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

// Reachable returns every node with a directed route from start, in BFS
// discovery order, excluding start itself. An unknown start yields nil.
func Reachable(g *domain.Graph, start string) []string {
	if g == nil || !g.HasNode(start) {
		return nil
	}
	seen := map[string]bool{start: true}
	queue := []string{start}
	var out []string
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.Out[v] {
			if seen[e.To] {
				continue
			}
			seen[e.To] = true
			out = append(out, e.To)
			queue = append(queue, e.To)
		}
	}
	return out
}

// PairPath is one entry of an all-pairs path listing.
type PairPath struct {
	Start string      `json:"start"`
	End   string      `json:"end"`
	Path  domain.Path `json:"path"`
	Hops  int         `json:"hops"`
}

// AllPaths lists the shortest path for every ordered node pair that has a
// directed route, in node insertion order. Log-derived graphs stay small, so
// the quadratic sweep is fine.
func AllPaths(g *domain.Graph) []PairPath {
	if g == nil {
		return nil
	}
	var out []PairPath
	for _, start := range g.Order {
		for _, target := range Reachable(g, start) {
			p := ShortestPath(g, start, target)
			if len(p) == 0 {
				continue
			}
			out = append(out, PairPath{Start: start, End: target, Path: p, Hops: p.Hops()})
		}
	}
	return out
}
