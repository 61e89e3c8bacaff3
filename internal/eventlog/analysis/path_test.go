package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

func lineGraph(ids ...string) *domain.Graph {
	g := domain.NewGraph()
	for _, id := range ids {
		g.AddNode(&domain.Node{ID: id, Label: id, Role: domain.RoleCapability})
	}
	for i := 0; i+1 < len(ids); i++ {
		g.AddEdge(&domain.Edge{From: ids[i], To: ids[i+1]})
	}
	return g
}

func TestShortestPath_Chain(t *testing.T) {
	g := lineGraph("A", "B", "C")

	p := ShortestPath(g, "A", "C")
	assert.Equal(t, domain.Path{"A", "B", "C"}, p)
	assert.Equal(t, 2, p.Hops())
}

func TestShortestPath_SameNode(t *testing.T) {
	g := lineGraph("A", "B")

	p := ShortestPath(g, "A", "A")
	assert.Equal(t, domain.Path{"A"}, p)
	assert.Equal(t, 0, p.Hops())
}

func TestShortestPath_DirectionMatters(t *testing.T) {
	g := lineGraph("A", "B", "C")

	assert.Empty(t, ShortestPath(g, "C", "A"), "edges are one-way")
}

func TestShortestPath_UnknownNode(t *testing.T) {
	g := lineGraph("A", "B")

	assert.Empty(t, ShortestPath(g, "A", "nope"))
	assert.Empty(t, ShortestPath(g, "nope", "B"))
	assert.Empty(t, ShortestPath(nil, "A", "B"))
}

func TestShortestPath_PrefersFewerHops(t *testing.T) {
	g := lineGraph("A", "B", "C")
	// direct shortcut alongside the two-hop route
	g.AddNode(&domain.Node{ID: "D"})
	g.AddEdge(&domain.Edge{From: "A", To: "D"})
	g.AddEdge(&domain.Edge{From: "D", To: "C"})
	g.AddEdge(&domain.Edge{From: "A", To: "C"})

	assert.Equal(t, domain.Path{"A", "C"}, ShortestPath(g, "A", "C"))
}

func TestShortestPath_Deterministic(t *testing.T) {
	// two equal-length routes; insertion order breaks the tie
	g := domain.NewGraph()
	for _, id := range []string{"A", "B1", "B2", "C"} {
		g.AddNode(&domain.Node{ID: id})
	}
	g.AddEdge(&domain.Edge{From: "A", To: "B1"})
	g.AddEdge(&domain.Edge{From: "A", To: "B2"})
	g.AddEdge(&domain.Edge{From: "B1", To: "C"})
	g.AddEdge(&domain.Edge{From: "B2", To: "C"})

	first := ShortestPath(g, "A", "C")
	require.Equal(t, domain.Path{"A", "B1", "C"}, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ShortestPath(g, "A", "C"))
	}
}

func TestShortestPath_Cycle(t *testing.T) {
	g := lineGraph("A", "B", "C")
	g.AddEdge(&domain.Edge{From: "C", To: "A"})

	assert.Equal(t, domain.Path{"C", "A", "B"}, ShortestPath(g, "C", "B"))
}

func TestReachable(t *testing.T) {
	g := lineGraph("A", "B", "C")
	g.AddNode(&domain.Node{ID: "island"})

	assert.Equal(t, []string{"B", "C"}, Reachable(g, "A"))
	assert.Empty(t, Reachable(g, "C"))
	assert.Empty(t, Reachable(g, "island"))
	assert.Empty(t, Reachable(g, "missing"))
}

func TestAllPaths(t *testing.T) {
	g := lineGraph("A", "B", "C")

	pairs := AllPaths(g)
	require.Len(t, pairs, 3)
	assert.Equal(t, PairPath{Start: "A", End: "B", Path: domain.Path{"A", "B"}, Hops: 1}, pairs[0])
	assert.Equal(t, PairPath{Start: "A", End: "C", Path: domain.Path{"A", "B", "C"}, Hops: 2}, pairs[1])
	assert.Equal(t, PairPath{Start: "B", End: "C", Path: domain.Path{"B", "C"}, Hops: 1}, pairs[2])
}

func TestAllPaths_Empty(t *testing.T) {
	assert.Empty(t, AllPaths(domain.NewGraph()))
	assert.Empty(t, AllPaths(nil))
}
