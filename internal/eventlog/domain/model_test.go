package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNode_Idempotent(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: "A", Label: "A", Role: RoleCapability})
	g.AddNode(&Node{ID: "A", Label: "other", Role: RoleMessage})

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "A", g.Nodes["A"].Label, "first registration wins")
	assert.Equal(t, RoleCapability, g.Nodes["A"].Role)
	assert.Equal(t, []string{"A"}, g.Order)
}

func TestAddEdge_LastWriteWins(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: "A"})
	g.AddNode(&Node{ID: "B"})

	g.AddEdge(&Edge{From: "A", To: "B", Label: "first", Kind: "Start"})
	g.AddEdge(&Edge{From: "A", To: "B", Label: "second", Kind: "End"})

	require.Len(t, g.Edges, 1, "duplicate pairs never become parallel edges")
	assert.Equal(t, "second", g.Edges[0].Label)
	assert.Equal(t, "End", g.Edges[0].Kind)

	require.Len(t, g.Out["A"], 1)
	assert.Equal(t, "second", g.Out["A"][0].Label, "adjacency sees the overwrite")
	require.Len(t, g.In["B"], 1)
}

func TestAddEdge_DistinctPairs(t *testing.T) {
	g := NewGraph()
	g.AddEdge(&Edge{From: "A", To: "B"})
	g.AddEdge(&Edge{From: "B", To: "A"})

	assert.Len(t, g.Edges, 2, "opposite directions are distinct edges")
}

func TestEventAccessors(t *testing.T) {
	t.Run("missing endpoints", func(t *testing.T) {
		ev := Event{Topic: "nav"}
		assert.Empty(t, ev.SourceID())
		assert.Empty(t, ev.TargetID())
		assert.False(t, ev.HasEdge())
		assert.Equal(t, float64(0), ev.Timestamp())
	})

	t.Run("complete event", func(t *testing.T) {
		ev := Event{
			Source: &Endpoint{Capability: "A"},
			Target: &Endpoint{Capability: "B"},
			Header: &Header{Stamp: Stamp{Secs: 12.5}},
		}
		assert.Equal(t, "A", ev.SourceID())
		assert.Equal(t, "B", ev.TargetID())
		assert.True(t, ev.HasEdge())
		assert.Equal(t, 12.5, ev.Timestamp())
	})

	t.Run("one endpoint is not an edge", func(t *testing.T) {
		ev := Event{Target: &Endpoint{Capability: "X"}}
		assert.False(t, ev.HasEdge())
	})
}

func TestPathHops(t *testing.T) {
	assert.Equal(t, 0, Path{}.Hops())
	assert.Equal(t, 0, Path{"A"}.Hops())
	assert.Equal(t, 2, Path{"A", "B", "C"}.Hops())
}
