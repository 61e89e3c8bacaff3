package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

func edgeEvent(src, dst string, code int, text string) domain.Event {
	return domain.Event{
		Source: &domain.Endpoint{Capability: src},
		Target: &domain.Endpoint{Capability: dst},
		Event:  code,
		Text:   text,
	}
}

func TestToGraph_NodeSetIsUnionOfEndpoints(t *testing.T) {
	doc := &domain.Document{Events: []domain.Event{
		edgeEvent("A", "B", domain.EventStart, ""),
		edgeEvent("B", "C", domain.EventEnd, ""),
	}}

	g := ToGraph(doc)
	require.Len(t, g.Nodes, 3)
	for _, id := range []string{"A", "B", "C"} {
		assert.True(t, g.HasNode(id))
	}
	require.Len(t, g.Edges, 2)
	assert.Equal(t, "Start", g.Edges[0].Kind)
	assert.Equal(t, "End", g.Edges[1].Kind)
}

func TestToGraph_MissingEndpointContributesNothing(t *testing.T) {
	doc := &domain.Document{Events: []domain.Event{
		{Target: &domain.Endpoint{Capability: "X"}, Topic: "t"},
	}}

	g := ToGraph(doc)
	assert.Empty(t, g.Nodes, "no implied node from a partial event")
	assert.Empty(t, g.Edges)
}

func TestToGraph_DuplicateEdgeLastWriteWins(t *testing.T) {
	doc := &domain.Document{Events: []domain.Event{
		edgeEvent("A", "B", domain.EventStart, "first"),
		edgeEvent("A", "B", domain.EventError, "second"),
	}}

	g := ToGraph(doc)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "second", g.Edges[0].Label)
	assert.Equal(t, "Error", g.Edges[0].Kind)
	assert.Equal(t, domain.Classify(domain.EventError).Color, g.Edges[0].Color)
}

func TestToGraph_PreRegistersMetadataNodes(t *testing.T) {
	doc := &domain.Document{
		NodePaths: &domain.NodeRegistry{
			CapabilityCount: 1,
			Nodes: []domain.RegisteredNode{
				{ID: "cap1", Name: "robot/arm/grasp_planner", IsCapability: true},
				{ID: "message_1", Name: "a very long message body that should be shortened"},
			},
		},
	}

	g := ToGraph(doc)
	require.Len(t, g.Nodes, 2, "registered nodes exist without edges")

	cap := g.Nodes["cap1"]
	assert.Equal(t, domain.RoleCapability, cap.Role)
	assert.Equal(t, "grasp_planner", cap.Label, "capability label is the last path segment")

	msg := g.Nodes["message_1"]
	assert.Equal(t, domain.RoleMessage, msg.Role)
	assert.Equal(t, "a very long message body th...", msg.Label)
	assert.Len(t, msg.Label, 30)
}

func TestToGraph_RegistryMetadataWinsOverConvention(t *testing.T) {
	doc := &domain.Document{
		NodePaths: &domain.NodeRegistry{Nodes: []domain.RegisteredNode{
			{ID: "cap1", Name: "cap one", IsCapability: true},
		}},
		Events: []domain.Event{edgeEvent("cap1", "message_7", domain.EventInfo, "")},
	}

	g := ToGraph(doc)
	assert.Equal(t, domain.RoleCapability, g.Nodes["cap1"].Role)
	assert.Equal(t, "cap one", g.Nodes["cap1"].Label)
	assert.Equal(t, domain.RoleMessage, g.Nodes["message_7"].Role)
}

func TestToGraph_TruncationDoesNotAffectIdentity(t *testing.T) {
	longID := "message_" + "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	doc := &domain.Document{Events: []domain.Event{
		edgeEvent("A", longID, domain.EventInfo, ""),
	}}

	g := ToGraph(doc)
	require.True(t, g.HasNode(longID), "identity stays the raw id")
	assert.Len(t, g.Nodes[longID].Label, 30)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, longID, g.Edges[0].To)
}

func TestToGraph_EdgeTitle(t *testing.T) {
	doc := &domain.Document{Events: []domain.Event{
		{
			Source: &domain.Endpoint{Capability: "A"},
			Target: &domain.Endpoint{Capability: "B"},
			Topic:  "/robot/nav",
			Event:  domain.EventStart,
			Header: &domain.Header{Stamp: domain.Stamp{Secs: 3.5}},
		},
	}}

	g := ToGraph(doc)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "Start - nav (3.50s)", g.Edges[0].Title)
	assert.Equal(t, 3.5, g.Edges[0].Time)
}

func TestToGraph_Idempotent(t *testing.T) {
	doc := &domain.Document{Events: []domain.Event{
		edgeEvent("A", "B", domain.EventStart, "x"),
		edgeEvent("B", "C", domain.EventEnd, "y"),
		{Topic: "solo"},
	}}

	g1 := ToGraph(doc)
	g2 := ToGraph(doc)

	assert.Equal(t, g1.Order, g2.Order)
	require.Len(t, g2.Edges, len(g1.Edges))
	for i := range g1.Edges {
		assert.Equal(t, *g1.Edges[i], *g2.Edges[i])
	}
}

func TestToGraph_NilAndEmpty(t *testing.T) {
	assert.Empty(t, ToGraph(nil).Nodes)
	assert.Empty(t, ToGraph(&domain.Document{}).Nodes)
}
