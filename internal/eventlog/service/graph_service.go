package service

import (
	"context"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/analysis"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/graph/export"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/ingest/mapper"
)

// Path query outcomes. Everything except "found" and "degenerate" is an
// informational notice for the UI, never a computational error.
const (
	PathFound       = "found"
	PathDegenerate  = "degenerate"
	PathNoPath      = "no_path"
	PathUnknownNode = "unknown_node"
	PathNoData      = "no_data"
)

// GraphService answers graph queries over stored documents. The graph is a
// pure function of the document and is rebuilt per request, never cached or
// persisted.
type GraphService struct {
	docs *DocumentService
}

func NewGraphService(docs *DocumentService) *GraphService {
	return &GraphService{docs: docs}
}

func (s *GraphService) buildGraph(ctx context.Context, id string) (*domain.Graph, string, error) {
	stored, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return mapper.ToGraph(&stored.Document), stored.Title, nil
}

// Graph returns the render payload for a document's interaction graph.
func (s *GraphService) Graph(ctx context.Context, id string) (export.GraphPayload, error) {
	g, _, err := s.buildGraph(ctx, id)
	if err != nil {
		return export.GraphPayload{}, err
	}
	return export.BuildPayload(g), nil
}

// DOT renders a document's graph as GraphViz DOT text.
func (s *GraphService) DOT(ctx context.Context, id string) (string, error) {
	g, title, err := s.buildGraph(ctx, id)
	if err != nil {
		return "", err
	}
	return export.ToDOT(g, title), nil
}

// PathResult is the outcome of a shortest-path query.
type PathResult struct {
	Status string      `json:"status"`
	Path   domain.Path `json:"path"`
	Hops   int         `json:"hops"`
}

// Path computes the unweighted shortest directed path between two nodes of a
// document's graph. Unknown endpoints and missing routes report a status
// instead of failing; the empty path is distinguishable from the degenerate
// zero-edge path.
func (s *GraphService) Path(ctx context.Context, id, start, end string) (*PathResult, error) {
	g, _, err := s.buildGraph(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &PathResult{Path: domain.Path{}}
	switch {
	case len(g.Nodes) == 0:
		res.Status = PathNoData
	case !g.HasNode(start) || !g.HasNode(end):
		res.Status = PathUnknownNode
	case start == end:
		res.Status = PathDegenerate
		res.Path = domain.Path{start}
	default:
		p := analysis.ShortestPath(g, start, end)
		if len(p) == 0 {
			res.Status = PathNoPath
		} else {
			res.Status = PathFound
			res.Path = p
		}
	}
	res.Hops = res.Path.Hops()
	return res, nil
}

// ReachableResult lists every node reachable from a start node together with
// its shortest path.
type ReachableResult struct {
	Start string              `json:"start"`
	Paths []analysis.PairPath `json:"paths"`
}

func (s *GraphService) Reachable(ctx context.Context, id, start string) (*ReachableResult, error) {
	g, _, err := s.buildGraph(ctx, id)
	if err != nil {
		return nil, err
	}
	res := &ReachableResult{Start: start, Paths: []analysis.PairPath{}}
	for _, target := range analysis.Reachable(g, start) {
		p := analysis.ShortestPath(g, start, target)
		res.Paths = append(res.Paths, analysis.PairPath{
			Start: start, End: target, Path: p, Hops: p.Hops(),
		})
	}
	return res, nil
}

// AllPaths lists the shortest path for every connected ordered node pair.
func (s *GraphService) AllPaths(ctx context.Context, id string) ([]analysis.PairPath, error) {
	g, _, err := s.buildGraph(ctx, id)
	if err != nil {
		return nil, err
	}
	paths := analysis.AllPaths(g)
	if paths == nil {
		paths = []analysis.PairPath{}
	}
	return paths, nil
}

// TopicsResult is the filter-control payload.
type TopicsResult struct {
	Topics   []string                      `json:"topics"`
	Metadata map[string]analysis.TopicInfo `json:"metadata"`
}

func (s *GraphService) Topics(ctx context.Context, id string) (*TopicsResult, error) {
	stored, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	topics := analysis.Topics(&stored.Document)
	if topics == nil {
		topics = []string{}
	}
	return &TopicsResult{
		Topics:   topics,
		Metadata: analysis.TopicMetadata(&stored.Document),
	}, nil
}

// TimelineResult is the timeline-chart payload for selected topics.
type TimelineResult struct {
	Range         analysis.TimeRange                  `json:"range"`
	HasTimestamps bool                                `json:"has_timestamps"`
	Series        map[string][]analysis.TimelinePoint `json:"series"`
}

func (s *GraphService) Timeline(ctx context.Context, id string, selected []string) (*TimelineResult, error) {
	stored, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tr, hasTS := analysis.Range(&stored.Document)
	return &TimelineResult{
		Range:         tr,
		HasTimestamps: hasTS,
		Series:        analysis.Series(&stored.Document, selected),
	}, nil
}
