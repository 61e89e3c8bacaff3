package validator

import (
	"encoding/json"
	"fmt"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

// Summary is the structured result of a validation pass over a document.
// Events missing an endpoint are skipped from the edge set, never surfaced
// per-event; the counts let callers report an aggregate "no data" notice.
type Summary struct {
	TotalEvents     int `json:"total_events"`
	EdgeEvents      int `json:"edge_events"`
	SkippedEvents   int `json:"skipped_events"`
	RegisteredNodes int `json:"registered_nodes"`
}

// ValidateBytes checks that b is a JSON object shaped like a robot log before
// full decoding. A document needs at least an events list or a node_paths
// section to be usable.
func ValidateBytes(b []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if _, ok := probe["events"]; ok {
		return nil
	}
	if _, ok := probe["node_paths"]; ok {
		return nil
	}
	return fmt.Errorf("%w: missing events and node_paths", domain.ErrInvalidDocument)
}

// Summarize counts edge-eligible and skipped events. It never fails: a fully
// skipped or empty document is a "no data" outcome for the caller to report.
func Summarize(d *domain.Document) Summary {
	s := Summary{}
	if d == nil {
		return s
	}
	s.TotalEvents = len(d.Events)
	for _, ev := range d.Events {
		if ev.HasEdge() {
			s.EdgeEvents++
		} else {
			s.SkippedEvents++
		}
	}
	if d.NodePaths != nil {
		s.RegisteredNodes = len(d.NodePaths.Nodes)
	}
	return s
}
