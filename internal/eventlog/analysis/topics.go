package analysis

import (
	"sort"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

// Topics returns the distinct non-empty topic identifiers of a document,
// sorted for a stable presentation order. Events missing an endpoint still
// contribute their topic.
func Topics(d *domain.Document) []string {
	if d == nil {
		return nil
	}
	set := map[string]bool{}
	for _, ev := range d.Events {
		if ev.Topic != "" {
			set[ev.Topic] = true
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// TopicInfo is inferred per-topic metadata for the filter control.
type TopicInfo struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TopicMetadata counts events per topic. The type is always "inferred" since
// the wire format carries no explicit topic definitions.
func TopicMetadata(d *domain.Document) map[string]TopicInfo {
	meta := map[string]TopicInfo{}
	if d == nil {
		return meta
	}
	for _, ev := range d.Events {
		if ev.Topic == "" {
			continue
		}
		info := meta[ev.Topic]
		info.Type = "inferred"
		info.Count++
		meta[ev.Topic] = info
	}
	return meta
}
