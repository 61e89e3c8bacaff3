package analysis

import (
	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

// Default playback range when the log carries no timestamps.
const (
	defaultRangeMin = 0
	defaultRangeMax = 100
)

// TimeRange is the playback window of a document in seconds.
type TimeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Range returns the min/max event timestamps of a document. The second
// return is false when no event carries a timestamp; the range then falls
// back to the default playback window.
func Range(d *domain.Document) (TimeRange, bool) {
	r := TimeRange{Min: defaultRangeMin, Max: defaultRangeMax}
	if d == nil {
		return r, false
	}
	found := false
	for _, ev := range d.Events {
		if ev.Header == nil {
			continue
		}
		ts := ev.Timestamp()
		if !found {
			r.Min, r.Max = ts, ts
			found = true
			continue
		}
		if ts < r.Min {
			r.Min = ts
		}
		if ts > r.Max {
			r.Max = ts
		}
	}
	if !found {
		return TimeRange{Min: defaultRangeMin, Max: defaultRangeMax}, false
	}
	return r, true
}

// TimelinePoint is one plotted event on the timeline chart.
type TimelinePoint struct {
	Time  float64 `json:"time"`
	Event int     `json:"event"`
	Label string  `json:"label"`
	Text  string  `json:"text,omitempty"`
}

// Series groups timestamped events into per-topic time series, preserving
// file order. When selected is non-empty only those topics are included; the
// filter is plain set membership.
func Series(d *domain.Document, selected []string) map[string][]TimelinePoint {
	series := map[string][]TimelinePoint{}
	if d == nil {
		return series
	}
	var want map[string]bool
	if len(selected) > 0 {
		want = map[string]bool{}
		for _, t := range selected {
			want[t] = true
		}
	}
	for _, ev := range d.Events {
		if ev.Topic == "" || ev.Header == nil {
			continue
		}
		if want != nil && !want[ev.Topic] {
			continue
		}
		cls := domain.Classify(ev.Event)
		series[ev.Topic] = append(series[ev.Topic], TimelinePoint{
			Time:  ev.Timestamp(),
			Event: ev.Event,
			Label: cls.Label,
			Text:  ev.Text,
		})
	}
	return series
}
