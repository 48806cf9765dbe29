package positions

import (
	"sort"
	"strings"

	"github.com/suitools/suiwallet/internal/model"
)

// maxMetrics caps the metric list per position; first-seen metrics win.
const maxMetrics = 6

// metricSet accumulates metrics with the global cap and duplicate
// suppression keyed on lower-cased label plus value.
type metricSet struct {
	metrics []model.ProtocolMetric
	seen    map[string]struct{}
}

func newMetricSet() *metricSet {
	return &metricSet{seen: make(map[string]struct{})}
}

func (s *metricSet) full() bool { return len(s.metrics) >= maxMetrics }

func (s *metricSet) add(label, value string) {
	if s.full() || label == "" || value == "" {
		return
	}
	key := strings.ToLower(label) + "\x00" + value
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	s.metrics = append(s.metrics, model.ProtocolMetric{Label: label, Value: value})
}

// display-block keys that carry the label, not a metric
var labelishKeys = map[string]struct{}{
	"name":  {},
	"title": {},
	"label": {},
}

// addDisplayMetrics renders every non-label entry of a display block into a
// metric.
func (s *metricSet) addDisplayMetrics(display map[string]any) {
	keys := make([]string, 0, len(display))
	for k := range display {
		if _, skip := labelishKeys[strings.ToLower(k)]; skip {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s.full() {
			return
		}
		if v, ok := renderValue(display[k]); ok {
			s.add(titleCase(k), v)
		}
	}
}

// addFieldMetrics surfaces the definition's preferred fields first, probing
// the whole field tree, then fills remaining capacity from the object's own
// top-level fields.
func (s *metricSet) addFieldMetrics(fields map[string]any, def *Definition) {
	if fields == nil {
		return
	}
	if def != nil {
		for _, name := range def.PreferredFields {
			if s.full() {
				return
			}
			raw, ok := findField(fields, name)
			if !ok {
				continue
			}
			if v, ok := renderValue(raw); ok {
				s.add(titleCase(name), v)
			}
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s.full() {
			return
		}
		if v, ok := renderValue(fields[k]); ok {
			s.add(titleCase(k), v)
		}
	}
}
