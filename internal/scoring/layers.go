package scoring

import (
	"math"
	"sort"
)

// Layers is the per-user score arena: dimension -> label -> accumulated
// non-negative score. Profiles persist it as a single jsonb column.
type Layers map[string]map[string]float64

// DecayFactor is applied multiplicatively to every layer score once per
// decay period.
const DecayFactor = 0.98

// Clone deep-copies the arena.
func (l Layers) Clone() Layers {
	out := make(Layers, len(l))
	for dim, labels := range l {
		m := make(map[string]float64, len(labels))
		for label, score := range labels {
			m[label] = score
		}
		out[dim] = m
	}
	return out
}

// Add folds per-dimension increments into the arena in place.
func (l Layers) Add(deltas map[Dimension]map[string]float64) {
	for dim, labels := range deltas {
		cur := l[string(dim)]
		if cur == nil {
			cur = make(map[string]float64, len(labels))
			l[string(dim)] = cur
		}
		for label, delta := range labels {
			cur[label] += delta
		}
	}
}

// Scale multiplies every score by factor in place. Labels are never added or
// removed.
func (l Layers) Scale(factor float64) {
	for _, labels := range l {
		for label, score := range labels {
			labels[label] = score * factor
		}
	}
}

// LabelScore is one (label, score) entry of a layer.
type LabelScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// TopN returns the n highest-scoring labels of one dimension, descending by
// score with ties broken lexically so repeated reads are deterministic.
func (l Layers) TopN(dim Dimension, n int) []LabelScore {
	labels := l[string(dim)]
	if len(labels) == 0 || n <= 0 {
		return nil
	}
	entries := make([]LabelScore, 0, len(labels))
	for label, score := range labels {
		entries = append(entries, LabelScore{Name: label, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// ConfidenceForEvents derives profile confidence from the event counter:
// min(1, log10(n+2)/2). Zero stays the stored creation default; one event
// lands near 0.24, around eight events near 0.5, and the curve approaches 1
// without reaching it.
func ConfidenceForEvents(totalEvents int64) float64 {
	return math.Min(1.0, math.Log10(float64(totalEvents)+2)/2.0)
}
