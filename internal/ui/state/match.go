package state

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match ties a filtered result back to the full item set. Positions holds
// the byte offsets of matched characters within the item label, for
// highlight rendering.
type Match struct {
	Index     int
	Score     int
	Positions []int
}

// MatchAll filters items against the query. An empty (or all-whitespace)
// query returns every item in insertion order with equal scores and no
// highlight positions. A non-empty query returns fuzzy matches ordered by
// descending score, ties broken by ascending label.
func MatchAll(items []Item, query string) []Match {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		out := make([]Match, len(items))
		for i := range items {
			out[i] = Match{Index: i}
		}
		return out
	}

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	found := fuzzy.Find(trimmed, labels)
	out := make([]Match, 0, len(found))
	for _, m := range found {
		out = append(out, Match{
			Index:     m.Index,
			Score:     m.Score,
			Positions: append([]int(nil), m.MatchedIndexes...),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return items[out[i].Index].Label < items[out[j].Index].Label
	})
	return out
}
