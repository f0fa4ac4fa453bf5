package state

// List is a searchable item container: a full item set, a query string, and
// the derived filtered results. The selection is anchored to an item ID
// rather than a raw position so it survives filter and data-set changes.
type List struct {
	full       []Item
	query      string
	queryPos   int
	matches    []Match
	selectedID string
	offset     int
}

// NewList constructs a list over the provided items with an empty query.
func NewList(items []Item) *List {
	l := &List{}
	l.full = CloneItems(items)
	l.matches = MatchAll(l.full, "")
	if len(l.matches) > 0 {
		l.selectedID = l.full[l.matches[0].Index].ID
	}
	return l
}

// SetItems replaces the full item set wholesale and rebuilds the filtered
// view, reconciling the selection. The previous filtered position must be
// captured before the old item set is dropped, otherwise a vanished
// selection cannot clamp to its neighbours.
func (l *List) SetItems(items []Item) {
	prevPos := l.posOf(l.selectedID)
	l.full = CloneItems(items)
	l.rebuildFrom(prevPos)
}

// Full returns the unfiltered item set.
func (l *List) Full() []Item {
	return CloneItems(l.full)
}

// Matches returns the current filtered results in display order.
func (l *List) Matches() []Match {
	return l.matches
}

// Len reports the number of filtered results.
func (l *List) Len() int {
	return len(l.matches)
}

// ItemAt resolves a filtered position back to its item.
func (l *List) ItemAt(pos int) (Item, bool) {
	if pos < 0 || pos >= len(l.matches) {
		return Item{}, false
	}
	idx := l.matches[pos].Index
	if idx < 0 || idx >= len(l.full) {
		return Item{}, false
	}
	return l.full[idx], true
}

// Selection returns the highlighted position and item. ok is false when the
// filtered view is empty.
func (l *List) Selection() (int, Item, bool) {
	pos := l.posOf(l.selectedID)
	if pos < 0 {
		return -1, Item{}, false
	}
	item, _ := l.ItemAt(pos)
	return pos, item, true
}

// SelectedID returns the identity anchor of the current selection, empty
// when nothing is selected.
func (l *List) SelectedID() string {
	return l.selectedID
}

// Select moves the selection to the given filtered position.
func (l *List) Select(pos int) bool {
	item, ok := l.ItemAt(pos)
	if !ok {
		return false
	}
	changed := l.selectedID != item.ID
	l.selectedID = item.ID
	return changed
}

// SelectID anchors the selection to a specific item if it is present in the
// filtered view.
func (l *List) SelectID(id string) bool {
	if l.posOf(id) < 0 {
		return false
	}
	changed := l.selectedID != id
	l.selectedID = id
	return changed
}

func (l *List) posOf(id string) int {
	if id == "" {
		return -1
	}
	for pos, m := range l.matches {
		if m.Index >= 0 && m.Index < len(l.full) && l.full[m.Index].ID == id {
			return pos
		}
	}
	return -1
}

// rebuild recomputes the filtered view and reconciles the selection: keep
// the anchored item when it survives, otherwise clamp the previous position
// into the new results, otherwise select the top result.
func (l *List) rebuild() {
	l.rebuildFrom(l.posOf(l.selectedID))
}

func (l *List) rebuildFrom(prevPos int) {
	l.matches = MatchAll(l.full, l.query)
	if len(l.matches) == 0 {
		l.selectedID = ""
		l.offset = 0
		return
	}
	if l.posOf(l.selectedID) >= 0 {
		return
	}
	if prevPos < 0 {
		prevPos = 0
	}
	if prevPos >= len(l.matches) {
		prevPos = len(l.matches) - 1
	}
	item, _ := l.ItemAt(prevPos)
	l.selectedID = item.ID
}
