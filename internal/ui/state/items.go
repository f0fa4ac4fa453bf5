package state

// Item is a single list candidate. ID is the stable identity used to keep
// the selection anchored across filter and data-set changes; Label is what
// the matcher scores and the UI displays. Aux carries an optional secondary
// column such as a layout path or a session age.
type Item struct {
	ID    string
	Label string
	Aux   string
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
