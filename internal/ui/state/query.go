package state

import "unicode"

// Query returns the current filter text.
func (l *List) Query() string {
	return l.query
}

// QueryCursor returns the rune offset of the query cursor, clamped into the
// current text.
func (l *List) QueryCursor() int {
	runes := []rune(l.query)
	if l.queryPos < 0 {
		return 0
	}
	if l.queryPos > len(runes) {
		return len(runes)
	}
	return l.queryPos
}

// SetQuery replaces the query text and cursor, then rebuilds the filtered
// view.
func (l *List) SetQuery(query string, cursor int) {
	l.query = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.queryPos = cursor
	l.rebuild()
}

// InsertQueryText inserts text at the query cursor.
func (l *List) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.query)
	pos := l.QueryCursor()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes the rune before the query cursor.
func (l *List) DeleteQueryRuneBackward() bool {
	runes := []rune(l.query)
	pos := l.QueryCursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	l.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the query cursor.
func (l *List) DeleteQueryWordBackward() bool {
	runes := []rune(l.query)
	pos := l.QueryCursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	l.SetQuery(string(updated), i)
	return true
}

// ClearQuery drops the query text entirely.
func (l *List) ClearQuery() bool {
	if l.query == "" {
		return false
	}
	l.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start of the text.
func (l *List) MoveQueryCursorStart() bool {
	if l.QueryCursor() == 0 {
		return false
	}
	l.queryPos = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor past the last rune.
func (l *List) MoveQueryCursorEnd() bool {
	end := len([]rune(l.query))
	if l.QueryCursor() == end {
		return false
	}
	l.queryPos = end
	return true
}

// MoveQueryCursorBackward moves the query cursor one rune left.
func (l *List) MoveQueryCursorBackward() bool {
	pos := l.QueryCursor()
	if pos == 0 {
		return false
	}
	l.queryPos = pos - 1
	return true
}

// MoveQueryCursorForward moves the query cursor one rune right.
func (l *List) MoveQueryCursorForward() bool {
	pos := l.QueryCursor()
	if pos >= len([]rune(l.query)) {
		return false
	}
	l.queryPos = pos + 1
	return true
}
