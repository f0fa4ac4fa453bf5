package state

// MoveCursorUp moves the selection one position up. Movement clamps at the
// first result, it never wraps.
func (l *List) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves the selection one position down, clamped at the last
// result.
func (l *List) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

// MoveCursorHome moves the selection to the first result.
func (l *List) MoveCursorHome() bool {
	if len(l.matches) == 0 {
		return false
	}
	return l.Select(0)
}

// MoveCursorEnd moves the selection to the last result.
func (l *List) MoveCursorEnd() bool {
	if len(l.matches) == 0 {
		return false
	}
	return l.Select(len(l.matches) - 1)
}

// MoveCursorPageUp moves the selection up by one page.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the selection down by one page.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if len(l.matches) == 0 {
		return false
	}
	pos := l.posOf(l.selectedID)
	if pos < 0 {
		pos = 0
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(l.matches) {
		pos = len(l.matches) - 1
	}
	return l.Select(pos)
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.matches)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}
