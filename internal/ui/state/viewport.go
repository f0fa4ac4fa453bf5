package state

// EnsureVisible adjusts the viewport offset so the selection stays inside
// the window, scrolling only as far as needed to bring it back into view.
func (l *List) EnsureVisible(maxVisible int) {
	if len(l.matches) == 0 {
		l.offset = 0
		return
	}
	if maxVisible <= 0 {
		l.offset = 0
		return
	}
	pos := l.posOf(l.selectedID)
	if pos < 0 {
		pos = 0
	}
	maxOffset := len(l.matches) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
	if pos < l.offset {
		l.offset = pos
	}
	upper := l.offset + maxVisible - 1
	if pos > upper {
		l.offset = pos - maxVisible + 1
		if l.offset < 0 {
			l.offset = 0
		}
		if l.offset > maxOffset {
			l.offset = maxOffset
		}
	}
}

// Offset returns the current viewport offset.
func (l *List) Offset() int {
	return l.offset
}

// Window returns the filtered positions visible in a viewport of the given
// height, after EnsureVisible. A non-positive height shows nothing.
func (l *List) Window(maxVisible int) []int {
	if maxVisible <= 0 || len(l.matches) == 0 {
		return nil
	}
	l.EnsureVisible(maxVisible)
	end := l.offset + maxVisible
	if end > len(l.matches) {
		end = len(l.matches)
	}
	out := make([]int, 0, end-l.offset)
	for pos := l.offset; pos < end; pos++ {
		out = append(out, pos)
	}
	return out
}
