package state

import "testing"

func TestWindowFollowsCursorMinimally(t *testing.T) {
	l := NewList(namedItems("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"))
	l.EnsureVisible(3)
	if l.Offset() != 0 {
		t.Fatalf("expected initial offset 0, got %d", l.Offset())
	}
	l.MoveCursorEnd()
	l.EnsureVisible(3)
	if l.Offset() != 7 {
		t.Fatalf("expected offset 7 for cursor at 9, got %d", l.Offset())
	}
	window := l.Window(3)
	if len(window) != 3 || window[0] != 7 || window[2] != 9 {
		t.Fatalf("unexpected window %v", window)
	}
}

func TestWindowScrollsBackWithoutRecentering(t *testing.T) {
	l := NewList(namedItems("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"))
	l.MoveCursorEnd()
	l.EnsureVisible(3)
	// Moving one above the window top scrolls by exactly one row.
	l.Select(6)
	l.EnsureVisible(3)
	if l.Offset() != 6 {
		t.Fatalf("expected offset 6, got %d", l.Offset())
	}
	// Moving inside the window leaves the offset alone.
	l.Select(7)
	l.EnsureVisible(3)
	if l.Offset() != 6 {
		t.Fatalf("expected offset to stay 6, got %d", l.Offset())
	}
}

func TestWindowInvariant(t *testing.T) {
	l := NewList(namedItems("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"))
	for _, pos := range []int{0, 4, 9, 2, 8, 5} {
		l.Select(pos)
		l.EnsureVisible(4)
		offset := l.Offset()
		if pos < offset || pos >= offset+4 {
			t.Fatalf("cursor %d outside window [%d,%d)", pos, offset, offset+4)
		}
		if offset < 0 || offset+4 > l.Len()+3 {
			t.Fatalf("offset %d out of range", offset)
		}
	}
}

func TestWindowZeroHeight(t *testing.T) {
	l := NewList(namedItems("a", "b"))
	if rows := l.Window(0); rows != nil {
		t.Fatalf("expected nil window for zero height, got %v", rows)
	}
	if rows := l.Window(-1); rows != nil {
		t.Fatalf("expected nil window for negative height, got %v", rows)
	}
}

func TestWindowShrinksToResults(t *testing.T) {
	l := NewList(namedItems("a", "b"))
	rows := l.Window(5)
	if len(rows) != 2 {
		t.Fatalf("expected 2 visible rows, got %d", len(rows))
	}
}
