package state

import "testing"

func selectionPos(t *testing.T, l *List) int {
	t.Helper()
	pos, _, ok := l.Selection()
	if !ok {
		t.Fatalf("expected a selection")
	}
	return pos
}

func TestCursorClampsAtEdges(t *testing.T) {
	l := NewList(namedItems("a", "b", "c"))
	if l.MoveCursorUp() {
		t.Fatalf("cursor at top must not move up")
	}
	if selectionPos(t, l) != 0 {
		t.Fatalf("cursor wrapped at top")
	}
	l.MoveCursorEnd()
	if l.MoveCursorDown() {
		t.Fatalf("cursor at bottom must not move down")
	}
	if selectionPos(t, l) != 2 {
		t.Fatalf("cursor wrapped at bottom")
	}
}

func TestCursorStepAndHomeEnd(t *testing.T) {
	l := NewList(namedItems("a", "b", "c", "d"))
	l.MoveCursorDown()
	l.MoveCursorDown()
	if selectionPos(t, l) != 2 {
		t.Fatalf("expected position 2, got %d", selectionPos(t, l))
	}
	l.MoveCursorUp()
	if selectionPos(t, l) != 1 {
		t.Fatalf("expected position 1, got %d", selectionPos(t, l))
	}
	l.MoveCursorEnd()
	if selectionPos(t, l) != 3 {
		t.Fatalf("expected end position 3, got %d", selectionPos(t, l))
	}
	l.MoveCursorHome()
	if selectionPos(t, l) != 0 {
		t.Fatalf("expected home position 0, got %d", selectionPos(t, l))
	}
}

func TestCursorPageMovement(t *testing.T) {
	l := NewList(namedItems("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"))
	l.MoveCursorPageDown(3)
	if selectionPos(t, l) != 3 {
		t.Fatalf("expected page down to land on 3, got %d", selectionPos(t, l))
	}
	l.MoveCursorPageDown(3)
	l.MoveCursorPageDown(3)
	l.MoveCursorPageDown(3)
	if selectionPos(t, l) != 9 {
		t.Fatalf("expected page down to clamp at 9, got %d", selectionPos(t, l))
	}
	l.MoveCursorPageUp(4)
	if selectionPos(t, l) != 5 {
		t.Fatalf("expected page up to land on 5, got %d", selectionPos(t, l))
	}
}

func TestCursorMovementOnEmptyList(t *testing.T) {
	l := NewList(nil)
	if l.MoveCursorDown() || l.MoveCursorUp() || l.MoveCursorHome() || l.MoveCursorEnd() {
		t.Fatalf("movement on empty list must be a no-op")
	}
}
