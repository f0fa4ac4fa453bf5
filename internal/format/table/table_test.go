package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"ruin", "1 hour(s) ago"},
		{"long-session-name", "3 day(s) ago"},
	}
	lines := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "ruin               1 hour(s) ago" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"a", "9"},
		{"b", "10"},
	}
	lines := Format(rows, []Alignment{AlignLeft, AlignRight})
	if lines[0] != "a   9" {
		t.Fatalf("unexpected line %q", lines[0])
	}
	if lines[1] != "b  10" {
		t.Fatalf("unexpected line %q", lines[1])
	}
}

func TestFormatCountsWideRunes(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"abc", "y"},
	}
	lines := Format(rows, nil)
	// 日本 occupies four display cells, so abc gets one pad column.
	if lines[1] != "abc   y" {
		t.Fatalf("unexpected line %q", lines[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if lines := Format(nil, nil); lines != nil {
		t.Fatalf("expected nil for empty input, got %v", lines)
	}
}
