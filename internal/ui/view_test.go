package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	uistate "zellij-session-manager/internal/ui/state"
)

func TestTruncateTextKeepsShortStrings(t *testing.T) {
	if got := truncateText("hello", 10); got != "hello" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
	if got := truncateText("hello", 0); got != "hello" {
		t.Fatalf("expected zero width to disable truncation, got %q", got)
	}
}

func TestTruncateTextAddsMarker(t *testing.T) {
	got := truncateText("a-very-long-name", 8)
	if runewidth.StringWidth(got) > 8 {
		t.Fatalf("truncated string too wide: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected marker suffix, got %q", got)
	}
}

func TestTruncateTextCountsWideRunes(t *testing.T) {
	got := truncateText("日本語のセッション", 6)
	if runewidth.StringWidth(got) > 6 {
		t.Fatalf("truncated string too wide: %q (width %d)", got, runewidth.StringWidth(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected marker suffix, got %q", got)
	}
}

func TestHighlightLabelPreservesText(t *testing.T) {
	if got := highlightLabel("backend", nil, nil, nil); got != "backend" {
		t.Fatalf("expected plain label, got %q", got)
	}
	// Unstyled rendering must reproduce the label byte for byte even with
	// match positions interleaved.
	if got := highlightLabel("backend", []int{0, 2, 3}, nil, nil); got != "backend" {
		t.Fatalf("expected label unchanged, got %q", got)
	}
}

func TestLimitHeightAddsEllipsisRow(t *testing.T) {
	lines := []styledLine{
		{text: "one"}, {text: "two"}, {text: "three"}, {text: "four"},
	}
	got := limitHeight(lines, 3, 80)
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	if got[2].text != "…" {
		t.Fatalf("expected ellipsis row, got %q", got[2].text)
	}
}

func TestLimitHeightLeavesFittingContent(t *testing.T) {
	lines := []styledLine{{text: "one"}, {text: "two"}}
	got := limitHeight(lines, 5, 80)
	if len(got) != 2 {
		t.Fatalf("expected untouched lines, got %d", len(got))
	}
}

func TestBuildItemLineMarksCurrentSession(t *testing.T) {
	item := uistate.Item{ID: "alpha", Label: "alpha", Aux: "  1 hour(s) ago"}
	line := buildItemLine(item, uistate.Match{}, false, true)
	if !strings.Contains(line.text, "(current)") {
		t.Fatalf("expected current marker, got %q", line.text)
	}
	if !strings.Contains(line.text, "1 hour(s) ago") {
		t.Fatalf("expected age column, got %q", line.text)
	}
}

func TestStatusLineShowsResultCounter(t *testing.T) {
	h := newTestHarness(t, &recorder{}, false)
	feedSessions(h, "", "backend", "frontend", "builder")

	h.SendKeys("b")
	status := h.Model().statusLine()
	if !strings.Contains(status, "2/3") {
		t.Fatalf("expected 2/3 counter, got %q", status)
	}
}
