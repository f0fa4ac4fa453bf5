package host

import (
	"testing"
	"time"
)

func TestParseSessionLinesSplitsLiveAndExited(t *testing.T) {
	raw := "forest [Created 2h 4m 3s ago]\n" +
		"ruin [Created 14days 1h ago] (EXITED - attach to resurrect)\n" +
		"base [Created 10s ago] (current)\n"
	live, dead := parseSessionLines(raw, "", nil)
	if len(live) != 2 {
		t.Fatalf("expected 2 live sessions, got %d", len(live))
	}
	if len(dead) != 1 {
		t.Fatalf("expected 1 dead session, got %d", len(dead))
	}
	if live[0].Name != "forest" || live[0].Age != 2*time.Hour+4*time.Minute+3*time.Second {
		t.Fatalf("unexpected first live session: %+v", live[0])
	}
	if !live[1].Current {
		t.Fatalf("expected base to be marked current")
	}
	if dead[0].Name != "ruin" {
		t.Fatalf("unexpected dead session name %q", dead[0].Name)
	}
	if want := 14*24*time.Hour + time.Hour; dead[0].Age != want {
		t.Fatalf("expected dead age %v, got %v", want, dead[0].Age)
	}
}

func TestParseSessionLinesStripsANSI(t *testing.T) {
	raw := "\x1b[32mforest\x1b[0m [Created 5m ago]\n"
	live, _ := parseSessionLines(raw, "", nil)
	if len(live) != 1 || live[0].Name != "forest" {
		t.Fatalf("expected ANSI-stripped session name, got %+v", live)
	}
}

func TestParseSessionLinesMarksCurrentFromEnvName(t *testing.T) {
	raw := "forest [Created 5m ago]\n"
	live, _ := parseSessionLines(raw, "forest", nil)
	if len(live) != 1 || !live[0].Current {
		t.Fatalf("expected forest to be current, got %+v", live)
	}
}

func TestParseSessionLinesMarksForbidden(t *testing.T) {
	raw := "locked [Created 5m ago]\nopen [Created 5m ago]\n"
	live, _ := parseSessionLines(raw, "", map[string]bool{"locked": true})
	if !live[0].Forbidden {
		t.Fatalf("expected locked to be forbidden")
	}
	if live[1].Forbidden {
		t.Fatalf("expected open to be allowed")
	}
}

func TestParseSessionLinesNameWithSpaces(t *testing.T) {
	raw := "two words [Created 1h ago]\n"
	live, _ := parseSessionLines(raw, "", nil)
	if len(live) != 1 || live[0].Name != "two words" {
		t.Fatalf("expected spaced name to survive, got %+v", live)
	}
}

func TestParseAgeComponents(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"2h 4m 3s", 2*time.Hour + 4*time.Minute + 3*time.Second},
		{"1day", 24 * time.Hour},
		{"3weeks 2days", 3*7*24*time.Hour + 2*24*time.Hour},
		{"", 0},
		{"soon", 0},
	}
	for _, tc := range cases {
		if got := parseAge(tc.in); got != tc.want {
			t.Fatalf("parseAge(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
