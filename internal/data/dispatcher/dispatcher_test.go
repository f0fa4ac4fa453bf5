package dispatcher

import (
	"errors"
	"testing"
	"time"

	"zellij-session-manager/internal/backend"
	"zellij-session-manager/internal/host"
	"zellij-session-manager/internal/state"
)

func TestHandleSessionSnapshot(t *testing.T) {
	sessions := state.NewSessionStore()
	d := New(sessions, state.NewLayoutStore(), state.NewDeadStore())

	res := d.Handle(backend.Event{
		Kind: backend.KindSessions,
		Data: host.SessionSnapshot{
			Sessions: []host.Session{{Name: "forest"}, {Name: "base", Current: true}},
			Current:  "base",
		},
	})
	if !res.SessionsUpdated {
		t.Fatalf("expected sessions to update")
	}
	if got := sessions.Current(); got != "base" {
		t.Fatalf("expected current base, got %q", got)
	}
	if entries := sessions.Entries(); len(entries) != 2 || entries[0].Name != "forest" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestHandleDeadSnapshot(t *testing.T) {
	dead := state.NewDeadStore()
	d := New(state.NewSessionStore(), state.NewLayoutStore(), dead)

	res := d.Handle(backend.Event{
		Kind: backend.KindDead,
		Data: host.DeadSnapshot{Sessions: []host.DeadSession{{Name: "ruin", Age: time.Hour}}},
	})
	if !res.DeadUpdated {
		t.Fatalf("expected dead sessions to update")
	}
	if entries := dead.Entries(); len(entries) != 1 || entries[0].Name != "ruin" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestHandleErrorEventLeavesStores(t *testing.T) {
	sessions := state.NewSessionStore()
	sessions.SetEntries([]host.Session{{Name: "keep"}})
	d := New(sessions, state.NewLayoutStore(), state.NewDeadStore())

	res := d.Handle(backend.Event{Kind: backend.KindSessions, Err: errors.New("boom")})
	if res.SessionsUpdated {
		t.Fatalf("error event must not report an update")
	}
	if entries := sessions.Entries(); len(entries) != 1 || entries[0].Name != "keep" {
		t.Fatalf("error event must not clear entries: %+v", entries)
	}
}
