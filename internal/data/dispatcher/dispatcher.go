// Package dispatcher routes backend events into the state stores.
package dispatcher

import (
	"zellij-session-manager/internal/backend"
	"zellij-session-manager/internal/host"
	"zellij-session-manager/internal/state"
)

type Result struct {
	SessionsUpdated bool
	LayoutsUpdated  bool
	DeadUpdated     bool
}

type Dispatcher struct {
	sessions state.SessionStore
	layouts  state.LayoutStore
	dead     state.DeadStore
}

func New(s state.SessionStore, l state.LayoutStore, d state.DeadStore) *Dispatcher {
	return &Dispatcher{sessions: s, layouts: l, dead: d}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindSessions:
		if snapshot, ok := evt.Data.(host.SessionSnapshot); ok {
			d.sessions.SetEntries(snapshot.Sessions)
			d.sessions.SetCurrent(snapshot.Current)
			res.SessionsUpdated = true
		}
	case backend.KindLayouts:
		if snapshot, ok := evt.Data.(host.LayoutSnapshot); ok {
			d.layouts.SetEntries(snapshot.Layouts)
			res.LayoutsUpdated = true
		}
	case backend.KindDead:
		if snapshot, ok := evt.Data.(host.DeadSnapshot); ok {
			d.dead.SetEntries(snapshot.Sessions)
			res.DeadUpdated = true
		}
	}
	return res
}
