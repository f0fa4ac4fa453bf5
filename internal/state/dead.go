package state

import "zellij-session-manager/internal/host"

type DeadStore interface {
	Entries() []host.DeadSession
	SetEntries([]host.DeadSession)
}

type deadStore struct {
	entries []host.DeadSession
}

func NewDeadStore() DeadStore {
	return &deadStore{}
}

func (s *deadStore) Entries() []host.DeadSession {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]host.DeadSession, len(s.entries))
	copy(dup, s.entries)
	return dup
}

func (s *deadStore) SetEntries(entries []host.DeadSession) {
	if len(entries) == 0 {
		s.entries = nil
		return
	}
	dup := make([]host.DeadSession, len(entries))
	copy(dup, entries)
	s.entries = dup
}
