// Package state holds the latest host snapshots between backend refreshes.
package state

import "zellij-session-manager/internal/host"

type SessionStore interface {
	Entries() []host.Session
	SetEntries([]host.Session)
	Current() string
	SetCurrent(string)
	Lookup(name string) (host.Session, bool)
}

type sessionStore struct {
	entries []host.Session
	current string
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) Entries() []host.Session {
	return cloneSessions(s.entries)
}

func (s *sessionStore) SetEntries(entries []host.Session) {
	s.entries = cloneSessions(entries)
}

func (s *sessionStore) Current() string {
	return s.current
}

func (s *sessionStore) SetCurrent(current string) {
	s.current = current
}

func (s *sessionStore) Lookup(name string) (host.Session, bool) {
	for _, entry := range s.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return host.Session{}, false
}

func cloneSessions(entries []host.Session) []host.Session {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]host.Session, len(entries))
	copy(dup, entries)
	return dup
}
