package state

import "zellij-session-manager/internal/host"

type LayoutStore interface {
	Entries() []host.Layout
	SetEntries([]host.Layout)
}

type layoutStore struct {
	entries []host.Layout
}

func NewLayoutStore() LayoutStore {
	return &layoutStore{}
}

func (s *layoutStore) Entries() []host.Layout {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]host.Layout, len(s.entries))
	copy(dup, s.entries)
	return dup
}

func (s *layoutStore) SetEntries(entries []host.Layout) {
	if len(entries) == 0 {
		s.entries = nil
		return
	}
	dup := make([]host.Layout, len(entries))
	copy(dup, entries)
	s.entries = dup
}
