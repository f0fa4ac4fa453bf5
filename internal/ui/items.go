package ui

import (
	"strings"
	"time"

	"zellij-session-manager/internal/format/duration"
	"zellij-session-manager/internal/format/table"
	"zellij-session-manager/internal/host"
	uistate "zellij-session-manager/internal/ui/state"
)

// sessionItems converts a session snapshot into searchable items, splitting
// out forbidden sessions. Forbidden sessions never enter the searchable set;
// they render as a dimmed sub-list instead.
func sessionItems(entries []host.Session) ([]uistate.Item, []host.Session) {
	var forbidden []host.Session
	var visible []host.Session
	for _, entry := range entries {
		if entry.Forbidden {
			forbidden = append(forbidden, entry)
			continue
		}
		visible = append(visible, entry)
	}
	rows := make([][]string, len(visible))
	for i, entry := range visible {
		age := ""
		if entry.Age > 0 {
			age = duration.Ago(int64(entry.Age / time.Second))
		}
		rows[i] = []string{entry.Name, age}
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	items := make([]uistate.Item, len(visible))
	for i, entry := range visible {
		items[i] = uistate.Item{
			ID:    entry.Name,
			Label: entry.Name,
			Aux:   strings.TrimPrefix(aligned[i], entry.Name),
		}
	}
	return items, forbidden
}

// deadItems builds the resurrect screen's rows with an aligned age column.
func deadItems(entries []host.DeadSession) []uistate.Item {
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Name, duration.Ago(int64(entry.Age / time.Second))}
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	items := make([]uistate.Item, len(entries))
	for i, entry := range entries {
		items[i] = uistate.Item{
			ID:    entry.Name,
			Label: entry.Name,
			Aux:   strings.TrimPrefix(aligned[i], entry.Name),
		}
	}
	return items
}

// layoutItems lists selectable layouts; custom layouts carry their file path
// as the secondary column.
func layoutItems(entries []host.Layout) []uistate.Item {
	items := make([]uistate.Item, len(entries))
	for i, entry := range entries {
		id := entry.Name
		if entry.Path != "" {
			id = entry.Path
		}
		aux := ""
		if entry.Path != "" {
			aux = "  " + entry.Path
		}
		items[i] = uistate.Item{ID: id, Label: entry.Name, Aux: aux}
	}
	return items
}

func (m *Model) refreshSessionItems() {
	items, forbidden := sessionItems(m.sessions.Entries())
	m.sessionList.SetItems(items)
	m.forbidden = forbidden
	m.sessionList.EnsureVisible(m.maxVisibleItems())
}

func (m *Model) refreshDeadItems() {
	m.deadList.SetItems(deadItems(m.dead.Entries()))
	m.deadList.EnsureVisible(m.maxVisibleItems())
}

func (m *Model) refreshLayoutItems() {
	m.layoutList.SetItems(layoutItems(m.layouts.Entries()))
	m.layoutList.EnsureVisible(m.maxVisibleItems())
}
