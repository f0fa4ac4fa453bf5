package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// zellij derives a socket path from the session name; names at or beyond
// this length no longer fit.
const maxSessionNameBytes = 108

func validateSessionName(name string) error {
	if strings.Contains(name, "/") {
		return errors.New("session name cannot contain '/'")
	}
	if len(name) >= maxSessionNameBytes {
		return errors.New("session name must be under 108 bytes")
	}
	return nil
}

func (m *Model) handleNameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.goBack()
	case "tab":
		m.gotoScreen(nextTabScreen(ScreenNewSession))
		return nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if err := validateSessionName(name); err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.refreshLayoutItems()
		if len(m.layoutList.Full()) == 0 {
			return m.requestCreate(name, "")
		}
		m.pendingName = name
		m.newPhase = PhaseSearchingLayout
		m.layoutList.ClearQuery()
		m.layoutList.SelectID("default")
		m.layoutList.EnsureVisible(m.maxVisibleItems())
		return nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return cmd
}

func (m *Model) startRename() {
	current := m.sessions.Current()
	if current == "" {
		m.setInfo("Not attached to a session")
		return
	}
	m.renaming = true
	m.renameInput.SetValue(current)
	m.renameInput.CursorEnd()
	m.renameInput.Focus()
}

func (m *Model) handleRenameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.renaming = false
		return nil
	case "enter":
		name := strings.TrimSpace(m.renameInput.Value())
		if name == "" {
			m.errMsg = "session name cannot be empty"
			return nil
		}
		if err := validateSessionName(name); err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.renaming = false
		return m.requestRename(name)
	}
	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return cmd
}
