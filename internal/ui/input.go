package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"zellij-session-manager/internal/logging/events"
	uistate "zellij-session-manager/internal/ui/state"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(lst *uistate.List, before int) {
	if lst == nil {
		return
	}
	if before != lst.QueryCursor() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	// A pending error line is dismissed by the next key press, which then
	// dispatches normally.
	m.errMsg = ""
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.renaming {
		return m.handleRenameKey(keyMsg)
	}
	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKey(keyMsg)
	case ScreenNotFound:
		m.backToWelcome()
		return nil
	case ScreenNewSession:
		if m.newPhase == PhaseEnteringName {
			return m.handleNameKey(keyMsg)
		}
		return m.handleListKey(keyMsg)
	default:
		return m.handleListKey(keyMsg)
	}
}

// handleMouseMsg supports wheel scrolling and click-to-select on the list
// screens. Item rows start below the header row.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok || m.renaming {
		return nil
	}
	lst := m.activeList()
	if lst == nil {
		return nil
	}
	switch mouseMsg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor((*uistate.List).MoveCursorUp)
	case tea.MouseButtonWheelDown:
		m.moveCursor((*uistate.List).MoveCursorDown)
	case tea.MouseButtonLeft:
		if mouseMsg.Action != tea.MouseActionPress {
			return nil
		}
		pos := lst.Offset() + mouseMsg.Y - 1
		if lst.Select(pos) {
			if selPos, _, ok := lst.Selection(); ok {
				events.Screen.Cursor(m.screen.String(), selPos)
			}
		}
	}
	return nil
}

func (m *Model) handleWelcomeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		return tea.Quit
	case "n":
		m.gotoScreen(ScreenNewSession)
	case "r":
		m.gotoScreen(ScreenResurrect)
	case "a", "enter", "tab":
		m.gotoScreen(ScreenSessionList)
	}
	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	if m.killAllArmed {
		return m.handleKillAllConfirm(msg)
	}
	if m.deleteAllArmed {
		return m.handleDeleteAllConfirm(msg)
	}
	if handled, cmd := m.handleTextInput(msg); handled {
		return cmd
	}
	switch msg.String() {
	case "esc":
		if m.screen == ScreenNewSession {
			m.newPhase = PhaseEnteringName
			m.nameInput.Focus()
			return nil
		}
		return m.goBack()
	case "enter":
		return m.handleEnterKey()
	case "tab":
		m.gotoScreen(nextTabScreen(m.screen))
		return nil
	case "up":
		m.moveCursor((*uistate.List).MoveCursorUp)
	case "down":
		m.moveCursor((*uistate.List).MoveCursorDown)
	case "home":
		m.moveCursor((*uistate.List).MoveCursorHome)
	case "end":
		m.moveCursor((*uistate.List).MoveCursorEnd)
	case "pgup":
		m.moveCursorPaged((*uistate.List).MoveCursorPageUp)
	case "pgdown":
		m.moveCursorPaged((*uistate.List).MoveCursorPageDown)
	case "delete":
		return m.handleDeleteKey()
	case "ctrl+d":
		return m.armBulkDelete()
	case "ctrl+r":
		if m.screen == ScreenSessionList {
			m.startRename()
		}
	}
	return nil
}

func (m *Model) moveCursor(move func(*uistate.List) bool) {
	lst := m.activeList()
	if lst == nil {
		return
	}
	if move(lst) {
		if pos, _, ok := lst.Selection(); ok {
			events.Screen.Cursor(m.screen.String(), pos)
		}
	}
	lst.EnsureVisible(m.maxVisibleItems())
}

func (m *Model) moveCursorPaged(move func(*uistate.List, int) bool) {
	lst := m.activeList()
	if lst == nil {
		return
	}
	if move(lst, m.maxVisibleItems()) {
		if pos, _, ok := lst.Selection(); ok {
			events.Screen.Cursor(m.screen.String(), pos)
		}
	}
	lst.EnsureVisible(m.maxVisibleItems())
}

func (m *Model) handleEnterKey() tea.Cmd {
	lst := m.activeList()
	if lst == nil {
		return nil
	}
	_, item, ok := lst.Selection()
	if !ok {
		return nil
	}
	switch m.screen {
	case ScreenSessionList:
		if item.ID == m.sessions.Current() {
			m.setInfo("Already attached to " + item.ID)
			return nil
		}
		if _, present := m.sessions.Lookup(item.ID); !present {
			m.gotoNotFound(item.ID)
			return nil
		}
		return m.requestSwitch(item.ID)
	case ScreenResurrect:
		return m.requestResurrect(item.Label)
	case ScreenNewSession:
		name := m.pendingName
		m.pendingName = ""
		return m.requestCreate(name, item.ID)
	}
	return nil
}

func (m *Model) handleDeleteKey() tea.Cmd {
	lst := m.activeList()
	if lst == nil {
		return nil
	}
	_, item, ok := lst.Selection()
	if !ok {
		return nil
	}
	switch m.screen {
	case ScreenSessionList:
		if item.ID == m.sessions.Current() {
			m.setInfo("Cannot kill the attached session from here")
			return nil
		}
		return m.requestKill(item.ID)
	case ScreenResurrect:
		return m.requestDeleteDead(item.Label)
	}
	return nil
}

func (m *Model) armBulkDelete() tea.Cmd {
	switch m.screen {
	case ScreenSessionList:
		if len(m.killTargets()) == 0 {
			m.setInfo("No other sessions to kill")
			return nil
		}
		m.killAllArmed = true
	case ScreenResurrect:
		if m.deadList.Len() == 0 && len(m.dead.Entries()) == 0 {
			m.setInfo("No dead sessions to delete")
			return nil
		}
		m.deleteAllArmed = true
	}
	return nil
}

// killTargets lists every killable session: everything except the attached
// session and forbidden ones.
func (m *Model) killTargets() []string {
	current := m.sessions.Current()
	var names []string
	for _, entry := range m.sessions.Entries() {
		if entry.Forbidden || entry.Name == current {
			continue
		}
		names = append(names, entry.Name)
	}
	return names
}

func (m *Model) handleKillAllConfirm(msg tea.KeyMsg) tea.Cmd {
	m.killAllArmed = false
	if msg.String() == "y" {
		targets := m.killTargets()
		m.sessionList.ClearQuery()
		return m.requestKillAll(targets)
	}
	return nil
}

func (m *Model) handleDeleteAllConfirm(msg tea.KeyMsg) tea.Cmd {
	m.deleteAllArmed = false
	if msg.String() == "y" {
		count := len(m.dead.Entries())
		m.deadList.ClearQuery()
		return m.requestDeleteAllDead(count)
	}
	return nil
}

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	lst := m.activeList()
	if lst == nil {
		return false, nil
	}
	screen := m.screen.String()
	switch msg.String() {
	case "ctrl+u":
		if lst.Query() == "" {
			return false, nil
		}
		before := lst.QueryCursor()
		lst.SetQuery("", 0)
		m.noteFilterCursorChange(lst, before)
		m.forceClearInfo()
		events.Filter.Cleared(screen)
		lst.EnsureVisible(m.maxVisibleItems())
		return true, nil
	case "ctrl+w":
		before := lst.QueryCursor()
		if !lst.DeleteQueryWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(lst, before)
		m.forceClearInfo()
		events.Filter.WordBackspace(screen, lst.Query())
		lst.EnsureVisible(m.maxVisibleItems())
		return true, nil
	case "ctrl+a":
		before := lst.QueryCursor()
		if !lst.MoveQueryCursorStart() {
			return false, nil
		}
		m.noteFilterCursorChange(lst, before)
		events.Filter.Cursor(screen, lst.QueryCursor())
		return true, nil
	case "ctrl+e":
		before := lst.QueryCursor()
		if !lst.MoveQueryCursorEnd() {
			return false, nil
		}
		m.noteFilterCursorChange(lst, before)
		events.Filter.Cursor(screen, lst.QueryCursor())
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(lst, screen), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
			if unicode.IsSpace(r) {
				// the dedicated space handler manages spaces
				return false, nil
			}
		}
		return m.appendToFilter(lst, screen, string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(lst, screen, " "), nil
	case tea.KeyLeft:
		before := lst.QueryCursor()
		if !lst.MoveQueryCursorBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(lst, before)
		events.Filter.Cursor(screen, lst.QueryCursor())
		return true, nil
	case tea.KeyRight:
		before := lst.QueryCursor()
		if !lst.MoveQueryCursorForward() {
			return false, nil
		}
		m.noteFilterCursorChange(lst, before)
		events.Filter.Cursor(screen, lst.QueryCursor())
		return true, nil
	}
	return false, nil
}

func (m *Model) appendToFilter(lst *uistate.List, screen, text string) bool {
	before := lst.QueryCursor()
	if !lst.InsertQueryText(text) {
		return false
	}
	m.noteFilterCursorChange(lst, before)
	m.forceClearInfo()
	events.Filter.Append(screen, lst.Query())
	lst.EnsureVisible(m.maxVisibleItems())
	return true
}

func (m *Model) removeFilterRune(lst *uistate.List, screen string) bool {
	before := lst.QueryCursor()
	if !lst.DeleteQueryRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(lst, before)
	m.forceClearInfo()
	events.Filter.Backspace(screen, lst.Query())
	lst.EnsureVisible(m.maxVisibleItems())
	return true
}
