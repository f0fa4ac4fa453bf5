package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zellij-session-manager/internal/format/duration"
	uistate "zellij-session-manager/internal/ui/state"
)

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	if lst := m.activeList(); lst != nil {
		lst.EnsureVisible(m.maxVisibleItems())
	}
	return nil
}

// maxVisibleItems derives the item viewport height from the terminal height
// minus the fixed chrome rows. Zero means no item rows fit; negative means
// the height is not known yet and the viewport is unbounded.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header plus the status and filter rows
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if m.screen == ScreenSessionList && len(m.forbidden) > 0 {
		used += len(m.forbidden) + 1
	}
	remain := m.height - used
	if remain < 0 {
		return 0
	}
	return remain
}

// View is part of the tea.Model interface.
func (m *Model) View() string {
	if m.renaming {
		return m.viewRename()
	}
	switch m.screen {
	case ScreenWelcome:
		return m.viewWelcome()
	case ScreenNotFound:
		return m.viewNotFound()
	case ScreenNewSession:
		if m.newPhase == PhaseEnteringName {
			return m.viewNamePrompt()
		}
		return m.viewList(m.layoutList, "new session > layout", "(no layouts)",
			"enter create  esc name  tab next  type to search")
	case ScreenResurrect:
		return m.viewList(m.deadList, "resurrect session", "(no dead sessions)",
			"enter resurrect  del delete  ctrl+d delete all  tab next  esc back")
	default:
		return m.viewList(m.sessionList, "sessions", "(no sessions)",
			"enter attach  del kill  ctrl+d kill all  ctrl+r rename  tab next  esc back")
	}
}

func (m *Model) viewWelcome() string {
	lines := []styledLine{
		{text: "zellij session manager", style: styles.Header},
		{},
		{text: "a     browse sessions", style: styles.Info},
		{text: "n     create a new session", style: styles.Info},
		{text: "r     resurrect a dead session", style: styles.Info},
		{text: "esc   quit", style: styles.Info},
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: "tab cycles screens once inside", style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) viewNotFound() string {
	lines := []styledLine{
		{text: "session not found", style: styles.Header},
		{},
		{text: fmt.Sprintf("Session %q is no longer running.", m.notFoundName), style: styles.Error},
		{},
		{text: "press any key to continue", style: styles.Footer},
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) viewNamePrompt() string {
	lines := []styledLine{
		{text: "new session", style: styles.Header},
		{},
		{text: "Name for the new session:", style: styles.Info},
		{text: m.nameInput.View(), raw: true},
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{}, styledLine{text: "Error: " + m.errMsg, style: styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: "enter continue  esc back  tab next", style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) viewRename() string {
	lines := []styledLine{
		{text: "rename session", style: styles.Header},
		{},
		{text: fmt.Sprintf("New name for %q:", m.sessions.Current()), style: styles.Info},
		{text: m.renameInput.View(), raw: true},
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{}, styledLine{text: "Error: " + m.errMsg, style: styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: "enter rename  esc cancel", style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) viewList(lst *uistate.List, header, empty, help string) string {
	lines := []styledLine{{text: header, style: styles.Header}}

	maxVisible := m.maxVisibleItems()
	unbounded := maxVisible < 0
	if unbounded {
		// Height unknown before the first WindowSizeMsg; show everything.
		maxVisible = lst.Len()
	}
	if unbounded || maxVisible > 0 {
		if lst.Len() == 0 {
			msg := empty
			if lst.Query() != "" {
				msg = fmt.Sprintf("No matches for %q", lst.Query())
			}
			lines = append(lines, styledLine{text: msg, style: styles.FilterPlaceholder})
		} else {
			selected, _, hasSelection := lst.Selection()
			matches := lst.Matches()
			current := ""
			if m.screen == ScreenSessionList {
				current = m.sessions.Current()
			}
			for _, pos := range lst.Window(maxVisible) {
				item, ok := lst.ItemAt(pos)
				if !ok {
					continue
				}
				match := matches[pos]
				isSelected := hasSelection && pos == selected
				lines = append(lines, buildItemLine(item, match, isSelected, current != "" && item.ID == current))
			}
		}
	}

	if m.screen == ScreenSessionList && len(m.forbidden) > 0 {
		lines = append(lines, styledLine{})
		for _, entry := range m.forbidden {
			text := "  " + entry.Name
			if entry.Age > 0 {
				text += "  " + duration.Ago(int64(entry.Age/time.Second))
			}
			lines = append(lines, styledLine{text: text, style: styles.ForbiddenItem})
		}
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: help, style: styles.Footer})
	}

	if m.height > 2 {
		lines = limitHeight(lines, m.height-2, m.width)
	}
	lines = append(lines, styledLine{text: m.statusLine(), raw: true})
	lines = append(lines, styledLine{text: m.filterPrompt(lst), raw: true})
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// statusLine is the single row above the filter prompt: a pending
// confirmation beats an error, which beats a backend warning.
func (m *Model) statusLine() string {
	if m.killAllArmed {
		prompt := fmt.Sprintf("Kill %d session(s)? (y/n)", len(m.killTargets()))
		return render(styles.Warning, prompt)
	}
	if m.deleteAllArmed {
		prompt := fmt.Sprintf("Delete %d dead session(s)? (y/n)", len(m.dead.Entries()))
		return render(styles.Warning, prompt)
	}
	if m.errMsg != "" {
		return render(styles.Error, "Error: "+m.errMsg)
	}
	if warn, msg := m.hasBackendIssue(); warn {
		return render(styles.Warning, "backend: "+msg)
	}
	if lst := m.activeList(); lst != nil && lst.Query() != "" {
		return render(styles.FilterPlaceholder, fmt.Sprintf("%d/%d", lst.Len(), len(lst.Full())))
	}
	return ""
}
