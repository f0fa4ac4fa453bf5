package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"zellij-session-manager/internal/logging/events"
	"zellij-session-manager/internal/ui/command"
)

// Host requests are fire-and-forget: the command reports dispatch failures
// only, and the next backend snapshot reflects the real outcome.

func (m *Model) requestSwitch(name string) tea.Cmd {
	events.Session.Switch(name)
	return m.bus.Execute(command.Request{
		Name:   "session.switch",
		Target: name,
		Run:    func() error { return m.requester.Switch(name) },
		Info:   fmt.Sprintf("Attaching to %s", name),
		Quit:   true,
	})
}

func (m *Model) requestKill(name string) tea.Cmd {
	events.Session.Kill(name)
	return m.bus.Execute(command.Request{
		Name:   "session.kill",
		Target: name,
		Run:    func() error { return m.requester.Kill(name) },
		Info:   fmt.Sprintf("Killed %s", name),
	})
}

func (m *Model) requestKillAll(names []string) tea.Cmd {
	events.Session.KillAll(len(names))
	return m.bus.Execute(command.Request{
		Name: "session.kill-all",
		Run:  func() error { return m.requester.KillAll(names) },
		Info: fmt.Sprintf("Killed %d session(s)", len(names)),
	})
}

func (m *Model) requestCreate(name, layout string) tea.Cmd {
	events.Session.Create(name, layout)
	label := name
	if label == "" {
		label = "(generated name)"
	}
	return m.bus.Execute(command.Request{
		Name:   "session.create",
		Target: name,
		Run:    func() error { return m.requester.Create(name, layout) },
		Info:   fmt.Sprintf("Creating %s", label),
		Quit:   true,
	})
}

func (m *Model) requestRename(name string) tea.Cmd {
	events.Session.Rename(name)
	return m.bus.Execute(command.Request{
		Name:   "session.rename",
		Target: name,
		Run:    func() error { return m.requester.RenameCurrent(name) },
		Info:   fmt.Sprintf("Renamed session to %s", name),
	})
}

func (m *Model) requestResurrect(name string) tea.Cmd {
	events.Session.Resurrect(name)
	return m.bus.Execute(command.Request{
		Name:   "session.resurrect",
		Target: name,
		Run:    func() error { return m.requester.Resurrect(name) },
		Info:   fmt.Sprintf("Resurrecting %s", name),
		Quit:   true,
	})
}

func (m *Model) requestDeleteDead(name string) tea.Cmd {
	events.Session.DeleteDead(name)
	return m.bus.Execute(command.Request{
		Name:   "session.delete-dead",
		Target: name,
		Run:    func() error { return m.requester.DeleteDead(name) },
		Info:   fmt.Sprintf("Deleted %s", name),
	})
}

func (m *Model) requestDeleteAllDead(count int) tea.Cmd {
	events.Session.DeleteAllDead(count)
	return m.bus.Execute(command.Request{
		Name: "session.delete-all-dead",
		Run:  func() error { return m.requester.DeleteAllDead() },
		Info: fmt.Sprintf("Deleted %d dead session(s)", count),
	})
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	if result.Quit {
		return tea.Quit
	}
	return nil
}
