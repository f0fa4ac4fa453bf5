// Package command wraps host requests into Bubble Tea commands.
package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"zellij-session-manager/internal/logging"
	"zellij-session-manager/internal/logging/events"
)

// Request encapsulates a single host action invocation.
type Request struct {
	Name   string
	Target string
	Run    func() error
	Info   string
	Quit   bool
}

// Result reports the outcome of a Request back to the model.
type Result struct {
	Name string
	Err  error
	Info string
	Quit bool
}

// Bus coordinates the execution of host requests.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a host request into a Bubble Tea command while emitting
// trace logs. The request runs off the update loop; its outcome arrives as
// a Result message.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Name, req.Target)
	return func() tea.Msg {
		if req.Run == nil {
			return nil
		}
		if err := req.Run(); err != nil {
			logging.Error(err)
			events.Command.Error(req.Name, err)
			return Result{Name: req.Name, Err: err}
		}
		events.Command.Success(req.Name, req.Info)
		return Result{Name: req.Name, Info: req.Info, Quit: req.Quit}
	}
}
