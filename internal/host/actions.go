package host

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requester dispatches session actions to the host. The UI treats every call
// as fire-and-forget: results show up through the next snapshot refresh.
type Requester interface {
	Switch(name string) error
	Kill(name string) error
	KillAll(names []string) error
	Create(name, layout string) error
	RenameCurrent(name string) error
	Resurrect(name string) error
	DeleteDead(name string) error
	DeleteAllDead() error
}

var _ Requester = (*Client)(nil)

// Switch attaches the calling terminal to the target session. Dispatch is
// asynchronous so the UI can quit while the attach takes over the terminal.
func (c *Client) Switch(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name required")
	}
	return exec.Command(c.Binary, "attach", name).Start()
}

func (c *Client) Kill(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name required")
	}
	return exec.Command(c.Binary, "kill-session", name).Run()
}

// KillAll kills the listed sessions one by one. The caller decides which
// sessions are eligible; kill-all-sessions would also take down the current
// and forbidden ones.
func (c *Client) KillAll(names []string) error {
	var firstErr error
	for _, name := range names {
		if err := c.Kill(name); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Create starts a new session, optionally from a layout. An empty name lets
// zellij generate one.
func (c *Client) Create(name, layout string) error {
	args := make([]string, 0, 5)
	if strings.TrimSpace(layout) != "" {
		args = append(args, "--layout", layout)
	}
	if strings.TrimSpace(name) != "" {
		args = append(args, "attach", "--create", name)
	}
	return exec.Command(c.Binary, args...).Start()
}

// RenameCurrent renames the session this process runs inside.
func (c *Client) RenameCurrent(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name required")
	}
	return exec.Command(c.Binary, "action", "rename-session", name).Run()
}

// Resurrect re-attaches to an exited session, which restarts it.
func (c *Client) Resurrect(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name required")
	}
	return exec.Command(c.Binary, "attach", name).Start()
}

func (c *Client) DeleteDead(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name required")
	}
	return exec.Command(c.Binary, "delete-session", name).Run()
}

func (c *Client) DeleteAllDead() error {
	return exec.Command(c.Binary, "delete-all-sessions", "--yes").Run()
}
