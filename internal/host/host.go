// Package host talks to the zellij binary: it fetches session and layout
// snapshots and dispatches session actions.
package host

import (
	"os"
	"os/exec"
	"strings"
	"time"
)

type Session struct {
	Name      string
	Age       time.Duration
	Current   bool
	Forbidden bool
}

type SessionSnapshot struct {
	Sessions []Session
	Current  string
}

type DeadSession struct {
	Name string
	Age  time.Duration
}

type DeadSnapshot struct {
	Sessions []DeadSession
}

type Layout struct {
	Name    string
	Path    string
	Builtin bool
}

type LayoutSnapshot struct {
	Layouts []Layout
}

// Client shells out to a zellij binary.
type Client struct {
	Binary    string
	LayoutDir string
}

func NewClient(binary, layoutDir string) *Client {
	if strings.TrimSpace(binary) == "" {
		binary = "zellij"
	}
	return &Client{Binary: binary, LayoutDir: layoutDir}
}

// FetchSessions lists live sessions. Exited sessions are excluded here and
// surfaced by FetchDeadSessions instead.
func (c *Client) FetchSessions() (SessionSnapshot, error) {
	output, err := exec.Command(c.Binary, "list-sessions").Output()
	if err != nil {
		if isNoSessions(err) {
			return SessionSnapshot{Current: CurrentSessionName()}, nil
		}
		return SessionSnapshot{}, err
	}
	live, _ := parseSessionLines(string(output), CurrentSessionName(), forbiddenSessions())
	return SessionSnapshot{Sessions: live, Current: CurrentSessionName()}, nil
}

// FetchDeadSessions lists exited sessions that can still be resurrected.
func (c *Client) FetchDeadSessions() (DeadSnapshot, error) {
	output, err := exec.Command(c.Binary, "list-sessions").Output()
	if err != nil {
		if isNoSessions(err) {
			return DeadSnapshot{}, nil
		}
		return DeadSnapshot{}, err
	}
	_, dead := parseSessionLines(string(output), CurrentSessionName(), forbiddenSessions())
	return DeadSnapshot{Sessions: dead}, nil
}

// CurrentSessionName reports the session this process runs inside, if any.
func CurrentSessionName() string {
	return strings.TrimSpace(os.Getenv("ZELLIJ_SESSION_NAME"))
}

func forbiddenSessions() map[string]bool {
	raw := os.Getenv("ZELLIJ_SESSION_MANAGER_FORBIDDEN")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	names := make(map[string]bool)
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names[name] = true
		}
	}
	return names
}

// zellij exits non-zero with this message when no sessions exist.
func isNoSessions(err error) bool {
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(string(exitErr.Stderr)), "no active zellij sessions")
}
