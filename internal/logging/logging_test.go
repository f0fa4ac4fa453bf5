package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "manager.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})
	return path
}

func TestTraceWritesStructuredEntry(t *testing.T) {
	path := useTempLog(t)
	t.Setenv("ZELLIJ_SESSION_NAME", "forest")
	SetTraceEnabled(true)

	Trace("screen.enter", map[string]interface{}{"screen": "session-list"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file: %v", err)
	}
	var got struct {
		Event   string                 `json:"event"`
		Session string                 `json:"session"`
		Payload map[string]interface{} `json:"payload"`
	}
	line := strings.SplitN(strings.TrimSpace(string(data)), "\n", 2)[0]
	if err := json.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("expected JSON entry, got %q: %v", line, err)
	}
	if got.Event != "screen.enter" {
		t.Fatalf("expected event screen.enter, got %q", got.Event)
	}
	if got.Session != "forest" {
		t.Fatalf("expected session forest, got %q", got.Session)
	}
	if got.Payload["screen"] != "session-list" {
		t.Fatalf("expected payload screen, got %#v", got.Payload)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)

	Trace("screen.enter", nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, stat err %v", err)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := useTempLog(t)

	Error(errors.New("attach failed"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "attach failed") {
		t.Fatalf("expected error text in log, got %q", string(data))
	}
}
