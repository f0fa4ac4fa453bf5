package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zellij-session-manager/internal/backend"
	"zellij-session-manager/internal/host"
	"zellij-session-manager/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	ZellijBinary string
	LayoutDir    string
	Width        int
	Height       int
	Welcome      bool
	ShowFooter   bool
	Verbose      bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := host.NewClient(cfg.ZellijBinary, cfg.LayoutDir)
	watcher := backend.NewWatcher(client, 1500*time.Millisecond)
	defer watcher.Stop()
	model := ui.NewModel(client, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.Welcome, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
