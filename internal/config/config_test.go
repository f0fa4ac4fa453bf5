package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.ZellijBinary != "zellij" {
		t.Fatalf("expected default binary %q, got %q", "zellij", cfg.App.ZellijBinary)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero viewport defaults, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected tracing disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"ZELLIJ_SESSION_MANAGER_BINARY=/opt/zellij",
		"ZELLIJ_SESSION_MANAGER_WIDTH=120",
		"ZELLIJ_SESSION_MANAGER_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"-width", "80", "-welcome"}, env)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.ZellijBinary != "/opt/zellij" {
		t.Fatalf("expected env binary to apply, got %q", cfg.App.ZellijBinary)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag to override env width, got %d", cfg.App.Width)
	}
	if !cfg.App.Welcome {
		t.Fatalf("expected welcome flag to be set")
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected env to enable tracing")
	}
}

func TestLoadArgsRejectsNegativeViewport(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsRejectsEmptyBinary(t *testing.T) {
	if _, err := LoadArgs([]string{"-zellij", " "}, nil); err == nil {
		t.Fatalf("expected error for empty binary path")
	}
}

func TestLoadArgsMalformedEnvFallsBack(t *testing.T) {
	env := []string{
		"ZELLIJ_SESSION_MANAGER_WIDTH=abc",
		"ZELLIJ_SESSION_MANAGER_FOOTER=nope",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected malformed width to fall back to 0, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected malformed footer value to keep the default")
	}
}
