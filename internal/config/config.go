package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"zellij-session-manager/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envZellijBinary = "ZELLIJ_SESSION_MANAGER_BINARY"
	envLayoutDir    = "ZELLIJ_SESSION_MANAGER_LAYOUT_DIR"
	envWidth        = "ZELLIJ_SESSION_MANAGER_WIDTH"
	envHeight       = "ZELLIJ_SESSION_MANAGER_HEIGHT"
	envWelcome      = "ZELLIJ_SESSION_MANAGER_WELCOME"
	envShowFooter   = "ZELLIJ_SESSION_MANAGER_FOOTER"
	envVerbose      = "ZELLIJ_SESSION_MANAGER_VERBOSE"
	envTrace        = "ZELLIJ_SESSION_MANAGER_TRACE"
	envLogFile      = "ZELLIJ_SESSION_MANAGER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("zellij-session-manager", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	binary := fs.String("zellij", envOrDefault(env, envZellijBinary, "zellij"), "path to the zellij binary")
	layoutDir := fs.String("layout-dir", envOrDefault(env, envLayoutDir, ""), "directory scanned for .kdl layout files")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	welcome := fs.Bool("welcome", envOrBool(env, envWelcome, false), "start on the welcome screen instead of the session list")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "enable footer hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if strings.TrimSpace(*binary) == "" {
		return Config{}, fmt.Errorf("zellij binary must not be empty")
	}

	cfg := Config{
		App: app.Config{
			ZellijBinary: *binary,
			LayoutDir:    *layoutDir,
			Width:        *width,
			Height:       *height,
			Welcome:      *welcome,
			ShowFooter:   *footer,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"zellij":    *binary,
			"layoutDir": *layoutDir,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"welcome":   strconv.FormatBool(*welcome),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
