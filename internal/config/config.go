package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/menukit/internal/menu"
)

// Config captures runtime configuration for the application.
type Config struct {
	UI      UI
	Tokens  Tokens
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type UI struct {
	Renderer string
	PageSize int
	Width    int
	Height   int
}

// Tokens carries the reserved input tokens. Empty fields fall back to the
// engine defaults.
type Tokens struct {
	Back   string
	Quit   string
	Switch string
}

// Effective returns the token set that will actually be in force: engine
// defaults fill any field left empty by flags and environment.
func (t Tokens) Effective() menu.Tokens {
	eff := menu.Tokens{Back: t.Back, Quit: t.Quit, Switch: t.Switch}
	defaults := menu.DefaultTokens()
	if eff.Back == "" {
		eff.Back = defaults.Back
	}
	if eff.Quit == "" {
		eff.Quit = defaults.Quit
	}
	if eff.Switch == "" {
		eff.Switch = defaults.Switch
	}
	return eff
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Renderer names accepted by the -renderer flag.
const (
	RendererRich  = "rich"
	RendererPlain = "plain"
)

const (
	envRenderer = "MENUKIT_RENDERER"
	envBack     = "MENUKIT_BACK_TOKEN"
	envQuit     = "MENUKIT_QUIT_TOKEN"
	envSwitch   = "MENUKIT_SWITCH_TOKEN"
	envPageSize = "MENUKIT_PAGE_SIZE"
	envWidth    = "MENUKIT_WIDTH"
	envHeight   = "MENUKIT_HEIGHT"
	envTrace    = "MENUKIT_TRACE"
	envLogFile  = "MENUKIT_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("menukit", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	renderer := fs.String("renderer", envOrDefault(env, envRenderer, RendererRich), "display variant: rich or plain")
	back := fs.String("back", envOrDefault(env, envBack, ""), "token that returns to the parent menu")
	quit := fs.String("quit", envOrDefault(env, envQuit, ""), "token that terminates the session at the root menu")
	switchTok := fs.String("switch-token", envOrDefault(env, envSwitch, ""), "token that toggles command/scroll mode")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, 0), "lines per scroll page (0 uses the default)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *renderer != RendererRich && *renderer != RendererPlain {
		return Config{}, fmt.Errorf("renderer must be %q or %q (got %q)", RendererRich, RendererPlain, *renderer)
	}
	if *pageSize < 0 {
		return Config{}, fmt.Errorf("page-size must be >= 0 (got %d)", *pageSize)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		UI: UI{
			Renderer: *renderer,
			PageSize: *pageSize,
			Width:    *width,
			Height:   *height,
		},
		Tokens: Tokens{
			Back:   *back,
			Quit:   *quit,
			Switch: *switchTok,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"renderer":    *renderer,
			"back":        *back,
			"quit":        *quit,
			"switchToken": *switchTok,
			"pageSize":    strconv.Itoa(*pageSize),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
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

// Validate ensures the reserved tokens do not collide with one another. The
// check runs against the effective token set, so a flag that shadows a
// default left unset is still fatal at startup.
func Validate(cfg Config) error {
	eff := cfg.Tokens.Effective()
	tokens := []struct {
		name  string
		value string
	}{
		{"back", eff.Back},
		{"quit", eff.Quit},
		{"switch-token", eff.Switch},
	}
	seen := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		if prev, ok := seen[tok.value]; ok {
			return fmt.Errorf("%s and %s must use distinct tokens (both %q)", prev, tok.name, tok.value)
		}
		seen[tok.value] = tok.name
	}
	return nil
}
