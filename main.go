package main

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/atomicstack/menukit/internal/action"
	"github.com/atomicstack/menukit/internal/app"
	"github.com/atomicstack/menukit/internal/config"
	"github.com/atomicstack/menukit/internal/logging"
	"github.com/atomicstack/menukit/internal/logging/events"
	"github.com/atomicstack/menukit/internal/menu"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	tree, registry, state, err := buildDemo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Menu error: %v\n", err)
		os.Exit(2)
	}

	if err := app.Run(app.FromRuntime(runtimeCfg), tree, registry, state); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// counter is the demo application state. Deferred handlers run off the
// control goroutine, so every access goes through the mutex.
type counter struct {
	mu    sync.Mutex
	value int
}

func (c *counter) add(amount int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value += amount
	return c.value
}

func (c *counter) current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// buildDemo assembles the demo counter menu: increment and decrement actions
// at the root plus a tools submenu with a deferred task.
func buildDemo() (*menu.Tree, *action.Registry, *counter, error) {
	b := menu.NewBuilder("Main Menu")
	b.AddAction("root", menu.Spec{Binding: "i", Alias: "inc", Label: "Increment counter"})
	b.AddAction("root", menu.Spec{Binding: "d", Alias: "dec", Label: "Decrement counter"})
	tools := b.AddSubmenu("root", menu.Spec{Binding: "t", Alias: "tools", Label: "Tools"})
	b.AddAction(tools, menu.Spec{Binding: "w", Alias: "work", Label: "Background Work"})
	b.AddAction(tools, menu.Spec{Binding: "s", Alias: "status", Label: "Show Status"})

	tree, err := b.Build(menu.DefaultTokens())
	if err != nil {
		return nil, nil, nil, err
	}

	state := &counter{}
	registry := action.NewRegistry()
	binds := []struct {
		id     string
		action action.Action
	}{
		{"inc", action.NewImmediate(adjustBy(1))},
		{"dec", action.NewImmediate(adjustBy(-1))},
		{"tools:work", action.NewDeferred(backgroundWork)},
		{"tools:status", action.NewImmediate(showStatus)},
	}
	for _, bind := range binds {
		if err := registry.Bind(bind.id, bind.action); err != nil {
			return nil, nil, nil, err
		}
	}
	return tree, registry, state, nil
}

// adjustBy builds a handler that moves the counter by sign*amount, where the
// amount defaults to 1 and may be overridden by the parameter.
func adjustBy(sign int) action.Func {
	return func(state interface{}, param *string) (string, error) {
		c := state.(*counter)
		amount := 1
		if param != nil {
			parsed, err := strconv.Atoi(*param)
			if err != nil {
				return "", fmt.Errorf("amount must be a number, got %q", *param)
			}
			if parsed < 0 {
				return "", fmt.Errorf("amount must not be negative, got %d", parsed)
			}
			amount = parsed
		}
		return fmt.Sprintf("Counter: %d", c.add(sign*amount)), nil
	}
}

func backgroundWork(state interface{}, param *string) (string, error) {
	duration := 2 * time.Second
	if param != nil {
		parsed, err := time.ParseDuration(*param)
		if err != nil {
			return "", fmt.Errorf("duration must parse, got %q", *param)
		}
		duration = parsed
	}
	time.Sleep(duration)
	return fmt.Sprintf("work finished after %s", duration), nil
}

func showStatus(state interface{}, param *string) (string, error) {
	c := state.(*counter)
	return fmt.Sprintf("counter is %d", c.current()), nil
}

func traceStartup(cfg config.Config) {
	events.Loop.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
