// Package app bootstraps the engine behind the selected renderer: the rich
// Bubble Tea program or the line-driven plain loop.
package app

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/atomicstack/menukit/internal/action"
	"github.com/atomicstack/menukit/internal/config"
	"github.com/atomicstack/menukit/internal/engine"
	"github.com/atomicstack/menukit/internal/menu"
	"github.com/atomicstack/menukit/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Renderer string
	Tokens   menu.Tokens
	PageSize int
	Width    int
	Height   int
}

// FromRuntime converts the flag/env configuration into app options. Tokens
// arrive default-filled so the engine runs the same set Validate checked.
func FromRuntime(cfg config.Config) Config {
	return Config{
		Renderer: cfg.UI.Renderer,
		Tokens:   cfg.Tokens.Effective(),
		PageSize: cfg.UI.PageSize,
		Width:    cfg.UI.Width,
		Height:   cfg.UI.Height,
	}
}

// Run wires the engine and executes the selected renderer until the session
// terminates.
func Run(cfg Config, tree *menu.Tree, registry *action.Registry, state interface{}) error {
	tokens := config.Tokens{Back: cfg.Tokens.Back, Quit: cfg.Tokens.Quit, Switch: cfg.Tokens.Switch}.Effective()

	e, err := engine.New(tree, registry, state, engine.Config{Tokens: tokens, PageSize: cfg.PageSize})
	if err != nil {
		return err
	}
	defer e.Close()

	if cfg.Renderer == config.RendererPlain {
		return RunPlain(e, os.Stdin, os.Stdout)
	}

	model := render.NewModel(e, cfg.Width, cfg.Height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// RunPlain drives the engine from a line reader, printing one frame per
// input. Deferred completions are merged before every frame so late output
// surfaces on the next interaction.
func RunPlain(e *engine.Engine, r io.Reader, w io.Writer) error {
	plain := render.NewPlain(w)
	scanner := bufio.NewScanner(r)
	for {
		e.Tick()
		if err := plain.Render(e.Snapshot()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "> "); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if !e.HandleInput(scanner.Text()) {
			return nil
		}
	}
}
