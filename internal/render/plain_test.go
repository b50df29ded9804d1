package render

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/atomicstack/menukit/internal/action"
	"github.com/atomicstack/menukit/internal/engine"
	"github.com/atomicstack/menukit/internal/menu"
)

type counterState struct {
	value int
}

func newRenderEngine(t *testing.T) *engine.Engine {
	t.Helper()
	b := menu.NewBuilder("Main Menu")
	b.AddAction("root", menu.Spec{Binding: "i", Alias: "inc", Label: "Increment"})
	tools := b.AddSubmenu("root", menu.Spec{Binding: "t", Alias: "tools", Label: "Tools"})
	b.AddAction(tools, menu.Spec{Binding: "s", Alias: "status", Label: "Show Status"})
	tree, err := b.Build(menu.DefaultTokens())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	registry := action.NewRegistry()
	err = registry.Bind("inc", action.NewImmediate(func(state interface{}, param *string) (string, error) {
		st := state.(*counterState)
		amount := 1
		if param != nil {
			parsed, err := strconv.Atoi(*param)
			if err != nil {
				return "", fmt.Errorf("bad amount %q", *param)
			}
			amount = parsed
		}
		st.value += amount
		return fmt.Sprintf("Counter: %d", st.value), nil
	}))
	if err != nil {
		t.Fatalf("bind inc: %v", err)
	}
	err = registry.Bind("tools:status", action.NewImmediate(func(state interface{}, param *string) (string, error) {
		return "all good", nil
	}))
	if err != nil {
		t.Fatalf("bind status: %v", err)
	}

	e, err := engine.New(tree, registry, &counterState{}, engine.Config{})
	if err != nil {
		t.Fatalf("unexpected engine error: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestPlainFrameRootMenu(t *testing.T) {
	e := newRenderEngine(t)
	frame := PlainFrame(e.Snapshot())

	for _, want := range []string{
		"== Main Menu ==",
		"[i] Increment",
		"[t] Tools →",
		"[q] Quit",
	} {
		if !strings.Contains(frame, want) {
			t.Fatalf("frame missing %q:\n%s", want, frame)
		}
	}
	if strings.Contains(frame, "[b] Back") {
		t.Fatalf("root frame must not offer back:\n%s", frame)
	}
	if strings.Contains(frame, "Output:") {
		t.Fatalf("empty history must not print an output block:\n%s", frame)
	}
}

func TestPlainFrameSubmenuShowsBackAndBreadcrumb(t *testing.T) {
	e := newRenderEngine(t)
	e.HandleInput("tools")
	frame := PlainFrame(e.Snapshot())

	if !strings.Contains(frame, "== Main Menu → Tools ==") {
		t.Fatalf("expected breadcrumb title:\n%s", frame)
	}
	if !strings.Contains(frame, "[b] Back") {
		t.Fatalf("submenu frame must offer back:\n%s", frame)
	}
	if strings.Contains(frame, "[q] Quit") {
		t.Fatalf("submenu frame must not offer quit:\n%s", frame)
	}
}

func TestPlainFrameOutputShowsNewestEntry(t *testing.T) {
	e := newRenderEngine(t)
	e.HandleInput("inc")
	e.HandleInput("inc 5")
	frame := PlainFrame(e.Snapshot())

	if !strings.Contains(frame, "Output:") {
		t.Fatalf("expected an output block:\n%s", frame)
	}
	if !strings.Contains(frame, "Counter: 6") {
		t.Fatalf("expected the newest message:\n%s", frame)
	}
	if strings.Contains(frame, "Counter: 1") {
		t.Fatalf("only the newest message belongs in the frame:\n%s", frame)
	}
}

func TestPlainFrameMarksErrors(t *testing.T) {
	e := newRenderEngine(t)
	e.HandleInput("zzz")
	frame := PlainFrame(e.Snapshot())

	if !strings.Contains(frame, "error: unknown command: zzz") {
		t.Fatalf("expected error-prefixed entry:\n%s", frame)
	}
}

func TestPlainFrameScrollMode(t *testing.T) {
	e := newRenderEngine(t)
	e.HandleInput("inc")
	e.HandleInput("inc")
	e.HandleInput("inc")
	e.HandleInput("tab")
	e.HandleInput("gg")
	frame := PlainFrame(e.Snapshot())

	if !strings.Contains(frame, "-- SCROLL -- (tab to return)") {
		t.Fatalf("expected the scroll banner:\n%s", frame)
	}
	if !strings.Contains(frame, "[1/3] Counter: 1") {
		t.Fatalf("expected cursor position and entry:\n%s", frame)
	}
}

func TestPlainFrameReportsPendingTasks(t *testing.T) {
	e := newRenderEngine(t)
	snap := e.Snapshot()
	snap.Pending = 2
	frame := PlainFrame(snap)

	if !strings.Contains(frame, "(2 background task(s) running)") {
		t.Fatalf("expected pending task line:\n%s", frame)
	}
}
