package input

import (
	"testing"

	"github.com/atomicstack/menukit/internal/menu"
	"github.com/atomicstack/menukit/internal/session"
)

func testInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	b := menu.NewBuilder("Main Menu")
	b.AddAction("root", menu.Spec{Binding: "i", Alias: "inc", Label: "Increment"})
	b.AddSubmenu("root", menu.Spec{Binding: "t", Alias: "tools", Label: "Tools"})
	tree, err := b.Build(menu.DefaultTokens())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return New(tree, menu.DefaultTokens())
}

func TestInterpretInvokeWithoutParam(t *testing.T) {
	it := testInterpreter(t)
	intent := it.Interpret("inc", session.ModeCommand, "root")
	if intent.Kind != KindInvoke || intent.NodeID != "inc" {
		t.Fatalf("expected invoke of inc, got %+v", intent)
	}
	if intent.Param != nil {
		t.Fatalf("expected absent parameter, got %q", *intent.Param)
	}
}

func TestInterpretInvokeTrimsParam(t *testing.T) {
	it := testInterpreter(t)
	intent := it.Interpret("inc   5  ", session.ModeCommand, "root")
	if intent.Kind != KindInvoke {
		t.Fatalf("expected invoke, got %+v", intent)
	}
	if intent.Param == nil || *intent.Param != "5" {
		t.Fatalf("expected trimmed parameter 5, got %v", intent.Param)
	}
}

func TestInterpretTrailingSpacesYieldNoParam(t *testing.T) {
	it := testInterpreter(t)
	intent := it.Interpret("inc    ", session.ModeCommand, "root")
	if intent.Param != nil {
		t.Fatalf("expected absent parameter, got %q", *intent.Param)
	}
}

func TestInterpretNavigateIntoSubmenu(t *testing.T) {
	it := testInterpreter(t)
	for _, raw := range []string{"t", "tools"} {
		intent := it.Interpret(raw, session.ModeCommand, "root")
		if intent.Kind != KindNavigate || intent.NodeID != "tools" {
			t.Fatalf("expected navigate to tools for %q, got %+v", raw, intent)
		}
	}
}

func TestInterpretReservedTokens(t *testing.T) {
	it := testInterpreter(t)
	cases := map[string]Kind{
		"b":   KindBack,
		"q":   KindQuit,
		"tab": KindSwitchMode,
	}
	for raw, kind := range cases {
		intent := it.Interpret(raw, session.ModeCommand, "root")
		if intent.Kind != kind {
			t.Fatalf("expected %q to map to kind %d, got %+v", raw, kind, intent)
		}
	}
}

func TestInterpretReservedBeatsChildResolution(t *testing.T) {
	b := menu.NewBuilder("Main Menu")
	// "back" alias is allowed; only the reserved token "b" itself is claimed.
	b.AddAction("root", menu.Spec{Alias: "back", Label: "Not The Back Token"})
	tree, err := b.Build(menu.DefaultTokens())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	it := New(tree, menu.DefaultTokens())
	if intent := it.Interpret("b", session.ModeCommand, "root"); intent.Kind != KindBack {
		t.Fatalf("expected reserved back intent, got %+v", intent)
	}
	if intent := it.Interpret("back", session.ModeCommand, "root"); intent.Kind != KindInvoke {
		t.Fatalf("expected alias invoke, got %+v", intent)
	}
}

func TestInterpretUnresolvedCarriesSuggestion(t *testing.T) {
	it := testInterpreter(t)
	intent := it.Interpret("incr", session.ModeCommand, "root")
	if intent.Kind != KindUnresolved {
		t.Fatalf("expected unresolved, got %+v", intent)
	}
	if intent.Suggestion != "inc" {
		t.Fatalf("expected suggestion inc, got %q", intent.Suggestion)
	}
}

func TestInterpretAliasIsCaseSensitive(t *testing.T) {
	it := testInterpreter(t)
	intent := it.Interpret("INC", session.ModeCommand, "root")
	if intent.Kind != KindUnresolved {
		t.Fatalf("expected case-sensitive alias miss, got %+v", intent)
	}
}

func TestInterpretEmptyLineIgnored(t *testing.T) {
	it := testInterpreter(t)
	intent := it.Interpret("   ", session.ModeCommand, "root")
	if intent.Kind != KindNone {
		t.Fatalf("expected empty input ignored, got %+v", intent)
	}
}

func TestInterpretScrollKeywordTable(t *testing.T) {
	it := testInterpreter(t)
	cases := map[string]ScrollOp{
		"k":  ScrollUp,
		"j":  ScrollDown,
		"u":  ScrollPageUp,
		"d":  ScrollPageDown,
		"gg": ScrollTop,
		"G":  ScrollBottom,
	}
	for raw, op := range cases {
		intent := it.Interpret(raw, session.ModeScroll, "root")
		if intent.Kind != KindScroll || intent.Scroll != op {
			t.Fatalf("expected scroll op %v for %q, got %+v", op, raw, intent)
		}
	}
}

func TestInterpretScrollModeIgnoresUnknownTokens(t *testing.T) {
	it := testInterpreter(t)
	for _, raw := range []string{"inc", "zzz", "q "} {
		intent := it.Interpret(raw, session.ModeScroll, "root")
		if raw == "q " {
			// Quit is not part of the scroll table either.
			if intent.Kind != KindNone {
				t.Fatalf("expected quit ignored in scroll mode, got %+v", intent)
			}
			continue
		}
		if intent.Kind != KindNone {
			t.Fatalf("expected %q ignored in scroll mode, got %+v", raw, intent)
		}
	}
}

func TestInterpretScrollModeSwitchReturnsToCommand(t *testing.T) {
	it := testInterpreter(t)
	intent := it.Interpret("tab", session.ModeScroll, "root")
	if intent.Kind != KindSwitchMode {
		t.Fatalf("expected mode switch, got %+v", intent)
	}
}
