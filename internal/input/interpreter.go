package input

import (
	"strings"
	"unicode"

	"github.com/atomicstack/menukit/internal/logging/events"
	"github.com/atomicstack/menukit/internal/menu"
	"github.com/atomicstack/menukit/internal/session"
)

// scrollOps is the fixed keyword table for scroll mode, vim flavoured.
var scrollOps = map[string]ScrollOp{
	"k":  ScrollUp,
	"j":  ScrollDown,
	"u":  ScrollPageUp,
	"d":  ScrollPageDown,
	"gg": ScrollTop,
	"G":  ScrollBottom,
}

// Interpreter turns raw input units into Intents, resolved against the
// active menu node.
type Interpreter struct {
	tree   *menu.Tree
	tokens menu.Tokens
}

// New builds an interpreter over the given tree and reserved tokens.
func New(tree *menu.Tree, tokens menu.Tokens) *Interpreter {
	return &Interpreter{tree: tree, tokens: tokens}
}

// Tokens returns the reserved tokens the interpreter was built with.
func (it *Interpreter) Tokens() menu.Tokens {
	return it.tokens
}

// Interpret produces exactly one Intent for a raw input unit. leafID is the
// active node of the navigation path; mode selects the rule set.
func (it *Interpreter) Interpret(raw string, mode session.Mode, leafID string) Intent {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Intent{Kind: KindNone, Raw: raw}
	}
	if mode == session.ModeScroll {
		return it.interpretScroll(trimmed, raw)
	}
	return it.interpretCommand(trimmed, raw, leafID)
}

func (it *Interpreter) interpretScroll(token, raw string) Intent {
	if token == it.tokens.Switch {
		events.Input.ModeSwitch(session.ModeCommand.String())
		return Intent{Kind: KindSwitchMode, Raw: raw}
	}
	if op, ok := scrollOps[token]; ok {
		return Intent{Kind: KindScroll, Scroll: op, Raw: raw}
	}
	// Unknown tokens are ignored in scroll mode; no error entry is produced.
	return Intent{Kind: KindNone, Raw: raw}
}

func (it *Interpreter) interpretCommand(trimmed, raw, leafID string) Intent {
	token, param := splitCommand(trimmed)
	events.Input.Token(session.ModeCommand.String(), token, param != nil)

	switch token {
	case it.tokens.Back:
		return Intent{Kind: KindBack, Raw: raw}
	case it.tokens.Quit:
		return Intent{Kind: KindQuit, Raw: raw}
	case it.tokens.Switch:
		events.Input.ModeSwitch(session.ModeScroll.String())
		return Intent{Kind: KindSwitchMode, Raw: raw}
	}

	if node, ok := it.tree.Resolve(leafID, token); ok {
		if node.Submenu() {
			return Intent{Kind: KindNavigate, NodeID: node.ID, Label: node.Label, Raw: raw}
		}
		return Intent{Kind: KindInvoke, NodeID: node.ID, Label: node.Label, Param: param, Raw: raw}
	}

	suggestion := Suggest(it.tree.ChildrenOf(leafID), token)
	events.Input.Unresolved(trimmed, suggestion)
	return Intent{Kind: KindUnresolved, Raw: trimmed, Suggestion: suggestion}
}

// splitCommand separates the first whitespace-delimited word from the rest
// of the line. A missing remainder yields a nil parameter, not an empty one.
func splitCommand(line string) (string, *string) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, nil
	}
	token := line[:idx]
	rest := strings.TrimSpace(line[idx:])
	if rest == "" {
		return token, nil
	}
	return token, &rest
}
