// Package engine is the composition root of the control core: it applies
// interpreted intents to the session, dispatches actions, merges deferred
// completions, and projects read-only snapshots for renderers.
package engine

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menukit/internal/action"
	"github.com/atomicstack/menukit/internal/input"
	"github.com/atomicstack/menukit/internal/logging/events"
	"github.com/atomicstack/menukit/internal/menu"
	"github.com/atomicstack/menukit/internal/session"
)

// Config carries the loop-level knobs. OnTick, when set, runs against the
// state handle once per frame before deferred completions are merged.
type Config struct {
	Tokens   menu.Tokens
	PageSize int
	OnTick   func(state interface{})
}

const defaultPageSize = 10

var ErrUnboundAction = errors.New("engine: action node has no handler")

// Engine owns the session and drives it from raw input. All methods must be
// called from the single control goroutine; deferred handlers synchronize
// with it only through the dispatcher's completion channel.
type Engine struct {
	tree       *menu.Tree
	sess       *session.Session
	interp     *input.Interpreter
	dispatcher *action.Dispatcher
	tokens     menu.Tokens
	pageSize   int
	state      interface{}
	onTick     func(state interface{})
}

// New wires the engine together and verifies that every action node in the
// tree has a bound handler. A miss is a structural violation: the
// application must not start.
func New(tree *menu.Tree, registry *action.Registry, state interface{}, cfg Config) (*Engine, error) {
	tokens := cfg.Tokens
	if tokens == (menu.Tokens{}) {
		tokens = menu.DefaultTokens()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if err := checkBindings(tree, registry); err != nil {
		return nil, err
	}
	return &Engine{
		tree:       tree,
		sess:       session.New(tree.Root()),
		interp:     input.New(tree, tokens),
		dispatcher: action.NewDispatcher(registry, state),
		tokens:     tokens,
		pageSize:   pageSize,
		state:      state,
		onTick:     cfg.OnTick,
	}, nil
}

func checkBindings(tree *menu.Tree, registry *action.Registry) error {
	var walk func(id string) error
	walk = func(id string) error {
		node := tree.Node(id)
		if node.HasAction {
			if _, ok := registry.Lookup(id); !ok {
				return fmt.Errorf("%w: %q", ErrUnboundAction, id)
			}
		}
		for _, child := range node.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(tree.Root())
}

// Session exposes the underlying session, mainly for tests.
func (e *Engine) Session() *session.Session {
	return e.sess
}

// Tokens returns the reserved tokens in effect.
func (e *Engine) Tokens() menu.Tokens {
	return e.tokens
}

// HandleInput processes one raw input unit. It returns false when the loop
// should terminate (quit at root); every other input, including failures,
// keeps the loop running.
func (e *Engine) HandleInput(raw string) bool {
	intent := e.interp.Interpret(raw, e.sess.Mode(), e.sess.Leaf())
	return e.apply(intent)
}

func (e *Engine) apply(intent input.Intent) bool {
	history := e.sess.History()
	switch intent.Kind {
	case input.KindQuit:
		if e.sess.AtRoot() {
			events.Loop.Quit()
			return false
		}
		history.Append(fmt.Sprintf("use %q to return to the previous menu, or quit from the root menu", e.tokens.Back), "", false)
	case input.KindBack:
		if e.sess.Pop() {
			events.Menu.Back(e.sess.Leaf())
		} else {
			history.Append("already at root menu", "", false)
		}
	case input.KindSwitchMode:
		e.sess.ToggleMode()
		if e.sess.Mode() == session.ModeScroll {
			history.JumpBottom()
		}
	case input.KindNavigate:
		e.sess.Push(intent.NodeID)
		events.Menu.Enter(intent.NodeID, intent.Label)
	case input.KindInvoke:
		if res, done := e.dispatcher.Invoke(intent.NodeID, intent.Label, intent.Param); done {
			e.appendResult(res, "")
		}
	case input.KindScroll:
		e.applyScroll(intent.Scroll)
		events.Input.Scroll(intent.Scroll.String(), history.Cursor())
	case input.KindUnresolved:
		msg := fmt.Sprintf("unknown command: %s", intent.Raw)
		if intent.Suggestion != "" {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, intent.Suggestion)
		}
		history.Append(msg, "", true)
	case input.KindNone:
	}
	return true
}

func (e *Engine) applyScroll(op input.ScrollOp) {
	history := e.sess.History()
	switch op {
	case input.ScrollUp:
		history.Scroll(-1)
	case input.ScrollDown:
		history.Scroll(1)
	case input.ScrollPageUp:
		history.Scroll(-e.pageSize)
	case input.ScrollPageDown:
		history.Scroll(e.pageSize)
	case input.ScrollTop:
		history.JumpTop()
	case input.ScrollBottom:
		history.JumpBottom()
	}
}

// Tick runs the embedder's per-frame hook, then merges finished deferred
// tasks. Renderers call it once per frame; the hook runs on the control
// goroutine like any immediate handler.
func (e *Engine) Tick() int {
	if e.onTick != nil {
		e.onTick(e.state)
	}
	return e.DrainCompletions()
}

// DrainCompletions merges every finished deferred task into the output
// history and returns how many were merged. Completion order reflects
// completion time, not invocation order.
func (e *Engine) DrainCompletions() int {
	results := e.dispatcher.Drain()
	for _, res := range results {
		e.appendResult(res, res.Label)
	}
	events.Loop.Drained(len(results))
	return len(results)
}

// appendResult normalizes a dispatcher result into a history entry. origin
// tags deferred completions with the node label so late output stays
// attributable.
func (e *Engine) appendResult(res action.Result, origin string) {
	if res.Err != nil {
		e.sess.History().Append(fmt.Sprintf("error: %v", res.Err), origin, true)
		return
	}
	if res.Message == "" {
		return
	}
	e.sess.History().Append(res.Message, origin, false)
}

// Pending returns the number of deferred tasks still in flight.
func (e *Engine) Pending() int {
	return e.dispatcher.Pending()
}

// Close releases the dispatcher. Deferred results that complete afterwards
// are discarded.
func (e *Engine) Close() {
	e.dispatcher.Close()
}
