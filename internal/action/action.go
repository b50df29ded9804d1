// Package action holds the handler registry and the dispatcher that runs
// handlers against the caller-supplied application state.
package action

import (
	"errors"
	"fmt"
)

// Kind distinguishes how a handler executes.
type Kind int

const (
	// Immediate handlers run to completion inside the current loop tick.
	Immediate Kind = iota
	// Deferred handlers are scheduled on a background goroutine and deliver
	// their result through the dispatcher's completion channel.
	Deferred
)

// Func is a menu action handler. It receives the mutable application state
// handle and the optional parameter string (nil when absent), and returns an
// optional result message. Handlers run against a single logical state
// owner; immediate handlers are only ever called by the control goroutine,
// deferred handlers must confine their writes to values they own.
type Func func(state interface{}, param *string) (string, error)

// Action pairs a handler with its execution kind.
type Action struct {
	Kind Kind
	Run  Func
}

// NewImmediate wraps fn as a synchronous action.
func NewImmediate(fn Func) Action {
	return Action{Kind: Immediate, Run: fn}
}

// NewDeferred wraps fn as a background action.
func NewDeferred(fn Func) Action {
	return Action{Kind: Deferred, Run: fn}
}

var (
	ErrAlreadyBound = errors.New("action: node already has a handler")
	ErrNotBound     = errors.New("action: no handler bound for node")
	ErrNilHandler   = errors.New("action: nil handler")
)

// Registry maps menu node IDs to their actions. Handlers live here rather
// than inside the tree so the tree stays a pure description of shape.
type Registry struct {
	handlers map[string]Action
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Action)}
}

// Bind attaches an action to a node ID. Binding twice or binding a nil
// handler is a build-time error.
func (r *Registry) Bind(nodeID string, a Action) error {
	if a.Run == nil {
		return fmt.Errorf("%w: %q", ErrNilHandler, nodeID)
	}
	if _, ok := r.handlers[nodeID]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyBound, nodeID)
	}
	r.handlers[nodeID] = a
	return nil
}

// Lookup returns the action bound to nodeID.
func (r *Registry) Lookup(nodeID string) (Action, bool) {
	a, ok := r.handlers[nodeID]
	return a, ok
}
