package action

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/menukit/internal/logging/events"
)

// Result is the normalized outcome of one handler invocation. TaskID is
// zero for immediate actions.
type Result struct {
	TaskID  uint64
	NodeID  string
	Label   string
	Message string
	Err     error
}

// PendingTask tracks an in-flight deferred invocation.
type PendingTask struct {
	ID        uint64
	NodeID    string
	Label     string
	StartedAt time.Time
}

// Dispatcher executes actions against the shared state handle. Immediate
// actions run inline; deferred ones run on their own goroutine and hand
// their result back through a completion channel that the control goroutine
// drains once per tick. Invoke, Drain, and Pending must only be called from
// the control goroutine.
type Dispatcher struct {
	registry    *Registry
	state       interface{}
	completions chan Result
	pending     map[uint64]PendingTask
	nextTask    uint64
	ctx         context.Context
	cancel      context.CancelFunc
}

const completionBuffer = 64

// NewDispatcher builds a dispatcher over the registry and state handle.
func NewDispatcher(registry *Registry, state interface{}) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		registry:    registry,
		state:       state,
		completions: make(chan Result, completionBuffer),
		pending:     make(map[uint64]PendingTask),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Invoke runs the action bound to nodeID. The boolean reports whether the
// result is final: true for immediate actions (and failures), false when a
// deferred task was scheduled and its result will arrive via Drain.
//
// Concurrent invocations of the same action are deliberately allowed; an
// embedder that needs single-flight enforces it in its own handlers.
func (d *Dispatcher) Invoke(nodeID, label string, param *string) (Result, bool) {
	a, ok := d.registry.Lookup(nodeID)
	if !ok {
		return Result{NodeID: nodeID, Label: label, Err: fmt.Errorf("%w: %q", ErrNotBound, nodeID)}, true
	}
	events.Action.Queue(nodeID, label, a.Kind == Deferred)
	if a.Kind == Immediate {
		msg, err := a.Run(d.state, param)
		events.Action.Error(nodeID, err)
		return Result{NodeID: nodeID, Label: label, Message: msg, Err: err}, true
	}

	d.nextTask++
	task := PendingTask{ID: d.nextTask, NodeID: nodeID, Label: label, StartedAt: time.Now()}
	d.pending[task.ID] = task
	go d.runDeferred(task, a.Run, param)
	return Result{TaskID: task.ID, NodeID: nodeID, Label: label}, false
}

// runDeferred executes the handler off the control goroutine. Results that
// complete after Close are discarded rather than delivered.
func (d *Dispatcher) runDeferred(task PendingTask, fn Func, param *string) {
	msg, err := fn(d.state, param)
	res := Result{TaskID: task.ID, NodeID: task.NodeID, Label: task.Label, Message: msg, Err: err}
	select {
	case d.completions <- res:
	case <-d.ctx.Done():
	}
}

// Drain collects every completion currently buffered, without blocking.
// Each deferred task's result is delivered at most once; completion order
// follows completion time, not invocation order.
func (d *Dispatcher) Drain() []Result {
	var results []Result
	for {
		select {
		case res := <-d.completions:
			delete(d.pending, res.TaskID)
			events.Action.Result(res.NodeID, res.TaskID, res.Message)
			events.Action.Error(res.NodeID, res.Err)
			results = append(results, res)
		default:
			return results
		}
	}
}

// Pending returns the number of deferred tasks still in flight.
func (d *Dispatcher) Pending() int {
	return len(d.pending)
}

// Close stops result delivery. In-flight handlers keep running but their
// results are dropped.
func (d *Dispatcher) Close() {
	d.cancel()
}
