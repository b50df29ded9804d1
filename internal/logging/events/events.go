package events

import "github.com/atomicstack/menukit/internal/logging"

type MenuTracer struct{}

type InputTracer struct{}

type ActionTracer struct{}

type LoopTracer struct{}

var (
	Menu   = MenuTracer{}
	Input  = InputTracer{}
	Action = ActionTracer{}
	Loop   = LoopTracer{}
)

func (MenuTracer) Enter(nodeID, label string) {
	logging.Trace("menu.enter", map[string]interface{}{"node": nodeID, "label": label})
}

func (MenuTracer) Back(nodeID string) {
	logging.Trace("menu.back", map[string]interface{}{"node": nodeID})
}

func (InputTracer) Token(mode, token string, hasParam bool) {
	logging.Trace("input.token", map[string]interface{}{
		"mode":  mode,
		"token": token,
		"param": hasParam,
	})
}

func (InputTracer) Unresolved(raw, suggestion string) {
	logging.Trace("input.unresolved", map[string]interface{}{"raw": raw, "suggestion": suggestion})
}

func (InputTracer) ModeSwitch(mode string) {
	logging.Trace("input.mode-switch", map[string]interface{}{"mode": mode})
}

func (InputTracer) Scroll(op string, cursor int) {
	logging.Trace("input.scroll", map[string]interface{}{"op": op, "cursor": cursor})
}

func (ActionTracer) Queue(nodeID, label string, deferred bool) {
	logging.Trace("action.queue", map[string]interface{}{
		"node":     nodeID,
		"label":    label,
		"deferred": deferred,
	})
}

func (ActionTracer) Result(nodeID string, taskID uint64, msg string) {
	logging.Trace("action.result", map[string]interface{}{"node": nodeID, "task": taskID, "msg": msg})
}

func (ActionTracer) Error(nodeID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"node": nodeID, "error": err.Error()})
}

func (LoopTracer) Start(payload map[string]interface{}) {
	logging.Trace("loop.start", payload)
}

func (LoopTracer) Quit() {
	logging.Trace("loop.quit", nil)
}

func (LoopTracer) Drained(count int) {
	if count == 0 {
		return
	}
	logging.Trace("loop.drained", map[string]interface{}{"completions": count})
}
