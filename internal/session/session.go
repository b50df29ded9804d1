// Package session owns the mutable core state of one application run: the
// navigation path, the input mode, and the output history. A single control
// goroutine owns the Session; nothing here is safe for concurrent use.
package session

// Mode selects how raw input is interpreted.
type Mode int

const (
	// ModeCommand routes input to menu navigation and action dispatch.
	ModeCommand Mode = iota
	// ModeScroll routes input to output-history cursor movement.
	ModeScroll
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "command"
	case ModeScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Session threads the per-run state through the application loop.
type Session struct {
	path    []string
	mode    Mode
	history *History
}

// New starts a session positioned at the root node in command mode.
func New(rootID string) *Session {
	return &Session{
		path:    []string{rootID},
		history: NewHistory(),
	}
}

// Leaf returns the ID of the currently active menu node.
func (s *Session) Leaf() string {
	return s.path[len(s.path)-1]
}

// Path returns a copy of the breadcrumb from root to the active node.
func (s *Session) Path() []string {
	return append([]string(nil), s.path...)
}

// AtRoot reports whether the active node is the root.
func (s *Session) AtRoot() bool {
	return len(s.path) == 1
}

// Push descends into a child node.
func (s *Session) Push(id string) {
	s.path = append(s.path, id)
}

// Pop ascends to the parent node. At the root it is a no-op and returns
// false.
func (s *Session) Pop() bool {
	if s.AtRoot() {
		return false
	}
	s.path = s.path[:len(s.path)-1]
	return true
}

// Mode returns the active input mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// ToggleMode flips between command and scroll mode.
func (s *Session) ToggleMode() {
	if s.mode == ModeCommand {
		s.mode = ModeScroll
	} else {
		s.mode = ModeCommand
	}
}

// History returns the output history for this run.
func (s *Session) History() *History {
	return s.history
}
