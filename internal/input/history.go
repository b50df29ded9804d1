package input

// History keeps previously submitted command lines for up/down recall. The
// position only has meaning while browsing.
type History struct {
	entries  []string
	position int
	browsing bool
	maxSize  int
}

// NewHistory returns a command history bounded to maxSize entries.
func NewHistory(maxSize int) *History {
	if maxSize < 1 {
		maxSize = 1
	}
	return &History{maxSize: maxSize}
}

// Add records a submitted command. Empty lines and immediate duplicates of
// the last entry are dropped, and browsing is reset.
func (h *History) Add(command string) {
	if command == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == command {
		h.browsing = false
		return
	}
	h.entries = append(h.entries, command)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[1:]
	}
	h.browsing = false
}

// Up moves to the previous (older) command and returns it. The first call
// starts browsing at the newest entry.
func (h *History) Up() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if !h.browsing {
		h.browsing = true
		h.position = len(h.entries) - 1
	} else if h.position > 0 {
		h.position--
	}
	return h.entries[h.position], true
}

// Down moves to the next (newer) command. Moving past the newest entry exits
// browsing and returns false.
func (h *History) Down() (string, bool) {
	if !h.browsing {
		return "", false
	}
	if h.position < len(h.entries)-1 {
		h.position++
		return h.entries[h.position], true
	}
	h.browsing = false
	return "", false
}

// Reset exits browsing mode.
func (h *History) Reset() {
	h.browsing = false
}
