package session

import "time"

// Entry is one appended result message. Seq is assigned at append time and
// is strictly monotonic within a run.
type Entry struct {
	Seq     uint64
	Message string
	Origin  string
	IsError bool
	Time    time.Time
}

// History is the append-only output log plus the scroll cursor. Entries are
// never truncated; eviction, if an embedder wants it, is layered on top.
type History struct {
	entries []Entry
	nextSeq uint64
	cursor  int
	fresh   bool
}

// NewHistory returns an empty history with the cursor parked at zero.
func NewHistory() *History {
	return &History{nextSeq: 1}
}

// Append records a message and returns the stored entry.
func (h *History) Append(message, origin string, isError bool) Entry {
	entry := Entry{
		Seq:     h.nextSeq,
		Message: message,
		Origin:  origin,
		IsError: isError,
		Time:    time.Now(),
	}
	h.nextSeq++
	h.entries = append(h.entries, entry)
	h.fresh = true
	return entry
}

// Entries returns the full log in append order.
func (h *History) Entries() []Entry {
	return h.entries
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent entry, if any.
func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Cursor returns the scroll cursor, always clamped to [0, Len-1] (0 when
// the history is empty).
func (h *History) Cursor() int {
	return h.cursor
}

// Scroll moves the cursor by delta, clamping at both ends.
func (h *History) Scroll(delta int) {
	h.cursor += delta
	h.clamp()
}

// JumpTop moves the cursor to the oldest entry.
func (h *History) JumpTop() {
	h.cursor = 0
}

// JumpBottom moves the cursor to the newest entry.
func (h *History) JumpBottom() {
	if len(h.entries) == 0 {
		h.cursor = 0
		return
	}
	h.cursor = len(h.entries) - 1
}

// HasNewOutput reports whether entries were appended since the last call and
// resets the flag. Renderers use it to auto-follow fresh output.
func (h *History) HasNewOutput() bool {
	fresh := h.fresh
	h.fresh = false
	return fresh
}

func (h *History) clamp() {
	if len(h.entries) == 0 {
		h.cursor = 0
		return
	}
	if h.cursor < 0 {
		h.cursor = 0
	}
	if h.cursor > len(h.entries)-1 {
		h.cursor = len(h.entries) - 1
	}
}
