package input

import "testing"

func TestHistoryUpDownNavigation(t *testing.T) {
	h := NewHistory(3)
	h.Add("cmd1")
	h.Add("cmd2")
	h.Add("cmd3")

	steps := []string{"cmd3", "cmd2", "cmd1", "cmd1"}
	for i, want := range steps {
		got, ok := h.Up()
		if !ok || got != want {
			t.Fatalf("step %d: expected %q, got %q %v", i, want, got, ok)
		}
	}

	if got, ok := h.Down(); !ok || got != "cmd2" {
		t.Fatalf("expected cmd2 going down, got %q %v", got, ok)
	}
	if got, ok := h.Down(); !ok || got != "cmd3" {
		t.Fatalf("expected cmd3 going down, got %q %v", got, ok)
	}
	if _, ok := h.Down(); ok {
		t.Fatalf("expected browsing to end past the newest entry")
	}
}

func TestHistoryMaxSizeEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, cmd := range []string{"cmd1", "cmd2", "cmd3", "cmd4"} {
		h.Add(cmd)
	}
	if len(h.entries) != 3 || h.entries[0] != "cmd2" {
		t.Fatalf("expected oldest entry evicted, got %v", h.entries)
	}
}

func TestHistorySkipsEmptyAndDuplicate(t *testing.T) {
	h := NewHistory(10)
	h.Add("")
	h.Add("cmd")
	h.Add("cmd")
	if len(h.entries) != 1 {
		t.Fatalf("expected a single entry, got %v", h.entries)
	}
}

func TestHistoryResetExitsBrowsing(t *testing.T) {
	h := NewHistory(10)
	h.Add("cmd1")
	h.Add("cmd2")
	h.Up()
	h.Up()
	h.Reset()
	if got, ok := h.Up(); !ok || got != "cmd2" {
		t.Fatalf("expected browsing to restart at the newest entry, got %q %v", got, ok)
	}
}

func TestHistoryUpOnEmpty(t *testing.T) {
	h := NewHistory(10)
	if _, ok := h.Up(); ok {
		t.Fatalf("expected no entry on empty history")
	}
}
