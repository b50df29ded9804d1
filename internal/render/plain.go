package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/menukit/internal/engine"
	"github.com/atomicstack/menukit/internal/session"
)

const plainSeparator = "----------------------------------------"

// Plain renders snapshots as linear text on an io.Writer. One Render call
// emits one self-contained frame; no terminal control sequences are used.
type Plain struct {
	w io.Writer
}

// NewPlain wraps the writer in a plain renderer.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

// Render implements Renderer.
func (p *Plain) Render(snap engine.Snapshot) error {
	_, err := io.WriteString(p.w, PlainFrame(snap))
	return err
}

// PlainFrame builds one complete text frame for the snapshot.
func PlainFrame(snap engine.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n== %s ==\n", breadcrumbTitle(snap))
	for _, child := range snap.Children {
		marker := ""
		if child.Submenu {
			marker = " →"
		}
		fmt.Fprintf(&b, "[%s] %s%s\n", childToken(child), child.Label, marker)
	}
	if snap.AtRoot {
		fmt.Fprintf(&b, "[%s] Quit\n", snap.Tokens.Quit)
	} else {
		fmt.Fprintf(&b, "[%s] Back\n", snap.Tokens.Back)
	}
	b.WriteString(plainSeparator + "\n")

	if snap.Mode == session.ModeScroll {
		writeScrollBlock(&b, snap)
	} else {
		writeOutputBlock(&b, snap)
	}
	if snap.Pending > 0 {
		fmt.Fprintf(&b, "(%d background task(s) running)\n", snap.Pending)
	}
	return b.String()
}

// writeOutputBlock prints only the newest message, matching the linear
// renderer of the original text interface.
func writeOutputBlock(b *strings.Builder, snap engine.Snapshot) {
	if len(snap.Entries) == 0 {
		return
	}
	last := snap.Entries[len(snap.Entries)-1]
	b.WriteString("Output:\n")
	fmt.Fprintf(b, "  %s\n", formatEntry(last))
	b.WriteString(plainSeparator + "\n")
}

// writeScrollBlock prints the entry under the cursor with its position, so
// line-oriented scrolling works without a full-screen terminal.
func writeScrollBlock(b *strings.Builder, snap engine.Snapshot) {
	fmt.Fprintf(b, "-- SCROLL -- (%s to return)\n", snap.Tokens.Switch)
	if len(snap.Entries) == 0 {
		b.WriteString("  (no output)\n")
		b.WriteString(plainSeparator + "\n")
		return
	}
	entry := snap.Entries[snap.Cursor]
	fmt.Fprintf(b, "  [%d/%d] %s\n", snap.Cursor+1, len(snap.Entries), formatEntry(entry))
	b.WriteString(plainSeparator + "\n")
}

func breadcrumbTitle(snap engine.Snapshot) string {
	labels := make([]string, 0, len(snap.Breadcrumb))
	for _, crumb := range snap.Breadcrumb {
		labels = append(labels, crumb.Label)
	}
	return strings.Join(labels, breadcrumbSeparator)
}

func childToken(child engine.Child) string {
	if child.Binding != "" {
		return child.Binding
	}
	return child.Alias
}

func formatEntry(entry session.Entry) string {
	text := entry.Message
	if entry.Origin != "" {
		text = fmt.Sprintf("[%s] %s", entry.Origin, text)
	}
	if entry.IsError {
		text = "error: " + strings.TrimPrefix(text, "error: ")
	}
	return text
}
