package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/menukit/internal/engine"
	"github.com/atomicstack/menukit/internal/input"
	"github.com/atomicstack/menukit/internal/session"
	"github.com/atomicstack/menukit/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
)

var styles = theme.Default()

const (
	drainInterval    = 100 * time.Millisecond
	defaultOutputRow = 8
	historySize      = 100
)

// tickMsg triggers the per-frame engine tick: the embedder hook plus the
// drain of deferred completions.
type tickMsg time.Time

// Model is the rich interactive renderer: a Bubble Tea model that drives
// the engine from key events and draws each frame from a fresh snapshot.
type Model struct {
	engine   *engine.Engine
	inputBox textinput.Model
	output   viewport.Model
	spin     spinner.Model
	keys     KeyMap
	history  *input.History
	width    int
	height   int
	pendingG bool
	quitting bool
}

// NewModel wires the rich renderer around an engine.
func NewModel(e *engine.Engine, width, height int) *Model {
	box := textinput.New()
	box.Prompt = "> "
	box.PromptStyle = *styles.Prompt
	box.Placeholder = "command"
	box.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = *styles.Pending

	vp := viewport.New(width, defaultOutputRow)

	return &Model{
		engine:   e,
		inputBox: box,
		output:   vp,
		spin:     sp,
		keys:     newKeyMap(e.Tokens().Switch),
		history:  input.NewHistory(historySize),
		width:    width,
		height:   height,
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, drainTick())
}

func drainTick() tea.Cmd {
	return tea.Tick(drainInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.output.Width = msg.Width
		m.output.Height = outputHeight(msg.Height)
		return m, nil
	case tickMsg:
		m.engine.Tick()
		if m.engine.Session().History().HasNewOutput() {
			m.output.GotoBottom()
		}
		return m, drainTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.inputBox, cmd = m.inputBox.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.engine.Session().Mode() == session.ModeScroll {
		return m.handleScrollKey(msg)
	}
	return m.handleCommandKey(msg)
}

func (m *Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchMode):
		m.history.Reset()
		m.engine.HandleInput(m.engine.Tokens().Switch)
		m.output.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		line := m.inputBox.Value()
		m.inputBox.SetValue("")
		m.history.Add(strings.TrimSpace(line))
		if !m.engine.HandleInput(line) {
			m.quitting = true
			return m, tea.Quit
		}
		m.output.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.HistoryUp):
		if cmd, ok := m.history.Up(); ok {
			m.inputBox.SetValue(cmd)
			m.inputBox.CursorEnd()
		}
		return m, nil
	case key.Matches(msg, m.keys.HistoryDn):
		cmd, _ := m.history.Down()
		m.inputBox.SetValue(cmd)
		m.inputBox.CursorEnd()
		return m, nil
	}
	var cmd tea.Cmd
	m.inputBox, cmd = m.inputBox.Update(msg)
	return m, cmd
}

// handleScrollKey feeds scroll tokens through the same interpreter path the
// plain renderer uses, so both variants share one source of truth. The only
// renderer-local state is the pending first "g" of "gg".
func (m *Model) handleScrollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	token := msg.String()
	if token == "g" {
		if m.pendingG {
			m.pendingG = false
			m.engine.HandleInput("gg")
			m.syncScrollViewport()
		} else {
			m.pendingG = true
		}
		return m, nil
	}
	m.pendingG = false
	m.engine.HandleInput(token)
	m.syncScrollViewport()
	return m, nil
}

func (m *Model) syncScrollViewport() {
	snap := m.engine.Snapshot()
	if snap.Mode != session.ModeScroll {
		m.output.GotoBottom()
		return
	}
	m.output.SetYOffset(snap.Cursor)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.engine.Snapshot()
	var b strings.Builder

	b.WriteString(m.header(snap))
	b.WriteString("\n")
	for _, child := range snap.Children {
		b.WriteString(m.itemLine(child))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	m.output.SetContent(outputContent(snap))
	b.WriteString(m.output.View())
	b.WriteString("\n")

	if snap.Pending > 0 {
		b.WriteString(styles.Pending.Render(fmt.Sprintf("%s %d background task(s) running", m.spin.View(), snap.Pending)))
		b.WriteString("\n")
	}
	if snap.Mode == session.ModeScroll {
		b.WriteString(styles.ScrollBadge.Render(" SCROLL "))
		b.WriteString(styles.Footer.Render(fmt.Sprintf("  j/k line · u/d page · gg/G ends · %s back to commands", snap.Tokens.Switch)))
	} else {
		b.WriteString(m.inputBox.View())
		b.WriteString("\n")
		b.WriteString(styles.Footer.Render(m.footerHelp(snap)))
	}
	return b.String()
}

func (m *Model) header(snap engine.Snapshot) string {
	labels := make([]string, 0, len(snap.Breadcrumb))
	for _, crumb := range snap.Breadcrumb {
		labels = append(labels, crumb.Label)
	}
	text := strings.Join(labels, breadcrumbSeparator)
	if m.width > 0 {
		text = truncate.StringWithTail(text, uint(m.width), "…")
	}
	return styles.Header.Render(text)
}

func (m *Model) itemLine(child engine.Child) string {
	token := styles.ItemToken.Render(fmt.Sprintf("[%s]", childToken(child)))
	label := styles.Item.Render(child.Label)
	line := fmt.Sprintf("%s %s", token, label)
	if child.Submenu {
		line += styles.SubmenuMarker.Render(" →")
	}
	if m.width > 0 {
		line = truncate.StringWithTail(line, uint(m.width), "…")
	}
	return line
}

func (m *Model) footerHelp(snap engine.Snapshot) string {
	quitOrBack := fmt.Sprintf("%s back", snap.Tokens.Back)
	if snap.AtRoot {
		quitOrBack = fmt.Sprintf("%s quit", snap.Tokens.Quit)
	}
	return fmt.Sprintf("%s · %s scroll mode · ctrl+c force quit", quitOrBack, snap.Tokens.Switch)
}

// outputContent lays out the history for the viewport, newest last.
func outputContent(snap engine.Snapshot) string {
	if len(snap.Entries) == 0 {
		return styles.Info.Render("(no output)")
	}
	lines := make([]string, 0, len(snap.Entries))
	for i, entry := range snap.Entries {
		text := entry.Message
		if entry.Origin != "" {
			text = fmt.Sprintf("%s %s", styles.OutputOrigin.Render("["+entry.Origin+"]"), text)
		}
		if entry.IsError {
			text = styles.Error.Render(text)
		} else {
			text = styles.Output.Render(text)
		}
		if snap.Mode == session.ModeScroll && i == snap.Cursor {
			text = "> " + text
		} else {
			text = "  " + text
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

func outputHeight(total int) int {
	h := total / 3
	if h < 3 {
		h = 3
	}
	return h
}
