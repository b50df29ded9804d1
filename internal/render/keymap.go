package render

import "github.com/charmbracelet/bubbles/key"

// KeyMap collects the rich UI key bindings so the footer help line can be
// generated from one place.
type KeyMap struct {
	Submit     key.Binding
	HistoryUp  key.Binding
	HistoryDn  key.Binding
	SwitchMode key.Binding
	ForceQuit  key.Binding
}

// newKeyMap builds the bindings around the configured mode-switch token.
func newKeyMap(switchToken string) KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		HistoryUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "older command"),
		),
		HistoryDn: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "newer command"),
		),
		SwitchMode: key.NewBinding(
			key.WithKeys(switchToken),
			key.WithHelp(switchToken, "switch mode"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
