package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the rich UI.
type Styles struct {
	Header        *lipgloss.Style
	Item          *lipgloss.Style
	ItemToken     *lipgloss.Style
	SubmenuMarker *lipgloss.Style
	Output        *lipgloss.Style
	OutputOrigin  *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Footer        *lipgloss.Style
	Prompt        *lipgloss.Style
	Pending       *lipgloss.Style
	ScrollBadge   *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemToken: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	SubmenuMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Output: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	OutputOrigin: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Pending: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	ScrollBadge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
