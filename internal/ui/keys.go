package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	AutoAdvance key.Binding

	// Focus
	Tab      key.Binding
	ShiftTab key.Binding

	// Carousel
	Previous key.Binding
	Next     key.Binding
	Jump     key.Binding
	NudgeL   key.Binding
	NudgeR   key.Binding
	Hold     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		AutoAdvance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Toggle auto-advance"),
		),

		Tab: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "Next carousel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "Previous carousel"),
		),

		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous card"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next card"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to card"),
		),
		NudgeL: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Scroll left"),
		),
		NudgeR: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Scroll right"),
		),
		Hold: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Hold"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Tab, k.Hold, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Jump},
		{k.NudgeL, k.NudgeR, k.Hold},
		{k.Tab, k.ShiftTab},
		{k.AutoAdvance, k.CycleTheme, k.Help, k.Quit},
	}
}
