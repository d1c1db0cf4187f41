package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	TogglePanel key.Binding
	Next        key.Binding
	Prev        key.Binding
	Submit      key.Binding
	Reset       key.Binding
	Close       key.Binding
	Copy        key.Binding
	Scroll      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		TogglePanel: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "style panel"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "previous control"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "apply"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close panel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy css"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePanel, k.Submit, k.Reset, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePanel, k.Close, k.Next, k.Prev},
		{k.Submit, k.Reset, k.Copy},
		{k.Scroll, k.Help, k.Quit},
	}
}

// setPanelOpen enables the bindings that only act on the open panel, which
// also keeps them out of the help while it is closed.
func (k *keyMap) setPanelOpen(open bool) {
	for _, b := range []*key.Binding{&k.Next, &k.Prev, &k.Submit, &k.Reset, &k.Close} {
		b.SetEnabled(open)
	}
}
