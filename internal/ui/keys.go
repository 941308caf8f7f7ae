package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Defaults key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Defaults, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "prev limit"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next limit"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←/h", "lower"),
	),
	Increase: key.NewBinding(
		key.WithKeys("right", "l", "+"),
		key.WithHelp("→/l", "raise"),
	),
	Defaults: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "defaults"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
