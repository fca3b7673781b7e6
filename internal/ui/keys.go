package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dropdown key bindings
type KeyMap struct {
	Open      key.Binding
	Close     key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Pick      key.Binding
	SelectAll key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "down", "j"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x", "ctrl+u"),
			key.WithHelp("ctrl+x", "clear search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "done"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// closedKeys and openKeys implement help.KeyMap for each dropdown state
type closedKeys struct{ k KeyMap }

func (c closedKeys) ShortHelp() []key.Binding {
	return []key.Binding{c.k.Open, c.k.Help, c.k.Quit}
}

func (c closedKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{c.ShortHelp(), {c.k.ForceQuit}}
}

type openKeys struct {
	k        KeyMap
	multiple bool
}

func (o openKeys) ShortHelp() []key.Binding {
	if o.multiple {
		return []key.Binding{o.k.Up, o.k.Down, o.k.Pick, o.k.SelectAll, o.k.Clear, o.k.Close}
	}
	return []key.Binding{o.k.Up, o.k.Down, o.k.Pick, o.k.Clear, o.k.Close}
}

func (o openKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{o.ShortHelp(), {o.k.Toggle, o.k.ForceQuit}}
}
