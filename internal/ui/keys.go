package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Next key.Binding
	Prev key.Binding
	Open key.Binding
	Back key.Binding

	// Keyboard drag
	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding

	// Views
	GridView   key.Binding
	BoardView  key.Binding
	PeopleView key.Binding
	ListView   key.Binding
	TasksView  key.Binding

	Search     key.Binding
	ShowAll    key.Binding
	Refresh    key.Binding
	Help       key.Binding
	ThemeCycle key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "j", "right", "l", "tab"),
			key.WithHelp("j/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "left", "h", "shift+tab"),
			key.WithHelp("k/h", "prev"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open tasks"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		Grab: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "grab"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),

		GridView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "priority"),
		),
		BoardView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "status"),
		),
		PeopleView: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "people"),
		),
		ListView: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "list"),
		),
		TasksView: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "tasks"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show completed"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Next, k.Open, k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Open, k.Back},
		{k.Grab, k.Drop, k.Cancel},
		{k.GridView, k.BoardView, k.PeopleView, k.ListView, k.TasksView},
		{k.Search, k.ShowAll, k.Refresh},
		{k.ThemeCycle, k.Help, k.Quit},
	}
}

// DragHelp returns the bindings shown while a keyboard drag is active
func (k KeyMap) DragHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Drop, k.Cancel}
}
