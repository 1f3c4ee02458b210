package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Pages
	NextPage  key.Binding
	PrevPage  key.Binding
	WordsPage key.Binding
	GroupPage key.Binding
	RandPage  key.Binding
	TonesPage key.Binding
	AddPage   key.Binding

	// Actions
	Quit     key.Binding
	Help     key.Binding
	Escape   key.Binding
	Speak    key.Binding
	Details  key.Binding
	LoadMore key.Binding
	Delete   key.Binding
	Refresh  key.Binding
	Submit   key.Binding

	// Confirmations
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Pages
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous page"),
		),
		WordsPage: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all words"),
		),
		GroupPage: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "groups"),
		),
		RandPage: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "random"),
		),
		TonesPage: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "tones"),
		),
		AddPage: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "add words"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/cancel"),
		),
		Speak: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pronounce"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle details"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete word"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new random words"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "add words"),
		),

		// Confirmations
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "cancel"),
		),
	}
}

// Keys is the global key map instance
var Keys = DefaultKeyMap()
