package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Filter      key.Binding
	Significant key.Binding
	Reset       key.Binding
	Search      key.Binding
	UpDown      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Filter:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit range")),
		Significant: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "significant only")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filters")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find species")),
		UpDown:      key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "select species")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Significant, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Filter, k.Significant, k.Reset},
		{k.Search, k.UpDown},
		{k.Help, k.Quit},
	}
}

// inputKeyMap is shown while a sidebar or search input has focus.
type inputKeyMap struct {
	Apply  key.Binding
	Next   key.Binding
	Cancel key.Binding
}

func newInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Next:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Next, k.Cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
