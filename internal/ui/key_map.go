package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	back    key.Binding
	search  key.Binding
	create  key.Binding
	publish key.Binding
	export  key.Binding
	logout  key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search by city")),
		create:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		publish: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "publish programmation")),
		export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		logout:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "log out")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.search, k.create},
		{k.publish, k.logout, k.quit},
	}
}
