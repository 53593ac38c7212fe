package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	logout  key.Binding
	refresh key.Binding
	copy    key.Binding
	hero    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	logout:  key.NewBinding(key.WithKeys("L")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	hero:    key.NewBinding(key.WithKeys("n")),
}
