package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	logout   key.Binding
	nextPage key.Binding
	prevPage key.Binding
	like     key.Binding
	dislike  key.Binding
	copy     key.Binding
	del      key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	nextPage: key.NewBinding(key.WithKeys("n", "right")),
	prevPage: key.NewBinding(key.WithKeys("p", "left")),
	like:     key.NewBinding(key.WithKeys("l")),
	dislike:  key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	del:      key.NewBinding(key.WithKeys("x")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
