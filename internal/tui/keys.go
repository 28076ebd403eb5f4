package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	pageUp    key.Binding
	pageDown  key.Binding
	refresh   key.Binding
	copy      key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	pageUp:    key.NewBinding(key.WithKeys("pgup", "b")),
	pageDown:  key.NewBinding(key.WithKeys("pgdown", " ", "f")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
