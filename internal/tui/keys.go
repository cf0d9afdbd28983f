package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send     key.Binding
	leave    key.Binding
	copyLast key.Binding
	scroll   key.Binding
}

var keys = keyMap{
	send:     key.NewBinding(key.WithKeys("enter")),
	leave:    key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	copyLast: key.NewBinding(key.WithKeys("ctrl+y")),
	scroll:   key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown")),
}
