package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	copy      key.Binding
	probe     key.Binding
	reload    key.Binding
	script    key.Binding
	history   key.Binding
	buildInfo key.Binding
	esc       key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	copy:      key.NewBinding(key.WithKeys("c")),
	probe:     key.NewBinding(key.WithKeys("p")),
	reload:    key.NewBinding(key.WithKeys("r")),
	script:    key.NewBinding(key.WithKeys("s")),
	history:   key.NewBinding(key.WithKeys("h")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	esc:       key.NewBinding(key.WithKeys("esc")),
}
