package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	upload   key.Binding
	refresh  key.Binding
	favorite key.Binding
	delete   key.Binding
	copy     key.Binding
	albums   key.Binding
	search   key.Binding
	sortKey  key.Binding
	theme    key.Binding
	stats    key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("L")),
	upload:   key.NewBinding(key.WithKeys("n")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	favorite: key.NewBinding(key.WithKeys("f")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	albums:   key.NewBinding(key.WithKeys("a")),
	search:   key.NewBinding(key.WithKeys("/")),
	sortKey:  key.NewBinding(key.WithKeys("s")),
	theme:    key.NewBinding(key.WithKeys("t")),
	stats:    key.NewBinding(key.WithKeys("S")),
}
