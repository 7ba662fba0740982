package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	like      key.Binding
	favorites key.Binding
	match     key.Binding
	filters   key.Binding
	breeds    key.Binding
	states    key.Binding
	sortField key.Binding
	sortDir   key.Binding
	copyItem  key.Binding
	reset     key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	like:      key.NewBinding(key.WithKeys(" ")),
	favorites: key.NewBinding(key.WithKeys("f")),
	match:     key.NewBinding(key.WithKeys("m")),
	filters:   key.NewBinding(key.WithKeys("g")),
	breeds:    key.NewBinding(key.WithKeys("b")),
	states:    key.NewBinding(key.WithKeys("s")),
	sortField: key.NewBinding(key.WithKeys("o")),
	sortDir:   key.NewBinding(key.WithKeys("r")),
	copyItem:  key.NewBinding(key.WithKeys("c")),
	reset:     key.NewBinding(key.WithKeys("x")),
}
