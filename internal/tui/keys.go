// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	save    key.Binding
	quit    key.Binding
	logout  key.Binding
	newItem key.Binding
	reload  key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	version key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	newItem: key.NewBinding(key.WithKeys("n")),
	reload:  key.NewBinding(key.WithKeys("r")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	version: key.NewBinding(key.WithKeys("v")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
