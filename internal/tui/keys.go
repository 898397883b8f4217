// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	back     key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	forceQ   key.Binding
	menu     key.Binding
	info     key.Binding
	yes      key.Binding
	no       key.Binding
	pause    key.Binding
	delete   key.Binding
	reset    key.Binding
	newDir   key.Binding
	newText  key.Binding
	link     key.Binding
	selectIt key.Binding
	enable   key.Binding
	disable  key.Binding
	save     key.Binding
	copy     key.Binding
	expire   key.Binding
	password key.Binding
	unset    key.Binding
	download key.Binding
	reveal   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	back:     key.NewBinding(key.WithKeys("backspace", "left", "h")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	forceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	menu:     key.NewBinding(key.WithKeys("m")),
	info:     key.NewBinding(key.WithKeys("?")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
	pause:    key.NewBinding(key.WithKeys("p")),
	delete:   key.NewBinding(key.WithKeys("d")),
	reset:    key.NewBinding(key.WithKeys("r")),
	newDir:   key.NewBinding(key.WithKeys("n")),
	newText:  key.NewBinding(key.WithKeys("t")),
	link:     key.NewBinding(key.WithKeys("l")),
	selectIt: key.NewBinding(key.WithKeys(" ")),
	enable:   key.NewBinding(key.WithKeys("e")),
	disable:  key.NewBinding(key.WithKeys("x")),
	save:     key.NewBinding(key.WithKeys("s")),
	copy:     key.NewBinding(key.WithKeys("c")),
	expire:   key.NewBinding(key.WithKeys("t")),
	password: key.NewBinding(key.WithKeys("p")),
	unset:    key.NewBinding(key.WithKeys("r")),
	download: key.NewBinding(key.WithKeys("b")),
	reveal:   key.NewBinding(key.WithKeys("v")),
}
