// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/events"
)

// menuItem either emits an event for id or runs a command.
type menuItem struct {
	label string
	event events.Name
	id    string
	run   func() tea.Cmd
}

// menuModel is the context menu of the current view.
type menuModel struct {
	title string
	items []menuItem
	idx   int
}

func newMenu(title string, items []menuItem) *menuModel {
	if len(items) == 0 {
		return nil
	}
	return &menuModel{title: title, items: items}
}

// update handles a key. It returns the picked item, and closed reports
// whether the menu should go away.
func (m *menuModel) update(msg tea.KeyMsg) (picked *menuItem, closed bool) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		item := m.items[m.idx]
		return &item, true
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.menu):
		return nil, true
	}
	return nil, false
}

func (m *menuModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, item := range m.items {
		line := cursorMark(i == m.idx) + item.label
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return overlayBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
