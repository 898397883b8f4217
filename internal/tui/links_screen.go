// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/utils"
	"github.com/MKhiriev/go-drive-desk/models"
)

func (m *appModel) currentLink() (models.DriveItem, bool) {
	items := m.services.Links.Links().Snapshot()
	idx := m.cursorIndex()
	if idx < 0 || idx >= len(items) {
		return models.DriveItem{}, false
	}
	return items[idx], true
}

func (m *appModel) updateLinksKeys(msg tea.KeyMsg) tea.Cmd {
	item, ok := m.currentLink()
	if ok && key.Matches(msg, keys.enter, keys.link) {
		return m.openPanel(item, true)
	}
	return nil
}

func (m *appModel) linksMenuItems() []menuItem {
	item, ok := m.currentLink()
	if !ok {
		return nil
	}
	return []menuItem{{
		label: m.tr.T("drive.publicLink"),
		run:   func() tea.Cmd { return m.openPanel(item, true) },
	}}
}

func (m *appModel) viewLinks() string {
	items := m.services.Links.Links().Snapshot()
	if len(items) == 0 {
		return renderPage(m.tr.T("links.title"), m.tr.T("common.empty"), "")
	}

	idx := m.cursorIndex()
	var b strings.Builder
	for i, item := range items {
		line := fmt.Sprintf("%s%-40s %s",
			cursorMark(i == idx),
			fitText(item.Name, 40),
			mutedStyle.Render(utils.FormatTimestamp(item.Timestamp, timeLayout)),
		)
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage(m.tr.T("links.title"), strings.TrimRight(b.String(), "\n"), "enter: "+m.tr.T("drive.publicLink"))
}
