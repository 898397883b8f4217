// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/utils"
	"github.com/MKhiriev/go-drive-desk/models"
)

const timeLayout = "2006-01-02 15:04"

func (m *appModel) currentItem() (models.DriveItem, bool) {
	items := m.services.Drive.Items().Snapshot()
	idx := m.cursorIndex()
	if idx < 0 || idx >= len(items) {
		return models.DriveItem{}, false
	}
	return items[idx], true
}

func (m *appModel) updateDriveKeys(msg tea.KeyMsg) tea.Cmd {
	parent := m.router.current.id

	switch {
	case key.Matches(msg, keys.newDir):
		m.bridge.Emit(events.DriveCreateFolder, parent)
		return nil
	case key.Matches(msg, keys.newText):
		m.bridge.Emit(events.DriveCreateTextFile, parent)
		return nil
	case key.Matches(msg, keys.esc):
		if len(m.services.Drive.Selected()) > 0 {
			m.services.Drive.ClearSelection()
			return nil
		}
		return m.goBack()
	case key.Matches(msg, keys.back):
		return m.goBack()
	}

	item, ok := m.currentItem()
	if !ok {
		return nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		if item.IsDir() {
			return m.navigate(route{kind: routeDrive, id: item.UUID}, false, true)
		}
	case key.Matches(msg, keys.selectIt):
		m.services.Drive.ToggleSelect(item.UUID)
	case key.Matches(msg, keys.link):
		if item.IsDir() {
			return m.openPanel(item, false)
		}
	}
	return nil
}

func (m *appModel) driveMenuItems() []menuItem {
	parent := m.router.current.id
	items := []menuItem{
		{label: m.tr.T("drive.createFolder"), event: events.DriveCreateFolder, id: parent},
		{label: m.tr.T("drive.createTextFile"), event: events.DriveCreateTextFile, id: parent},
	}

	if item, ok := m.currentItem(); ok && item.IsDir() {
		items = append(items, menuItem{
			label: m.tr.T("drive.publicLink"),
			run:   func() tea.Cmd { return m.openPanel(item, false) },
		})
	}
	return items
}

func (m *appModel) viewDrive() string {
	items := m.services.Drive.Items().Snapshot()
	help := "n: " + m.tr.T("drive.createFolder") + "  t: " + m.tr.T("drive.createTextFile") +
		"  l: " + m.tr.T("drive.publicLink") + "  space  backspace"

	if len(items) == 0 {
		return renderPage(m.tr.T("drive.title"), m.tr.T("common.empty"), help)
	}

	idx := m.cursorIndex()
	var b strings.Builder
	for i, item := range items {
		icon := "  "
		if item.IsDir() {
			icon = "▸ "
		}
		mark := " "
		if item.Selected {
			mark = "•"
		}

		line := fmt.Sprintf("%s%s%s%-32s %10s  %s",
			cursorMark(i == idx),
			mark,
			icon,
			fitText(item.Name, 32),
			formatSize(item),
			mutedStyle.Render(utils.FormatTimestamp(item.LastModified, timeLayout)),
		)
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if n := len(m.services.Drive.Selected()); n > 0 {
		b.WriteString("\n")
		b.WriteString(m.tr.T("drive.selected", n))
	}

	return renderPage(m.tr.T("drive.title"), strings.TrimRight(b.String(), "\n"), help)
}
