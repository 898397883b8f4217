// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/models"
)

// currentPair returns the pair under the cursor, or the one the detail view
// shows.
func (m *appModel) currentPair() (models.SyncPair, bool) {
	if m.router.current.kind == routeSyncDetail {
		return m.services.Syncs.Pairs().Find(m.router.current.id)
	}

	pairs := m.services.Syncs.Pairs().Snapshot()
	idx := m.cursorIndex()
	if idx < 0 || idx >= len(pairs) {
		return models.SyncPair{}, false
	}
	return pairs[idx], true
}

func (m *appModel) updateSyncKeys(msg tea.KeyMsg) tea.Cmd {
	pair, ok := m.currentPair()

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.back):
		if m.router.current.kind == routeSyncDetail {
			m.services.Syncs.Selected().ClearIf(m.router.current.id)
			return m.goBack()
		}
	case !ok:
		return nil
	case key.Matches(msg, keys.enter):
		if m.router.current.kind == routeSyncs {
			return m.navigate(route{kind: routeSyncDetail, id: pair.UUID}, false, true)
		}
	case key.Matches(msg, keys.pause):
		m.bridge.Emit(events.SyncTogglePause, pair.UUID)
	case key.Matches(msg, keys.delete):
		m.bridge.Emit(events.SyncDelete, pair.UUID)
	case key.Matches(msg, keys.reset):
		return m.cmdResetCache(pair.UUID)
	}
	return nil
}

func (m *appModel) cmdResetCache(uuid string) tea.Cmd {
	return m.runAction(func(ctx context.Context) error {
		return m.services.Syncs.ResetCache(ctx, uuid)
	})
}

func (m *appModel) syncMenuItems() []menuItem {
	pair, ok := m.currentPair()
	if !ok {
		return nil
	}

	pauseLabel := m.tr.T("syncs.pause")
	if pair.Paused {
		pauseLabel = m.tr.T("syncs.resume")
	}

	uuid := pair.UUID
	return []menuItem{
		{label: pauseLabel, event: events.SyncTogglePause, id: uuid},
		{label: m.tr.T("syncs.resetCache"), run: func() tea.Cmd { return m.cmdResetCache(uuid) }},
		{label: m.tr.T("syncs.delete"), event: events.SyncDelete, id: uuid},
	}
}

func (m *appModel) syncStatus(p models.SyncPair) string {
	if p.Paused {
		return mutedStyle.Render(m.tr.T("syncs.paused"))
	}
	return successStyle.Render(m.tr.T("syncs.active"))
}

func (m *appModel) viewSyncs() string {
	pairs := m.services.Syncs.Pairs().Snapshot()
	if len(pairs) == 0 {
		return renderPage(m.tr.T("syncs.title"), m.tr.T("common.empty"), "")
	}

	idx := m.cursorIndex()
	var b strings.Builder
	for i, p := range pairs {
		line := fmt.Sprintf("%s%-24s %s  %s",
			cursorMark(i == idx),
			fitText(pairTitle(p), 24),
			m.syncStatus(p),
			mutedStyle.Render(fitText(p.LocalPath+" ⇄ "+p.RemotePath, 48)),
		)
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage(m.tr.T("syncs.title"), strings.TrimRight(b.String(), "\n"),
		"enter  p: "+m.tr.T("syncs.pause")+"  r: "+m.tr.T("syncs.resetCache")+"  d: "+m.tr.T("syncs.delete"))
}

func (m *appModel) viewSyncDetail() string {
	pair, ok := m.currentPair()
	if !ok {
		return renderPage(m.tr.T("syncs.title"), m.tr.T("common.loading"), "esc")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", m.tr.T("syncs.local"), pair.LocalPath)
	fmt.Fprintf(&b, "%s: %s\n", m.tr.T("syncs.remote"), pair.RemotePath)
	fmt.Fprintf(&b, "%s: %s\n", m.tr.T("syncs.mode"), m.tr.T("syncs.mode."+string(pair.Mode)))
	fmt.Fprintf(&b, "%s: %s", m.tr.T("syncs.status"), m.syncStatus(pair))
	if pair.ExcludeDotFiles {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.tr.T("syncs.excludeDotFiles")))
	}

	pauseLabel := m.tr.T("syncs.pause")
	if pair.Paused {
		pauseLabel = m.tr.T("syncs.resume")
	}
	return renderPage(pairTitle(pair), b.String(),
		"esc  p: "+pauseLabel+"  r: "+m.tr.T("syncs.resetCache")+"  d: "+m.tr.T("syncs.delete"))
}

func pairTitle(p models.SyncPair) string {
	if p.Name != "" {
		return p.Name
	}
	return p.LocalPath
}
