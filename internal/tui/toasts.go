// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/feedback"
)

const (
	toastTTL     = 4 * time.Second
	toastVisible = 5
)

// toastStack holds visible toasts, oldest first. Loading toasts stay until
// dismissed; the others expire after toastTTL.
type toastStack struct {
	items []feedback.Toast
}

func (s *toastStack) show(t feedback.Toast) tea.Cmd {
	s.items = append(s.items, t)
	if t.Kind == feedback.KindLoading {
		return nil
	}

	id := t.ID
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpireMsg{id: id} })
}

func (s *toastStack) dismiss(id string) {
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *toastStack) loading() bool {
	for _, t := range s.items {
		if t.Kind == feedback.KindLoading {
			return true
		}
	}
	return false
}

func (s *toastStack) view(spinner string) string {
	items := s.items
	if len(items) > toastVisible {
		items = items[len(items)-toastVisible:]
	}

	lines := make([]string, 0, len(items))
	for _, t := range items {
		switch t.Kind {
		case feedback.KindLoading:
			lines = append(lines, toastStyle.Render(spinner+" "+t.Text))
		case feedback.KindError:
			lines = append(lines, toastStyle.Render(errorStyle.Render("✗ "+t.Text)))
		default:
			lines = append(lines, toastStyle.Render(successStyle.Render("✓ "+t.Text)))
		}
	}
	return strings.Join(lines, "\n")
}
