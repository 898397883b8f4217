// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/models"
)

const nameCharLimit = 255

// modalModel answers one prompt of the Host.
type modalModel struct {
	kind   promptKind
	prompt models.Prompt
	input  textinput.Model
	reply  chan<- promptReply
}

func newModal(msg promptMsg) *modalModel {
	in := textinput.New()
	in.Placeholder = msg.prompt.Placeholder
	in.CharLimit = nameCharLimit
	in.SetValue(msg.prompt.Value)
	in.CursorStart()
	in.Focus()

	return &modalModel{kind: msg.kind, prompt: msg.prompt, input: in, reply: msg.reply}
}

// update handles a key and reports whether the modal is answered.
func (m *modalModel) update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.answer(promptReply{})
		return true, nil
	case key.Matches(msg, keys.enter):
		m.answer(promptReply{ok: true, value: m.input.Value()})
		return true, nil
	}

	if m.kind == promptConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.answer(promptReply{ok: true})
			return true, nil
		case key.Matches(msg, keys.no):
			m.answer(promptReply{})
			return true, nil
		}
		return false, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return false, cmd
}

// cancel answers the prompt as dismissed.
func (m *modalModel) cancel() {
	m.answer(promptReply{})
}

func (m *modalModel) answer(r promptReply) {
	select {
	case m.reply <- r:
	default:
	}
}

func (m *modalModel) view(tr service.Translator) string {
	var b strings.Builder

	if m.prompt.Title != "" {
		b.WriteString(titleStyle.Render(m.prompt.Title))
		b.WriteString("\n\n")
	}
	if m.prompt.Message != "" {
		b.WriteString(m.prompt.Message)
		b.WriteString("\n\n")
	}

	if m.kind == promptInput {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: " + tr.T("common.confirm") + "  esc: " + tr.T("common.cancel")))
	} else {
		b.WriteString(helpStyle.Render("y: " + tr.T("common.confirm") + "  n/esc: " + tr.T("common.cancel")))
	}

	style := overlayBoxStyle
	if m.prompt.Danger {
		style = dangerBoxStyle
	}
	return style.Render(b.String())
}
